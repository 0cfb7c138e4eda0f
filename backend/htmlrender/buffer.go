/*
Package htmlrender provides the default HTML output backend: the "Array"
join rule of spec.md §4.5 and a convenience constructor wiring it into
dispatch.OutputFor for the "html" property.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package htmlrender

import "github.com/npillmayer/cords"

// fragment is the cords.Leaf used to accumulate rendered HTML pieces
// without repeated string concatenation, the way engine/frame/lines uses
// cords.Leaf for styled text spans in the teacher repo.
type fragment struct {
	s string
}

func (f fragment) Weight() uint64 { return uint64(len(f.s)) }
func (f fragment) String() string { return f.s }

func (f fragment) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return fragment{s: f.s[:i]}, fragment{s: f.s[i:]}
}

func (f fragment) Substring(i, j uint64) []byte {
	return []byte(f.s)[i:j]
}

var _ cords.Leaf = fragment{}

// buffer wraps a cords.Builder for building up an HTML fragment
// sequence and flattening it to a string once at the end.
type buffer struct {
	b *cords.Builder
}

func newBuffer() *buffer {
	return &buffer{b: cords.NewBuilder()}
}

func (buf *buffer) writeString(s string) {
	if s == "" {
		return
	}
	buf.b.Append(fragment{s: s})
}

func (buf *buffer) String() string {
	return buf.b.Cord().String()
}
