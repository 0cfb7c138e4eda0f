/*
Package htmlutil implements the sanitization, escaping and preprocessing
utilities of spec.md §4.2, plus the HTML tag emitter of §4.3.

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
package htmlutil

import (
	"net/url"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// blockedSchemes are the URL scheme prefixes spec.md §4.2 rejects outright.
// Checked after decoding, character stripping and lowercasing.
var blockedSchemes = []string{"javascript:", "vbscript:", "data:"}

// urlCharset keeps only characters safe to appear in a bare URL for the
// scheme classification step; everything else is stripped before the
// blocked-scheme check.
const urlCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789/:"

// SanitizeURL implements spec.md §4.2's URL sanitizer: nil in, nil out;
// percent-decode; strip everything outside [A-Za-z0-9/:]; lowercase; and
// reject javascript:, vbscript: and data: schemes. On success it returns
// the ORIGINAL, unmodified href — the stripped/lowercased form is used
// only for classification.
func SanitizeURL(href *string) *string {
	if href == nil {
		return nil
	}
	decoded, err := url.QueryUnescape(*href)
	if err != nil {
		T().Debugf("htmlutil: SanitizeURL: cannot decode %q: %v", *href, err)
		return nil
	}
	var b strings.Builder
	for _, r := range decoded {
		if strings.ContainsRune(urlCharset, r) {
			b.WriteRune(r)
		}
	}
	classified := strings.ToLower(b.String())
	for _, scheme := range blockedSchemes {
		if strings.HasPrefix(classified, scheme) {
			T().Debugf("htmlutil: SanitizeURL: rejected scheme in %q", *href)
			return nil
		}
	}
	return href
}

// entityReplacements is the fixed character-entity table of spec.md §4.2.
// Order matters only in that '&' must not be re-escaped after other
// entities are substituted — building the result rune-by-rune avoids that
// pitfall entirely.
var entityReplacements = map[rune]string{
	'<':  "&lt;",
	'>':  "&gt;",
	'&':  "&amp;",
	'"':  "&quot;",
	'\'': "&#x27;",
	'/':  "&#x2F;",
	'`':  "&#96;",
}

// SanitizeText is the HTML text escaper of spec.md §4.2: total on the
// seven characters of entityReplacements, a no-op elsewhere.
func SanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if rep, ok := entityReplacements[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// UnescapeURLBackslashes is the URL backslash-unescaper of spec.md §4.2:
// for each \X where X is not alphanumeric and not whitespace, emit just X.
func UnescapeURLBackslashes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && isEscapableURLRune(runes[i+1]) {
			b.WriteRune(runes[i+1])
			i++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isEscapableURLRune(r rune) bool {
	if r >= '0' && r <= '9' {
		return false
	}
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return false
	}
	if isSpace(r) {
		return false
	}
	return true
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
