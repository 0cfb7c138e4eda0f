/*
Package markdown is the top-level convenience entry point: wire the default
rule set into a parser and an HTML renderer, and run source through both.
Most callers who don't need to override or add rules only need this
package.

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
package markdown

import (
	"regexp"

	"github.com/npillmayer/mdown/backend/htmlrender"
	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
	"github.com/npillmayer/mdown/engine/dispatch"
	mdmark "github.com/npillmayer/mdown/engine/markdown"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

var defaultRules = mdmark.DefaultRules()

var defaultParse = dispatch.ParserFor(defaultRules, mdrule.NewState())
var defaultRender = htmlrender.New(defaultRules, mdrule.NewState())

// trailingBlankLineRe decides implicit scope per spec.md §6: source that
// ends in a blank line is block-terminated, hence block scope; anything
// else is parsed as inline content only.
var trailingBlankLineRe = regexp.MustCompile(`\n{2,}$`)

// MarkdownToHTML parses source with the default rule set and renders it to
// an HTML string in one call.
func MarkdownToHTML(source string) (string, error) {
	nodes, err := DefaultImplicitParse(source)
	if err != nil {
		return "", err
	}
	out := defaultRender(nodes, nil)
	s, _ := out.(string)
	return s, nil
}

// DefaultBlockParse parses source under block scope with the default rule
// set.
func DefaultBlockParse(source string) ([]*mdast.Node, error) {
	return defaultParse(source, &mdrule.State{Inline: false})
}

// DefaultInlineParse parses source under inline scope with the default
// rule set.
func DefaultInlineParse(source string) ([]*mdast.Node, error) {
	return defaultParse(source, &mdrule.State{Inline: true})
}

// DefaultImplicitParse picks block or inline scope for source per spec.md
// §6: a source ending in a blank line is block-terminated and parsed under
// block scope; anything else is parsed as inline content only.
func DefaultImplicitParse(source string) ([]*mdast.Node, error) {
	if trailingBlankLineRe.MatchString(source) {
		return DefaultBlockParse(source)
	}
	return DefaultInlineParse(source)
}
