/*
Package html re-exports the HTML-side utilities a caller assembling their
own rule table typically needs (URL/text sanitization, tag emission) plus
a small CSS-selector query helper over rendered HTML, built on the same
two packages the teacher module's go.mod already named for this job:

	github.com/andybalholm/cascadia
	golang.org/x/net/html

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
package html

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/mdown/engine/htmlutil"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// SanitizeURL re-exports htmlutil.SanitizeURL for callers who assemble
// their own rule table's Output functions outside engine/markdown.
func SanitizeURL(href *string) *string {
	return htmlutil.SanitizeURL(href)
}

// SanitizeText re-exports htmlutil.SanitizeText.
func SanitizeText(s string) string {
	return htmlutil.SanitizeText(s)
}

// Tag re-exports htmlutil.Tag.
func Tag(name, content string, attrs map[string]interface{}, isClosed ...bool) string {
	return htmlutil.Tag(name, content, attrs, isClosed...)
}

// Select parses rendered HTML fragment and returns every element node
// matching the given CSS selector — used by tests asserting on rendered
// structure (table alignment, list nesting, link attributes) without
// string-matching the markup directly.
func Select(fragment, selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(strings.NewReader("<html><body>" + fragment + "</body></html>"))
	if err != nil {
		return nil, err
	}
	return sel.MatchAll(doc), nil
}

// Attr returns the value of attribute name on n, or "" if absent.
func Attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// Text returns the concatenated text content of n and its descendants.
func Text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(Text(c))
	}
	return b.String()
}
