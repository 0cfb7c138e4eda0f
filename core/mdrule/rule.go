/*
Package mdrule defines the rule/state/capture protocol shared by the
parser and output dispatchers.

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
package mdrule

import (
	"math"

	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Matcher probes the prefix of source for a rule. It returns nil if the
// rule does not match at position 0. prevCaptureText is the full text of
// the previous successful capture, or the empty string at the start of a
// parse.
//
// Regex-backed matchers (see InlineRegex/BlockRegex/AnyScopeRegex) are
// RegexMatcher values whose Regex field exposes the underlying pattern for
// introspection; a hand-written matcher (the list and tableSeparator
// rules) has no such field.
type Matcher interface {
	Match(source string, state *State, prevCaptureText string) Capture
}

// MatchFunc adapts a plain function to Matcher, for rules whose match
// logic isn't regex-backed (list, tableSeparator).
type MatchFunc func(source string, state *State, prevCaptureText string) Capture

// Match implements Matcher.
func (f MatchFunc) Match(source string, state *State, prevCaptureText string) Capture {
	return f(source, state, prevCaptureText)
}

// QualityFunc breaks ties among rules sharing the same Order. Higher wins.
type QualityFunc func(capture Capture, state *State, prevCaptureText string) float64

// ParseFunc consumes a capture, possibly recursing into nested source via
// parse, and produces a node (or a slice of nodes, for rules that expand
// into siblings, e.g. list items).
type ParseFunc func(capture Capture, parse NestedParse, state *State) interface{}

// NestedParse is the signature the dispatcher hands to a rule's ParseFunc
// so it can recurse into a sub-string under the current State.
type NestedParse func(source string, state *State) []*mdast.Node

// OutputFunc renders a single node. recurse renders a node or a []*mdast.Node
// (dispatched through the Array rule). A nil OutputFunc means the rule
// declines to render under this property — its Parse must have rewritten
// the node to another Type.
type OutputFunc func(node *mdast.Node, recurse OutputRecurse, state *State) interface{}

// OutputRecurse renders an arbitrary sub-value: a *mdast.Node, a
// []*mdast.Node, or nil.
type OutputRecurse func(v interface{}, state *State) interface{}

// Rule is one entry of a rule table, keyed by rule name in Table.
type Rule struct {
	Name    string
	Order   float64
	Match   Matcher
	Quality QualityFunc
	Parse   ParseFunc

	// Output holds one render function per output property name
	// (e.g. "html", "vue"). A missing or nil entry means this rule
	// declines to render for that property.
	Output map[string]OutputFunc
}

// HasQuality reports whether the rule declares a tiebreak function.
func (r *Rule) HasQuality() bool {
	return r != nil && r.Quality != nil
}

// HasFiniteOrder reports whether Order is usable for sorting. Rules with a
// non-finite Order are still included in a Table (a warning is logged at
// construction, see dispatch.SortRules) but sort after every finite-order
// rule.
func (r *Rule) HasFiniteOrder() bool {
	return !math.IsInf(r.Order, 0) && !math.IsNaN(r.Order)
}

// Table is a rule table keyed by rule name — the extension point of the
// whole engine. Callers build one by copying markdown.DefaultRules() and
// overriding or adding entries.
type Table map[string]*Rule
