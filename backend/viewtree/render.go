/*
Package viewtree provides the default tree/component output backend: the
"Array" join rule of spec.md §4.5 for output properties that produce a
sequence of view objects (e.g. "vue") instead of a concatenated string.

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
package viewtree

import (
	"strconv"

	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
	"github.com/npillmayer/mdown/engine/dispatch"
)

// View is an opaque artifact produced by a component-framework's output
// functions; the engine never looks inside it (spec.md §1's "opaque
// output(node, state) callback").
type View interface{}

// Property is the output property name viewtree renders by default. A
// rule table targeting a different component framework can still reuse
// DefaultArrayRule under a different property key.
const Property = "vue"

// DefaultArrayRule is the tree-output "Array" join rule of spec.md §4.5:
// it folds consecutive text nodes the same way the html backend does, then
// emits a sequence of views, threading a stable per-child state.Key
// ("0", "1", ...) and restoring the caller's prior Key on exit.
func DefaultArrayRule() *mdrule.Rule {
	return &mdrule.Rule{
		Name: "Array",
		Output: map[string]mdrule.OutputFunc{
			Property: arrayOutputTree,
		},
	}
}

func arrayOutputTree(node *mdast.Node, recurse mdrule.OutputRecurse, state *mdrule.State) interface{} {
	children := mdast.ArrayChildren(node)
	folded := foldText(children)

	prevKey := state.Key
	defer func() { state.Key = prevKey }()

	views := make([]View, 0, len(folded))
	for i, child := range folded {
		state.Key = strconv.Itoa(i)
		views = append(views, recurse(child, state))
	}
	return views
}

func foldText(nodes []*mdast.Node) []*mdast.Node {
	if len(nodes) == 0 {
		return nodes
	}
	out := make([]*mdast.Node, 0, len(nodes))
	var run []string
	flush := func() {
		if len(run) == 0 {
			return
		}
		content := ""
		for _, s := range run {
			content += s
		}
		out = append(out, mdast.New("text").Set("content", content))
		run = nil
	}
	for _, n := range nodes {
		if n.Type == "text" {
			run = append(run, n.String("content"))
			continue
		}
		flush()
		out = append(out, n)
	}
	flush()
	return out
}

// New builds a Render closure for the tree-output property, using
// DefaultArrayRule unless rules already defines its own "Array" entry.
func New(rules mdrule.Table, defaults *mdrule.State) dispatch.Render {
	return dispatch.OutputFor(rules, Property, DefaultArrayRule(), defaults)
}
