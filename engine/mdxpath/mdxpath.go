/*
Package mdxpath adapts antchfx/xpath to walk an AST produced by
engine/dispatch instead of an HTML document, so callers can select nodes
with an XPath expression ("//link[@target]", "//heading[@level=1]") the
same way the teacher's dom.refact/styledtree/xpathadapter lets XPath walk
a styled HTML tree.

Node.Props is a flat property bag with no parent/sibling pointers, so
NewNavigator first materializes an explicit tree over it: every *mdast.Node
or []*mdast.Node property value found while descending becomes a child
element, and every other property value becomes an attribute string. This
mirrors the teacher's own separation of concerns — the adapter walks a
concrete tree, it doesn't know anything about how that tree was built.

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
package mdxpath

import (
	"fmt"
	"sort"
	"strings"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

type attr struct {
	key, val string
}

// elem is the explicit tree node mdast.Node lacks on its own.
type elem struct {
	ast      *mdast.Node
	parent   *elem
	children []*elem
	attrs    []attr
	text     string // non-empty only for synthetic text leaves
}

// Build walks node's Props recursively and returns the tree root, ready to
// hand to NewNavigator.
func Build(node *mdast.Node) *elem {
	return build(node, nil)
}

func build(node *mdast.Node, parent *elem) *elem {
	e := &elem{ast: node, parent: parent}
	if node == nil {
		return e
	}
	keys := make([]string, 0, len(node.Props))
	for k := range node.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic attribute/child order
	for _, k := range keys {
		v := node.Props[k]
		switch x := v.(type) {
		case *mdast.Node:
			child := build(x, e)
			e.children = append(e.children, child)
		case []*mdast.Node:
			for _, c := range x {
				e.children = append(e.children, build(c, e))
			}
		default:
			e.attrs = append(e.attrs, attr{key: k, val: fmt.Sprint(x)})
		}
	}
	if node.Type == "text" {
		e.text = node.String("content")
	}
	return e
}

// NodeNavigator implements xpath.NodeNavigator over an elem tree.
type NodeNavigator struct {
	root, current *elem
	attrIndex     int // -1 when positioned on the element itself
}

// NewNavigator builds a navigator rooted at node.
func NewNavigator(node *mdast.Node) *NodeNavigator {
	root := Build(node)
	return &NodeNavigator{root: root, current: root, attrIndex: -1}
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	if nav.attrIndex != -1 {
		return xpath.AttributeNode
	}
	if nav.current.text != "" || nav.current.ast == nil {
		return xpath.TextNode
	}
	if nav.current == nav.root {
		return xpath.RootNode
	}
	return xpath.ElementNode
}

func (nav *NodeNavigator) LocalName() string {
	if nav.attrIndex != -1 {
		return nav.current.attrs[nav.attrIndex].key
	}
	if nav.current.ast == nil {
		return ""
	}
	return nav.current.ast.Type
}

func (*NodeNavigator) Prefix() string { return "" }

func (*NodeNavigator) NamespaceURL() string { return "" }

func (nav *NodeNavigator) Value() string {
	if nav.attrIndex != -1 {
		return nav.current.attrs[nav.attrIndex].val
	}
	if nav.current.text != "" {
		return nav.current.text
	}
	return innerText(nav.current)
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nav.root
	nav.attrIndex = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attrIndex != -1 {
		nav.attrIndex = -1
		return true
	}
	if nav.current.parent == nil {
		return false
	}
	nav.current = nav.current.parent
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.attrIndex+1 >= len(nav.current.attrs) {
		return false
	}
	nav.attrIndex++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attrIndex != -1 || len(nav.current.children) == 0 {
		return false
	}
	nav.current = nav.current.children[0]
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attrIndex != -1 || nav.current.parent == nil {
		return false
	}
	if len(nav.current.parent.children) == 0 {
		return false
	}
	nav.current = nav.current.parent.children[0]
	return true
}

func (nav *NodeNavigator) MoveToNext() bool {
	if nav.attrIndex != -1 || nav.current.parent == nil {
		return false
	}
	i := childIndex(nav.current)
	siblings := nav.current.parent.children
	if i < 0 || i+1 >= len(siblings) {
		return false
	}
	nav.current = siblings[i+1]
	return true
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.attrIndex != -1 || nav.current.parent == nil {
		return false
	}
	i := childIndex(nav.current)
	if i <= 0 {
		return false
	}
	nav.current = nav.current.parent.children[i-1]
	return true
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attrIndex = n.attrIndex
	return true
}

func (nav *NodeNavigator) String() string { return nav.Value() }

var _ xpath.NodeNavigator = &NodeNavigator{}

func childIndex(e *elem) int {
	for i, c := range e.parent.children {
		if c == e {
			return i
		}
	}
	return -1
}

func innerText(e *elem) string {
	if e.text != "" {
		return e.text
	}
	var b strings.Builder
	for _, c := range e.children {
		b.WriteString(innerText(c))
	}
	return b.String()
}
