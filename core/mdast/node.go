/*
Package mdast defines the AST node type produced by the parser dispatcher
and consumed by the output dispatcher.

Nodes are plain value objects carrying a rule-name Type and a bag of
rule-specific properties, following the "Payload references itself" idiom
the teacher repo uses for its styled-tree nodes: a Node never needs a type
switch to find its own data, only to interpret someone else's.
*/
package mdast

// Node is a record with a non-empty string Type and rule-specific payload
// fields, stored in Props. Rules may retain a *Node and mutate it later —
// reference-link backpatching is the canonical case (see mdrule.RefPatchable).
type Node struct {
	Type  string
	Props map[string]interface{}
}

// New creates a Node of the given type with an empty property bag.
func New(typ string) *Node {
	return &Node{Type: typ, Props: make(map[string]interface{})}
}

// Get returns a property, or nil if unset.
func (n *Node) Get(key string) interface{} {
	if n == nil || n.Props == nil {
		return nil
	}
	return n.Props[key]
}

// Set stores a property and returns the node, for chained construction.
func (n *Node) Set(key string, value interface{}) *Node {
	if n.Props == nil {
		n.Props = make(map[string]interface{})
	}
	n.Props[key] = value
	return n
}

// String returns a property as a string, or "" if unset or not a string.
func (n *Node) String(key string) string {
	v, _ := n.Get(key).(string)
	return v
}

// Nodes returns a property as a []*Node, or nil.
func (n *Node) Nodes(key string) []*Node {
	v, _ := n.Get(key).([]*Node)
	return v
}

// Bool returns a property as a bool.
func (n *Node) Bool(key string) bool {
	v, _ := n.Get(key).(bool)
	return v
}

// ArrayChildren unwraps the []*Node an Array-rule OutputFunc receives; see
// dispatch.OutputFor's arrayCarrier.
func ArrayChildren(n *Node) []*Node {
	return n.Nodes("children")
}

// PatchRef implements mdrule.RefPatchable for link/image nodes produced by
// the reflink/refimage rules: it fills in Target/Title once a matching
// definition is found, before or after the reference itself was parsed.
func (n *Node) PatchRef(target, title string) {
	n.Set("target", target)
	n.Set("title", title)
}
