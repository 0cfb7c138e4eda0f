package markdown

import (
	"github.com/npillmayer/mdown/backend/viewtree"
	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
)

// genericViewOutput is the "vue" property's fallback OutputFunc, attached
// to every rule in DefaultRules that doesn't already declare one: it turns
// a node's Props bag into a plain map, recursing through any nested
// *mdast.Node/[]*mdast.Node value via the dispatcher the same way the
// "html" functions do, so a component-framework adapter can walk the
// result without knowing about mdast.Node at all.
func genericViewOutput(n *mdast.Node, recurse mdrule.OutputRecurse, state *mdrule.State) interface{} {
	view := map[string]interface{}{"type": n.Type}
	for k, v := range n.Props {
		switch x := v.(type) {
		case *mdast.Node:
			view[k] = recurse(x, state)
		case []*mdast.Node:
			view[k] = recurse(x, state)
		default:
			view[k] = x
		}
	}
	return view
}

// withGenericViewOutputs fills in a viewtree.Property OutputFunc for every
// rule in rules that doesn't already declare one.
func withGenericViewOutputs(rules mdrule.Table) mdrule.Table {
	for _, r := range rules {
		if r.Name == "Array" {
			continue
		}
		if r.Output == nil {
			r.Output = map[string]mdrule.OutputFunc{}
		}
		if r.Output[viewtree.Property] == nil {
			r.Output[viewtree.Property] = genericViewOutput
		}
	}
	return rules
}
