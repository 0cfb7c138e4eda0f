package dispatch

import (
	"fmt"

	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
)

// Render is the function returned by OutputFor: it renders a parsed
// top-level node list (or a single node) to whatever artifact type the
// rule table's output functions for property produce.
type Render func(v interface{}, state *mdrule.State) interface{}

// OutputFor builds a recursive renderer over rules for the named output
// property (e.g. "html"), per spec.md §4.5. defaultArray is used when the
// table has no "Array" entry for property — backend packages
// (htmlrender, viewtree) each supply their own, since string
// concatenation and a keyed artifact sequence are different defaults for
// the same dispatcher.
func OutputFor(rules mdrule.Table, property string, defaultArray *mdrule.Rule, defaults *mdrule.State) Render {
	arrayRule := rules["Array"]
	if arrayRule == nil || arrayRule.Output[property] == nil {
		arrayRule = defaultArray
	}

	var recurse mdrule.OutputRecurse
	recurse = func(v interface{}, state *mdrule.State) interface{} {
		switch x := v.(type) {
		case nil:
			return nil
		case *mdast.Node:
			rule, ok := rules[x.Type]
			if !ok || rule.Output[property] == nil {
				T().Errorf("dispatch: no %q output for node type %q", property, x.Type)
				return nil
			}
			return rule.Output[property](x, recurse, state)
		case []*mdast.Node:
			if arrayRule == nil || arrayRule.Output[property] == nil {
				panic(fmt.Sprintf("dispatch: missing Array joiner for output property %q", property))
			}
			return arrayRule.Output[property](arrayCarrier(x), recurse, state)
		default:
			panic(fmt.Sprintf("dispatch: OutputFor: unexpected value type %T", v))
		}
	}

	return func(v interface{}, state *mdrule.State) interface{} {
		if state == nil {
			state = defaults
		}
		if state == nil {
			state = mdrule.NewState()
		}
		return recurse(v, state)
	}
}

// arrayCarrier lets a []*mdast.Node ride through the same *mdast.Node
// shaped OutputFunc signature the Array rule's Output map uses: its Props
// holds the slice under "children", and callers unwrap it with
// mdast.ArrayChildren.
func arrayCarrier(nodes []*mdast.Node) *mdast.Node {
	return mdast.New("Array").Set("children", nodes)
}
