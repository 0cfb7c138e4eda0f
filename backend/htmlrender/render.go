package htmlrender

import (
	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
	"github.com/npillmayer/mdown/engine/dispatch"
)

// DefaultArrayRule is the "Array" join rule spec.md §4.5 falls back to for
// the "html" property when a rule table doesn't override it: it walks
// siblings, folding consecutive text-type nodes into a single logical text
// node before delegating, then concatenates the rendered fragments.
func DefaultArrayRule() *mdrule.Rule {
	return &mdrule.Rule{
		Name: "Array",
		Output: map[string]mdrule.OutputFunc{
			"html": arrayOutputHTML,
		},
	}
}

func arrayOutputHTML(node *mdast.Node, recurse mdrule.OutputRecurse, state *mdrule.State) interface{} {
	children := mdast.ArrayChildren(node)
	folded := foldText(children)
	buf := newBuffer()
	for _, child := range folded {
		out := recurse(child, state)
		if s, ok := out.(string); ok {
			buf.writeString(s)
		}
	}
	return buf.String()
}

// foldText merges runs of consecutive "text" nodes into one, so a rule
// that emits several adjacent text fragments (e.g. escape + literal text)
// is seen by downstream text handling as a single maximal run. Idempotent:
// running it again on an already-folded slice is a no-op.
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

// New builds a Render closure for the "html" output property, using
// DefaultArrayRule unless rules already defines its own "Array" entry.
func New(rules mdrule.Table, defaults *mdrule.State) dispatch.Render {
	return dispatch.OutputFor(rules, "html", DefaultArrayRule(), defaults)
}
