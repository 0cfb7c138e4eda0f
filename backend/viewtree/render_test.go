package viewtree_test

import (
	"testing"

	"github.com/npillmayer/mdown/backend/viewtree"
	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaultArrayRuleThreadsKeyAndRestoresIt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.viewtree")
	defer teardown()

	var seenKeys []string
	leaf := &mdrule.Rule{
		Name: "leaf",
		Output: map[string]mdrule.OutputFunc{
			viewtree.Property: func(n *mdast.Node, _ mdrule.OutputRecurse, state *mdrule.State) interface{} {
				seenKeys = append(seenKeys, state.Key)
				return map[string]interface{}{"key": state.Key, "type": n.Type}
			},
		},
	}
	rules := mdrule.Table{"leaf": leaf}
	render := viewtree.New(rules, mdrule.NewState())

	state := mdrule.NewState()
	state.Key = "outer"
	out := render([]*mdast.Node{mdast.New("leaf"), mdast.New("leaf"), mdast.New("leaf")}, state)

	views, ok := out.([]viewtree.View)
	assert.True(t, ok)
	assert.Len(t, views, 3)
	assert.Equal(t, []string{"0", "1", "2"}, seenKeys)
	assert.Equal(t, "outer", state.Key)
}
