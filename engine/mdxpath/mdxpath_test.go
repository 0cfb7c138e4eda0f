package mdxpath_test

import (
	"testing"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
	"github.com/npillmayer/mdown/engine/dispatch"
	"github.com/npillmayer/mdown/engine/markdown"
	"github.com/npillmayer/mdown/engine/mdxpath"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func inlineState() *mdrule.State {
	return &mdrule.State{Inline: true}
}

func parseSample(t *testing.T) []*mdast.Node {
	rules := markdown.DefaultRules()
	parse := dispatch.ParserFor(rules, nil)
	nodes, err := parse("hello *world* and [text](http://example.com)", inlineState())
	assert.NoError(t, err)
	return nodes
}

func TestXPathSelectsElementByName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.mdxpath")
	defer teardown()

	root := mdast.New("root").Set("children", parseSample(t))
	nav := mdxpath.NewNavigator(root)

	expr, err := xpath.Compile("//em")
	assert.NoError(t, err)
	iter := expr.Select(nav)
	assert.True(t, iter.MoveNext())
	assert.Equal(t, "em", iter.Current().LocalName())
	assert.False(t, iter.MoveNext())
}

func TestXPathSelectsAttributeValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.mdxpath")
	defer teardown()

	root := mdast.New("root").Set("children", parseSample(t))
	nav := mdxpath.NewNavigator(root)

	expr, err := xpath.Compile("//link/@target")
	assert.NoError(t, err)
	iter := expr.Select(nav)
	assert.True(t, iter.MoveNext())
	assert.Equal(t, "http://example.com", iter.Current().Value())
}
