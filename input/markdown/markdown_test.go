package markdown_test

import (
	"testing"

	"github.com/npillmayer/mdown/input/markdown"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestMarkdownToHTMLHeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.input.markdown")
	defer teardown()

	html, err := markdown.MarkdownToHTML("# Hello\n\n")
	assert.NoError(t, err)
	assert.Contains(t, html, "<h1>Hello</h1>")
}

func TestMarkdownToHTMLBlockTerminatedParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.input.markdown")
	defer teardown()

	html, err := markdown.MarkdownToHTML("hello *world*\n\n")
	assert.NoError(t, err)
	assert.Contains(t, html, "<p>hello <em>world</em></p>")
}

func TestDefaultImplicitParseFallsBackToInlineWithoutTrailingBlankLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.input.markdown")
	defer teardown()

	nodes, err := markdown.DefaultImplicitParse("hello *world*")
	assert.NoError(t, err)
	assert.NotEmpty(t, nodes)
	for _, n := range nodes {
		assert.NotEqual(t, "paragraph", n.Type)
	}
}

func TestDefaultBlockParseWrapsInParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.input.markdown")
	defer teardown()

	nodes, err := markdown.DefaultBlockParse("hello *world*")
	assert.NoError(t, err)
	if assert.Len(t, nodes, 1) {
		assert.Equal(t, "paragraph", nodes[0].Type)
	}
}
