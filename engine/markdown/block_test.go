package markdown_test

import (
	"testing"

	"github.com/npillmayer/mdown/backend/htmlrender"
	"github.com/npillmayer/mdown/engine/dispatch"
	"github.com/npillmayer/mdown/engine/markdown"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func render(t *testing.T, source string) string {
	rules := markdown.DefaultRules()
	parse := dispatch.ParserFor(rules, nil)
	nodes, err := parse(source, nil)
	assert.NoError(t, err)
	out := htmlrender.New(rules, nil)(nodes, nil)
	s, ok := out.(string)
	assert.True(t, ok)
	return s
}

func TestHeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "# Hello\n\n")
	assert.Contains(t, html, "<h1>Hello</h1>")
}

func TestSetextHeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "Title\n=====\n\n")
	assert.Contains(t, html, "<h1>Title</h1>")
}

func TestParagraphAndEmphasis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "hello *world*\n\n")
	assert.Contains(t, html, "<p>hello <em>world</em></p>")
}

func TestStrongOutranksEmphasisAtSameOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "**bold**\n\n")
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.NotContains(t, html, "<em>*bold</em>")
}

func TestFencedCodeBlockWithLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "```go\nfmt.Println(1)\n```\n\n")
	assert.Contains(t, html, `class="markdown-code-go"`)
	assert.Contains(t, html, "fmt.Println(1)")
}

func TestBlockQuote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "> quoted line\n\n")
	assert.Contains(t, html, "<blockquote>")
	assert.Contains(t, html, "quoted line")
}

func TestHorizontalRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "---\n\n")
	assert.Contains(t, html, "<hr>")
}

func TestHTMLTextIsEscaped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "a < b & c\n\n")
	assert.Contains(t, html, "&lt;")
	assert.Contains(t, html, "&amp;")
}
