package markdown_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestInlineLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "[home](https://example.com \"Home\")\n\n")
	assert.Contains(t, html, `<a href="https:&#x2F;&#x2F;example.com" title="Home">home</a>`)
}

func TestImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "![alt text](https://example.com/x.png)\n\n")
	assert.Contains(t, html, `<img alt="alt text" src="https:&#x2F;&#x2F;example.com&#x2F;x.png">`)
}

func TestReferenceLinkResolvesForwardDefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "[home][ref]\n\n[ref]: https://example.com \"Home\"\n\n")
	assert.Contains(t, html, `href="https:&#x2F;&#x2F;example.com"`)
	assert.Contains(t, html, `title="Home"`)
}

func TestAutolink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "<https://example.com>\n\n")
	assert.Contains(t, html, `<a href="https:&#x2F;&#x2F;example.com">https:&#x2F;&#x2F;example.com</a>`)
}

func TestMailtoAutolink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "<jane@example.com>\n\n")
	assert.Contains(t, html, `href="mailto:jane@example.com"`)
}

func TestBareURLIsLinked(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "see https://example.com/path for details\n\n")
	assert.Contains(t, html, `<a href="https:&#x2F;&#x2F;example.com&#x2F;path">https:&#x2F;&#x2F;example.com&#x2F;path</a>`)
}

func TestInlineCode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "call `fmt.Println()` now\n\n")
	assert.Contains(t, html, "<code>fmt.Println()</code>")
}

func TestJavascriptHrefIsSanitized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "[click](javascript:alert(1))\n\n")
	assert.NotContains(t, html, "javascript:")
}
