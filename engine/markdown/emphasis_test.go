package markdown_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestUnderscoreEmphasis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "an _italic_ word\n\n")
	assert.Contains(t, html, "<em>italic</em>")
}

func TestUnderscoreInsideWordIsNotEmphasis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "snake_case_word\n\n")
	assert.NotContains(t, html, "<em>")
}

func TestStrikethrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "~~gone~~\n\n")
	assert.Contains(t, html, "<del>gone</del>")
}

func TestUnderline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "__two words__\n\n")
	assert.Contains(t, html, "<u>two words</u>")
	assert.NotContains(t, html, "<strong>")
}

func TestDoubleUnderscoreSingleWordIsUnderline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	// strong only matches the "**...**" form; a double-underscore span
	// always resolves to u, regardless of word count.
	html := render(t, "__underlined__\n\n")
	assert.Contains(t, html, "<u>underlined</u>")
	assert.NotContains(t, html, "<strong>")
}

func TestNestedEmphasisInsideStrong(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "**bold *and italic* text**\n\n")
	assert.Contains(t, html, "<strong>bold <em>and italic</em> text</strong>")
}
