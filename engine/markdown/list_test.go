package markdown_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestUnorderedList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "* one\n* two\n* three\n\n")
	assert.Contains(t, html, "<ul>")
	assert.Contains(t, html, "<li>one</li>")
	assert.Contains(t, html, "<li>two</li>")
	assert.Contains(t, html, "<li>three</li>")
}

func TestOrderedListWithStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "3. three\n4. four\n\n")
	assert.Contains(t, html, `<ol start="3">`)
	assert.Contains(t, html, "<li>three</li>")
}

func TestOrderedListDefaultStartOmitsAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	html := render(t, "1. one\n2. two\n\n")
	assert.Contains(t, html, "<ol>")
	assert.NotContains(t, html, "start=")
}
