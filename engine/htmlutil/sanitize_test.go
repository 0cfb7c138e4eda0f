package htmlutil_test

import (
	"testing"

	"github.com/npillmayer/mdown/engine/htmlutil"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeURLRejectsJavascript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.htmlutil")
	defer teardown()

	href := "javascript:alert(1)"
	assert.Nil(t, htmlutil.SanitizeURL(&href))
}

func TestSanitizeURLAcceptsHTTP(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.htmlutil")
	defer teardown()

	href := "https://example.com/a/b"
	got := htmlutil.SanitizeURL(&href)
	if assert.NotNil(t, got) {
		assert.Equal(t, href, *got)
	}
}

func TestSanitizeURLNil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.htmlutil")
	defer teardown()

	assert.Nil(t, htmlutil.SanitizeURL(nil))
}

func TestSanitizeTextEscapesFixedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.htmlutil")
	defer teardown()

	got := htmlutil.SanitizeText(`<a href="x">'/'` + "`")
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;&#x27;&#x2F;&#x27;&#96;", got)
}

func TestUnescapeURLBackslashes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.htmlutil")
	defer teardown()

	assert.Equal(t, "a(b)c", htmlutil.UnescapeURLBackslashes(`a\(b\)c`))
	assert.Equal(t, `a\1c`, htmlutil.UnescapeURLBackslashes(`a\1c`))
}

func TestPreprocessNormalizesNewlinesAndTabs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.htmlutil")
	defer teardown()

	got := htmlutil.Preprocess("a\r\nb\rc\td")
	assert.Equal(t, "a\nb\nc    d", got)
}

func TestTagVoidElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.htmlutil")
	defer teardown()

	assert.Equal(t, "<br>", htmlutil.Tag("br", "", nil))
}

func TestTagOmitsFalsyAttrs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.htmlutil")
	defer teardown()

	got := htmlutil.Tag("a", "x", map[string]interface{}{"href": "y", "title": ""})
	assert.Equal(t, `<a href="y">x</a>`, got)
}
