package markdown_test

import (
	"testing"

	"github.com/npillmayer/mdown/input/html"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPipeTableWithAlignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	source := "| Left | Center | Right |\n| :--- | :---: | ---: |\n| a | b | c |\n\n"
	got := render(t, source)

	assert.Contains(t, got, "<table>")
	assert.Contains(t, got, "<thead>")

	cells, err := html.Select(got, "td")
	assert.NoError(t, err)
	if assert.Len(t, cells, 3) {
		assert.Equal(t, "a", html.Text(cells[0]))
		assert.Equal(t, "b", html.Text(cells[1]))
		assert.Equal(t, "c", html.Text(cells[2]))
		assert.Contains(t, html.Attr(cells[1], "style"), "center")
		assert.Contains(t, html.Attr(cells[2], "style"), "right")
	}
}

func TestNpTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.markdown")
	defer teardown()

	source := "Header 1|Header 2\n--------|--------\n Cell 1 | Cell 2\n\n"
	got := render(t, source)

	ths, err := html.Select(got, "th")
	assert.NoError(t, err)
	if assert.Len(t, ths, 2) {
		assert.Equal(t, "Header 1", html.Text(ths[0]))
		assert.Equal(t, "Header 2", html.Text(ths[1]))
	}
}
