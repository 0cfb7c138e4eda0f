package htmlutil

import (
	"sort"
	"strings"
)

// voidTags mirrors the set of HTML elements that never carry an end tag;
// Tag also accepts an explicit isClosed=false for callers that already
// know their tag is void.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Tag builds a well-formed HTML start/end tag per spec.md §4.3: attributes
// with falsy (zero) values are omitted, and both attribute name and value
// pass through SanitizeText. isClosed defaults to true; pass false (or use
// a tag name in voidTags) to emit only the opening tag.
func Tag(name, content string, attrs map[string]interface{}, isClosed ...bool) string {
	closed := !voidTags[name]
	if len(isClosed) > 0 {
		closed = isClosed[0]
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	writeAttrs(&b, attrs)
	b.WriteByte('>')
	if !closed {
		return b.String()
	}
	b.WriteString(content)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	return b.String()
}

func writeAttrs(b *strings.Builder, attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}
	names := make([]string, 0, len(attrs))
	for k := range attrs {
		names = append(names, k)
	}
	sort.Strings(names) // deterministic output for tests and golden fixtures
	for _, name := range names {
		v := attrs[name]
		if isFalsy(v) {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(SanitizeText(name))
		b.WriteString(`="`)
		b.WriteString(SanitizeText(stringify(v)))
		b.WriteByte('"')
	}
}

func isFalsy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case *string:
		return x == nil || *x == ""
	}
	return false
}

func stringify(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	default:
		return ""
	}
}
