package markdown

import "github.com/npillmayer/mdown/engine/htmlutil"

// htmlTag and htmlEscape keep the rule set's output functions from having
// to import engine/htmlutil directly in every file.
func htmlTag(name, content string, attrs map[string]interface{}, isClosed ...bool) string {
	return htmlutil.Tag(name, content, attrs, isClosed...)
}

func htmlEscape(s string) string {
	return htmlutil.SanitizeText(s)
}

func sanitizeHref(href string) string {
	u := htmlutil.SanitizeURL(&href)
	if u == nil {
		return ""
	}
	return *u
}

func unescapeURLBackslashes(s string) string {
	return htmlutil.UnescapeURLBackslashes(s)
}
