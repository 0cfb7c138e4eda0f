package markdown

import (
	"github.com/npillmayer/mdown/backend/htmlrender"
	"github.com/npillmayer/mdown/core/mdrule"
)

// DefaultRules assembles the complete Markdown grammar: every block and
// inline rule this package defines, plus the "Array" joiner rule the html
// renderer needs, keyed by rule name the way a caller who wants to
// override or extend one rule can find it (Table["strong"] = ...).
func DefaultRules() mdrule.Table {
	rules := mdrule.Table{
		"heading":    headingRule(),
		"lheading":   lheadingRule(),
		"hr":         hrRule(),
		"codeBlock":  codeBlockRule(),
		"fence":      fenceRule(),
		"blockQuote": blockQuoteRule(),
		"list":       listRule(),
		"def":        defRule(),
		"table":      tableRule(orderTable, tableRe, true),
		"nptable":    tableRule(orderNpTable, nptableRe, false),
		"newline":    newlineRule(),
		"paragraph":  paragraphRule(),

		"escape":         escapeRule(),
		"tableSeparator": tableSeparatorRule(),
		"autolink":       autolinkRule(),
		"mailto":         mailtoRule(),
		"url":            urlRule(),
		"link":           linkRule(),
		"image":          imageRule(),
		"reflink":        reflinkRule(),
		"refimage":       refimageRule(),
		"em":             emRule(),
		"strong":         strongRule(),
		"u":              underlineRule(),
		"del":            delRule(),
		"inlineCode":     inlineCodeRule(),
		"br":             brRule(),
		"text":           textRule(),
	}
	rules["Array"] = htmlrender.DefaultArrayRule()
	return withGenericViewOutputs(rules)
}
