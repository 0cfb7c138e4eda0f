package markdown

// Rule precedence, per spec.md §4.6, listed highest-precedence (lowest
// number) first, as one global ascending list. Block-only and inline-only
// rules never compete directly, since their Matchers are scope-gated; the
// escape, autolink, mailto, url, link, image, reflink, refimage,
// inlineCode, br and text rules match in either scope, so under block
// scope they are tried after every block rule.
const (
	orderHeading    = 10
	orderNpTable    = 20
	orderLHeading   = 30
	orderHr         = 40
	orderCodeBlock  = 50
	orderFence      = 60
	orderBlockQuote = 70
	orderList       = 80
	orderDef        = 90
	orderTable      = 100
	orderNewline    = 110
	orderParagraph  = 120

	orderEscape        = 130
	orderTableSep      = 140
	orderAutolink      = 150
	orderMailto        = 160
	orderURL           = 170
	orderLink          = 180
	orderImage         = 190
	orderRefLink       = 200
	orderRefImage      = 210
	orderEmphasisGroup = 220 // em, strong, u share this order and compete by quality
	orderDel           = 230
	orderInlineCode    = 240
	orderBr            = 250
	orderText          = 260 // fallback: must match any non-empty source
)
