package markdown

import (
	"regexp"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
	"github.com/npillmayer/mdown/core/option"
)

// Alignment is an option.Type for a table column's alignment, matched via
// option.Of the way the teacher's core/option package intends: matching is
// decoupled from what happens on a match.
type Alignment struct{ v string }

var (
	AlignNone   = Alignment{}
	AlignLeft   = Alignment{"left"}
	AlignCenter = Alignment{"center"}
	AlignRight  = Alignment{"right"}
)

func (a Alignment) Match(choices interface{}) (interface{}, error) { return option.Match(a, choices) }
func (a Alignment) Equals(other interface{}) bool {
	o, ok := other.(Alignment)
	return ok && o.v == a.v
}
func (a Alignment) IsNone() bool { return a.v == "" }

var _ option.Type = Alignment{}

var (
	alignRightRe  = regexp.MustCompile(`^ *-+: *$`)
	alignCenterRe = regexp.MustCompile(`^ *:-+: *$`)
	alignLeftRe   = regexp.MustCompile(`^ *:-+ *$`)
)

func classifyAlignment(cell string) Alignment {
	switch {
	case alignCenterRe.MatchString(cell):
		return AlignCenter
	case alignRightRe.MatchString(cell):
		return AlignRight
	case alignLeftRe.MatchString(cell):
		return AlignLeft
	default:
		return AlignNone
	}
}

// alignStyle builds the "text-align" declaration douceur emits for an
// aligned column; unaligned columns get no style attribute at all.
func alignStyle(a Alignment) string {
	value, _ := a.Match(option.Of{
		AlignLeft:   "left",
		AlignCenter: "center",
		AlignRight:  "right",
		option.None: "",
	})
	s, _ := value.(string)
	if s == "" {
		return ""
	}
	decl := &css.Declaration{Property: "text-align", Value: s}
	return decl.String()
}

// tableRe matches a pipe table: a header row, an alignment row, and the
// body rows that follow, each a line beginning with a pipe (there may be
// none).
var tableRe = regexp.MustCompile(`^ *\|?(.+)\|? *\n *\|?( *[-:]+[-| :]*)\|? *\n((?: *\|.*(?:\n|$))*)\n*`)

// nptableRe is the same shape without requiring leading/trailing pipes.
var nptableRe = regexp.MustCompile(`^ *(\S.*\|.*)\n *([-:]+ *\|[-| :]*)\n((?:.*\|.*(?:\n|$))*)\n*`)

func tableRule(order float64, re *regexp.Regexp, trimEndSeparators bool) *mdrule.Rule {
	return &mdrule.Rule{
		Order: order,
		Match: mdrule.BlockRegex(re),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			return parseTable(c, parse, state, trimEndSeparators)
		},
		Output: map[string]mdrule.OutputFunc{
			"html": tableHTML,
		},
	}
}

func parseTable(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State, trimEndSeparators bool) *mdast.Node {
	headerLine := c.Group(1)
	alignLine := c.Group(2)
	bodyBlock := c.Group(3)

	if trimEndSeparators {
		headerLine = trimEndPipes(headerLine)
		alignLine = trimEndPipes(alignLine)
	}

	aligns := make([]Alignment, 0)
	for _, cell := range strings.Split(alignLine, "|") {
		aligns = append(aligns, classifyAlignment(cell))
	}

	savedInline, savedInTable := state.Inline, state.InTable
	state.Inline = true
	state.InTable = true
	defer func() {
		state.Inline = savedInline
		state.InTable = savedInTable
	}()

	header := parseTableRow(headerLine, parse, state, trimEndSeparators)

	var rows [][]*mdast.Node
	for _, line := range strings.Split(strings.TrimRight(bodyBlock, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := parseTableRow(line, parse, state, trimEndSeparators)
		rows = append(rows, row)
	}
	state.InTable = savedInTable
	state.Inline = savedInline

	return mdast.New("table").
		Set("align", aligns).
		Set("header", header).
		Set("rows", rows)
}

// parseTableRow parses one physical line as inline content (so
// tableSeparator becomes active), splits the resulting node stream on
// tableSeparator nodes, trims a leading/trailing empty cell when
// trimEndSeparators is set, and trims trailing spaces off the text node
// immediately preceding each split point.
func parseTableRow(line string, parse mdrule.NestedParse, state *mdrule.State, trimEndSeparators bool) []*mdast.Node {
	if trimEndSeparators {
		line = trimEndPipes(line)
	}
	nodes := parse(strings.TrimSpace(line), state)

	var cells []*mdast.Node
	var current []*mdast.Node
	flush := func() {
		trimTrailingSpace(current)
		cells = append(cells, mdast.New("tableCell").Set("content", current))
		current = nil
	}
	for _, n := range nodes {
		if n.Type == "tableSeparator" {
			flush()
			continue
		}
		current = append(current, n)
	}
	flush()

	if trimEndSeparators {
		if len(cells) > 0 && isEmptyCell(cells[0]) {
			cells = cells[1:]
		}
		if len(cells) > 0 && isEmptyCell(cells[len(cells)-1]) {
			cells = cells[:len(cells)-1]
		}
	}
	return cells
}

func isEmptyCell(cell *mdast.Node) bool {
	content := cell.Nodes("content")
	if len(content) != 1 {
		return len(content) == 0
	}
	return content[0].Type == "text" && strings.TrimSpace(content[0].String("content")) == ""
}

func trimTrailingSpace(nodes []*mdast.Node) {
	if len(nodes) == 0 {
		return
	}
	last := nodes[len(nodes)-1]
	if last.Type == "text" {
		last.Set("content", strings.TrimRight(last.String("content"), " "))
	}
}

func trimEndPipes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	return strings.TrimSpace(s)
}

var tableSepRe = regexp.MustCompile(`^ *\| *`)

func tableSeparatorRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderTableSep,
		Match: mdrule.MatchFunc(func(source string, state *mdrule.State, _ string) mdrule.Capture {
			if !state.InTable {
				return nil
			}
			m := tableSepRe.FindString(source)
			if m == "" {
				return nil
			}
			return mdrule.Capture{m}
		}),
		Parse: ignoreCapture,
		Output: map[string]mdrule.OutputFunc{
			"html": func(*mdast.Node, mdrule.OutputRecurse, *mdrule.State) interface{} { return "" },
		},
	}
}

func tableHTML(n *mdast.Node, recurse mdrule.OutputRecurse, state *mdrule.State) interface{} {
	aligns, _ := n.Get("align").([]Alignment)
	header, _ := n.Get("header").([]*mdast.Node)
	rows, _ := n.Get("rows").([][]*mdast.Node)

	renderRow := func(cells []*mdast.Node, cellTag string) string {
		var b strings.Builder
		for i, cell := range cells {
			attrs := map[string]interface{}{}
			if i < len(aligns) {
				if s := alignStyle(aligns[i]); s != "" {
					attrs["style"] = s
				}
			}
			inner, _ := recurse(cell.Nodes("content"), state).(string)
			b.WriteString(htmlTag(cellTag, inner, attrs))
		}
		return b.String()
	}

	thead := htmlTag("thead", htmlTag("tr", renderRow(header, "th"), nil), nil)
	var tbody strings.Builder
	for _, row := range rows {
		tbody.WriteString(htmlTag("tr", renderRow(row, "td"), nil))
	}
	return htmlTag("table", thead+htmlTag("tbody", tbody.String(), nil), nil)
}
