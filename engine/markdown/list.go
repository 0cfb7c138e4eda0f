package markdown

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
	"github.com/npillmayer/mdown/core/option"
)

// bulletRe recognizes a single list-item bullet: "*", "+", "-" or "N.".
var bulletRe = regexp.MustCompile(`^ *(?:[*+-]|\d+\.) +`)

// listBodyRe consumes a run of list items; a bullet of any kind ("*", "+",
// "-" or "N.") continues the run. It is applied to
// source with the bullet's leading indentation re-prepended (see
// matchList), so nested lists keep their relative indent.
var listBodyRe = regexp.MustCompile(`(?s)^( *)([*+-]|\d+\.) [\s\S]+?(?:\n{2,}(?! )(?!\1(?:[*+-]|\d+\.) )|\s*$)`)

// itemStartRe finds the bullet lines of a matched list block;
// splitListItems starts a new item at each one whose indentation equals
// that of the block's first bullet.
var itemStartRe = regexp.MustCompile(`(?m)^ *(?:[*+-]|\d+\.) +`)

// startOfLineRe checks that state.PrevCapture ended at the start of a
// line, per spec.md §4.6's list lookbehind rule.
var startOfLineRe = regexp.MustCompile(`\n *$`)

// listRule implements spec.md §4.6's list sub-protocol: a custom Match
// that requires start-of-line lookbehind via state.PrevCapture, and a
// Parse that splits items, classifies tight/loose, and recurses per item
// under the appropriate scope.
func listRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderList,
		Match: mdrule.MatchFunc(matchList),
		Parse: parseList,
		Output: map[string]mdrule.OutputFunc{
			"html": listHTML,
		},
	}
}

func matchList(source string, state *mdrule.State, prevCaptureText string) mdrule.Capture {
	if state.Inline && !state.InList {
		return nil
	}
	startOfLine := prevCaptureText == "" || startOfLineRe.MatchString(prevCaptureText)
	if !startOfLine {
		return nil
	}
	// Re-prepend the leading indentation of the previous line so a nested
	// list under a nested bullet keeps its indentation reference; the
	// simplest sound approximation is the run of trailing spaces of
	// prevCaptureText itself.
	indent := ""
	if m := trailingSpacesRe.FindString(prevCaptureText); m != "" {
		indent = strings.TrimPrefix(m, "\n")
	}
	probe := indent + source
	loc := listBodyRe.FindStringSubmatchIndex(probe)
	if loc == nil || loc[0] != 0 {
		return nil
	}
	full := probe[loc[0]:loc[1]]
	// The capture must be reported relative to source, not the
	// indent-prepended probe string.
	full = strings.TrimPrefix(full, indent)
	if full == "" {
		return nil
	}
	return mdrule.Capture{full}
}

var trailingSpacesRe = regexp.MustCompile(`\n *$`)

func parseList(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
	block := c.Full()
	bulletMatch := bulletRe.FindString(block)
	bullet := strings.TrimSpace(bulletMatch)
	ordered := len(bullet) > 1 // "1." etc, vs "*"/"+"/"-"

	start := option.Int64()
	if ordered {
		n, _ := strconv.Atoi(strings.TrimSuffix(bullet, "."))
		start = option.SomeInt64(n)
	}

	itemStrs := splitListItems(block)

	savedInline, savedInList := state.Inline, state.InList
	state.InList = true
	defer func() {
		state.Inline = savedInline
		state.InList = savedInList
	}()

	var items [][]*mdast.Node
	prevWasParagraph := false
	for i, raw := range itemStrs {
		indent := leadingIndent(raw)
		body := unindent(raw, indent)
		body = bulletRe.ReplaceAllString(body, "")

		isLast := i == len(itemStrs)-1
		paragraph := strings.Contains(strings.TrimRight(body, "\n"), "\n\n") ||
			(isLast && prevWasParagraph)

		if paragraph {
			body = trailingWSRe.ReplaceAllString(body, "\n\n")
			state.Inline = false
			items = append(items, parse(body, state))
		} else {
			body = strings.TrimRight(body, " \t\n")
			state.Inline = true
			items = append(items, parse(body, state))
		}
		prevWasParagraph = paragraph
	}

	return mdast.New("list").
		Set("ordered", ordered).
		Set("start", start).
		Set("items", items)
}

var trailingWSRe = regexp.MustCompile(`\s*$`)

func splitListItems(block string) []string {
	idxs := itemStartRe.FindAllStringIndex(block, -1)
	if len(idxs) == 0 {
		return nil
	}
	base := -1
	var starts []int
	for _, loc := range idxs {
		m := block[loc[0]:loc[1]]
		n := len(m) - len(strings.TrimLeft(m, " "))
		if base < 0 {
			base = n
		}
		if n == base {
			starts = append(starts, loc[0])
		}
	}
	var out []string
	for i, s := range starts {
		end := len(block)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		out = append(out, block[s:end])
	}
	return out
}

var leadingIndentRe = regexp.MustCompile(`^ *(?:[*+-]|\d+\.) +`)

func leadingIndent(item string) int {
	m := leadingIndentRe.FindString(item)
	return len(m)
}

func unindent(item string, indent int) string {
	if indent <= 0 {
		return item
	}
	lines := strings.Split(item, "\n")
	pattern := regexp.MustCompile(`^ {1,` + strconv.Itoa(indent) + `}`)
	for i, l := range lines {
		if i == 0 {
			continue // the bullet+first line is stripped separately
		}
		lines[i] = pattern.ReplaceAllString(l, "")
	}
	return strings.Join(lines, "\n")
}

func listHTML(n *mdast.Node, recurse mdrule.OutputRecurse, state *mdrule.State) interface{} {
	ordered := n.Bool("ordered")
	items, _ := n.Get("items").([][]*mdast.Node)

	var b strings.Builder
	for _, item := range items {
		inner, _ := recurse(item, state).(string)
		b.WriteString(htmlTag("li", inner, nil))
	}

	tag := "ul"
	attrs := map[string]interface{}{}
	if ordered {
		tag = "ol"
		start, _ := n.Get("start").(option.Int64T)
		if !start.IsNone() && start.Unwrap() != 1 {
			attrs["start"] = strconv.FormatInt(start.Unwrap(), 10)
		}
	}
	return htmlTag(tag, b.String(), attrs)
}
