package markdown

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
)

var headingRe = regexp.MustCompile(`^ *(#{1,6})([^\n]+?)#* *(?:\n *)+\n`)

func headingRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderHeading,
		Match: mdrule.BlockRegex(headingRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			return mdast.New("heading").
				Set("level", len(c.Group(1))).
				Set("content", parseInline(parse, strings.TrimSpace(c.Group(2)), state))
		},
		Output: map[string]mdrule.OutputFunc{
			"html": headingHTML,
		},
	}
}

var hrRe = regexp.MustCompile(`^( *[-*_]){3,} *(?:\n *)+\n`)

func hrRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderHr,
		Match: mdrule.BlockRegex(hrRe),
		Parse: ignoreCapture,
		Output: map[string]mdrule.OutputFunc{
			"html": func(n *mdast.Node, _ mdrule.OutputRecurse, _ *mdrule.State) interface{} {
				return htmlTag("hr", "", nil, false)
			},
		},
	}
}

var codeBlockRe = regexp.MustCompile(`^(?:    [^\n]+\n*)+(?:\n *)+\n`)

func codeBlockRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderCodeBlock,
		Match: mdrule.BlockRegex(codeBlockRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			lines := strings.Split(c.Full(), "\n")
			var out []string
			for _, l := range lines {
				out = append(out, strings.TrimPrefix(l, "    "))
			}
			content := strings.TrimRight(strings.Join(out, "\n"), "\n")
			return mdast.New("codeBlock").Set("content", content)
		},
		Output: map[string]mdrule.OutputFunc{
			"html": codeBlockHTML,
		},
	}
}

var fenceRe = regexp.MustCompile("(?s)^ *(`{3,}|~{3,}) *(\\S+)? *\\n([\\s\\S]*?)\\n? *\\1 *(?:\\n+|$)")

func fenceRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderFence,
		Match: mdrule.BlockRegex(fenceRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			n := mdast.New("codeBlock").Set("content", c.Group(3))
			if lang := c.Group(2); lang != "" {
				n.Set("lang", lang)
			}
			return n
		},
		Output: map[string]mdrule.OutputFunc{
			"html": codeBlockHTML,
		},
	}
}

var blockQuoteRe = regexp.MustCompile(`^(?: *>[^\n]*(?:\n|$))+\n*`)
var blockQuoteStripRe = regexp.MustCompile(`(?m)^ *> ?`)

func blockQuoteRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderBlockQuote,
		Match: mdrule.BlockRegex(blockQuoteRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			stripped := blockQuoteStripRe.ReplaceAllString(c.Full(), "")
			return mdast.New("blockQuote").Set("content", parseBlock(parse, strings.TrimRight(stripped, "\n"), state))
		},
		Output: map[string]mdrule.OutputFunc{
			"html": func(n *mdast.Node, recurse mdrule.OutputRecurse, state *mdrule.State) interface{} {
				inner, _ := recurse(n.Nodes("content"), state).(string)
				return htmlTag("blockquote", inner, nil)
			},
		},
	}
}

var defRe = regexp.MustCompile(`^ *\[([^\]]+)\]: *<?([^\s>]+)>?(?: +"([^\n]*)")? *(?:\n+|$)`)

func defRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderDef,
		Match: mdrule.BlockRegex(defRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			key := canonicalizeRefKey(c.Group(1))
			if state.Defs == nil {
				state.Defs = make(map[string]*mdrule.RefDef)
			}
			def := &mdrule.RefDef{Target: c.Group(2), Title: c.Group(3)}
			state.Defs[key] = def
			for _, pending := range state.Refs[key] {
				pending.PatchRef(def.Target, def.Title)
			}
			return mdast.New("def").Set("ref", key).Set("target", def.Target).Set("title", def.Title)
		},
		Output: map[string]mdrule.OutputFunc{
			"html": func(*mdast.Node, mdrule.OutputRecurse, *mdrule.State) interface{} { return "" },
		},
	}
}

var newlineRe = regexp.MustCompile(`^(?: *\n)+`)

func newlineRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderNewline,
		Match: mdrule.BlockRegex(newlineRe),
		Parse: ignoreCapture,
		Output: map[string]mdrule.OutputFunc{
			"html": func(*mdast.Node, mdrule.OutputRecurse, *mdrule.State) interface{} { return "" },
		},
	}
}

var paragraphRe = regexp.MustCompile(`^((?:[^\n]|\n(?! *\n))+)(?:\n *)+\n`)

func paragraphRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderParagraph,
		Match: mdrule.BlockRegex(paragraphRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			return mdast.New("paragraph").Set("content", parseInline(parse, c.Group(1), state))
		},
		Output: map[string]mdrule.OutputFunc{
			"html": func(n *mdast.Node, recurse mdrule.OutputRecurse, state *mdrule.State) interface{} {
				inner, _ := recurse(n.Nodes("content"), state).(string)
				return htmlTag("p", inner, nil)
			},
		},
	}
}

var lheadingRe = regexp.MustCompile(`^([^\n]+)\n *(=|-){2,} *(?:\n *)+\n`)

func lheadingRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderLHeading,
		Match: mdrule.BlockRegex(lheadingRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			level := 2
			if c.Group(2) == "=" {
				level = 1
			}
			return mdast.New("heading").
				Set("level", level).
				Set("content", parseInline(parse, strings.TrimSpace(c.Group(1)), state))
		},
		Output: map[string]mdrule.OutputFunc{
			"html": headingHTML,
		},
	}
}

func headingHTML(n *mdast.Node, recurse mdrule.OutputRecurse, state *mdrule.State) interface{} {
	level, _ := n.Get("level").(int)
	if level < 1 || level > 6 {
		level = 1
	}
	inner, _ := recurse(n.Nodes("content"), state).(string)
	tag := "h" + strconv.Itoa(level)
	return htmlTag(tag, inner, nil)
}

func codeBlockHTML(n *mdast.Node, _ mdrule.OutputRecurse, _ *mdrule.State) interface{} {
	attrs := map[string]interface{}{}
	if lang := n.String("lang"); lang != "" {
		attrs["class"] = "markdown-code-" + lang
	}
	code := htmlTag("code", htmlEscape(n.String("content")), attrs)
	return htmlTag("pre", code, nil)
}
