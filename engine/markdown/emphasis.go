package markdown

import (
	"regexp"

	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
)

// The three emphasis-family rules (em, strong, u) share orderEmphasisGroup
// and compete by Quality, per spec.md §4.6: the dispatcher tries every rule
// at this order whose Match succeeds and keeps the one with the highest
// Quality. Quality is the match length plus a small bias, so the longer
// match wins, and on equal length em beats strong beats u. del has its own
// order and no Quality.
const (
	qualityBiasEm     = 0.2
	qualityBiasStrong = 0.1
	qualityBiasU      = 0.0
	qualityBiasDel    = 0.0
)

var starEmRe = regexp.MustCompile(`^\*(?:\\.|[^\s*]|\*\*[\s\S]+?\*\*)(?:\\.|[^\s*]|\s+(?:\\.|[^\s*]|\*\*[\s\S]+?\*\*)|\*\*[\s\S]+?\*\*)*?\*`)
var underscoreEmRe = regexp.MustCompile(`^_((?:\\.|[^\s_]|__[\s\S]+?__)+?)_`)

func emRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderEmphasisGroup,
		Match: mdrule.MatchFunc(matchEm),
		Quality: func(c mdrule.Capture, state *mdrule.State, prevCaptureText string) float64 {
			return float64(len(c.Full())) + qualityBiasEm
		},
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			return mdast.New("em").Set("content", parseInline(parse, emphasisBody(c.Full()), state))
		},
		Output: map[string]mdrule.OutputFunc{
			"html": wrapTagOutput("em"),
		},
	}
}

func matchEm(source string, state *mdrule.State, _ string) mdrule.Capture {
	if !state.Inline {
		return nil
	}
	if m := starEmRe.FindString(source); m != "" {
		return mdrule.Capture{m}
	}
	if loc := underscoreEmRe.FindStringSubmatchIndex(source); loc != nil {
		full := source[loc[0]:loc[1]]
		if isIntraword(source, loc[0], loc[1]) {
			return nil
		}
		return mdrule.Capture{full, source[loc[2]:loc[3]]}
	}
	return nil
}

var starStrongRe = regexp.MustCompile(`^\*\*(?:\\.|[^\\])+?\*\*`)

func strongRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderEmphasisGroup,
		Match: mdrule.MatchFunc(matchStrong),
		Quality: func(c mdrule.Capture, state *mdrule.State, prevCaptureText string) float64 {
			return float64(len(c.Full())) + qualityBiasStrong
		},
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			return mdast.New("strong").Set("content", parseInline(parse, strongBody(c.Full()), state))
		},
		Output: map[string]mdrule.OutputFunc{
			"html": wrapTagOutput("strong"),
		},
	}
}

func matchStrong(source string, state *mdrule.State, _ string) mdrule.Capture {
	if !state.Inline {
		return nil
	}
	if m := starStrongRe.FindString(source); m != "" {
		return mdrule.Capture{m}
	}
	return nil
}

var underlineRe = regexp.MustCompile(`^__((?:\\.|[^_])+?)__`)

func underlineRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderEmphasisGroup,
		Match: mdrule.MatchFunc(func(source string, state *mdrule.State, _ string) mdrule.Capture {
			if !state.Inline {
				return nil
			}
			loc := underlineRe.FindStringSubmatchIndex(source)
			if loc == nil {
				return nil
			}
			return mdrule.Capture{source[loc[0]:loc[1]], source[loc[2]:loc[3]]}
		}),
		Quality: func(c mdrule.Capture, state *mdrule.State, prevCaptureText string) float64 {
			return float64(len(c.Full())) + qualityBiasU
		},
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			return parseCaptureInline(c, parse, state)
		},
		Output: map[string]mdrule.OutputFunc{
			"html": wrapTagOutput("u"),
		},
	}
}

var delRe = regexp.MustCompile(`^~~(?=\S)((?:\\.|[^\\])*?\S)~~`)

func delRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderDel,
		Match: mdrule.InlineRegex(delRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			return parseCaptureInline(c, parse, state)
		},
		Output: map[string]mdrule.OutputFunc{
			"html": wrapTagOutput("del"),
		},
	}
}

func wrapTagOutput(tag string) mdrule.OutputFunc {
	return func(n *mdast.Node, recurse mdrule.OutputRecurse, state *mdrule.State) interface{} {
		inner, _ := recurse(n.Nodes("content"), state).(string)
		return htmlTag(tag, inner, nil)
	}
}

// emphasisBody strips the single leading/trailing "*" or "_" delimiter
// from a matched *…* / _..._ run.
func emphasisBody(full string) string {
	return full[1 : len(full)-1]
}

// strongBody strips the double leading/trailing "**" delimiter from a
// matched **…** run.
func strongBody(full string) string {
	return full[2 : len(full)-2]
}
