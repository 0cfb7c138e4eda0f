package markdown

import (
	"regexp"

	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
)

// escapeRe matches a backslash-escaped punctuation character; the escaped
// character itself is emitted verbatim, unparsed.
var escapeRe = regexp.MustCompile(`^\\([!"#$%&'()*+,\-./:;<=>?@\[\]\\^_` + "`" + `{|}~])`)

func escapeRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderEscape,
		Match: mdrule.AnyScopeRegex(escapeRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			return mdast.New("text").Set("content", c.Group(1))
		},
		Output: map[string]mdrule.OutputFunc{
			"html": func(n *mdast.Node, _ mdrule.OutputRecurse, _ *mdrule.State) interface{} {
				return htmlEscape(n.String("content"))
			},
		},
	}
}

var autolinkRe = regexp.MustCompile(`^<([a-zA-Z][a-zA-Z0-9+.\-]{1,31}:[^\s<>]*)>`)

func autolinkRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderAutolink,
		Match: mdrule.AnyScopeRegex(autolinkRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			return mdast.New("link").Set("target", c.Group(1)).Set("text", c.Group(1))
		},
		Output: map[string]mdrule.OutputFunc{
			"html": linkHTML,
		},
	}
}

var mailtoRe = regexp.MustCompile(`^<([a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?)+)>`)

func mailtoRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderMailto,
		Match: mdrule.AnyScopeRegex(mailtoRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			return mdast.New("link").Set("target", "mailto:"+c.Group(1)).Set("text", c.Group(1))
		},
		Output: map[string]mdrule.OutputFunc{
			"html": linkHTML,
		},
	}
}

var urlRe = regexp.MustCompile(`^(https?://[^\s<]+[^<.,:;"'\]\s])`)

func urlRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderURL,
		Match: mdrule.AnyScopeRegex(urlRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			return mdast.New("link").Set("target", c.Group(1)).Set("text", c.Group(1))
		},
		Output: map[string]mdrule.OutputFunc{
			"html": linkHTML,
		},
	}
}

var linkRe = regexp.MustCompile(`^\[((?:\[[^\]]*\]|[^\[\]]|\](?=[^\[]*\]))*)\]\(\s*(<(?:\\.|[^\n<>\\])*>|(?:\\.|\([^)]*\)|[^\s\\()]*)*?)(?:\s+("(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'|\((?:\\.|[^)\\])*\)))?\s*\)`)

func linkRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderLink,
		Match: mdrule.AnyScopeRegex(linkRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			target := trimAngle(c.Group(2))
			target = unescapeURLBackslashes(target)
			return mdast.New("link").
				Set("target", target).
				Set("title", trimQuotes(c.Group(3))).
				Set("content", parseInline(parse, c.Group(1), state))
		},
		Output: map[string]mdrule.OutputFunc{
			"html": linkHTML,
		},
	}
}

var imageRe = regexp.MustCompile(`^!\[((?:\[[^\]]*\]|[^\[\]]|\](?=[^\[]*\]))*)\]\(\s*(<(?:\\.|[^\n<>\\])*>|(?:\\.|\([^)]*\)|[^\s\\()]*)*?)(?:\s+("(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'|\((?:\\.|[^)\\])*\)))?\s*\)`)

func imageRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderImage,
		Match: mdrule.AnyScopeRegex(imageRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			target := trimAngle(c.Group(2))
			target = unescapeURLBackslashes(target)
			return mdast.New("image").
				Set("target", target).
				Set("title", trimQuotes(c.Group(3))).
				Set("alt", c.Group(1))
		},
		Output: map[string]mdrule.OutputFunc{
			"html": imageHTML,
		},
	}
}

var reflinkRe = regexp.MustCompile(`^\[((?:\[[^\]]*\]|[^\[\]])*)\]\s*\[([^\]]*)\]`)

func reflinkRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderRefLink,
		Match: mdrule.AnyScopeRegex(reflinkRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			n := mdast.New("link").Set("content", parseInline(parse, c.Group(1), state))
			parseRef(c, state, n)
			return n
		},
		Output: map[string]mdrule.OutputFunc{
			"html": linkHTML,
		},
	}
}

var refimageRe = regexp.MustCompile(`^!\[((?:\[[^\]]*\]|[^\[\]])*)\]\s*\[([^\]]*)\]`)

func refimageRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderRefImage,
		Match: mdrule.AnyScopeRegex(refimageRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			n := mdast.New("image").Set("alt", c.Group(1))
			parseRef(c, state, n)
			return n
		},
		Output: map[string]mdrule.OutputFunc{
			"html": imageHTML,
		},
	}
}

var inlineCodeRe = regexp.MustCompile("^(`+)([^`]|[^`][\\s\\S]*?[^`])\\1(?!`)")

func inlineCodeRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderInlineCode,
		Match: mdrule.AnyScopeRegex(inlineCodeRe),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			return mdast.New("inlineCode").Set("content", trimOneSpaceEachSide(c.Group(2)))
		},
		Output: map[string]mdrule.OutputFunc{
			"html": func(n *mdast.Node, _ mdrule.OutputRecurse, _ *mdrule.State) interface{} {
				return htmlTag("code", htmlEscape(n.String("content")), nil)
			},
		},
	}
}

var brRe = regexp.MustCompile(`^ {2,}\n`)

func brRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderBr,
		Match: mdrule.AnyScopeRegex(brRe),
		Parse: ignoreCapture,
		Output: map[string]mdrule.OutputFunc{
			"html": func(*mdast.Node, mdrule.OutputRecurse, *mdrule.State) interface{} {
				return htmlTag("br", "", nil, false)
			},
		},
	}
}

// textRe is the fallback rule of spec.md §4.6: it always matches (a single
// run up to the next special character, or a single character), so the
// dispatcher's grammar-exhaustion error can never fire in practice for
// well-formed input.
var textRe = regexp.MustCompile(`^[\s\S]+?(?=[\\<!\[_*` + "`" + `~| ]|https?://|\n|$)`)
var textFallbackRe = regexp.MustCompile(`^[\s\S]`)

func textRule() *mdrule.Rule {
	return &mdrule.Rule{
		Order: orderText,
		Match: mdrule.MatchFunc(func(source string, state *mdrule.State, _ string) mdrule.Capture {
			if m := textRe.FindString(source); m != "" {
				return mdrule.Capture{m}
			}
			if m := textFallbackRe.FindString(source); m != "" {
				return mdrule.Capture{m}
			}
			return nil
		}),
		Parse: func(c mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) interface{} {
			return mdast.New("text").Set("content", c.Full())
		},
		Output: map[string]mdrule.OutputFunc{
			"html": func(n *mdast.Node, _ mdrule.OutputRecurse, _ *mdrule.State) interface{} {
				return htmlEscape(n.String("content"))
			},
		},
	}
}

func linkHTML(n *mdast.Node, recurse mdrule.OutputRecurse, state *mdrule.State) interface{} {
	attrs := map[string]interface{}{"href": sanitizeHref(n.String("target"))}
	if title := n.String("title"); title != "" {
		attrs["title"] = title
	}
	text := n.String("text")
	if content := n.Nodes("content"); content != nil {
		text, _ = recurse(content, state).(string)
	} else {
		text = htmlEscape(text)
	}
	return htmlTag("a", text, attrs)
}

func imageHTML(n *mdast.Node, _ mdrule.OutputRecurse, _ *mdrule.State) interface{} {
	attrs := map[string]interface{}{
		"src": sanitizeHref(n.String("target")),
		"alt": n.String("alt"),
	}
	if title := n.String("title"); title != "" {
		attrs["title"] = title
	}
	return htmlTag("img", "", attrs, false)
}

func trimAngle(s string) string {
	if len(s) >= 2 && s[0] == '<' && s[len(s)-1] == '>' {
		return s[1 : len(s)-1]
	}
	return s
}

func trimQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') || (first == '(' && last == ')') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func trimOneSpaceEachSide(s string) string {
	if len(s) >= 2 && s[0] == ' ' && s[len(s)-1] == ' ' {
		return s[1 : len(s)-1]
	}
	return s
}
