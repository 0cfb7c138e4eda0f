package dispatch_test

import (
	"regexp"
	"testing"

	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
	"github.com/npillmayer/mdown/engine/dispatch"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func wordRules() mdrule.Table {
	word := &mdrule.Rule{
		Order: 10,
		Match: mdrule.AnyScopeRegex(regexp.MustCompile(`^[A-Za-z]+`)),
		Parse: func(c mdrule.Capture, _ mdrule.NestedParse, _ *mdrule.State) interface{} {
			return mdast.New("word").Set("text", c.Full())
		},
		Output: map[string]mdrule.OutputFunc{
			"html": func(n *mdast.Node, _ mdrule.OutputRecurse, _ *mdrule.State) interface{} {
				return n.String("text")
			},
		},
	}
	space := &mdrule.Rule{
		Order: 20,
		Match: mdrule.AnyScopeRegex(regexp.MustCompile(`^\s+`)),
		Parse: func(mdrule.Capture, mdrule.NestedParse, *mdrule.State) interface{} {
			return mdast.New("space")
		},
		Output: map[string]mdrule.OutputFunc{
			"html": func(*mdast.Node, mdrule.OutputRecurse, *mdrule.State) interface{} { return " " },
		},
	}
	arr := &mdrule.Rule{
		Name: "Array",
		Output: map[string]mdrule.OutputFunc{
			"html": func(n *mdast.Node, recurse mdrule.OutputRecurse, state *mdrule.State) interface{} {
				out := ""
				for _, c := range mdast.ArrayChildren(n) {
					s, _ := recurse(c, state).(string)
					out += s
				}
				return out
			},
		},
	}
	return mdrule.Table{"word": word, "space": space, "Array": arr}
}

func TestParserForDispatchesGreedyLongestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.dispatch")
	defer teardown()

	rules := wordRules()
	parse := dispatch.ParserFor(rules, mdrule.NewState())
	nodes, err := parse("hello world", &mdrule.State{Inline: true})
	assert.NoError(t, err)
	assert.Len(t, nodes, 3)
	assert.Equal(t, "word", nodes[0].Type)
	assert.Equal(t, "hello", nodes[0].String("text"))
	assert.Equal(t, "space", nodes[1].Type)
	assert.Equal(t, "word", nodes[2].Type)
	assert.Equal(t, "world", nodes[2].String("text"))
}

func TestParserForFailsWithoutFallbackMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.dispatch")
	defer teardown()

	rules := wordRules()
	parse := dispatch.ParserFor(rules, mdrule.NewState())
	_, err := parse("!!!", &mdrule.State{Inline: true})
	assert.Error(t, err)
}

func TestOutputForRendersAndJoins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdown.dispatch")
	defer teardown()

	rules := wordRules()
	parse := dispatch.ParserFor(rules, mdrule.NewState())
	nodes, err := parse("a b", &mdrule.State{Inline: true})
	assert.NoError(t, err)

	render := dispatch.OutputFor(rules, "html", rules["Array"], mdrule.NewState())
	out := render(nodes, nil)
	assert.Equal(t, "a b", out)
}
