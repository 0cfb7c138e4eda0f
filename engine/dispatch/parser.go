package dispatch

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mdown/core"
	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
	"github.com/npillmayer/mdown/engine/htmlutil"
)

// Parse is the function returned by ParserFor: it turns a source string
// into a top-level node list.
type Parse func(source string, state *mdrule.State) ([]*mdast.Node, error)

// autoBlockSuffix is the "\n\n" spec.md §4.4 appends at top-level block
// parse, unless the state is inline or has opted out.
const autoBlockSuffix = "\n\n"

// ParserFor builds a Parse closure over a rule table. An invocation with a
// nil State starts from a clone of defaults (a fresh State if defaults is
// nil); an invocation with a State starts from a clone of that State, and
// defaults is not used. Cloning keeps only the scope flags and Extra;
// Defs/Refs/PrevCapture always start fresh.
func ParserFor(rules mdrule.Table, defaults *mdrule.State) Parse {
	sorted := SortRules(rules)
	if len(sorted) == 0 {
		return func(string, *mdrule.State) ([]*mdast.Node, error) {
			return nil, core.Error(core.EINVALID, "mdrule: empty rule table has no fallback rule")
		}
	}
	fallback := sorted[len(sorted)-1]

	nested := func(source string, state *mdrule.State) []*mdast.Node {
		nodes, err := parseLoop(source, state, sorted, fallback)
		if err != nil {
			// A nested parse failing is the same fatal condition as a
			// top-level one; propagate by panicking through the parse
			// tree and recovering it at the top-level Parse call.
			panic(dispatchError{err})
		}
		return nodes
	}

	return func(source string, state *mdrule.State) (nodes []*mdast.Node, err error) {
		if state == nil {
			if defaults != nil {
				state = defaults.CloneDefaults()
			} else {
				state = mdrule.NewState()
			}
		} else {
			state = state.CloneDefaults()
		}
		state.PrevCapture = nil
		if !state.Inline && !state.DisableAutoBlockNewlines {
			source += autoBlockSuffix
		}
		source = htmlutil.Preprocess(source)

		defer func() {
			if r := recover(); r != nil {
				if de, ok := r.(dispatchError); ok {
					err = de.err
					return
				}
				panic(r)
			}
		}()
		nodes = nested(source, state)
		return nodes, nil
	}
}

// dispatchError lets a nested nested-parse panic carry a plain error back
// to the outer Parse call without every ParseFunc having to return one.
type dispatchError struct{ err error }

func (d dispatchError) Error() string { return d.err.Error() }

// candidate is the best match found so far in one pass of parseLoop.
type candidate struct {
	rule    *mdrule.Rule
	capture mdrule.Capture
	quality float64
}

// parseLoop is the nested-parse loop of spec.md §4.4: repeatedly pick the
// best-matching rule and consume input until source is exhausted.
func parseLoop(source string, state *mdrule.State, sorted []*mdrule.Rule, fallback *mdrule.Rule) ([]*mdast.Node, error) {
	var nodes []*mdast.Node
	for len(source) > 0 {
		prevText := ""
		if state.PrevCapture.Matched() {
			prevText = state.PrevCapture.Full()
		}

		var best *candidate
		for _, r := range sorted {
			if best != nil && !(r.Order == best.rule.Order && r.HasQuality()) {
				// spec.md §4.4 step 3: stop once the next rule is no
				// longer part of the same quality-tiebroken group.
				break
			}
			cap := r.Match.Match(source, state, prevText)
			if cap == nil {
				continue
			}
			q := 0.0
			if r.HasQuality() {
				q = r.Quality(cap, state, prevText)
			}
			if best == nil || q > best.quality {
				best = &candidate{rule: r, capture: cap, quality: q}
			}
		}

		if best == nil {
			return nil, core.Error(core.EINVALID, "mdrule: no matching rule (fallback rule %q did not match): %q",
				fallback.Name, truncate(source, 40))
		}
		if !strings.HasPrefix(source, best.capture.Full()) {
			return nil, core.Error(core.EINTERNAL, "mdrule: unanchored match by rule %q", best.rule.Name)
		}

		result := best.rule.Parse(best.capture, func(src string, st *mdrule.State) []*mdast.Node {
			sub, err := parseLoop(src, st, sorted, fallback)
			if err != nil {
				panic(dispatchError{err})
			}
			return sub
		}, state)
		nodes = appendResult(nodes, result, best.rule.Name)

		state.PrevCapture = best.capture
		source = source[len(best.capture.Full()):]
	}
	return nodes, nil
}

func appendResult(nodes []*mdast.Node, result interface{}, ruleName string) []*mdast.Node {
	switch v := result.(type) {
	case nil:
		return nodes
	case *mdast.Node:
		if v.Type == "" {
			v.Type = ruleName
		}
		return append(nodes, v)
	case []*mdast.Node:
		for _, n := range v {
			if n.Type == "" {
				n.Type = ruleName
			}
		}
		return append(nodes, v...)
	default:
		panic(fmt.Sprintf("mdrule: rule %q Parse returned unexpected type %T", ruleName, result))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
