package markdown

import (
	"regexp"
	"strings"

	"github.com/npillmayer/mdown/core/mdast"
	"github.com/npillmayer/mdown/core/mdrule"
	"golang.org/x/text/unicode/norm"
)

// parseInline runs parse over content under inline scope, saving and
// restoring state.Inline the way spec.md §4.7 and §9's save-restore
// discipline require.
func parseInline(parse mdrule.NestedParse, content string, state *mdrule.State) []*mdast.Node {
	saved := state.Inline
	state.Inline = true
	defer func() { state.Inline = saved }()
	return parse(content, state)
}

// parseBlock runs parse over content+"\n\n" under block scope, saving and
// restoring state.Inline.
func parseBlock(parse mdrule.NestedParse, content string, state *mdrule.State) []*mdast.Node {
	saved := state.Inline
	state.Inline = false
	defer func() { state.Inline = saved }()
	return parse(content+"\n\n", state)
}

// parseCaptureInline wraps the common "parse capture[1] as inline content"
// pattern used by most simple inline rules.
func parseCaptureInline(capture mdrule.Capture, parse mdrule.NestedParse, state *mdrule.State) *mdast.Node {
	return mdast.New("").Set("content", parseInline(parse, capture.Group(1), state))
}

// ignoreCapture is the ParseFunc for rules whose match carries no payload
// (hr, newline, tableSeparator).
func ignoreCapture(mdrule.Capture, mdrule.NestedParse, *mdrule.State) interface{} {
	return mdast.New("")
}

var wsRun = regexp.MustCompile(`\s+`)

// canonicalizeRefKey implements spec.md §3's canonicalization: Unicode
// NFC-normalize (matching the fold applied to input runes elsewhere in the
// pack, see engine/khipu), collapse whitespace runs to one space, then
// lowercase.
func canonicalizeRefKey(key string) string {
	key = norm.NFC.String(key)
	key = wsRun.ReplaceAllString(strings.TrimSpace(key), " ")
	return strings.ToLower(key)
}

// parseRef implements spec.md §4.7's parseRef: canonicalize the ref key
// from capture[2] (falling back to capture[1] for shortcut references),
// copy in a known definition's target/title, and register refNode for
// backpatching once/if a later "def" rule discovers the key.
func parseRef(capture mdrule.Capture, state *mdrule.State, refNode mdrule.RefPatchable) mdrule.RefPatchable {
	key := capture.Group(2)
	if key == "" {
		key = capture.Group(1)
	}
	key = canonicalizeRefKey(key)
	if def, ok := state.Defs[key]; ok {
		refNode.PatchRef(def.Target, def.Title)
	}
	if state.Refs == nil {
		state.Refs = make(map[string][]mdrule.RefPatchable)
	}
	state.Refs[key] = append(state.Refs[key], refNode)
	return refNode
}
