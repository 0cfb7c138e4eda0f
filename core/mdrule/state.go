package mdrule

// State is the mutable record threaded through every nested Parse/Output
// call of a single invocation. Nested parsers that flip a scope field
// (Inline, InTable, InList, Key) must save the prior value and restore it
// before returning — see markdown.parseInline/parseBlock for the pattern.
//
// A State must never be shared between concurrent parse or render
// invocations; construct an independent State per invocation that needs
// to run in parallel.
type State struct {
	// Inline is true while the current scope is inline; block rules only
	// match when it is false, inline rules only when it is true.
	Inline bool

	// DisableAutoBlockNewlines suppresses the automatic "\n\n" suffix a
	// top-level block parse would otherwise append.
	DisableAutoBlockNewlines bool

	// InTable is true while parsing inside a table row; it enables the
	// tableSeparator rule.
	InTable bool

	// InList is true while inside a list item body; it re-enables the
	// list rule under inline scope (nested lists).
	InList bool

	// PrevCapture is the most recently consumed capture of the current
	// nested parse loop, used for limited lookbehind (the list rule's
	// start-of-line check). It is reset to nil at the start of every
	// top-level parse.
	PrevCapture Capture

	// Defs maps a canonicalized reference key to its definition.
	Defs map[string]*RefDef

	// Refs maps a canonicalized reference key to every ref/refimage node
	// parsed with that key, so a definition seen later can backpatch them.
	Refs map[string][]RefPatchable

	// Key is a stable sibling index string ("0", "1", ...) maintained by
	// the default tree Array rule for callers that need child identity.
	Key string

	// Extra carries arbitrary client fields through untouched.
	Extra map[string]interface{}
}

// RefDef is a resolved reference-link definition.
type RefDef struct {
	Target string
	Title  string
}

// RefPatchable is implemented by any node type the def rule can backpatch
// once it discovers a matching definition (link and image nodes produced
// by the reflink/refimage rules).
type RefPatchable interface {
	PatchRef(target, title string)
}

// NewState returns a State with its maps initialized, ready for use as a
// defaults template or as a fresh top-level state.
func NewState() *State {
	return &State{
		Defs: make(map[string]*RefDef),
		Refs: make(map[string][]RefPatchable),
		Extra: make(map[string]interface{}),
	}
}

// CloneDefaults produces a fresh State for a new top-level parse from a
// defaults template, so repeated calls to a Parse func don't share state
// across invocations. Maps are re-created (empty) rather than copied,
// since Defs/Refs accumulate per-invocation; Extra is copied by reference
// entry so client defaults survive.
func (s *State) CloneDefaults() *State {
	ns := NewState()
	if s == nil {
		return ns
	}
	ns.Inline = s.Inline
	ns.DisableAutoBlockNewlines = s.DisableAutoBlockNewlines
	for k, v := range s.Extra {
		ns.Extra[k] = v
	}
	return ns
}
