package dispatch

import (
	"sort"

	"github.com/derekparker/trie"
	"github.com/npillmayer/mdown/core/mdrule"
)

// Registry indexes a rule table's names for prefix lookup — tooling and
// diagnostics (e.g. "which rules start with 'table'") without a linear
// scan, backed by the same trie package the teacher module's go.mod
// already carried.
type Registry struct {
	t *trie.Trie
}

// NewRegistry builds a Registry over every rule name in rules, regardless
// of whether the rule has a Match func (unlike SortRules, which only
// considers matchable rules — a registry is also useful for output-only
// rules that decline to parse).
func NewRegistry(rules mdrule.Table) *Registry {
	t := trie.New()
	for name := range rules {
		t.Add(name, nil)
	}
	return &Registry{t: t}
}

// Lookup returns every rule name having prefix, sorted for determinism.
func (r *Registry) Lookup(prefix string) []string {
	names := r.t.PrefixSearch(prefix)
	sort.Strings(names)
	return names
}

// Has reports whether name is a known rule.
func (r *Registry) Has(name string) bool {
	_, ok := r.t.Find(name)
	return ok
}
