package dispatch

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/npillmayer/mdown/core/mdrule"
)

// rulekey is the sort key spec.md §4.4 defines for the rule list:
// ascending Order, then rules with a Quality func before those without,
// then ascending rule name.
type rulekey struct {
	order      float64
	hasQuality bool
	name       string
}

func rulekeyOf(name string, r *mdrule.Rule) rulekey {
	order := r.Order
	if !r.HasFiniteOrder() {
		// Non-finite orders still sort deterministically, after every
		// finite-order rule (see SortRules for the accompanying warning).
		order = float64frontier
	}
	return rulekey{order: order, hasQuality: r.HasQuality(), name: name}
}

// float64frontier sorts after any sane finite Order used by a real rule
// table; it exists only so a bad-order rule still participates in a
// deterministic ordering rather than panicking the tree comparator.
const float64frontier = 1e308

func compareRuleKeys(a, b interface{}) int {
	ka, kb := a.(rulekey), b.(rulekey)
	switch {
	case ka.order < kb.order:
		return -1
	case ka.order > kb.order:
		return 1
	}
	// same order: a rule with Quality sorts before one without
	if ka.hasQuality != kb.hasQuality {
		if ka.hasQuality {
			return -1
		}
		return 1
	}
	switch {
	case ka.name < kb.name:
		return -1
	case ka.name > kb.name:
		return 1
	default:
		return 0
	}
}

// SortRules builds the total order spec.md §4.4 requires: a rule table's
// entries with a Match func, sorted ascending by Order, quality-bearing
// rules before quality-less ones at equal Order, and lexicographically by
// name as the final tiebreak.
//
// A red-black tree (github.com/emirpasic/gods) does the sorting; the
// dispatcher itself walks a flattened slice on every prefix, since
// rebuilding a tree per source position would be wasted work.
func SortRules(rules mdrule.Table) []*mdrule.Rule {
	tree := redblacktree.NewWith(compareRuleKeys)
	for name, r := range rules {
		if r == nil || r.Match == nil {
			continue // spec.md §4.4: entries lacking Match are filtered out
		}
		if !r.HasFiniteOrder() {
			T().Errorf("mdrule: warning: rule %q has non-finite order, sorting last", name)
		}
		if r.Name == "" {
			r.Name = name
		}
		tree.Put(rulekeyOf(name, r), r)
	}
	sorted := make([]*mdrule.Rule, 0, tree.Size())
	it := tree.Iterator()
	for it.Next() {
		sorted = append(sorted, it.Value().(*mdrule.Rule))
	}
	return sorted
}
