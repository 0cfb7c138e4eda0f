package mdrule

import "regexp"

// RegexMatcher is the concrete type returned by InlineRegex, BlockRegex and
// AnyScopeRegex. Its Regex field exposes the wrapped pattern for
// introspection, e.g. by tooling that lists every rule's pattern.
type RegexMatcher struct {
	Regex *regexp.Regexp
	scope scope
}

type scope int

const (
	scopeInline scope = iota
	scopeBlock
	scopeAny
)

// Match implements Matcher.
func (m RegexMatcher) Match(source string, state *State, _ string) Capture {
	switch m.scope {
	case scopeInline:
		if !state.Inline {
			return nil
		}
	case scopeBlock:
		if state.Inline {
			return nil
		}
	}
	return fromRegexMatch(m.Regex.FindStringSubmatch(source))
}

var _ Matcher = RegexMatcher{}

// InlineRegex builds a Matcher from re that only fires when state.Inline
// is true. re must be anchored at position 0 (see spec.md §4.4).
func InlineRegex(re *regexp.Regexp) RegexMatcher {
	return RegexMatcher{Regex: re, scope: scopeInline}
}

// BlockRegex builds a Matcher from re that only fires when state.Inline is
// false. re must be anchored at position 0.
func BlockRegex(re *regexp.Regexp) RegexMatcher {
	return RegexMatcher{Regex: re, scope: scopeBlock}
}

// AnyScopeRegex builds a Matcher from re that fires regardless of scope.
// re must be anchored at position 0.
func AnyScopeRegex(re *regexp.Regexp) RegexMatcher {
	return RegexMatcher{Regex: re, scope: scopeAny}
}
