package markdown

import (
	"strings"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// wordSegments splits s into UAX#29 word-boundary segments, the same
// pipeline stage engine/khipu wires up for line breaking
// (PrepareTypesettingPipeline), reused here for a much narrower purpose:
// deciding whether an underscore sits inside a single word.
func wordSegments(s string) []string {
	seg := segment.NewSegmenter(uax29.NewWordBreaker(1))
	seg.Init(strings.NewReader(s))
	var out []string
	for seg.Next() {
		out = append(out, seg.Text())
	}
	return out
}

// isIntraword reports whether the byte offsets [start,end) of s sit inside
// a single UAX#29 word segment rather than at its edges — the test
// CommonMark's underscore-emphasis rule uses to reject "foo_bar_baz".
func isIntraword(s string, start, end int) bool {
	pos := 0
	for _, seg := range wordSegments(s) {
		segStart, segEnd := pos, pos+len(seg)
		if start >= segStart && end <= segEnd && isWordSegment(seg) {
			atLeftEdge := start == segStart
			atRightEdge := end == segEnd
			if !atLeftEdge || !atRightEdge {
				return true
			}
		}
		pos = segEnd
	}
	return false
}

func isWordSegment(seg string) bool {
	for _, r := range seg {
		if !isSpaceRune(r) && !strings.ContainsRune(",.;:!?()[]{}\"'", r) {
			return true
		}
	}
	return false
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
