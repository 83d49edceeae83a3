package stage

import (
	"github.com/hazyhaar/normy/pkg/lang"
	"github.com/hazyhaar/normy/pkg/segment"
)

// SegmentWords inserts word-boundary markers per the language's
// segmentation policy: a space on CJK-unigram adjacency and on Western↔
// native-script transitions, or a ZWSP after an Indic virama followed by a
// non-exempt consonant. See pkg/segment for the boundary decision logic.
type SegmentWords struct{}

func (SegmentWords) Name() string { return "segment_words" }

func (SegmentWords) NeedsApply(input string, e lang.Entry) bool {
	return segment.NeedsSegmentation(input, e)
}

func (s SegmentWords) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}
	return segment.Segment(input, e), nil
}

// FusedAdapter realizes the one-character lookahead the boundary rule
// needs directly via PeekAdapter: for each current/next pair, emit the
// current rune and, if a boundary belongs between it and the lookahead
// rune, the boundary rune too. The lookahead rune itself is never
// consumed here — it is simply read again as "current" on the next step.
func (s SegmentWords) FusedAdapter(e lang.Entry) CharAdapter {
	return PeekAdapter{Fn: func(cur, next rune, hasNext bool) ([]rune, bool) {
		if !hasNext {
			return []rune{cur}, false
		}
		if b := segment.NeedsBoundaryBetween(cur, next, e); b != 0 {
			return []rune{cur, b}, false
		}
		return []rune{cur}, false
	}}
}

var _ Fusable = SegmentWords{}
