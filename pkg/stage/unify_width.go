package stage

import (
	"golang.org/x/text/width"

	"github.com/hazyhaar/normy/pkg/lang"
)

// UnifyWidth folds fullwidth forms (U+FF01-FF5E and friends) to their
// halfwidth/ASCII equivalents. Always applicable regardless of language —
// width variants are a rendering artifact, not a linguistic one.
type UnifyWidth struct{}

func (UnifyWidth) Name() string { return "unify_width" }

func (UnifyWidth) NeedsApply(input string, _ lang.Entry) bool {
	for _, r := range input {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianHalfwidth:
			return true
		}
	}
	return false
}

func (s UnifyWidth) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}
	out := width.Fold.String(input)
	if out == input {
		return input, nil
	}
	return out, nil
}

func (s UnifyWidth) FusedAdapter(_ lang.Entry) CharAdapter {
	return NewMapAdapter(func(r rune) ([]rune, bool) {
		return []rune(width.Fold.String(string(r))), false
	})
}

var _ Fusable = UnifyWidth{}
