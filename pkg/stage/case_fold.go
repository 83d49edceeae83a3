package stage

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/hazyhaar/normy/pkg/lang"
)

// CaseFold applies Unicode case folding (for caseless comparison) plus any
// language-specific search-equivalence fold (German ß→"ss", Dutch Ĳ→"ij")
// and case-map override (Turkish dotless ı / dotted İ).
type CaseFold struct{}

func (CaseFold) Name() string { return "case_fold" }

func (CaseFold) NeedsApply(input string, e lang.Entry) bool {
	for _, r := range input {
		if _, ok := e.CaseMap[r]; ok {
			return true
		}
		if _, ok := e.FoldLookup(r); ok {
			return true
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) || unicode.ToLower(r) != r {
			return true
		}
	}
	return false
}

func (s CaseFold) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}

	// Common case: no language-specific overrides at all — delegate
	// entirely to the Unicode default case-folding algorithm.
	if len(e.CaseMap) == 0 && len(e.Fold) == 0 {
		out := cases.Fold().String(input)
		if out == input {
			return input, nil
		}
		return out, nil
	}

	runes := []rune(input)
	var sb strings.Builder
	sb.Grow(len(input) + 8)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		// Dutch "IJ"/"Ij" peek-ahead ligature fold.
		if e.RequiresPeekAhead && i+1 < len(runes) {
			if to, ok := peekPairLookup(e, r, runes[i+1]); ok {
				sb.WriteString(to)
				i++
				continue
			}
		}

		if to, ok := e.FoldLookup(r); ok {
			sb.WriteString(to)
			continue
		}
		if mapped, ok := e.CaseMap[r]; ok {
			sb.WriteRune(mapped)
			continue
		}
		sb.WriteString(cases.Fold().String(string(r)))
	}
	return sb.String(), nil
}

func peekPairLookup(e lang.Entry, cur, next rune) (string, bool) {
	for _, p := range e.PeekPairs {
		if p.First == cur && p.Second == next {
			return p.To, true
		}
	}
	return "", false
}

func (s CaseFold) FusedAdapter(e lang.Entry) CharAdapter {
	if e.RequiresPeekAhead {
		return PeekAdapter{Fn: func(cur, next rune, hasNext bool) ([]rune, bool) {
			if hasNext {
				if to, ok := peekPairLookup(e, cur, next); ok {
					return []rune(to), true
				}
			}
			if to, ok := e.FoldLookup(cur); ok {
				return []rune(to), false
			}
			if mapped, ok := e.CaseMap[cur]; ok {
				return []rune{mapped}, false
			}
			return []rune(cases.Fold().String(string(cur))), false
		}}
	}
	return NewMapAdapter(func(r rune) ([]rune, bool) {
		if to, ok := e.FoldLookup(r); ok {
			return []rune(to), false
		}
		if mapped, ok := e.CaseMap[r]; ok {
			return []rune{mapped}, false
		}
		return []rune(cases.Fold().String(string(r))), false
	})
}

var _ Fusable = CaseFold{}
