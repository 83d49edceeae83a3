package stage

import (
	"strings"

	"github.com/hazyhaar/normy/pkg/lang"
)

// Transliterate replaces codepoints per the language's historical ASCII
// convention table (Ä→"ae", Å→"aa", ISO/R 9:1968 for Cyrillic). It
// preserves the case carried by the replacement string in the table — it
// never itself lowercases, so it composes cleanly both before and after
// CaseFold/LowerCase.
//
// Opt-in only: a stage is only wired into a pipeline that wants it, since
// unlike CaseFold it is lossy and orthography-specific.
type Transliterate struct{}

func (Transliterate) Name() string { return "transliterate" }

func (Transliterate) NeedsApply(input string, e lang.Entry) bool {
	if len(e.Transliterate) == 0 {
		return false
	}
	for _, r := range input {
		if _, ok := e.TransliterateLookup(r); ok {
			return true
		}
	}
	return false
}

func (s Transliterate) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}
	var sb strings.Builder
	sb.Grow(len(input) + 8)
	for _, r := range input {
		if to, ok := e.TransliterateLookup(r); ok {
			sb.WriteString(to)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// FusedAdapter is unconditionally exposed as Fusable, unlike the policy
// this table's one-to-one/not distinction was originally drafted for:
// CharAdapter's output is a rune slice, not a fixed-width borrow, so a
// multi-rune mapping (French Œ→"oe") is no harder to fuse than a
// single-rune one. See DESIGN.md for why this departs from gating fusion
// on TransliterateIsOneToOne.
func (s Transliterate) FusedAdapter(e lang.Entry) CharAdapter {
	return NewMapAdapter(func(r rune) ([]rune, bool) {
		if to, ok := e.TransliterateLookup(r); ok {
			return []rune(to), false
		}
		return []rune{r}, false
	})
}

var _ Fusable = Transliterate{}
