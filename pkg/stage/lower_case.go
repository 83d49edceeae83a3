package stage

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hazyhaar/normy/pkg/lang"
)

// LowerCase applies locale-aware lowercasing (not search-equivalence
// folding — German ß stays ß here; that expansion belongs to CaseFold).
// Turkish is the one language requiring a codepoint-level override: plain
// Unicode lowercasing maps 'I' to 'i', but Turkish lowercases 'I' to
// dotless 'ı' and 'İ' to 'i'.
type LowerCase struct{}

func (LowerCase) Name() string { return "lower_case" }

func (LowerCase) NeedsApply(input string, e lang.Entry) bool {
	for _, r := range input {
		if _, ok := e.CaseMap[r]; ok {
			return true
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return true
		}
	}
	return false
}

func (s LowerCase) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}
	if len(e.CaseMap) == 0 {
		out := cases.Lower(language.Und).String(input)
		if out == input {
			return input, nil
		}
		return out, nil
	}
	runes := []rune(input)
	for i, r := range runes {
		if mapped, ok := e.CaseMap[r]; ok {
			runes[i] = mapped
			continue
		}
		runes[i] = unicode.ToLower(r)
	}
	return string(runes), nil
}

func (s LowerCase) FusedAdapter(e lang.Entry) CharAdapter {
	return NewMapAdapter(func(r rune) ([]rune, bool) {
		if mapped, ok := e.CaseMap[r]; ok {
			return []rune{mapped}, false
		}
		return []rune{unicode.ToLower(r)}, false
	})
}

var _ Fusable = LowerCase{}
