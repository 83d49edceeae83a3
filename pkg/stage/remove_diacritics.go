package stage

import (
	"github.com/hazyhaar/normy/pkg/lang"
)

// RemoveDiacritics strips the language's spacing_diacritics (standalone
// combining marks never involved in NFC precomposition) and, for the
// opt-in precomposed expansion, maps PrecomposedToBase letters down to
// their base form. Spanish ñ/Ñ and similarly phonemic letters are never
// present in PrecomposedToBase and so survive unchanged (spec invariant).
type RemoveDiacritics struct{}

func (RemoveDiacritics) Name() string { return "remove_diacritics" }

func (RemoveDiacritics) NeedsApply(input string, e lang.Entry) bool {
	if len(e.SpacingDiacritics) == 0 && len(e.PrecomposedToBase) == 0 {
		return false
	}
	for _, r := range input {
		if e.SpacingDiacritics[r] {
			return true
		}
		if _, ok := e.PrecomposedToBase[r]; ok {
			return true
		}
	}
	return false
}

func (s RemoveDiacritics) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}
	runes := make([]rune, 0, len(input))
	for _, r := range input {
		if e.SpacingDiacritics[r] {
			continue
		}
		if base, ok := e.PrecomposedToBase[r]; ok {
			runes = append(runes, base)
			continue
		}
		runes = append(runes, r)
	}
	return string(runes), nil
}

func (s RemoveDiacritics) FusedAdapter(e lang.Entry) CharAdapter {
	return NewMapAdapter(func(r rune) ([]rune, bool) {
		if e.SpacingDiacritics[r] {
			return nil, true
		}
		if base, ok := e.PrecomposedToBase[r]; ok {
			return []rune{base}, false
		}
		return []rune{r}, false
	})
}

var _ Fusable = RemoveDiacritics{}
