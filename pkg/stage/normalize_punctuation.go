package stage

import (
	"github.com/hazyhaar/normy/pkg/lang"
)

// punctuationMap is the fixed smart-punctuation-to-ASCII table: curly
// quotes, en/em dashes, ellipsis. Ellipsis collapses to a single "." per
// the convention of treating it as a sentence-final mark rather than
// three literal periods.
var punctuationMap = map[rune]string{
	0x2018: "'", 0x2019: "'", 0x201A: "'", 0x201B: "'", // single quotes
	0x201C: "\"", 0x201D: "\"", 0x201E: "\"", 0x201F: "\"", // double quotes
	0x2013: "-", 0x2014: "-", 0x2015: "-", // en/em/horizontal bar dashes
	0x2026: ".", // horizontal ellipsis
}

// NormalizePunctuation maps "smart" Unicode punctuation to its ASCII form.
// Language-independent — the table is fixed, not policy-driven.
type NormalizePunctuation struct{}

func (NormalizePunctuation) Name() string { return "normalize_punctuation" }

func (NormalizePunctuation) NeedsApply(input string, _ lang.Entry) bool {
	for _, r := range input {
		if _, ok := punctuationMap[r]; ok {
			return true
		}
	}
	return false
}

func (s NormalizePunctuation) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}
	runes := make([]rune, 0, len(input))
	for _, r := range input {
		if to, ok := punctuationMap[r]; ok {
			runes = append(runes, []rune(to)...)
			continue
		}
		runes = append(runes, r)
	}
	return string(runes), nil
}

func (s NormalizePunctuation) FusedAdapter(_ lang.Entry) CharAdapter {
	return NewMapAdapter(func(r rune) ([]rune, bool) {
		if to, ok := punctuationMap[r]; ok {
			return []rune(to), false
		}
		return []rune{r}, false
	})
}

var _ Fusable = NormalizePunctuation{}
