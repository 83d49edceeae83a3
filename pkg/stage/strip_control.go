package stage

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/hazyhaar/normy/pkg/charclass"
	"github.com/hazyhaar/normy/pkg/lang"
)

// StripControlChars removes every character of Unicode general category
// Cc (control), grounded on the teacher's runes.Remove(runes.In(...))
// idiom from pkg/dict/normalize.go.
type StripControlChars struct{}

func (StripControlChars) Name() string { return "strip_control_chars" }

func (StripControlChars) NeedsApply(input string, _ lang.Entry) bool {
	for _, r := range input {
		if unicode.Is(unicode.Cc, r) {
			return true
		}
	}
	return false
}

var removeCc = runes.Remove(runes.In(unicode.Cc))

func (s StripControlChars) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}
	out, _, err := transform.String(removeCc, input)
	if err != nil {
		return "", err
	}
	return out, nil
}

func (s StripControlChars) FusedAdapter(_ lang.Entry) CharAdapter {
	return NewMapAdapter(func(r rune) ([]rune, bool) {
		if unicode.Is(unicode.Cc, r) {
			return nil, true
		}
		return []rune{r}, false
	})
}

var _ Fusable = StripControlChars{}

// StripFormatControls removes invisible format-control characters: ZWSP,
// ZWNJ, ZWJ, BOM, and bidirectional override/isolate marks. Kept separate
// from StripControlChars because Cf (format) and Cc (control) are distinct
// Unicode categories with distinct removal policies. SegmentWords emits
// ZWSP as its Indic boundary marker, so a StripFormatControls stage placed
// after SegmentWords removes those boundaries again.
type StripFormatControls struct{}

func (StripFormatControls) Name() string { return "strip_format_controls" }

func (StripFormatControls) NeedsApply(input string, _ lang.Entry) bool {
	for _, r := range input {
		if charclass.IsFormatControl(r) {
			return true
		}
	}
	return false
}

func (s StripFormatControls) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}
	runes := make([]rune, 0, len(input))
	for _, r := range input {
		if charclass.IsFormatControl(r) {
			continue
		}
		runes = append(runes, r)
	}
	return string(runes), nil
}

func (s StripFormatControls) FusedAdapter(_ lang.Entry) CharAdapter {
	return NewMapAdapter(func(r rune) ([]rune, bool) {
		if charclass.IsFormatControl(r) {
			return nil, true
		}
		return []rune{r}, false
	})
}

var _ Fusable = StripFormatControls{}
