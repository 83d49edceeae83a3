// Package segment implements the word-segmentation sub-engines: CJK
// unigram spacing, script-transition boundary detection, and Indic
// virama+ZWSP insertion with the Hindi conjunct-consonant exception.
package segment

import (
	"github.com/hazyhaar/normy/pkg/charclass"
	"github.com/hazyhaar/normy/pkg/lang"
)

// viramaByScript maps each Indic script's virama (halant) codepoint,
// keyed by the script detection already done by charclass.Of.
var viramaByScript = map[rune]bool{
	0x094D: true, // Devanagari virama
	0x09CD: true, // Bengali virama
	0x0BCD: true, // Tamil virama
}

// hindiConjunctExceptions are the consonants {र, य, व, ह} after which a
// virama does not trigger a ZWSP break, because they commonly form stable
// conjunct clusters rather than syllable boundaries.
var hindiConjunctExceptions = map[rune]bool{
	0x0930: true, // र
	0x092F: true, // य
	0x0935: true, // व
	0x0939: true, // ह
}

func isVirama(r rune) bool { return viramaByScript[r] }

func isIndicConsonant(r rune) bool {
	switch {
	case r >= 0x0915 && r <= 0x0939, r >= 0x0958 && r <= 0x095F: // Devanagari
	case r >= 0x0995 && r <= 0x09B9, r >= 0x09DC && r <= 0x09DF: // Bengali
	case r >= 0x0B95 && r <= 0x0BB9: // Tamil
	default:
		return false
	}
	return true
}

// NeedsBoundaryBetween decides whether a space (for script transitions and
// CJK unigram) or ZWSP (for Indic virama) boundary belongs between prev and
// curr, given the active language's segment rules. It is the one-character-
// lookahead decision function every SegmentWords adapter — fused or
// sequential — calls.
//
// Returns the boundary rune to insert between prev and curr, or 0 if none.
func NeedsBoundaryBetween(prev, curr rune, e lang.Entry) rune {
	if e.UnigramCJK && e.HasSegmentRule(lang.CJKIdeographUnigram) {
		if charclass.IsCJKIdeograph(prev) && charclass.IsCJKIdeograph(curr) {
			return ' '
		}
	}

	prevClass, currClass := charclass.Of(prev), charclass.Of(curr)

	if e.HasSegmentRule(lang.WesternToScript) {
		if prevClass == charclass.Western && isNativeScript(currClass) {
			return ' '
		}
	}
	if e.HasSegmentRule(lang.ScriptToWestern) {
		if isNativeScript(prevClass) && currClass == charclass.Western {
			return ' '
		}
	}

	if isVirama(prev) && isIndicConsonant(curr) {
		if !hindiConjunctExceptions[curr] {
			return 0x200B // ZWSP
		}
	}

	return 0
}

// isNativeScript reports whether c is one of the non-Western, non-Other
// script buckets the script-transition rule cares about.
func isNativeScript(c charclass.Class) bool {
	switch c {
	case charclass.CJK, charclass.Hangul, charclass.SEAsian, charclass.Indic, charclass.NonCJKScript:
		return true
	default:
		return false
	}
}

// Segment runs the whole-buffer version of the boundary insertion used by
// SegmentWords' non-fused Apply: a straightforward single pass comparing
// each rune with its predecessor.
func Segment(input string, e lang.Entry) string {
	runes := []rune(input)
	if len(runes) == 0 {
		return input
	}
	out := make([]rune, 0, len(runes)+len(runes)/8+1)
	out = append(out, runes[0])
	for i := 1; i < len(runes); i++ {
		if b := NeedsBoundaryBetween(runes[i-1], runes[i], e); b != 0 {
			out = append(out, b)
		}
		out = append(out, runes[i])
	}
	return string(out)
}

// NeedsSegmentation reports whether input plausibly contains a boundary
// opportunity under e's policy — the conservative NeedsApply predicate for
// SegmentWords.
func NeedsSegmentation(input string, e lang.Entry) bool {
	if !e.NeedsSegmentation {
		return false
	}
	runes := []rune(input)
	for i := 1; i < len(runes); i++ {
		if NeedsBoundaryBetween(runes[i-1], runes[i], e) != 0 {
			return true
		}
	}
	return false
}
