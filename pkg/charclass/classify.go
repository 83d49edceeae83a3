// Package charclass classifies runes into the broad script buckets the
// segmentation sub-engines and diacritic tables reason about. It is not a
// full Unicode script database — only the distinctions the normalization
// stages actually branch on.
package charclass

import "unicode"

// Class is a coarse script bucket used by the script-transition segmentation
// rules and by width/diacritic stage predicates.
type Class int

const (
	Other Class = iota
	Western
	CJK
	Hangul
	SEAsian
	NonCJKScript
	Indic
)

func (c Class) String() string {
	switch c {
	case Western:
		return "western"
	case CJK:
		return "cjk"
	case Hangul:
		return "hangul"
	case SEAsian:
		return "seasian"
	case NonCJKScript:
		return "non-cjk-script"
	case Indic:
		return "indic"
	default:
		return "other"
	}
}

// Of classifies a single rune.
func Of(r rune) Class {
	switch {
	case r < 0x80 && (unicode.IsLetter(r) || unicode.IsDigit(r)):
		return Western
	case unicode.Is(unicode.Latin, r):
		return Western
	case unicode.Is(unicode.Han, r):
		return CJK
	case unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r):
		return CJK
	case unicode.Is(unicode.Hangul, r):
		return Hangul
	case unicode.Is(unicode.Thai, r), unicode.Is(unicode.Lao, r),
		unicode.Is(unicode.Myanmar, r), unicode.Is(unicode.Khmer, r):
		return SEAsian
	case unicode.Is(unicode.Devanagari, r), unicode.Is(unicode.Bengali, r),
		unicode.Is(unicode.Tamil, r):
		return Indic
	case unicode.Is(unicode.Greek, r), unicode.Is(unicode.Cyrillic, r),
		unicode.Is(unicode.Arabic, r), unicode.Is(unicode.Hebrew, r):
		return NonCJKScript
	default:
		return Other
	}
}

// IsCJKIdeograph reports whether r is in the CJK Unified Ideographs block
// (and its common extensions) — the narrower test the unigram segmenter
// needs, distinct from Class==CJK which also covers kana.
func IsCJKIdeograph(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// IsSpace reports Unicode whitespace, including non-ASCII separators
// (e.g. U+00A0, U+3000) that an ASCII-only check misses.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// formatControls are the invisible zero-width and bidi control runes that
// StripFormatControls removes. Listed by codepoint rather than as literal
// characters so the source stays unambiguous under any editor or terminal.
var formatControls = map[rune]bool{
	0x200B: true, // ZERO WIDTH SPACE
	0x200C: true, // ZERO WIDTH NON-JOINER
	0x200D: true, // ZERO WIDTH JOINER
	0xFEFF: true, // BOM / ZERO WIDTH NO-BREAK SPACE
	0x200E: true, // LEFT-TO-RIGHT MARK
	0x200F: true, // RIGHT-TO-LEFT MARK
	0x202A: true, // LEFT-TO-RIGHT EMBEDDING
	0x202B: true, // RIGHT-TO-LEFT EMBEDDING
	0x202C: true, // POP DIRECTIONAL FORMATTING
	0x202D: true, // LEFT-TO-RIGHT OVERRIDE
	0x202E: true, // RIGHT-TO-LEFT OVERRIDE
	0x2066: true, // LEFT-TO-RIGHT ISOLATE
	0x2067: true, // RIGHT-TO-LEFT ISOLATE
	0x2068: true, // FIRST STRONG ISOLATE
	0x2069: true, // POP DIRECTIONAL ISOLATE
}

// IsFormatControl reports the invisible format-control runes stripped by
// StripFormatControls: ZWSP/ZWNJ/ZWJ/BOM, bidi marks, and other Cf runes
// (excluding soft hyphen U+00AD, which no stage removes).
func IsFormatControl(r rune) bool {
	if formatControls[r] {
		return true
	}
	return unicode.Is(unicode.Cf, r) && r != 0x00AD
}
