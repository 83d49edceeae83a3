package lang

// DefaultTag is the fallback used for unknown language tags: empty tables,
// Unicode defaults only.
const DefaultTag Tag = "ENG"

// Table is the flat, read-only language policy store. Populated once at
// package init and never mutated afterward.
var Table = map[Tag]Entry{
	"ENG": {Tag: "ENG"},

	"TUR": {
		Tag: "TUR",
		CaseMap: map[rune]rune{
			'I': 'ı',
			'İ': 'i',
		},
	},

	"DEU": {
		Tag: "DEU",
		Fold: []FoldMap{
			{From: 'ß', To: "ss"},
			{From: 'ẞ', To: "ss"},
		},
		Transliterate: []FoldMap{
			{From: 'Ä', To: "ae"}, {From: 'ä', To: "ae"},
			{From: 'Ö', To: "oe"}, {From: 'ö', To: "oe"},
			{From: 'Ü', To: "ue"}, {From: 'ü', To: "ue"},
		},
	},

	"NLD": {
		Tag: "NLD",
		Fold: []FoldMap{
			{From: 'Ĳ', To: "ij"},
			{From: 'ĳ', To: "ij"},
		},
		RequiresPeekAhead: true,
		PeekPairs: []PeekPair{
			{First: 'I', Second: 'J', To: "ij"},
			{First: 'I', Second: 'j', To: "ij"},
		},
	},

	"DAN": {
		Tag: "DAN",
		Transliterate: []FoldMap{
			{From: 'Å', To: "aa"}, {From: 'å', To: "aa"},
			{From: 'Æ', To: "ae"}, {From: 'æ', To: "ae"},
			{From: 'Ø', To: "oe"}, {From: 'ø', To: "oe"},
		},
	},
	"NOR": {
		Tag: "NOR",
		Transliterate: []FoldMap{
			{From: 'Å', To: "aa"}, {From: 'å', To: "aa"},
			{From: 'Æ', To: "ae"}, {From: 'æ', To: "ae"},
			{From: 'Ø', To: "oe"}, {From: 'ø', To: "oe"},
		},
	},
	"SWE": {
		Tag: "SWE",
		Transliterate: []FoldMap{
			{From: 'Å', To: "aa"}, {From: 'å', To: "aa"},
			{From: 'Ä', To: "ae"}, {From: 'ä', To: "ae"},
			{From: 'Ö', To: "oe"}, {From: 'ö', To: "oe"},
		},
	},
	"ISL": {
		Tag: "ISL",
		Transliterate: []FoldMap{
			{From: 'Þ', To: "th"}, {From: 'þ', To: "th"},
			{From: 'Ð', To: "d"}, {From: 'ð', To: "d"},
			{From: 'Æ', To: "ae"}, {From: 'æ', To: "ae"},
			{From: 'Ö', To: "oe"}, {From: 'ö', To: "oe"},
		},
	},

	"FRA": {
		Tag: "FRA",
		Transliterate: []FoldMap{
			{From: 'Œ', To: "oe"}, {From: 'œ', To: "oe"},
			{From: 'Æ', To: "ae"}, {From: 'æ', To: "ae"},
			{From: 'Ç', To: "c"}, {From: 'ç', To: "c"},
		},
		PrecomposedToBase: map[rune]rune{
			'À': 'A', 'Â': 'A', 'È': 'E', 'É': 'E', 'Ê': 'E', 'Ë': 'E',
			'Î': 'I', 'Ï': 'I', 'Ô': 'O', 'Ù': 'U', 'Û': 'U', 'Ü': 'U', 'Ÿ': 'Y',
			'à': 'a', 'â': 'a', 'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
			'î': 'i', 'ï': 'i', 'ô': 'o', 'ù': 'u', 'û': 'u', 'ü': 'u', 'ÿ': 'y',
		},
	},

	// Spanish: ñ/Ñ never appear in PrecomposedToBase — phonemically
	// distinct, a separate letter of the alphabet (spec §3 invariant).
	"SPA": {
		Tag: "SPA",
		PrecomposedToBase: map[rune]rune{
			'Á': 'A', 'É': 'E', 'Í': 'I', 'Ó': 'O', 'Ú': 'U', 'Ü': 'U',
			'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ü': 'u',
		},
	},
	"POR": {
		Tag: "POR",
		PrecomposedToBase: map[rune]rune{
			'Á': 'A', 'À': 'A', 'Â': 'A', 'Ã': 'A', 'É': 'E', 'Ê': 'E',
			'Í': 'I', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ú': 'U', 'Ü': 'U',
			'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'é': 'e', 'ê': 'e',
			'í': 'i', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ú': 'u', 'ü': 'u',
		},
		// Ç/ç excluded: phonemically distinct from C/c in Portuguese.
	},
	"ITA": {
		Tag: "ITA",
		PrecomposedToBase: map[rune]rune{
			'À': 'A', 'È': 'E', 'É': 'E', 'Ì': 'I', 'Ò': 'O', 'Ù': 'U',
			'à': 'a', 'è': 'e', 'é': 'e', 'ì': 'i', 'ò': 'o', 'ù': 'u',
		},
	},
	"CAT": {
		Tag: "CAT",
		PrecomposedToBase: map[rune]rune{
			'À': 'A', 'É': 'E', 'È': 'E', 'Í': 'I', 'Ó': 'O', 'Ò': 'O', 'Ú': 'U',
			'à': 'a', 'é': 'e', 'è': 'e', 'í': 'i', 'ó': 'o', 'ò': 'o', 'ú': 'u',
		},
		// Ç/ç and Ŀ·l excluded: distinct phonemes/digraphs.
	},

	// Czech: native acute/long vowels (Á É Í Ó Ú Ý) are phonemically
	// distinct length markers and excluded from PrecomposedToBase; only
	// truly foreign-loanword diacritics would be safe to strip, and none
	// are listed here to keep the policy conservative.
	"CES": {Tag: "CES"},
	// Slovak: same rationale — ä is a distinct phoneme /æ/, acute vowels
	// mark length, ô is a diphthong. No safe PrecomposedToBase entries.
	"SLK": {Tag: "SLK"},
	"POL": {
		Tag: "POL",
		Transliterate: []FoldMap{
			{From: 'Ł', To: "l"}, {From: 'ł', To: "l"},
		},
		PrecomposedToBase: map[rune]rune{
			'Ą': 'A', 'ą': 'a', 'Ć': 'C', 'ć': 'c', 'Ę': 'E', 'ę': 'e',
			'Ł': 'L', 'ł': 'l', 'Ń': 'N', 'ń': 'n', 'Ó': 'O', 'ó': 'o',
			'Ś': 'S', 'ś': 's', 'Ź': 'Z', 'ź': 'z', 'Ż': 'Z', 'ż': 'z',
		},
	},
	"HRV": {Tag: "HRV"},
	"SRP": {Tag: "SRP"},

	"LIT": {
		Tag: "LIT",
		CaseMap: map[rune]rune{
			'Ė': 'ė', 'Į': 'į', 'Ų': 'ų',
		},
	},

	// Final-sigma (Σ/σ/ς) is left unimplemented here, matching upstream:
	// it is a word-boundary case rule, not a literal two-rune lookahead, and
	// PeekPair can only match a fixed pair of runes — it has no way to ask
	// "is the next character a word separator or end-of-string." See
	// DESIGN.md's Open Questions for why this stays unresolved rather than
	// forcing it through a mechanism that cannot express it.
	"ELL": {
		Tag:               "ELL",
		SpacingDiacritics: setOf(0x0301, 0x0308, 0x0342, 0x0313, 0x0314, 0x0345),
	},

	"RUS": {
		Tag: "RUS",
		// ISO/R 9:1968 scientific transliteration.
		Transliterate: []FoldMap{
			{From: 'А', To: "A"}, {From: 'Б', To: "B"}, {From: 'В', To: "V"},
			{From: 'Г', To: "G"}, {From: 'Д', To: "D"}, {From: 'Е', To: "E"},
			{From: 'Ж', To: "Ž"}, {From: 'З', To: "Z"}, {From: 'И', To: "I"},
			{From: 'Й', To: "J"}, {From: 'К', To: "K"}, {From: 'Л', To: "L"},
			{From: 'М', To: "M"}, {From: 'Н', To: "N"}, {From: 'О', To: "O"},
			{From: 'П', To: "P"}, {From: 'Р', To: "R"}, {From: 'С', To: "S"},
			{From: 'Т', To: "T"}, {From: 'У', To: "U"}, {From: 'Ф', To: "F"},
			{From: 'Х', To: "H"}, {From: 'Ц', To: "C"}, {From: 'Ч', To: "Č"},
			{From: 'Ш', To: "Š"}, {From: 'Щ', To: "Šč"}, {From: 'Ъ', To: "ʺ"},
			{From: 'Ы', To: "Y"}, {From: 'Ь', To: "ʹ"}, {From: 'Э', To: "È"},
			{From: 'Ю', To: "Ju"}, {From: 'Я', To: "Ja"},
			{From: 'а', To: "a"}, {From: 'б', To: "b"}, {From: 'в', To: "v"},
			{From: 'г', To: "g"}, {From: 'д', To: "d"}, {From: 'е', To: "e"},
			{From: 'ж', To: "ž"}, {From: 'з', To: "z"}, {From: 'и', To: "i"},
			{From: 'й', To: "j"}, {From: 'к', To: "k"}, {From: 'л', To: "l"},
			{From: 'м', To: "m"}, {From: 'н', To: "n"}, {From: 'о', To: "o"},
			{From: 'п', To: "p"}, {From: 'р', To: "r"}, {From: 'с', To: "s"},
			{From: 'т', To: "t"}, {From: 'у', To: "u"}, {From: 'ф', To: "f"},
			{From: 'х', To: "h"}, {From: 'ц', To: "c"}, {From: 'ч', To: "č"},
			{From: 'ш', To: "š"}, {From: 'щ', To: "šč"}, {From: 'ъ', To: "ʺ"},
			{From: 'ы', To: "y"}, {From: 'ь', To: "ʹ"}, {From: 'э', To: "è"},
			{From: 'ю', To: "ju"}, {From: 'я', To: "ja"},
		},
	},

	"ARA": {
		Tag: "ARA",
		// U+0651 SHADDA deliberately excluded: phonemically significant
		// (consonant gemination), never stripped by RemoveDiacritics.
		SpacingDiacritics: setOf(0x064B, 0x064C, 0x064D, 0x064E, 0x064F, 0x0650, 0x0652, 0x0670),
	},
	"HEB": {
		Tag: "HEB",
		SpacingDiacritics: setOf(
			0x0591, 0x0592, 0x0593, 0x0594, 0x0595, 0x0596, 0x0597, 0x0598,
			0x0599, 0x059A, 0x059B, 0x059C, 0x059D, 0x059E, 0x059F, 0x05A0,
			0x05A1, 0x05A2, 0x05A3, 0x05A4, 0x05A5, 0x05A6, 0x05A7, 0x05A8,
			0x05A9, 0x05AA, 0x05AB, 0x05AC, 0x05AD, 0x05AE, 0x05AF, 0x05B0,
			0x05B1, 0x05B2, 0x05B3, 0x05B4, 0x05B5, 0x05B6, 0x05B7, 0x05B8,
			0x05B9, 0x05BA, 0x05BB, 0x05BC, 0x05BD, 0x05BF, 0x05C1, 0x05C2,
		),
	},

	"VIE": {
		Tag: "VIE",
		// Policy exception: Vietnamese tone marks are stripped despite
		// having NFC precomposed forms, because romanized search indexes
		// for Vietnamese conventionally ignore tone.
		SpacingDiacritics: setOf(0x0300, 0x0301, 0x0303, 0x0309, 0x0323),
		PrecomposedToBase: vietnamesePrecomposedToBase(),
	},

	"ZHO": {
		Tag:               "ZHO",
		NeedsSegmentation: true,
		UnigramCJK:        true,
		SegmentRules:      []SegmentRule{WesternToScript, CJKIdeographUnigram, ScriptToWestern},
	},
	"JPN": {
		Tag:               "JPN",
		NeedsSegmentation: true,
		SegmentRules:      []SegmentRule{WesternToScript, ScriptToWestern},
	},
	"KOR": {
		Tag:               "KOR",
		NeedsSegmentation: true,
		SegmentRules:      []SegmentRule{WesternToScript, ScriptToWestern},
	},
	// Thai tone marks and vowel signs: standalone combining/spacing marks
	// over the consonant base, all opt-in-strippable under RemoveDiacritics.
	"THA": {
		Tag:               "THA",
		NeedsSegmentation: true,
		SegmentRules:      []SegmentRule{WesternToScript, ScriptToWestern},
		SpacingDiacritics: setOf(
			0x0E31, 0x0E34, 0x0E35, 0x0E36, 0x0E37, 0x0E38, 0x0E39, 0x0E3A,
			0x0E47, 0x0E48, 0x0E49, 0x0E4A, 0x0E4B, 0x0E4C, 0x0E4D, 0x0E4E,
		),
	},
	"LAO": {
		Tag:               "LAO",
		NeedsSegmentation: true,
		SegmentRules:      []SegmentRule{WesternToScript, ScriptToWestern},
		SpacingDiacritics: setOf(
			0x0EB1, 0x0EB4, 0x0EB5, 0x0EB6, 0x0EB7, 0x0EB8, 0x0EB9, 0x0EBB,
			0x0EBC, 0x0EC8, 0x0EC9, 0x0ECA, 0x0ECB, 0x0ECC, 0x0ECD,
		),
	},
	"MYA": {
		Tag:               "MYA",
		NeedsSegmentation: true,
		SegmentRules:      []SegmentRule{WesternToScript, ScriptToWestern},
		SpacingDiacritics: setOf(
			0x102B, 0x102C, 0x102D, 0x102E, 0x102F, 0x1030, 0x1031, 0x1032,
			0x1036, 0x1037, 0x1038, 0x1039, 0x103A, 0x103B, 0x103C, 0x103D, 0x103E,
		),
	},
	"KHM": {
		Tag:               "KHM",
		NeedsSegmentation: true,
		SegmentRules:      []SegmentRule{WesternToScript, ScriptToWestern},
		SpacingDiacritics: setOf(
			0x17B6, 0x17B7, 0x17B8, 0x17B9, 0x17BA, 0x17BB, 0x17BC, 0x17BD,
			0x17BE, 0x17BF, 0x17C0, 0x17C1, 0x17C2, 0x17C3, 0x17C4, 0x17C5,
			0x17C6, 0x17C7, 0x17C8, 0x17C9, 0x17CA, 0x17CB, 0x17CC, 0x17CD,
			0x17CE, 0x17CF, 0x17D0, 0x17D1, 0x17D2, 0x17D3, 0x17DD,
		),
	},

	// HIN/BEN/TAM SpacingDiacritics each include the script's virama (the
	// vowel-suppressing sign, 0x094D/0x09CD/0x0BCD); HIN and BEN add the
	// nukta/candrabindu/anusvara/visarga marks, TAM carries the virama alone.
	"HIN": {
		Tag:               "HIN",
		NeedsSegmentation: true,
		SegmentRules:      []SegmentRule{WesternToScript, ScriptToWestern},
		SpacingDiacritics: setOf(0x093C, 0x0901, 0x0902, 0x0903, 0x094D),
	},
	"BEN": {
		Tag:               "BEN",
		NeedsSegmentation: true,
		SegmentRules:      []SegmentRule{WesternToScript, ScriptToWestern},
		SpacingDiacritics: setOf(0x09BC, 0x0981, 0x0982, 0x0983, 0x09CD),
	},
	"TAM": {
		Tag:               "TAM",
		NeedsSegmentation: true,
		SegmentRules:      []SegmentRule{WesternToScript, ScriptToWestern},
		SpacingDiacritics: setOf(0x0BCD),
	},
}

func setOf(rs ...rune) map[rune]bool {
	m := make(map[rune]bool, len(rs))
	for _, r := range rs {
		m[r] = true
	}
	return m
}

// vietnamesePrecomposedToBase expands the full Latin-plus-tone-mark table
// for Vietnamese, used by RemoveDiacritics when the opt-in precomposed
// expansion is requested.
func vietnamesePrecomposedToBase() map[rune]rune {
	bases := map[rune][]rune{
		'a': []rune("àáảãạăằắẳẵặâầấẩẫậ"),
		'e': []rune("èéẻẽẹêềếểễệ"),
		'i': []rune("ìíỉĩị"),
		'o': []rune("òóỏõọôồốổỗộơờớởỡợ"),
		'u': []rune("ùúủũụưừứửữự"),
		'y': []rune("ỳýỷỹỵ"),
	}
	out := make(map[rune]rune)
	for base, variants := range bases {
		for _, v := range variants {
			out[v] = base
			upperBase := []rune(string(base))[0] - ('a' - 'A')
			out[toUpperRune(v)] = upperBase
		}
	}
	return out
}

func toUpperRune(r rune) rune {
	// Vietnamese decomposed letters upper-case exactly like ASCII would
	// for the base letter; a full case-fold table is unnecessary here
	// since Transliterate/RemoveDiacritics run after CaseFold in the
	// recommended pipeline ordering.
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	for _, pair := range [][2]rune{
		{'à', 'À'}, {'á', 'Á'}, {'ả', 'Ả'}, {'ã', 'Ã'}, {'ạ', 'Ạ'},
		{'ă', 'Ă'}, {'ằ', 'Ằ'}, {'ắ', 'Ắ'}, {'ẳ', 'Ẳ'}, {'ẵ', 'Ẵ'}, {'ặ', 'Ặ'},
		{'â', 'Â'}, {'ầ', 'Ầ'}, {'ấ', 'Ấ'}, {'ẩ', 'Ẩ'}, {'ẫ', 'Ẫ'}, {'ậ', 'Ậ'},
		{'è', 'È'}, {'é', 'É'}, {'ẻ', 'Ẻ'}, {'ẽ', 'Ẽ'}, {'ẹ', 'Ẹ'},
		{'ê', 'Ê'}, {'ề', 'Ề'}, {'ế', 'Ế'}, {'ể', 'Ể'}, {'ễ', 'Ễ'}, {'ệ', 'Ệ'},
		{'ì', 'Ì'}, {'í', 'Í'}, {'ỉ', 'Ỉ'}, {'ĩ', 'Ĩ'}, {'ị', 'Ị'},
		{'ò', 'Ò'}, {'ó', 'Ó'}, {'ỏ', 'Ỏ'}, {'õ', 'Õ'}, {'ọ', 'Ọ'},
		{'ô', 'Ô'}, {'ồ', 'Ồ'}, {'ố', 'Ố'}, {'ổ', 'Ổ'}, {'ỗ', 'Ỗ'}, {'ộ', 'Ộ'},
		{'ơ', 'Ơ'}, {'ờ', 'Ờ'}, {'ớ', 'Ớ'}, {'ở', 'Ở'}, {'ỡ', 'Ỡ'}, {'ợ', 'Ợ'},
		{'ù', 'Ù'}, {'ú', 'Ú'}, {'ủ', 'Ủ'}, {'ũ', 'Ũ'}, {'ụ', 'Ụ'},
		{'ư', 'Ư'}, {'ừ', 'Ừ'}, {'ứ', 'Ứ'}, {'ử', 'Ử'}, {'ữ', 'Ữ'}, {'ự', 'Ự'},
		{'ỳ', 'Ỳ'}, {'ý', 'Ý'}, {'ỷ', 'Ỷ'}, {'ỹ', 'Ỹ'}, {'ỵ', 'Ỵ'},
	} {
		if pair[0] == r {
			return pair[1]
		}
	}
	return r
}

// Lookup returns the policy entry for tag, falling back to DefaultTag for
// unrecognized tags (spec §6: "Unknown tags fall back to ENG-equivalent").
func Lookup(tag Tag) Entry {
	if e, ok := Table[tag]; ok {
		return e
	}
	e, ok := Table[DefaultTag]
	if !ok {
		panic("lang: DefaultTag missing from Table — this is a bug")
	}
	return e
}
