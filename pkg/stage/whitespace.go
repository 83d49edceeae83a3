package stage

import (
	"strings"
	"unicode"

	"github.com/hazyhaar/normy/pkg/lang"
)

// CollapseWhitespace collapses runs of two or more ASCII spaces into one.
// CollapseWhitespaceUnicode does the same for any Unicode whitespace,
// mapping the collapsed run to a single U+0020.
type CollapseWhitespace struct{ Unicode bool }

func (s CollapseWhitespace) Name() string {
	if s.Unicode {
		return "collapse_whitespace_unicode"
	}
	return "collapse_whitespace"
}

func isWS(r rune, unicodeWS bool) bool {
	if unicodeWS {
		return unicode.IsSpace(r)
	}
	return r == ' '
}

func (s CollapseWhitespace) NeedsApply(input string, _ lang.Entry) bool {
	prevWS := false
	for _, r := range input {
		ws := isWS(r, s.Unicode)
		if ws && prevWS {
			return true
		}
		if s.Unicode && ws && r != ' ' {
			return true
		}
		prevWS = ws
	}
	return false
}

func (s CollapseWhitespace) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}
	var sb strings.Builder
	sb.Grow(len(input))
	prevWS := false
	for _, r := range input {
		ws := isWS(r, s.Unicode)
		if ws {
			if !prevWS {
				sb.WriteByte(' ')
			}
			prevWS = true
			continue
		}
		prevWS = false
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

func (s CollapseWhitespace) FusedAdapter(_ lang.Entry) CharAdapter {
	return NewStatefulMapAdapter(func() func(rune) ([]rune, bool) {
		prevWS := false
		return func(r rune) ([]rune, bool) {
			ws := isWS(r, s.Unicode)
			if ws {
				if prevWS {
					return nil, true
				}
				prevWS = true
				return []rune{' '}, false
			}
			prevWS = false
			return []rune{r}, false
		}
	})
}

var _ Fusable = CollapseWhitespace{}

// TrimWhitespace strips leading/trailing ASCII spaces. TrimWhitespaceUnicode
// strips any leading/trailing Unicode whitespace. Both are Fusable: the
// fused adapter below holds interior whitespace until it knows whether a
// non-whitespace rune follows.
type TrimWhitespace struct{ Unicode bool }

func (s TrimWhitespace) Name() string {
	if s.Unicode {
		return "trim_whitespace_unicode"
	}
	return "trim_whitespace"
}

func (s TrimWhitespace) cutset() string {
	if s.Unicode {
		return ""
	}
	return " "
}

func (s TrimWhitespace) NeedsApply(input string, _ lang.Entry) bool {
	if input == "" {
		return false
	}
	first := []rune(input)[0]
	runes := []rune(input)
	last := runes[len(runes)-1]
	return isWS(first, s.Unicode) || isWS(last, s.Unicode)
}

func (s TrimWhitespace) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}
	if s.Unicode {
		return strings.TrimFunc(input, unicode.IsSpace), nil
	}
	return strings.Trim(input, " "), nil
}

// FusedAdapter realizes trimming as a bounded streaming transducer: leading
// whitespace is dropped until the first non-whitespace rune, and trailing
// whitespace is held in a pending buffer that is flushed ahead of the next
// non-whitespace rune — or simply never flushed, and so dropped, if the
// stream ends first.
func (s TrimWhitespace) FusedAdapter(_ lang.Entry) CharAdapter {
	return NewStatefulMapAdapter(func() func(rune) ([]rune, bool) {
		started := false
		var pending []rune
		return func(r rune) ([]rune, bool) {
			ws := isWS(r, s.Unicode)
			if !started {
				if ws {
					return nil, true
				}
				started = true
				return []rune{r}, false
			}
			if ws {
				pending = append(pending, r)
				return nil, true
			}
			out := append(append([]rune{}, pending...), r)
			pending = pending[:0]
			return out, false
		}
	})
}

var _ Fusable = TrimWhitespace{}

// NormalizeWhitespaceFull trims edges, collapses interior runs, and maps
// every Unicode whitespace character to U+0020 in one pass — the
// combination stage for pipelines that want a single whitespace-cleanup
// step instead of composing Collapse+Trim.
type NormalizeWhitespaceFull struct{}

func (NormalizeWhitespaceFull) Name() string { return "normalize_whitespace_full" }

func (NormalizeWhitespaceFull) NeedsApply(input string, _ lang.Entry) bool {
	if input == "" {
		return false
	}
	runes := []rune(input)
	if unicode.IsSpace(runes[0]) || unicode.IsSpace(runes[len(runes)-1]) {
		return true
	}
	prevWS := false
	for _, r := range runes {
		ws := unicode.IsSpace(r)
		if ws && (prevWS || r != ' ') {
			return true
		}
		prevWS = ws
	}
	return false
}

func (s NormalizeWhitespaceFull) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}
	var sb strings.Builder
	sb.Grow(len(input))
	prevWS := false
	started := false
	for _, r := range input {
		ws := unicode.IsSpace(r)
		if ws {
			if started && !prevWS {
				sb.WriteByte(' ')
			}
			prevWS = true
			continue
		}
		started = true
		prevWS = false
		sb.WriteRune(r)
	}
	out := sb.String()
	return strings.TrimRight(out, " "), nil
}

// FusedAdapter combines the same leading/trailing hold-and-flush technique
// TrimWhitespace uses with CollapseWhitespace's single-space collapsing.
func (NormalizeWhitespaceFull) FusedAdapter(_ lang.Entry) CharAdapter {
	return NewStatefulMapAdapter(func() func(rune) ([]rune, bool) {
		started := false
		pendingWS := false
		return func(r rune) ([]rune, bool) {
			ws := unicode.IsSpace(r)
			if ws {
				if started {
					pendingWS = true
				}
				return nil, true
			}
			var out []rune
			if started && pendingWS {
				out = append(out, ' ')
			}
			started = true
			pendingWS = false
			out = append(out, r)
			return out, false
		}
	})
}

var _ Fusable = NormalizeWhitespaceFull{}
