package stage

import (
	"strings"

	"github.com/hazyhaar/normy/pkg/lang"
)

// markdownDelimiters are the characters that can open a Markdown construct
// StripMarkdown recognizes — the conservative trigger set for NeedsApply.
const markdownDelimiters = "*_`#>-+[]!~"

// StripMarkdown removes Markdown block and inline syntax, emitting plain
// text. Fenced code blocks (```) and inline code spans (`...`) are copied
// through verbatim, matching StripHtml's treatment of <pre>/<code>. An
// unterminated fence or span is treated as extending to end of input — the
// deterministic recovery policy chosen in SPEC_FULL.md §9 for the open
// question about nested/unbalanced syntax. Non-fusable: fence and span
// detection require scanning ahead for a matching delimiter, not a bounded
// one-lookahead rule.
type StripMarkdown struct{}

func (StripMarkdown) Name() string { return "strip_markdown" }

func (StripMarkdown) NeedsApply(input string, _ lang.Entry) bool {
	return strings.ContainsAny(input, markdownDelimiters)
}

func (s StripMarkdown) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}

	var sb strings.Builder
	sb.Grow(len(input))
	lines := strings.Split(input, "\n")
	inFence := false

	for li, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			sb.WriteString(line)
			if li != len(lines)-1 {
				sb.WriteByte('\n')
			}
			continue
		}
		sb.WriteString(stripInline(stripBlockPrefix(line)))
		if li != len(lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

// stripBlockPrefix removes leading block markers: ATX headings (#...),
// blockquotes (>), and unordered list bullets (-,*,+).
func stripBlockPrefix(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]

	for strings.HasPrefix(trimmed, "#") {
		trimmed = strings.TrimPrefix(trimmed, "#")
	}
	trimmed = strings.TrimPrefix(trimmed, " ")

	for _, p := range []string{"> ", ">", "- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, p) {
			trimmed = strings.TrimPrefix(trimmed, p)
			break
		}
	}
	return indent + trimmed
}

// stripInline removes inline emphasis/link syntax while leaving inline
// code spans (`...`) verbatim.
func stripInline(line string) string {
	var sb strings.Builder
	sb.Grow(len(line))
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch r {
		case '`':
			end := indexRune(runes, i+1, '`')
			if end == -1 {
				sb.WriteString(string(runes[i+1:]))
				i = len(runes)
				continue
			}
			sb.WriteString(string(runes[i+1 : end]))
			i = end + 1
		case '*', '_', '~':
			i++ // drop emphasis/strikethrough markers
		case '!':
			if i+1 < len(runes) && runes[i+1] == '[' {
				i++ // image marker; '[' handled below drops the alt-text brackets
			} else {
				sb.WriteRune(r)
				i++
			}
		case '[':
			closeBracket := indexRune(runes, i+1, ']')
			if closeBracket == -1 {
				sb.WriteRune(r)
				i++
				continue
			}
			sb.WriteString(string(runes[i+1 : closeBracket]))
			i = closeBracket + 1
			if i < len(runes) && runes[i] == '(' {
				closeParen := indexRune(runes, i+1, ')')
				if closeParen == -1 {
					i = len(runes)
				} else {
					i = closeParen + 1
				}
			}
		default:
			sb.WriteRune(r)
			i++
		}
	}
	return sb.String()
}

func indexRune(runes []rune, from int, target rune) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}
