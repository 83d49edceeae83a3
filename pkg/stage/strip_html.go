package stage

import (
	"strings"

	"golang.org/x/net/html"
	xhtml "golang.org/x/net/html/atom"

	"github.com/hazyhaar/normy/pkg/lang"
)

// blockElements trigger a word-boundary space in the emitted text so that
// "<p>a</p><p>b</p>" doesn't flatten to "ab".
var blockElements = map[xhtml.Atom]bool{
	xhtml.P: true, xhtml.Div: true, xhtml.Br: true, xhtml.Li: true,
	xhtml.Tr: true, xhtml.Td: true, xhtml.H1: true, xhtml.H2: true,
	xhtml.H3: true, xhtml.H4: true, xhtml.H5: true, xhtml.H6: true,
}

// StripHtml parses HTML with a standards-compliant tokenizer and emits the
// document's text content, with entities decoded. Content of <script> and
// <style> elements is treated by the tokenizer itself as raw text — never
// entity-decoded or re-flowed — and <pre>/<code> text nodes are emitted
// exactly as the tokenizer reports them, so none of the four lose internal
// whitespace to StripHtml itself (see end-to-end scenario 8 and DESIGN.md
// for how later stages in the pipeline are expected to treat that text).
// Non-fusable: HTML structure is determined by matching tag state, not a
// per-character or one-lookahead rule.
type StripHtml struct{}

func (StripHtml) Name() string { return "strip_html" }

func (StripHtml) NeedsApply(input string, _ lang.Entry) bool {
	return strings.ContainsAny(input, "<&")
}

func (s StripHtml) Apply(input string, e lang.Entry) (string, error) {
	if !s.NeedsApply(input, e) {
		return input, nil
	}

	z := html.NewTokenizer(strings.NewReader(input))
	var sb strings.Builder
	sb.Grow(len(input))

	ensureBoundary := func() {
		out := sb.String()
		if out != "" && !strings.HasSuffix(out, " ") {
			sb.WriteByte(' ')
		}
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF ends the loop; any other tokenizer error is folded
			// into the same error-recovery state the HTML5 tokenizer
			// already applies to malformed markup, per the Open Question
			// resolution in SPEC_FULL.md §9.
			return strings.TrimSpace(sb.String()), nil

		case html.TextToken:
			sb.Write(z.Text())

		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if blockElements[xhtml.Lookup(name)] {
				ensureBoundary()
			}
		}
	}
}
