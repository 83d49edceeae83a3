package stage

import (
	"testing"

	"github.com/hazyhaar/normy/pkg/lang"
)

func TestStripMarkdownHeadingAndEmphasis(t *testing.T) {
	e := lang.Lookup("ENG")
	got, err := StripMarkdown{}.Apply("# Title\nThis is **bold** and _italic_.", e)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Title\nThis is bold and italic."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStripMarkdownInlineCodeSurvivesVerbatim(t *testing.T) {
	e := lang.Lookup("ENG")
	got, err := StripMarkdown{}.Apply("run `go test ./...` now", e)
	if err != nil {
		t.Fatal(err)
	}
	if want := "run go test ./... now"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStripMarkdownFencedCodeBlockSurvivesVerbatim(t *testing.T) {
	e := lang.Lookup("ENG")
	in := "before\n```\nfunc main() {}\n```\nafter"
	got, err := StripMarkdown{}.Apply(in, e)
	if err != nil {
		t.Fatal(err)
	}
	if want := "before\nfunc main() {}\nafter"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStripMarkdownLinkKeepsLabelDropsURL(t *testing.T) {
	e := lang.Lookup("ENG")
	got, err := StripMarkdown{}.Apply("see [the docs](https://example.com/docs) for more", e)
	if err != nil {
		t.Fatal(err)
	}
	if want := "see the docs for more"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStripMarkdownBlockquoteAndBullet(t *testing.T) {
	e := lang.Lookup("ENG")
	got, err := StripMarkdown{}.Apply("> quoted line\n- bullet one", e)
	if err != nil {
		t.Fatal(err)
	}
	if want := "quoted line\nbullet one"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStripMarkdownNeedsApplyFalseForPlainText(t *testing.T) {
	e := lang.Lookup("ENG")
	if (StripMarkdown{}).NeedsApply("plain text with no markers", e) {
		t.Error("NeedsApply should be false for text with no markdown delimiters")
	}
}
