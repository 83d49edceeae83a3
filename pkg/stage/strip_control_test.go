package stage_test

import (
	"testing"

	"github.com/hazyhaar/normy/pkg/contract"
	"github.com/hazyhaar/normy/pkg/lang"
	"github.com/hazyhaar/normy/pkg/stage"
)

func TestStripControlCharsContract(t *testing.T) {
	contract.Run(t, stage.StripControlChars{}, contract.Config{
		Changing: map[lang.Tag][]string{
			"ENG": {"hello\x00world\x07"},
		},
		Stable: []string{"", "hello world", "café"},
	})
}

func TestStripControlCharsRemovesNulAndBell(t *testing.T) {
	e := lang.Lookup("ENG")
	got, err := stage.StripControlChars{}.Apply("a\x00b\x07c", e)
	if err != nil {
		t.Fatal(err)
	}
	if want := "abc"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStripControlCharsLeavesFormatControlsAlone(t *testing.T) {
	e := lang.Lookup("ENG")
	in := "a​b" // ZWSP is Cf, not Cc
	got, err := stage.StripControlChars{}.Apply(in, e)
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Errorf("StripControlChars must not touch Cf characters, got %q", got)
	}
}

func TestStripFormatControlsContract(t *testing.T) {
	contract.Run(t, stage.StripFormatControls{}, contract.Config{
		Changing: map[lang.Tag][]string{
			"ENG": {"a​b‌c‍d\\ufeffe"},
		},
		Stable: []string{"", "hello world"},
	})
}

func TestStripFormatControlsRemovesZWSPZWNJZWJBOM(t *testing.T) {
	e := lang.Lookup("ENG")
	got, err := stage.StripFormatControls{}.Apply("a​b‌c‍d\\ufeffe", e)
	if err != nil {
		t.Fatal(err)
	}
	if want := "abcde"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStripFormatControlsLeavesControlCharsAlone(t *testing.T) {
	e := lang.Lookup("ENG")
	in := "a\x00b"
	got, err := stage.StripFormatControls{}.Apply(in, e)
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Errorf("StripFormatControls must not touch Cc characters, got %q", got)
	}
}
