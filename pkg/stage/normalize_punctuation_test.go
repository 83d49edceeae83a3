package stage_test

import (
	"testing"

	"github.com/hazyhaar/normy/pkg/contract"
	"github.com/hazyhaar/normy/pkg/lang"
	"github.com/hazyhaar/normy/pkg/stage"
)

func TestNormalizePunctuationContract(t *testing.T) {
	contract.Run(t, stage.NormalizePunctuation{}, contract.Config{
		Changing: map[lang.Tag][]string{
			"ENG": {"“quoted” — done…"},
		},
		Stable: []string{"", "plain ascii text", "123!@#"},
	})
}

func TestNormalizePunctuationSmartQuotesAndDash(t *testing.T) {
	e := lang.Lookup("ENG")
	got, err := stage.NormalizePunctuation{}.Apply("“Hello” — world…", e)
	if err != nil {
		t.Fatal(err)
	}
	if want := "\"Hello\" - world."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
