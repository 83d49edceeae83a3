package stage_test

import (
	"testing"

	"github.com/hazyhaar/normy/pkg/contract"
	"github.com/hazyhaar/normy/pkg/lang"
	"github.com/hazyhaar/normy/pkg/stage"
)

func TestUnifyWidthContract(t *testing.T) {
	contract.Run(t, stage.UnifyWidth{}, contract.Config{
		Changing: map[lang.Tag][]string{
			"ENG": {"ＡＢＣ１２３"},
			"JPN": {"ＡＢＣ"},
		},
		Stable: []string{"", "hello", "123"},
	})
}

func TestUnifyWidthFullwidthLetters(t *testing.T) {
	e := lang.Lookup("ENG")
	got, err := stage.UnifyWidth{}.Apply("ＡＢＣ", e)
	if err != nil {
		t.Fatal(err)
	}
	if want := "ABC"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
