package stage_test

import (
	"testing"

	"github.com/hazyhaar/normy/pkg/contract"
	"github.com/hazyhaar/normy/pkg/lang"
	"github.com/hazyhaar/normy/pkg/stage"
)

func TestSegmentWordsContract(t *testing.T) {
	contract.Run(t, stage.SegmentWords{}, contract.Config{
		Changing: map[lang.Tag][]string{
			"ZHO": {"北京"},
			"HIN": {"पत्नी"},
		},
		Stable: []string{"", "hello world", "already spaced"},
	})
}

func TestSegmentWordsChineseScenario(t *testing.T) {
	e := lang.Lookup("ZHO")
	got, err := stage.SegmentWords{}.Apply("北京", e)
	if err != nil {
		t.Fatal(err)
	}
	if want := "北 京"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSegmentWordsHindiViramaScenario(t *testing.T) {
	e := lang.Lookup("HIN")
	got, err := stage.SegmentWords{}.Apply("पत्नी", e)
	if err != nil {
		t.Fatal(err)
	}
	if want := "पत्​नी"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSegmentWordsImplementsFusable(t *testing.T) {
	if _, ok := stage.AsFusable(stage.SegmentWords{}); !ok {
		t.Fatal("SegmentWords should implement Fusable")
	}
}
