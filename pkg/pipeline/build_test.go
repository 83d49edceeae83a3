package pipeline

import (
	"errors"
	"testing"

	"github.com/hazyhaar/normy/pkg/stage"
)

func TestBuildRejectsTransliterateWithNoTable(t *testing.T) {
	_, err := Build("ENG", stage.Transliterate{})
	if err == nil {
		t.Fatal("expected ConfigError, got nil")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
	if cfgErr.Stage != "transliterate" || cfgErr.Lang != "ENG" {
		t.Errorf("got Stage=%q Lang=%q, want transliterate/ENG", cfgErr.Stage, cfgErr.Lang)
	}
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Error("ConfigError must unwrap to ErrInvalidConfiguration")
	}
}

func TestBuildRejectsRemoveDiacriticsWithNoTable(t *testing.T) {
	_, err := Build("ENG", stage.RemoveDiacritics{})
	if err == nil {
		t.Fatal("expected ConfigError, got nil")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
	if cfgErr.Stage != "remove_diacritics" {
		t.Errorf("got Stage=%q, want remove_diacritics", cfgErr.Stage)
	}
}

func TestBuildAcceptsOptInStagesWhenTablePopulated(t *testing.T) {
	if _, err := Build("DEU", stage.Transliterate{}); err != nil {
		t.Errorf("DEU has a transliteration table, Build should not error: %v", err)
	}
	if _, err := Build("FRA", stage.RemoveDiacritics{}); err != nil {
		t.Errorf("FRA has a precomposed-to-base table, Build should not error: %v", err)
	}
}

func TestBuildRejectsRemoveDiacriticsForLanguageWithOnlyTransliterate(t *testing.T) {
	// DEU's Transliterate table is populated but it carries no
	// SpacingDiacritics/PrecomposedToBase of its own, so RemoveDiacritics
	// alone (without Transliterate also in the stage list) must still be
	// rejected as a permanent no-op.
	_, err := Build("DEU", stage.RemoveDiacritics{})
	if err == nil {
		t.Fatal("expected ConfigError for DEU + RemoveDiacritics, got nil")
	}
}
