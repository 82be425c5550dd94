package i18n_test

import (
	"testing"

	"github.com/typeforge/typeforge/i18n"
)

func TestTranslator_LanguageSwitch(t *testing.T) {
	defer i18n.SetLanguage("en")

	if got := i18n.T("invalid_type", nil); got != "invalid type" {
		t.Fatalf("en: %q", got)
	}
	i18n.SetLanguage("ja")
	if got := i18n.T("invalid_type", nil); got != "型が不正です" {
		t.Fatalf("ja: %q", got)
	}
	// unknown codes fall back to the code itself
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("fallback: %q", got)
	}
}
