package i18n

import (
	"sort"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLocaleKeysParity(t *testing.T) {
	manager, err := NewManager(LangEN)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	en := manager.locales[LangEN]
	zh := manager.locales[LangZH]
	if len(zh) == 0 {
		t.Fatal("zh locale is missing")
	}

	if missing := missingKeys(en, zh); len(missing) > 0 {
		t.Errorf("keys missing in zh locale: %s", strings.Join(missing, ", "))
	}
	if missing := missingKeys(zh, en); len(missing) > 0 {
		t.Errorf("keys missing in en locale: %s", strings.Join(missing, ", "))
	}
}

func TestTranslateFallsBackToDefaultLanguage(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"locales/en.json": {Data: []byte(`{"greeting":"Hello","farewell":"Bye"}`)},
		"locales/zh.json": {Data: []byte(`{"greeting":"你好"}`)},
	}
	manager, err := NewManagerFromFS("zh-CN", files, "locales")
	if err != nil {
		t.Fatalf("NewManagerFromFS returned error: %v", err)
	}
	if manager.DefaultLanguage() != LangZH {
		t.Fatalf("expected default language zh, got %q", manager.DefaultLanguage())
	}

	if got := manager.Translate("zh", "greeting"); got != "你好" {
		t.Fatalf("expected zh greeting, got %q", got)
	}
	if got := manager.Translate("en", "farewell"); got != "Bye" {
		t.Fatalf("expected en farewell, got %q", got)
	}
	if got := manager.Translate("zh", "missing.key"); got != "missing.key" {
		t.Fatalf("expected key echo for unknown key, got %q", got)
	}
}

func TestNewManagerRequiresEnglish(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"locales/zh.json": {Data: []byte(`{"greeting":"你好"}`)},
	}
	if _, err := NewManagerFromFS("zh", files, "locales"); err == nil {
		t.Fatal("expected error when en locale is missing")
	}
}

func TestDetectFromAcceptLanguage(t *testing.T) {
	t.Parallel()

	manager, err := NewManager("fr")
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}
	if manager.DefaultLanguage() != LangEN {
		t.Fatalf("unsupported default should fall back to en, got %q", manager.DefaultLanguage())
	}

	tests := []struct {
		header string
		want   string
	}{
		{header: "zh-CN,zh;q=0.9,en;q=0.8", want: LangZH},
		{header: "de-DE, en-US;q=0.7", want: LangEN},
		{header: "", want: LangEN},
	}
	for _, test := range tests {
		if got := manager.DetectFromAcceptLanguage(test.header); got != test.want {
			t.Fatalf("DetectFromAcceptLanguage(%q) = %q, want %q", test.header, got, test.want)
		}
	}
}

func missingKeys(source map[string]string, target map[string]string) []string {
	missing := make([]string, 0)
	for key := range source {
		if _, ok := target[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
