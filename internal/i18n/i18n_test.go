package i18n

import "testing"

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
		ok    bool
	}{
		{"en", English, true},
		{"ar", Arabic, true},
		{"fr", English, false},
		{"", English, false},
	}

	for _, tt := range tests {
		got, ok := ParseLanguage(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLanguage(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTranslatorLookup(t *testing.T) {
	en := New(English)
	if got := en.T(KeyAppName); got != "Modaber" {
		t.Errorf("english KeyAppName = %q", got)
	}
	if en.RTL() {
		t.Error("english translator reports RTL")
	}

	ar := New(Arabic)
	if got := ar.T(KeyAppName); got == "Modaber" || got == "" {
		t.Errorf("arabic KeyAppName not translated: %q", got)
	}
	if !ar.RTL() {
		t.Error("arabic translator does not report RTL")
	}
}

func TestTranslatorFallback(t *testing.T) {
	const unknown Key = "key.does.not.exist"

	ar := New(Arabic)
	if got := ar.T(unknown); got != string(unknown) {
		t.Errorf("unknown key = %q, want raw tag", got)
	}
}

func TestArabicCoversEnglish(t *testing.T) {
	for k := range english {
		if _, ok := arabic[k]; !ok {
			t.Errorf("missing arabic translation for %q", k)
		}
	}
}
