package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  hello  ", want: "hello"},
		{name: "lowercase", input: "Hello World", want: "hello world"},
		{name: "compress multiple spaces", input: "hello   world", want: "hello world"},
		{name: "diacritics preserved", input: "Café", want: "café"},
		{name: "hyphens preserved", input: "well-known", want: "well-known"},
		{name: "apostrophes preserved", input: "don't", want: "don't"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "mixed", input: "  Hello   World  ", want: "hello world"},
		{name: "tabs and spaces", input: "\t hello \t", want: "hello"},
		{name: "single word", input: "ABANDON", want: "abandon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeHeadword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "  Run  ", want: "Run"},
		{input: "give\t\tup", want: "give up"},
		{input: "line\nbreak", want: "line break"},
		{input: " \n\t ", want: ""},
	}
	for _, tt := range tests {
		if got := NormalizeHeadword(tt.input); got != tt.want {
			t.Errorf("NormalizeHeadword(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizePartOfSpeech(t *testing.T) {
	t.Parallel()

	if got := NormalizePartOfSpeech("  Noun "); got != "noun" {
		t.Errorf("NormalizePartOfSpeech = %q, want %q", got, "noun")
	}
	if got := NormalizePartOfSpeech(""); got != "" {
		t.Errorf("NormalizePartOfSpeech(empty) = %q, want empty", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	if got := TruncateRunes("你好世界", 2); got != "你好" {
		t.Errorf("TruncateRunes = %q, want %q", got, "你好")
	}
	if got := TruncateRunes("abc", 10); got != "abc" {
		t.Errorf("TruncateRunes = %q, want %q", got, "abc")
	}
	if got := TruncateRunes("abc", 0); got != "" {
		t.Errorf("TruncateRunes(0) = %q, want empty", got)
	}
}
