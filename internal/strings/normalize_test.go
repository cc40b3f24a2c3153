package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: "  \t\n  ", want: ""},
		{name: "collapses runs", input: "buy   some\tmilk", want: "buy some milk"},
		{name: "trims edges", input: "  call mom  ", want: "call mom"},
		{name: "already normal", input: "water plants", want: "water plants"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tc.input); got != tc.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeLowerTrimSpace(t *testing.T) {
	if got := NormalizeLowerTrimSpace("  AbC3f  "); got != "abc3f" {
		t.Errorf("expected %q, got %q", "abc3f", got)
	}
}

func TestNormalizeNewlines(t *testing.T) {
	if got := NormalizeNewlines("a\r\nb\rc\n"); got != "a\nb\nc\n" {
		t.Errorf("expected %q, got %q", "a\nb\nc\n", got)
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	if got := TrimTrailingNewlines("body\n\r\n"); got != "body" {
		t.Errorf("expected %q, got %q", "body", got)
	}
}
