package markdown

import (
	"strings"
	"testing"
)

func TestRender_Empty(t *testing.T) {
	if got := Render(80, ""); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
	if got := Render(80, "   \n\t"); got != "" {
		t.Errorf("expected empty output for whitespace, got %q", got)
	}
}

func TestRender_PlainText(t *testing.T) {
	got := Render(80, "Call the dentist about the appointment")
	if !strings.Contains(got, "Call the dentist") {
		t.Errorf("expected content preserved, got %q", got)
	}
}

func TestRender_NormalizesNewlines(t *testing.T) {
	got := Render(80, "line one\r\nline two\r")
	if strings.Contains(got, "\r") {
		t.Errorf("expected carriage returns removed, got %q", got)
	}
}

func TestRender_NoTrailingNewlines(t *testing.T) {
	got := Render(80, "some text\n\n\n")
	if strings.HasSuffix(got, "\n") {
		t.Errorf("expected trailing newlines trimmed, got %q", got)
	}
}
