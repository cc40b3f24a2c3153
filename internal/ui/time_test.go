package ui

import (
	"testing"
	"time"
)

func TestFormatDurationShort(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{duration: -5 * time.Second, want: "0s"},
		{duration: 42 * time.Second, want: "42s"},
		{duration: 5 * time.Minute, want: "5m"},
		{duration: 90 * time.Minute, want: "1h"},
		{duration: 26 * time.Hour, want: "1d"},
		{duration: 73 * time.Hour, want: "3d"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatDurationShort(tc.duration); got != tc.want {
				t.Errorf("FormatDurationShort(%v) = %q, want %q", tc.duration, got, tc.want)
			}
		})
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if got := FormatTimeAgo(now.Add(-2*time.Minute), now); got != "2m ago" {
		t.Errorf("expected %q, got %q", "2m ago", got)
	}
	if got := FormatTimeAgo(time.Time{}, now); got != "-" {
		t.Errorf("expected %q for zero time, got %q", "-", got)
	}
}

func TestFormatTimeUntil(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if got := FormatTimeUntil(now.Add(2*time.Hour), now); got != "in 2h" {
		t.Errorf("expected %q, got %q", "in 2h", got)
	}
	if got := FormatTimeUntil(now.Add(-time.Minute), now); got != "now" {
		t.Errorf("expected %q for passed instant, got %q", "now", got)
	}
	if got := FormatTimeUntil(time.Time{}, now); got != "-" {
		t.Errorf("expected %q for zero time, got %q", "-", got)
	}
}
