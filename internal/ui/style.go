package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dueSoonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	advisoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Italic(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// dueSoonWindow is how far ahead a reminder counts as due soon.
const dueSoonWindow = time.Hour

// StyleWhen styles a reminder's countdown by urgency: overdue red,
// within the hour yellow, otherwise muted.
func StyleWhen(text string, at time.Time, now time.Time) string {
	if !ansiEnabled() {
		return text
	}
	switch {
	case !at.After(now):
		return overdueStyle.Render(text)
	case at.Sub(now) <= dueSoonWindow:
		return dueSoonStyle.Render(text)
	default:
		return mutedStyle.Render(text)
	}
}

// StyleAdvisory styles a non-fatal notification advisory.
func StyleAdvisory(text string) string {
	if !ansiEnabled() {
		return text
	}
	return advisoryStyle.Render(text)
}

// StyleProgress styles a todo's done/total progress, green when complete.
func StyleProgress(text string, done, total int) string {
	if !ansiEnabled() {
		return text
	}
	if total > 0 && done == total {
		return doneStyle.Render(text)
	}
	return mutedStyle.Render(text)
}
