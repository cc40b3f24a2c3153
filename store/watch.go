package store

import (
	"context"
	"time"

	"github.com/agendadev/agenda/internal/notify"
)

// Watch periodically scans for reminders whose firing instant has passed
// without a fallback notification this session, and displays one for
// each. It blocks until ctx is done.
//
// This is redundant with scheduled delivery on purpose: it covers
// reminders whose scheduled notification never arrived. The notified
// marker does not survive restarts, so a reminder whose scheduled
// delivery failed may fire the fallback again in a later session.
func (s *Store) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fireOverdue(ctx)
		}
	}
}

// fireOverdue displays a notification for every overdue, not-yet-notified
// reminder and marks it notified in memory only.
func (s *Store) fireOverdue(ctx context.Context) {
	nowMillis := s.now().UnixMilli()

	s.mu.Lock()
	var due []Reminder
	for i := range s.reminders {
		if s.reminders[i].Notified || s.reminders[i].Timestamp > nowMillis {
			continue
		}
		s.reminders[i].Notified = true
		due = append(due, s.reminders[i])
	}
	s.mu.Unlock()

	for _, reminder := range due {
		s.notifier.Display(ctx, notify.Payload{Title: "Reminder", Body: reminder.Title})
	}
}
