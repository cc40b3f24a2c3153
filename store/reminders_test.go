package store

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"
)

// localNow is a clock pinned to local midnight so that same-day reminders
// derived in local wall-clock time are unambiguously in the future.
var localNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

func TestAddReminder(t *testing.T) {
	s, _, notifier := newTestStoreAt(t, localNow)

	reminder, err := s.AddReminder(ReminderOptions{
		Date:        "2025-06-01",
		Time:        "14:30",
		Title:       "Dentist",
		Description: "bring insurance card",
	})
	if err != nil {
		t.Fatal(err)
	}
	if reminder == nil {
		t.Fatal("expected a reminder")
	}

	wantAt := time.Date(2025, 6, 1, 14, 30, 0, 0, time.Local)
	if reminder.Timestamp != wantAt.UnixMilli() {
		t.Errorf("timestamp = %d, want %d", reminder.Timestamp, wantAt.UnixMilli())
	}
	if reminder.Time != "14:30" || reminder.Date != "2025-06-01" {
		t.Errorf("date/time = %q/%q, want 2025-06-01/14:30", reminder.Date, reminder.Time)
	}
	if reminder.AllDay {
		t.Error("expected a timed reminder")
	}
	if reminder.Notified {
		t.Error("new reminder should not be marked notified")
	}

	s.Flush()
	scheduled := notifier.callsOf("schedule")
	if len(scheduled) != 1 {
		t.Fatalf("expected 1 schedule call, got %d", len(scheduled))
	}
	if scheduled[0].id != reminder.ID {
		t.Errorf("scheduled id = %q, want %q", scheduled[0].id, reminder.ID)
	}
	if !scheduled[0].at.Equal(wantAt) {
		t.Errorf("scheduled at = %v, want %v", scheduled[0].at, wantAt)
	}
	if scheduled[0].payload.Title != "Dentist" || scheduled[0].payload.Body != "bring insurance card" {
		t.Errorf("payload = %+v", scheduled[0].payload)
	}
}

func TestAddReminderAllDay(t *testing.T) {
	s, _, _ := newTestStoreAt(t, localNow)

	reminder, err := s.AddReminder(ReminderOptions{
		Date:   "2025-06-02",
		AllDay: true,
		Title:  "Anniversary",
	})
	if err != nil {
		t.Fatal(err)
	}

	wantAt := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	if reminder.Timestamp != wantAt.UnixMilli() {
		t.Errorf("timestamp = %d, want %d", reminder.Timestamp, wantAt.UnixMilli())
	}
	if !reminder.AllDay {
		t.Error("expected an all-day reminder")
	}
	if reminder.Time != "" {
		t.Errorf("all-day reminder carries time %q", reminder.Time)
	}
}

func TestAddReminderPastSkipsScheduling(t *testing.T) {
	s, _, notifier := newTestStoreAt(t, localNow)

	reminder, err := s.AddReminder(ReminderOptions{
		Date:  "2025-05-01",
		Time:  "09:00",
		Title: "Already happened",
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Flush()

	if len(notifier.callsOf("schedule")) != 0 {
		t.Error("past reminder should not be scheduled")
	}
	if _, ok := s.ReminderByID(reminder.ID); !ok {
		t.Error("past reminder should still be stored")
	}
}

func TestAddReminderBlankTitle(t *testing.T) {
	s, storage, notifier := newTestStoreAt(t, localNow)

	reminder, err := s.AddReminder(ReminderOptions{Date: "2025-06-02", AllDay: true, Title: "   "})
	if err != nil {
		t.Fatal(err)
	}
	if reminder != nil {
		t.Errorf("expected nil, got %+v", reminder)
	}
	s.Flush()

	if len(s.Reminders()) != 0 {
		t.Error("blank title should not create a reminder")
	}
	if storage.Sets() != 0 {
		t.Error("blank title should not write to storage")
	}
	if len(notifier.calls) != 0 {
		t.Error("blank title should not touch the notifier")
	}
}

func TestAddReminderInputErrors(t *testing.T) {
	s, _, _ := newTestStoreAt(t, localNow)

	tests := []struct {
		name string
		opts ReminderOptions
		want error
	}{
		{"malformed date", ReminderOptions{Date: "June 1st", Time: "14:30", Title: "x"}, ErrInvalidDate},
		{"malformed time", ReminderOptions{Date: "2025-06-01", Time: "2:30pm", Title: "x"}, ErrInvalidTime},
		{"missing time", ReminderOptions{Date: "2025-06-01", Title: "x"}, ErrMissingTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddReminder(tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if len(s.Reminders()) != 0 {
		t.Error("rejected inputs should not create reminders")
	}
}

func TestRemindersSortedByTimestamp(t *testing.T) {
	times := []string{"18:00", "06:00", "12:00", "09:30", "23:59"}

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 5; trial++ {
		s, _, _ := newTestStoreAt(t, localNow)

		order := rng.Perm(len(times))
		for _, i := range order {
			if _, err := s.AddReminder(ReminderOptions{
				Date:  "2025-06-02",
				Time:  times[i],
				Title: fmt.Sprintf("reminder %d", i),
			}); err != nil {
				t.Fatal(err)
			}
		}

		reminders := s.Reminders()
		for i := 1; i < len(reminders); i++ {
			if reminders[i-1].Timestamp > reminders[i].Timestamp {
				t.Fatalf("trial %d: reminders out of order at %d: %d > %d",
					trial, i, reminders[i-1].Timestamp, reminders[i].Timestamp)
			}
		}
	}
}

func TestDeleteReminder(t *testing.T) {
	s, _, notifier := newTestStoreAt(t, localNow)

	keep, _ := s.AddReminder(ReminderOptions{Date: "2025-06-02", AllDay: true, Title: "keep"})
	gone, _ := s.AddReminder(ReminderOptions{Date: "2025-06-03", AllDay: true, Title: "gone"})

	s.DeleteReminder(gone.ID)
	s.Flush()

	reminders := s.Reminders()
	if len(reminders) != 1 || reminders[0].ID != keep.ID {
		t.Fatalf("expected only %q to remain, got %+v", keep.Title, reminders)
	}

	cancels := notifier.callsOf("cancel")
	if len(cancels) != 1 {
		t.Fatalf("expected exactly 1 cancel call, got %d", len(cancels))
	}
	if cancels[0].id != gone.ID {
		t.Errorf("cancelled id = %q, want %q", cancels[0].id, gone.ID)
	}
}

func TestDeleteReminderUnknownIDStillCancels(t *testing.T) {
	s, storage, notifier := newTestStoreAt(t, localNow)

	s.AddReminder(ReminderOptions{Date: "2025-06-02", AllDay: true, Title: "only"})
	s.Flush()
	before := storage.Sets()

	s.DeleteReminder("no-such-id")
	s.Flush()

	if len(s.Reminders()) != 1 {
		t.Error("collection changed by deleting an unknown id")
	}
	if storage.Sets() != before {
		t.Error("deleting an unknown id wrote to storage")
	}

	cancels := notifier.callsOf("cancel")
	if len(cancels) != 1 || cancels[0].id != "no-such-id" {
		t.Errorf("expected one cancel for the unknown id, got %+v", cancels)
	}
}

func TestDeleteReminderRemovesExactlyOne(t *testing.T) {
	s, _, _ := newTestStoreAt(t, localNow)

	var targetID string
	for i := 0; i < 3; i++ {
		r, _ := s.AddReminder(ReminderOptions{Date: "2025-06-02", Time: "09:00", Title: "same instant"})
		if i == 1 {
			targetID = r.ID
		}
	}

	s.DeleteReminder(targetID)

	reminders := s.Reminders()
	if len(reminders) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(reminders))
	}
	for _, r := range reminders {
		if r.ID == targetID {
			t.Error("target reminder still present")
		}
	}
}
