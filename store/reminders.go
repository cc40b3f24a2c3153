package store

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/agendadev/agenda/internal/ids"
	"github.com/agendadev/agenda/internal/notify"
	internalstrings "github.com/agendadev/agenda/internal/strings"
)

// ReminderOptions configures a new reminder.
type ReminderOptions struct {
	// Date is the calendar date in YYYY-MM-DD form.
	Date string

	// Title is the reminder text. Blank titles make AddReminder a no-op.
	Title string

	// Description is optional extra detail.
	Description string

	// AllDay marks the reminder as having no specific time of day; it
	// fires at start of day.
	AllDay bool

	// Time is the HH:mm time of day. Required unless AllDay is set.
	Time string
}

// AddReminder creates a reminder and inserts it into the collection,
// keeping it sorted ascending by timestamp. When the firing instant is
// strictly in the future, delivery is scheduled with the reminder's id as
// the external notification identifier; scheduling failures never roll
// back the creation. A blank title is a silent no-op returning nil. The
// only error cases are malformed date or time inputs.
func (s *Store) AddReminder(opts ReminderOptions) (*Reminder, error) {
	title := internalstrings.NormalizeWhitespace(opts.Title)
	if title == "" {
		return nil, nil
	}

	firesAt, err := deriveFiringTime(opts.Date, opts.Time, opts.AllDay)
	if err != nil {
		return nil, err
	}

	reminder := Reminder{
		ID:          ids.New(),
		Date:        opts.Date,
		Title:       title,
		Description: strings.TrimSpace(opts.Description),
		AllDay:      opts.AllDay,
		Timestamp:   firesAt.UnixMilli(),
	}
	if !opts.AllDay {
		reminder.Time = opts.Time
	}

	s.mu.Lock()
	idx := sort.Search(len(s.reminders), func(i int) bool {
		return s.reminders[i].Timestamp > reminder.Timestamp
	})
	s.reminders = slices.Insert(s.reminders, idx, reminder)
	snapshot := cloneReminders(s.reminders)
	now := s.now()
	s.mu.Unlock()

	s.persistReminders(snapshot)

	if firesAt.After(now) {
		payload := notify.Payload{Title: reminder.Title, Body: reminder.Description}
		id := reminder.ID
		s.dispatch(func() {
			s.notifier.Schedule(context.Background(), id, payload, firesAt)
		})
	}

	created := reminder
	return &created, nil
}

// DeleteReminder removes the reminder with the given id, if present, and
// unconditionally requests cancellation of any scheduled notification
// with that id. The id may already be unknown to the scheduler (fired,
// or never successfully scheduled); cancellation failures are swallowed
// downstream.
func (s *Store) DeleteReminder(id string) {
	s.mu.Lock()
	found := false
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			s.reminders = slices.Delete(s.reminders, i, i+1)
			found = true
			break
		}
	}
	var snapshot []Reminder
	if found {
		snapshot = cloneReminders(s.reminders)
	}
	s.mu.Unlock()

	if found {
		s.persistReminders(snapshot)
	}

	s.dispatch(func() {
		s.notifier.Cancel(context.Background(), id)
	})
}

// ReminderByID returns a copy of the reminder with the given id.
func (s *Store) ReminderByID(id string) (Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			return s.reminders[i], true
		}
	}
	return Reminder{}, false
}

// deriveFiringTime computes the absolute firing instant from a calendar
// date and time of day in local wall-clock time. All-day reminders fire
// at start of day.
func deriveFiringTime(date, timeOfDay string, allDay bool) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	if allDay {
		return day, nil
	}
	if timeOfDay == "" {
		return time.Time{}, ErrMissingTime
	}

	clock, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, timeOfDay)
	}

	return day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute), nil
}
