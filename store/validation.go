package store

import "errors"

var (
	// ErrInvalidDate is returned when a reminder date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidTime is returned when a reminder time is not HH:mm.
	ErrInvalidTime = errors.New("invalid time, expected HH:mm")

	// ErrMissingTime is returned when a timed reminder has no time of day.
	ErrMissingTime = errors.New("time is required unless the reminder is all-day")

	// ErrTodoNotFound is returned when a todo reference matches nothing.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrTaskNotFound is returned when a task reference matches nothing
	// within its todo.
	ErrTaskNotFound = errors.New("task not found")

	// ErrReminderNotFound is returned when a reminder reference matches nothing.
	ErrReminderNotFound = errors.New("reminder not found")

	// ErrAmbiguousIDPrefix is returned when an ID prefix matches more
	// than one entry.
	ErrAmbiguousIDPrefix = errors.New("ambiguous ID prefix")
)
