// Package store implements the authoritative state for todo lists and
// scheduled reminders.
//
// The Store owns every Todo, Task, and Reminder. Consumers read deep-copy
// snapshots and request changes through the mutation operations; mutations
// apply to in-memory state synchronously, then persistence and
// notification side effects run fire-and-forget in the background. A
// failed side effect is logged and dropped: in-memory state stays correct
// and the next successful write self-heals durability.
//
// The public API mirrors the CLI commands:
//   - AddTodo, DeleteTodo, AddTask, ToggleTask for todo lists
//   - AddReminder, DeleteReminder for reminders
//   - Todos, Reminders, Load for reading state
//   - Watch for the in-session fallback notification scan
package store

import "time"

// Task is a single completable item belonging to a Todo.
type Task struct {
	// ID is a unique identifier, assigned at creation.
	ID string `json:"id"`

	// Text is the display text.
	Text string `json:"text"`

	// Completed is toggled by user action.
	Completed bool `json:"completed"`
}

// Todo is a named list owning an ordered sequence of Tasks. Task order is
// insertion order and is never re-sorted.
type Todo struct {
	// ID is a unique identifier, assigned at creation.
	ID string `json:"id"`

	// Title is the display name of the list.
	Title string `json:"title"`

	// CreatedAt is when the todo was created. Formatting for humans
	// happens at the presentation boundary, never here.
	CreatedAt time.Time `json:"date"`

	// Tasks are the owned items, in insertion order.
	Tasks []Task `json:"tasks"`
}

// Progress returns how many tasks are completed out of the total. An
// empty task list reports 0 of 0.
func (t *Todo) Progress() (done, total int) {
	for _, task := range t.Tasks {
		if task.Completed {
			done++
		}
	}
	return done, len(t.Tasks)
}

// Reminder is a standalone scheduled notification, independent of Todos.
type Reminder struct {
	// ID is a unique identifier, assigned at creation. It doubles as the
	// external notification identifier for scheduling and cancellation.
	ID string `json:"id"`

	// Date is the calendar date in YYYY-MM-DD form.
	Date string `json:"date"`

	// Title is the visible reminder text.
	Title string `json:"title"`

	// Description is optional extra detail.
	Description string `json:"description,omitempty"`

	// AllDay reports whether the reminder has no specific time of day.
	AllDay bool `json:"isAllDay"`

	// Time is the HH:mm time of day, empty for all-day reminders.
	Time string `json:"time,omitempty"`

	// Timestamp is the firing instant in epoch milliseconds, derived
	// once at creation from Date and Time in local wall-clock time.
	Timestamp int64 `json:"timestamp"`

	// Notified tracks whether the in-session fallback notification has
	// fired. Session-local only, never persisted.
	Notified bool `json:"-"`
}

// FiresAt returns the firing instant as a time.Time in the local zone.
func (r *Reminder) FiresAt() time.Time {
	return time.UnixMilli(r.Timestamp)
}

func cloneTasks(tasks []Task) []Task {
	if tasks == nil {
		return []Task{}
	}
	copied := make([]Task, len(tasks))
	copy(copied, tasks)
	return copied
}

func cloneTodos(todos []Todo) []Todo {
	copied := make([]Todo, len(todos))
	for i := range todos {
		copied[i] = todos[i]
		copied[i].Tasks = cloneTasks(todos[i].Tasks)
	}
	return copied
}

func cloneReminders(reminders []Reminder) []Reminder {
	copied := make([]Reminder, len(reminders))
	copy(copied, reminders)
	return copied
}
