package store

import (
	"fmt"

	"github.com/agendadev/agenda/internal/ids"
)

// ResolveTodoID returns the full todo id matching ref, which may be a
// complete id or any unambiguous leading fragment.
func (s *Store) ResolveTodoID(ref string) (string, error) {
	s.mu.Lock()
	candidates := make([]string, 0, len(s.todos))
	for i := range s.todos {
		candidates = append(candidates, s.todos[i].ID)
	}
	s.mu.Unlock()

	return resolveID(candidates, ref, ErrTodoNotFound)
}

// ResolveReminderID returns the full reminder id matching ref, which may
// be a complete id or any unambiguous leading fragment.
func (s *Store) ResolveReminderID(ref string) (string, error) {
	s.mu.Lock()
	candidates := make([]string, 0, len(s.reminders))
	for i := range s.reminders {
		candidates = append(candidates, s.reminders[i].ID)
	}
	s.mu.Unlock()

	return resolveID(candidates, ref, ErrReminderNotFound)
}

// ResolveTaskID returns the full task id within the given todo matching
// ref.
func (s *Store) ResolveTaskID(todoID, ref string) (string, error) {
	todo, ok := s.TodoByID(todoID)
	if !ok {
		return "", ErrTodoNotFound
	}

	candidates := make([]string, 0, len(todo.Tasks))
	for _, task := range todo.Tasks {
		candidates = append(candidates, task.ID)
	}

	return resolveID(candidates, ref, ErrTaskNotFound)
}

func resolveID(candidates []string, ref string, notFound error) (string, error) {
	normalized := ids.NormalizeUniqueIDs(candidates)
	match, found, ambiguous := ids.MatchPrefix(normalized, ref)
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousIDPrefix, ref)
	}
	if !found {
		return "", notFound
	}
	return match, nil
}
