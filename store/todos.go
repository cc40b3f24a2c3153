package store

import (
	"github.com/agendadev/agenda/internal/ids"
	internalstrings "github.com/agendadev/agenda/internal/strings"
)

// AddTodo creates a todo with the given title and appends it to the
// collection. Blank or whitespace-only titles are silently ignored and
// return nil. The returned todo is a copy.
func (s *Store) AddTodo(title string) *Todo {
	title = internalstrings.NormalizeWhitespace(title)
	if title == "" {
		return nil
	}

	todo := Todo{
		ID:        ids.New(),
		Title:     title,
		CreatedAt: s.now(),
		Tasks:     []Task{},
	}

	s.mu.Lock()
	s.todos = append(s.todos, todo)
	snapshot := cloneTodos(s.todos)
	s.mu.Unlock()

	s.persistTodos(snapshot)

	created := todo
	created.Tasks = cloneTasks(todo.Tasks)
	return &created
}

// DeleteTodo removes the todo with the given id along with all its
// tasks. Unknown ids are a no-op.
func (s *Store) DeleteTodo(id string) {
	s.mu.Lock()
	found := false
	remaining := s.todos[:0]
	for _, todo := range s.todos {
		if todo.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, todo)
	}
	s.todos = remaining
	var snapshot []Todo
	if found {
		snapshot = cloneTodos(s.todos)
	}
	s.mu.Unlock()

	if found {
		s.persistTodos(snapshot)
	}
}

// AddTask appends a task to the named todo. Blank text and unknown todo
// ids are silent no-ops returning nil. The returned task is a copy.
func (s *Store) AddTask(todoID, text string) *Task {
	text = internalstrings.NormalizeWhitespace(text)
	if text == "" {
		return nil
	}

	task := Task{
		ID:   ids.New(),
		Text: text,
	}

	s.mu.Lock()
	found := false
	for i := range s.todos {
		if s.todos[i].ID == todoID {
			s.todos[i].Tasks = append(s.todos[i].Tasks, task)
			found = true
			break
		}
	}
	var snapshot []Todo
	if found {
		snapshot = cloneTodos(s.todos)
	}
	s.mu.Unlock()

	if !found {
		return nil
	}
	s.persistTodos(snapshot)
	created := task
	return &created
}

// ToggleTask flips the completed flag on the matching task within the
// matching todo. Unknown ids are a no-op.
func (s *Store) ToggleTask(todoID, taskID string) {
	s.mu.Lock()
	found := false
	for i := range s.todos {
		if s.todos[i].ID != todoID {
			continue
		}
		for j := range s.todos[i].Tasks {
			if s.todos[i].Tasks[j].ID == taskID {
				s.todos[i].Tasks[j].Completed = !s.todos[i].Tasks[j].Completed
				found = true
			}
		}
		break
	}
	var snapshot []Todo
	if found {
		snapshot = cloneTodos(s.todos)
	}
	s.mu.Unlock()

	if found {
		s.persistTodos(snapshot)
	}
}

// TodoByID returns a copy of the todo with the given id.
func (s *Store) TodoByID(id string) (Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			todo := s.todos[i]
			todo.Tasks = cloneTasks(todo.Tasks)
			return todo, true
		}
	}
	return Todo{}, false
}
