package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/agendadev/agenda/internal/ids"
	"github.com/agendadev/agenda/internal/ui"
	"github.com/agendadev/agenda/store"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage todos",
}

var todoAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoAdd,
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	RunE:  runTodoList,
}

var todoListJSON bool

var todoShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a todo and its tasks",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoShow,
}

var todoShowJSON bool

var todoDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a todo and all its tasks",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoDelete,
}

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks within a todo",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <todo-id> <text>",
	Short: "Add a task to a todo",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskAdd,
}

var taskToggleCmd = &cobra.Command{
	Use:   "toggle <todo-id> <task-id>",
	Short: "Toggle a task's completion",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskToggle,
}

func init() {
	rootCmd.AddCommand(todoCmd)
	todoCmd.AddCommand(todoAddCmd, todoListCmd, todoShowCmd, todoDeleteCmd, taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskToggleCmd)

	todoListCmd.Flags().BoolVar(&todoListJSON, "json", false, "Output as JSON")
	todoShowCmd.Flags().BoolVar(&todoShowJSON, "json", false, "Output as JSON")
}

func runTodoAdd(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Flush()

	created := s.AddTodo(args[0])
	if created == nil {
		return fmt.Errorf("todo title must not be blank")
	}

	fmt.Printf("Added todo %s: %s\n", created.ID, created.Title)
	return nil
}

func runTodoList(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Flush()

	todos := s.Todos()

	if todoListJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(todos)
	}

	if len(todos) == 0 {
		fmt.Println("No todos found.")
		return nil
	}

	allIDs := make([]string, 0, len(todos))
	for _, t := range todos {
		allIDs = append(allIDs, t.ID)
	}
	prefixLens := ids.UniquePrefixLengths(allIDs)

	now := time.Now()
	rows := make([][]string, 0, len(todos))
	for _, t := range todos {
		done, total := t.Progress()
		rows = append(rows, []string{
			ui.HighlightID(t.ID, prefixLens[t.ID]),
			ui.FormatTimeAgo(t.CreatedAt, now),
			ui.StyleProgress(fmt.Sprintf("%d/%d", done, total), done, total),
			t.Title,
		})
	}

	fmt.Print(formatTable([]string{"ID", "CREATED", "DONE", "TITLE"}, rows))
	return nil
}

func runTodoShow(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Flush()

	id, err := s.ResolveTodoID(args[0])
	if err != nil {
		return err
	}
	t, ok := s.TodoByID(id)
	if !ok {
		return store.ErrTodoNotFound
	}

	if todoShowJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	}

	printTodoDetail(t)
	return nil
}

func runTodoDelete(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Flush()

	id, err := s.ResolveTodoID(args[0])
	if err != nil {
		return err
	}
	t, _ := s.TodoByID(id)
	s.DeleteTodo(id)

	fmt.Printf("Deleted todo %s: %s\n", id, t.Title)
	return nil
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Flush()

	todoID, err := s.ResolveTodoID(args[0])
	if err != nil {
		return err
	}

	created := s.AddTask(todoID, args[1])
	if created == nil {
		return fmt.Errorf("task text must not be blank")
	}

	fmt.Printf("Added task %s: %s\n", created.ID, created.Text)
	return nil
}

func runTaskToggle(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Flush()

	todoID, err := s.ResolveTodoID(args[0])
	if err != nil {
		return err
	}
	taskID, err := s.ResolveTaskID(todoID, args[1])
	if err != nil {
		return err
	}

	s.ToggleTask(todoID, taskID)

	t, _ := s.TodoByID(todoID)
	for _, task := range t.Tasks {
		if task.ID != taskID {
			continue
		}
		state := "incomplete"
		if task.Completed {
			state = "complete"
		}
		fmt.Printf("Marked task %s %s: %s\n", taskID, state, task.Text)
	}
	return nil
}

// printTodoDetail prints a todo with its task checklist.
func printTodoDetail(t store.Todo) {
	done, total := t.Progress()

	fmt.Printf("ID:       %s\n", t.ID)
	fmt.Printf("Title:    %s\n", t.Title)
	fmt.Printf("Created:  %s\n", t.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Progress: %d/%d\n", done, total)

	if len(t.Tasks) == 0 {
		return
	}

	fmt.Println("\nTasks:")
	for _, task := range t.Tasks {
		check := "[ ]"
		if task.Completed {
			check = "[x]"
		}
		fmt.Printf("  %s %s (%s)\n", check, task.Text, task.ID)
	}
}
