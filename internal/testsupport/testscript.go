package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/agendadev/agenda/store"
)

var (
	buildOnce  sync.Once
	agendaPath string
	buildErr   error
)

// BuildAgenda builds the agenda binary once and returns its path.
func BuildAgenda(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "agenda-bin-")
		if err != nil {
			buildErr = err
			return
		}

		agendaPath = filepath.Join(binDir, "agenda")
		cmd := exec.Command("go", "build", "-o", agendaPath, "./cmd/agenda")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build agenda: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return agendaPath
}

// SetupScriptEnv configures common environment variables for testscript.
// The notifier command is stubbed so scripts never depend on a desktop
// notification daemon.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("AGENDA", BuildAgenda(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	configDir := filepath.Join(homeDir, ".config", "agenda")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(homeDir, ".local", "share", "agenda"), 0o755); err != nil {
		return err
	}

	config := "[notifications]\ncommand = \"true\"\nadvisories = false\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644); err != nil {
		return err
	}

	env.Setenv("HOME", homeDir)
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdTodoID finds a todo by title in a `todo list --json` dump and
// stores its ID in an env var.
func CmdTodoID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("todoid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: todoid FILE TITLE VAR")
	}

	var items []store.Todo
	unmarshalFile(ts, args[0], &items)

	for _, item := range items {
		if item.Title == args[1] {
			ts.Setenv(args[2], item.ID)
			return
		}
	}
	ts.Fatalf("todo with title %q not found", args[1])
}

// CmdTaskID finds a task by text in a `todo show --json` dump and stores
// its ID in an env var.
func CmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskid FILE TEXT VAR")
	}

	var item store.Todo
	unmarshalFile(ts, args[0], &item)

	for _, task := range item.Tasks {
		if task.Text == args[1] {
			ts.Setenv(args[2], task.ID)
			return
		}
	}
	ts.Fatalf("task with text %q not found", args[1])
}

// CmdReminderID finds a reminder by title in a `reminder list --json`
// dump and stores its ID in an env var.
func CmdReminderID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("reminderid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: reminderid FILE TITLE VAR")
	}

	var items []store.Reminder
	unmarshalFile(ts, args[0], &items)

	for _, item := range items {
		if item.Title == args[1] {
			ts.Setenv(args[2], item.ID)
			return
		}
	}
	ts.Fatalf("reminder with title %q not found", args[1])
}

func unmarshalFile(ts *testscript.TestScript, path string, v any) {
	data := ts.ReadFile(path)
	if err := json.Unmarshal([]byte(data), v); err != nil {
		ts.Fatalf("parse %s: %v", path, err)
	}
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
