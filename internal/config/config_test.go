package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	workDir := t.TempDir()

	cfg, err := Load(workDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Dir != "" {
		t.Errorf("expected empty storage dir, got %q", cfg.Storage.Dir)
	}
	if !cfg.AdvisoriesEnabled() {
		t.Error("expected advisories enabled by default")
	}
}

func TestLoad_GlobalOnly(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, filepath.Join(home, ".config", "agenda"), "config.toml", `
[storage]
dir = "/var/lib/agenda"

[notifications]
command = "dunstify"
`)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Dir != "/var/lib/agenda" {
		t.Errorf("expected global storage dir, got %q", cfg.Storage.Dir)
	}
	if cfg.Notifications.Command != "dunstify" {
		t.Errorf("expected global command, got %q", cfg.Notifications.Command)
	}
}

func TestLoad_LocalOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, filepath.Join(home, ".config", "agenda"), "config.toml", `
[notifications]
command = "dunstify"
advisories = true

[watch]
interval = "30s"
`)

	workDir := t.TempDir()
	writeConfig(t, workDir, "agenda.toml", `
[notifications]
advisories = false
`)

	cfg, err := Load(workDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Notifications.Command != "dunstify" {
		t.Errorf("expected global command kept, got %q", cfg.Notifications.Command)
	}
	if cfg.AdvisoriesEnabled() {
		t.Error("expected local advisories=false to win")
	}
	interval, err := cfg.WatchInterval()
	if err != nil {
		t.Fatalf("WatchInterval: %v", err)
	}
	if interval != 30*time.Second {
		t.Errorf("expected 30s interval, got %v", interval)
	}
}

func TestWatchInterval_Default(t *testing.T) {
	cfg := &Config{}

	interval, err := cfg.WatchInterval()
	if err != nil {
		t.Fatalf("WatchInterval: %v", err)
	}
	if interval != DefaultWatchInterval {
		t.Errorf("expected default interval, got %v", interval)
	}
}

func TestWatchInterval_Invalid(t *testing.T) {
	cfg := &Config{Watch: Watch{Interval: "soon"}}
	if _, err := cfg.WatchInterval(); err == nil {
		t.Error("expected error for unparseable interval")
	}

	cfg = &Config{Watch: Watch{Interval: "-5s"}}
	if _, err := cfg.WatchInterval(); err == nil {
		t.Error("expected error for negative interval")
	}
}

func TestDataDir_Fallback(t *testing.T) {
	t.Setenv("HOME", "/home/example")
	cfg := &Config{}

	dir, err := cfg.DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	want := filepath.Join("/home/example", ".local", "share", "agenda")
	if dir != want {
		t.Errorf("expected %q, got %q", want, dir)
	}
}
