package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataDir returns the default agenda data directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "agenda"), nil
}

// DefaultConfigPath returns the path of the global agenda config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "agenda", "config.toml"), nil
}
