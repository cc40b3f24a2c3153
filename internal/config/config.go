// Package config handles loading agenda configuration files.
//
// Settings come from the global ~/.config/agenda/config.toml overlaid by
// an agenda.toml in the working directory. Values defined in the local
// file win.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/agendadev/agenda/internal/paths"
)

// DefaultWatchInterval is how often the fallback watcher scans for
// overdue reminders when no interval is configured.
const DefaultWatchInterval = 10 * time.Second

// Config represents the agenda configuration file.
type Config struct {
	Storage       Storage       `toml:"storage"`
	Notifications Notifications `toml:"notifications"`
	Watch         Watch         `toml:"watch"`
}

// Storage contains persistence configuration.
type Storage struct {
	// Dir is the directory holding the persisted collections.
	Dir string `toml:"dir"`
}

// Notifications contains notification delivery configuration.
type Notifications struct {
	// Command is the notifier binary used for desktop delivery.
	Command string `toml:"command"`

	// ChannelID and ChannelName describe the delivery channel.
	ChannelID   string `toml:"channel-id"`
	ChannelName string `toml:"channel-name"`

	// Advisories controls whether permission problems are printed as
	// advisories. Defaults to on.
	Advisories *bool `toml:"advisories"`
}

// Watch contains fallback watcher configuration.
type Watch struct {
	// Interval is the scan interval as a duration string, e.g. "10s".
	Interval string `toml:"interval"`
}

// Load loads configuration from the global config file and the working
// directory. Returns an empty config if no config files exist.
func Load(workDir string) (*Config, error) {
	globalPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(workDir, "agenda.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, localCfg, globalMeta, localMeta), nil
}

// DataDir returns the configured storage directory, falling back to the
// default data dir.
func (c *Config) DataDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	return paths.DefaultDataDir()
}

// WatchInterval returns the configured scan interval.
func (c *Config) WatchInterval() (time.Duration, error) {
	if c.Watch.Interval == "" {
		return DefaultWatchInterval, nil
	}
	interval, err := time.ParseDuration(c.Watch.Interval)
	if err != nil {
		return 0, fmt.Errorf("parse watch interval %q: %w", c.Watch.Interval, err)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("watch interval must be positive, got %q", c.Watch.Interval)
	}
	return interval, nil
}

// AdvisoriesEnabled reports whether permission advisories should be shown.
func (c *Config) AdvisoriesEnabled() bool {
	if c.Notifications.Advisories == nil {
		return true
	}
	return *c.Notifications.Advisories
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, localCfg *Config, globalMeta, localMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if localCfg == nil {
		localCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.Dir = mergeString(localMeta.IsDefined("storage", "dir"), localCfg.Storage.Dir, globalCfg.Storage.Dir)
	merged.Notifications.Command = mergeString(localMeta.IsDefined("notifications", "command"), localCfg.Notifications.Command, globalCfg.Notifications.Command)
	merged.Notifications.ChannelID = mergeString(localMeta.IsDefined("notifications", "channel-id"), localCfg.Notifications.ChannelID, globalCfg.Notifications.ChannelID)
	merged.Notifications.ChannelName = mergeString(localMeta.IsDefined("notifications", "channel-name"), localCfg.Notifications.ChannelName, globalCfg.Notifications.ChannelName)
	merged.Watch.Interval = mergeString(localMeta.IsDefined("watch", "interval"), localCfg.Watch.Interval, globalCfg.Watch.Interval)

	if localMeta.IsDefined("notifications", "advisories") {
		merged.Notifications.Advisories = localCfg.Notifications.Advisories
	} else if globalMeta.IsDefined("notifications", "advisories") {
		merged.Notifications.Advisories = globalCfg.Notifications.Advisories
	}

	return &merged
}

func mergeString(localDefined bool, localValue, globalValue string) string {
	if localDefined {
		return localValue
	}
	return globalValue
}
