// Package main implements the agenda CLI tool.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agendadev/agenda/internal/config"
	"github.com/agendadev/agenda/internal/kv"
	"github.com/agendadev/agenda/internal/notify"
	"github.com/agendadev/agenda/internal/ui"
	"github.com/agendadev/agenda/store"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "agenda",
	Short:         "Agenda - todos and reminders from the command line",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func init() {
	// Accept snake_case flag spellings, e.g. --all_day for --all-day.
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
}

// openStore wires storage and notification delivery from configuration
// and loads the persisted collections. Callers must Flush the store
// before exiting so in-flight side effects complete.
func openStore(ctx context.Context) (*store.Store, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, nil, err
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, nil, err
	}

	s := store.New(kv.NewFile(dataDir), newNotifier(cfg), store.Options{
		Logger: logger,
	})
	if err := s.Load(ctx); err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

func newNotifier(cfg *config.Config) store.Notifier {
	command := cfg.Notifications.Command
	if command == "" {
		command = notify.DefaultCommand
	}

	channel := notify.DefaultChannel
	if cfg.Notifications.ChannelID != "" {
		channel.ID = cfg.Notifications.ChannelID
	}
	if cfg.Notifications.ChannelName != "" {
		channel.Name = cfg.Notifications.ChannelName
	}

	var advise func(string)
	if cfg.AdvisoriesEnabled() {
		advise = func(message string) {
			fmt.Fprintln(os.Stderr, ui.StyleAdvisory(message))
		}
	}

	return notify.NewOrchestrator(notify.NewDesktop(command, logger), notify.Options{
		Channel: channel,
		Advise:  advise,
		Logger:  logger,
	})
}
