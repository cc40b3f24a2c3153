package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the fallback watcher until interrupted",
	Long: `Watch periodically scans for overdue reminders and displays a
notification for each, covering reminders whose scheduled delivery never
arrived. Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, cfg, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Flush()

	interval, err := cfg.WatchInterval()
	if err != nil {
		return err
	}

	logger.Info("watching for overdue reminders", "interval", interval)
	s.Watch(ctx, interval)
	fmt.Println("Stopped.")
	return nil
}
