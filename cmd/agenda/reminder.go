package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/agendadev/agenda/internal/ids"
	"github.com/agendadev/agenda/internal/markdown"
	"github.com/agendadev/agenda/internal/ui"
	"github.com/agendadev/agenda/store"
)

var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Manage reminders",
}

var reminderAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new reminder",
	Args:  cobra.ExactArgs(1),
	RunE:  runReminderAdd,
}

var (
	reminderAddDate        string
	reminderAddTime        string
	reminderAddAllDay      bool
	reminderAddDescription string
)

var reminderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders in firing order",
	RunE:  runReminderList,
}

var reminderListJSON bool

var reminderShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a reminder",
	Args:  cobra.ExactArgs(1),
	RunE:  runReminderShow,
}

var reminderShowJSON bool

var reminderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a reminder and cancel its notification",
	Args:  cobra.ExactArgs(1),
	RunE:  runReminderDelete,
}

func init() {
	rootCmd.AddCommand(reminderCmd)
	reminderCmd.AddCommand(reminderAddCmd, reminderListCmd, reminderShowCmd, reminderDeleteCmd)

	reminderAddCmd.Flags().StringVarP(&reminderAddDate, "date", "d", "", "Date in YYYY-MM-DD form (required)")
	reminderAddCmd.Flags().StringVarP(&reminderAddTime, "time", "t", "", "Time of day in HH:mm form")
	reminderAddCmd.Flags().BoolVar(&reminderAddAllDay, "all-day", false, "Fire at start of day instead of a specific time")
	reminderAddCmd.Flags().StringVar(&reminderAddDescription, "description", "", "Extra detail, shown in the notification")
	reminderAddCmd.MarkFlagRequired("date")

	reminderListCmd.Flags().BoolVar(&reminderListJSON, "json", false, "Output as JSON")
	reminderShowCmd.Flags().BoolVar(&reminderShowJSON, "json", false, "Output as JSON")
}

func runReminderAdd(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Flush()

	created, err := s.AddReminder(store.ReminderOptions{
		Date:        reminderAddDate,
		Time:        reminderAddTime,
		AllDay:      reminderAddAllDay,
		Title:       args[0],
		Description: reminderAddDescription,
	})
	if err != nil {
		return err
	}
	if created == nil {
		return fmt.Errorf("reminder title must not be blank")
	}

	fmt.Printf("Added reminder %s: %s (fires %s)\n",
		created.ID, created.Title, created.FiresAt().Format("2006-01-02 15:04"))
	return nil
}

func runReminderList(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Flush()

	reminders := s.Reminders()

	if reminderListJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reminders)
	}

	if len(reminders) == 0 {
		fmt.Println("No reminders found.")
		return nil
	}

	allIDs := make([]string, 0, len(reminders))
	for _, r := range reminders {
		allIDs = append(allIDs, r.ID)
	}
	prefixLens := ids.UniquePrefixLengths(allIDs)

	now := time.Now()
	rows := make([][]string, 0, len(reminders))
	for _, r := range reminders {
		when := r.FiresAt().Format("2006-01-02 15:04")
		if r.AllDay {
			when = r.Date + " (all day)"
		}
		rows = append(rows, []string{
			ui.HighlightID(r.ID, prefixLens[r.ID]),
			ui.StyleWhen(when, r.FiresAt(), now),
			ui.FormatTimeUntil(r.FiresAt(), now),
			r.Title,
		})
	}

	fmt.Print(formatTable([]string{"ID", "WHEN", "IN", "TITLE"}, rows))
	return nil
}

func runReminderShow(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Flush()

	id, err := s.ResolveReminderID(args[0])
	if err != nil {
		return err
	}
	r, ok := s.ReminderByID(id)
	if !ok {
		return store.ErrReminderNotFound
	}

	if reminderShowJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	printReminderDetail(r)
	return nil
}

func runReminderDelete(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Flush()

	id, err := s.ResolveReminderID(args[0])
	if err != nil {
		return err
	}
	r, _ := s.ReminderByID(id)
	s.DeleteReminder(id)

	fmt.Printf("Deleted reminder %s: %s\n", id, r.Title)
	return nil
}

// printReminderDetail prints a reminder, rendering the description as
// markdown when stdout is a terminal.
func printReminderDetail(r store.Reminder) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	fmt.Printf("ID:     %s\n", r.ID)
	fmt.Println(wordwrap.String("Title:  "+r.Title, width))
	fmt.Printf("Date:   %s\n", r.Date)
	if r.AllDay {
		fmt.Println("Time:   all day")
	} else {
		fmt.Printf("Time:   %s\n", r.Time)
	}
	fmt.Printf("Fires:  %s\n", r.FiresAt().Format("2006-01-02 15:04"))

	if r.Description != "" {
		fmt.Printf("\n%s\n", markdown.Render(width, r.Description))
	}
}
