package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"ecoalerta/internal/core"
)

var nextAt string

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next waste collection for the saved neighborhood",
	RunE:  runNext,
}

func init() {
	nextCmd.Flags().StringVar(&nextAt, "at", "", "Reference time in RFC 3339 (default: now)")
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	if err := loadConfig(false); err != nil {
		return err
	}

	now := time.Now()
	if nextAt != "" {
		parsed, err := time.Parse(time.RFC3339, nextAt)
		if err != nil {
			return fmt.Errorf("invalid --at value: %w", err)
		}
		now = parsed
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	cfgUser := a.profiles.Load(cmd.Context())
	printNext(cmd.OutOrStdout(), now.In(cfg.Location()), cfgUser, a.calendar, cfg.Language())
	return nil
}

// printNext writes the human-readable next-collection summary
func printNext(w io.Writer, now time.Time, user *core.UserConfig, cal core.Calendar, lang core.Language) {
	if user == nil {
		fmt.Fprintln(w, "No neighborhood configured.")
		return
	}

	occ, ok := core.NextCollection(now, user, cal)
	if !ok {
		fmt.Fprintf(w, "No collection scheduled for %s in the next %d days.\n", user.Neighborhood, core.LookaheadDays)
		return
	}

	fmt.Fprintf(w, "Next collection in %s: %s\n", user.Neighborhood, core.FormatCollectionDate(occ.At, lang))
	fmt.Fprintf(w, "Time remaining: %s\n", core.FormatDuration(occ.HoursRemaining))
	if core.IsEve(now, occ) {
		fmt.Fprintln(w, "Put the bins out tonight.")
	}
}
