package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ecoalerta/internal/core"
)

var reportsExport string

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List filed reports or export them as JSON",
	RunE:  runReports,
}

func init() {
	reportsCmd.Flags().StringVar(&reportsExport, "export", "", "Write the ledger as indented JSON to this file (- for stdout)")
	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, args []string) error {
	if err := loadConfig(false); err != nil {
		return err
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	reports := a.ledger.Load(cmd.Context())

	switch reportsExport {
	case "":
		printReports(cmd.OutOrStdout(), reports)
		return nil
	case "-":
		return exportReports(cmd.OutOrStdout(), reports)
	}

	f, err := os.Create(reportsExport)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := exportReports(f, reports); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	logger.Info("Reports exported", "path", reportsExport, "count", len(reports))
	return nil
}

func printReports(w io.Writer, reports []core.Report) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "No reports filed.")
		return
	}
	for _, r := range reports {
		fmt.Fprintf(w, "%s  %s  %s", r.Protocol, r.FormattedTimestamp, r.Reason)
		if r.Notes != "" {
			fmt.Fprintf(w, " (%s)", r.Notes)
		}
		fmt.Fprintln(w)
	}
}

// exportReports writes the ledger as a two-space indented JSON array
func exportReports(w io.Writer, reports []core.Report) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}
	return nil
}
