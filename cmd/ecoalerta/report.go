package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecoalerta/internal/core"
)

var (
	reportReason string
	reportNotes  string
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Short:   "File an incident report",
	Example: `  ecoalerta report --reason "Coleta não realizada" --notes "Rua das Flores, 120"`,
	RunE:    runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportReason, "reason", "", "Report reason (required)")
	reportCmd.Flags().StringVar(&reportNotes, "notes", "", "Free-form notes")
	reportCmd.MarkFlagRequired("reason")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := loadConfig(false); err != nil {
		return err
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	receipt, err := a.ledger.Add(cmd.Context(), core.ReportInput{
		Reason: reportReason,
		Notes:  reportNotes,
	})
	if err != nil {
		return fmt.Errorf("file report: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report filed. Protocol: %s\n", receipt.Protocol)
	return nil
}
