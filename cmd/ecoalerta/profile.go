package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ecoalerta/internal/core"
)

var (
	profileNeighborhood string
	profileSlots        []string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the saved neighborhood and collection slots",
}

var configSetCmd = &cobra.Command{
	Use:     "set",
	Short:   "Save the neighborhood and optional custom slots",
	Example: `  ecoalerta config set --neighborhood Trindade --slot "3ª 07:00" --slot "6ª 07:00"`,
	RunE:    runConfigSet,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved configuration",
	RunE:  runConfigShow,
}

func init() {
	configSetCmd.Flags().StringVar(&profileNeighborhood, "neighborhood", "", "Neighborhood name (required)")
	configSetCmd.Flags().StringArrayVar(&profileSlots, "slot", nil, "Custom slot such as \"3ª 07:00\", repeatable; omit to use the calendar")
	configSetCmd.MarkFlagRequired("neighborhood")
	configCmd.AddCommand(configSetCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := loadConfig(false); err != nil {
		return err
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return saveProfile(cmd.Context(), a.profiles, cmd.OutOrStdout(), profileNeighborhood, profileSlots)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if err := loadConfig(false); err != nil {
		return err
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	printProfile(cmd.OutOrStdout(), a.profiles.Load(cmd.Context()))
	return nil
}

// saveProfile stores a new configuration. Blank slot flags are dropped and an
// empty slot list means the calendar entry for the neighborhood applies.
func saveProfile(ctx context.Context, profiles core.ProfileStore, w io.Writer, neighborhood string, slots []string) error {
	neighborhood = strings.TrimSpace(neighborhood)
	if neighborhood == "" {
		return errors.New("neighborhood must not be empty")
	}

	kept := []string{}
	for _, s := range slots {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}

	if err := profiles.Save(ctx, core.UserConfig{Neighborhood: neighborhood, Slots: kept}); err != nil {
		return err
	}

	fmt.Fprintf(w, "Saved neighborhood %s.\n", neighborhood)
	return nil
}

func printProfile(w io.Writer, user *core.UserConfig) {
	if user == nil {
		fmt.Fprintln(w, "No neighborhood configured.")
		return
	}

	fmt.Fprintf(w, "Neighborhood: %s\n", user.Neighborhood)
	if len(user.Slots) == 0 {
		fmt.Fprintln(w, "Slots: calendar default")
		return
	}
	fmt.Fprintf(w, "Slots: %s\n", strings.Join(user.Slots, ", "))
}
