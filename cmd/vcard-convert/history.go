// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/vcard-convert/internal/history"
	"github.com/pdiddy/vcard-convert/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past conversions",
	Long: `History lists recorded conversion runs, newest first, with the options
used and what was converted. Use --yaml to export every run.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum runs to list (0 = use default)")
	historyCmd.Flags().Bool("yaml", false, "export all runs as YAML")

	rootCmd.AddCommand(historyCmd)
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Enabled:    viper.GetBool("history.enabled"),
		Dir:        viper.GetString("history.dir"),
		MaxResults: viper.GetInt("history.max_results"),
	}
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		return store.ExportYAML(ctx, os.Stdout)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-16s  %-9s  %-30s  %7s  %4s  %s\n",
		"ID", "When", "Status", "Input", "Records", "Orgs", "Options")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 96))
	for _, r := range runs {
		input := r.Input
		if len(input) > 30 {
			input = "..." + input[len(input)-27:]
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-16s  %-9s  %-30s  %7d  %4d  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04"), r.Status, input,
			r.Summary.Records, r.Summary.Organizations, optionsLabel(r.Options))
	}
	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(runs))
	return nil
}

func optionsLabel(o types.ConversionOptions) string {
	var parts []string
	if o.RemoveFormattedName {
		parts = append(parts, "no-fn")
	}
	if o.RemovePhotos {
		parts = append(parts, "no-photos")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}
