// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/vcard-convert/internal/convert"
	"github.com/pdiddy/vcard-convert/internal/history"
	"github.com/pdiddy/vcard-convert/internal/settings"
	"github.com/pdiddy/vcard-convert/pkg/types"
)

const (
	defaultInput  = "contacts.vcf"
	defaultOutput = "contacts_v4.vcf"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert vCard 3.0 files to vCard 4.0",
	Long: `Convert reads an Apple Contacts export and writes a vCard 4.0 file for
Google Contacts. With no arguments it converts contacts.vcf in the current
directory to contacts_v4.vcf. With several files it writes <name>_v4.vcf for
each into --output-dir, skipping outputs that already exist unless --force.

On first run the conversion preferences are asked for and saved to the
settings file; --remove-fn and --remove-photos override them for one run.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", defaultOutput, "output file when converting a single input")
	convertCmd.Flags().String("output-dir", "converted", "output directory when converting several inputs")
	convertCmd.Flags().Int("workers", 0, "records transformed concurrently (0 = one per CPU)")
	convertCmd.Flags().Bool("force", false, "overwrite existing outputs in batch mode")
	convertCmd.Flags().Bool("remove-fn", false, "remove FN (formatted name) fields, overriding the settings file")
	convertCmd.Flags().Bool("remove-photos", false, "remove embedded photos, overriding the settings file")
	convertCmd.Flags().Bool("no-history", false, "do not record this run in the history database")

	_ = viper.BindPFlag("output", convertCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("output_dir", convertCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("workers", convertCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("force", convertCmd.Flags().Lookup("force"))
	viper.SetDefault("input", defaultInput)

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig()

	opts, err := conversionOptions(cmd, cfg.SettingsFile)
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{cfg.Input}
	}
	conv := convert.NewConverter(opts, cfg.Workers)
	started := time.Now()

	if len(inputs) == 1 {
		res, err := conv.ConvertFile(inputs[0], cfg.Output, os.Stderr)
		if errors.Is(err, convert.ErrInputNotFound) {
			convert.MissingInputHelp(os.Stdout, inputs[0])
			return nil
		}
		recordRuns(cmd, opts, started, []convert.FileResult{res})
		if err != nil {
			return err
		}

		fmt.Printf("\nSuccessfully converted %s to VCARD 4.0 format\n", res.Input)
		fmt.Printf("Output saved to %s\n", res.Output)
		if verbose {
			printSummary(res.Summary)
		}
		return nil
	}

	result := conv.ConvertBatch(inputs, cfg.OutputDir, cfg.Force, os.Stdout)
	recordRuns(cmd, opts, started, result.Files)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func convertConfig() types.ConvertConfig {
	return types.ConvertConfig{
		Input:        viper.GetString("input"),
		Output:       viper.GetString("output"),
		OutputDir:    viper.GetString("output_dir"),
		Workers:      viper.GetInt("workers"),
		Force:        viper.GetBool("force"),
		SettingsFile: viper.GetString("settings_file"),
	}
}

// conversionOptions loads the settings file, prompting on first run, and
// applies any flag overrides.
func conversionOptions(cmd *cobra.Command, path string) (types.ConversionOptions, error) {
	opts, _, err := settings.LoadOrPrompt(path, os.Stdin, os.Stdout)
	if err != nil {
		return types.ConversionOptions{}, err
	}
	if cmd.Flags().Changed("remove-fn") {
		opts.RemoveFormattedName, _ = cmd.Flags().GetBool("remove-fn")
	}
	if cmd.Flags().Changed("remove-photos") {
		opts.RemovePhotos, _ = cmd.Flags().GetBool("remove-photos")
	}
	return opts, nil
}

// recordRuns stores converted and failed files in the history database.
// Failures to record are warnings only.
func recordRuns(cmd *cobra.Command, opts types.ConversionOptions, started time.Time, files []convert.FileResult) {
	noHistory, _ := cmd.Flags().GetBool("no-history")
	if noHistory || !viper.GetBool("history.enabled") {
		return
	}

	store, err := history.NewStore(historyConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
		return
	}
	defer store.Close()

	for _, f := range files {
		if f.Status == types.ConversionSkipped {
			continue
		}
		run := types.Run{
			StartedAt: started,
			Input:     f.Input,
			Output:    f.Output,
			Status:    f.Status,
			Options:   opts,
			Summary:   f.Summary,
		}
		if _, err := store.Record(context.Background(), run); err != nil {
			fmt.Fprintf(os.Stderr, "warning: history not recorded for %s: %v\n", f.Input, err)
		}
	}
}

func printSummary(s types.Summary) {
	fmt.Printf("  Records:        %d\n", s.Records)
	fmt.Printf("  Organizations:  %d\n", s.Organizations)
	fmt.Printf("  Photo lines:    %d removed\n", s.PhotoLines)
}
