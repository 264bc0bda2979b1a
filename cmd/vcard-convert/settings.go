// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/vcard-convert/internal/settings"
	"github.com/pdiddy/vcard-convert/pkg/types"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the saved conversion preferences",
	Long: `Settings manages the file holding the conversion preferences
(remove_fn, remove_photos) that convert asks for on first run.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("settings_file")
		opts, err := settings.Load(path)
		if errors.Is(err, settings.ErrNoSettings) {
			fmt.Fprintf(os.Stderr, "No settings file at %s (convert will ask on first run)\n", path)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Settings file: %s\n\n", path)
		return settings.Show(os.Stdout, opts)
	},
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Ask for the preferences again and save them",
	Long: `Init runs the first-run questions and overwrites the settings file.
Passing --remove-fn or --remove-photos skips the questions: unspecified
preferences take their defaults (yes).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("settings_file")

		var opts types.ConversionOptions
		if cmd.Flags().Changed("remove-fn") || cmd.Flags().Changed("remove-photos") {
			opts = types.DefaultConversionOptions()
			if cmd.Flags().Changed("remove-fn") {
				opts.RemoveFormattedName, _ = cmd.Flags().GetBool("remove-fn")
			}
			if cmd.Flags().Changed("remove-photos") {
				opts.RemovePhotos, _ = cmd.Flags().GetBool("remove-photos")
			}
		} else {
			var err error
			opts, err = settings.Prompt(os.Stdin, os.Stdout)
			if err != nil {
				return err
			}
		}

		if err := settings.Save(path, opts); err != nil {
			return err
		}
		fmt.Printf("Saved settings to %s\n", path)
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the settings file so convert asks again",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("settings_file")
		if err := os.Remove(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Printf("No settings file at %s\n", path)
				return nil
			}
			return fmt.Errorf("removing %s: %w", path, err)
		}
		fmt.Printf("Removed %s\n", path)
		return nil
	},
}

func init() {
	settingsInitCmd.Flags().Bool("remove-fn", true, "remove FN (formatted name) fields")
	settingsInitCmd.Flags().Bool("remove-photos", true, "remove embedded photos")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsResetCmd)

	rootCmd.AddCommand(settingsCmd)
}
