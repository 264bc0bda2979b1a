// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the vcard-convert CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/vcard-convert/internal/settings"
)

// version is set at build time via ldflags.
var version = "dev"

// verbose enables per-file summaries and config diagnostics.
var verbose bool

// rootCmd is the base command for the vcard-convert CLI.
var rootCmd = &cobra.Command{
	Use:   "vcard-convert",
	Short: "Convert Apple Contacts vCard 3.0 exports to vCard 4.0 for Google Contacts",
	Long: `vcard-convert rewrites an Apple Contacts export (vCard 3.0) as vCard 4.0
that Google Contacts imports cleanly.

Company cards (X-ABShowAs:COMPANY, or an empty name with an organization) get
KIND:org so they show up as companies on phones. Apple-only fields are dropped,
and address, phone and email types are normalized. Formatted names and embedded
photos can be removed; the choice is asked once and kept in vcard_settings.json.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./vcard-convert.yaml or ~/.config/vcard-convert/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("settings", settings.DefaultFile, "conversion settings file")
	rootCmd.PersistentFlags().String("history-dir", defaultHistoryDir(), "directory for the conversion history database")

	_ = viper.BindPFlag("settings_file", rootCmd.PersistentFlags().Lookup("settings"))
	_ = viper.BindPFlag("history.dir", rootCmd.PersistentFlags().Lookup("history-dir"))
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.max_results", 20)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("vcard-convert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vcard-convert"))
		}
	}

	viper.SetEnvPrefix("VCARD_CONVERT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// defaultHistoryDir is ~/.local/share/vcard-convert, or a local directory when
// the home directory is unknown.
func defaultHistoryDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vcard-convert"
	}
	return filepath.Join(home, ".local", "share", "vcard-convert")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
