// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for the convert command.
type ConvertConfig struct {
	// Input is the vCard 3.0 file to read (default "contacts.vcf").
	Input string `json:"input" yaml:"input"`

	// Output is the vCard 4.0 file to write (default "contacts_v4.vcf").
	Output string `json:"output" yaml:"output"`

	// OutputDir receives one "<name>_v4.vcf" per input in batch mode.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Workers bounds concurrent record transformation. Zero or negative
	// means one worker per CPU.
	Workers int `json:"workers" yaml:"workers"`

	// Force overwrites existing outputs in batch mode instead of skipping them.
	Force bool `json:"force" yaml:"force"`

	// SettingsFile is where the conversion preferences are persisted
	// (default "vcard_settings.json").
	SettingsFile string `json:"settings_file" yaml:"settings_file"`
}

// HistoryConfig holds settings for the conversion history store.
type HistoryConfig struct {
	// Enabled controls whether each run is recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding history.db.
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
