// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of converting one input file.
type ConversionStatus string

const (
	ConversionNone    ConversionStatus = "none"
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)

// Summary counts what the transformer did across one input.
type Summary struct {
	// Records is the number of records written; always equal to the number read.
	Records int `json:"records" yaml:"records"`

	// Organizations is the number of records classified as organizations.
	Organizations int `json:"organizations" yaml:"organizations"`

	// UnplacedKinds counts organizations that had no VERSION line, so no
	// KIND:org could be inserted.
	UnplacedKinds int `json:"unplaced_kinds,omitempty" yaml:"unplaced_kinds,omitempty"`

	// PhotoLines is the number of PHOTO and photo continuation lines removed.
	PhotoLines int `json:"photo_lines" yaml:"photo_lines"`
}

// Run is one recorded conversion of an input file.
type Run struct {
	// ID is assigned by the history store.
	ID int64 `json:"id" yaml:"id"`

	// StartedAt is when the conversion began (UTC).
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Input and Output are the file paths as given on the command line.
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`

	// Status is the file-level outcome.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Options are the conversion options the run used.
	Options ConversionOptions `json:"options" yaml:"options"`

	Summary Summary `json:"summary" yaml:"summary"`
}
