// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the vcard-convert pipeline:
// conversion options, host configuration, and conversion run records.
package types

// ConversionOptions controls which optional fields the transformer removes.
// It is built once by the host and passed by value into every conversion call.
type ConversionOptions struct {
	// RemoveFormattedName drops FN (formatted name) lines. Google derives the
	// display name from N, and a stale FN overrides it on import.
	RemoveFormattedName bool `json:"remove_fn" yaml:"remove_fn" mapstructure:"remove_fn"`

	// RemovePhotos drops embedded PHOTO properties and their continuation lines.
	RemovePhotos bool `json:"remove_photos" yaml:"remove_photos" mapstructure:"remove_photos"`
}

// DefaultConversionOptions returns the options offered as defaults on first run.
func DefaultConversionOptions() ConversionOptions {
	return ConversionOptions{
		RemoveFormattedName: true,
		RemovePhotos:        true,
	}
}
