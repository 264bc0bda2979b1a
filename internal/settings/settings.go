// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package settings persists the conversion preferences chosen on first run.
// The settings file holds exactly two boolean keys, remove_fn and
// remove_photos, in JSON or YAML depending on its extension.
package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/vcard-convert/pkg/types"
)

const (
	// DefaultFile is the settings file used when none is configured.
	DefaultFile = "vcard_settings.json"

	KeyRemoveFormattedName = "remove_fn"
	KeyRemovePhotos        = "remove_photos"
)

// ErrNoSettings is returned by Load when the settings file does not exist.
var ErrNoSettings = errors.New("settings file not found")

// Load reads the settings file at path. Keys missing from the file take the
// first-run defaults.
func Load(path string) (types.ConversionOptions, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.ConversionOptions{}, fmt.Errorf("%w: %s", ErrNoSettings, path)
		}
		return types.ConversionOptions{}, fmt.Errorf("checking settings %s: %w", path, err)
	}

	v := newViper(path)
	defaults := types.DefaultConversionOptions()
	v.SetDefault(KeyRemoveFormattedName, defaults.RemoveFormattedName)
	v.SetDefault(KeyRemovePhotos, defaults.RemovePhotos)

	if err := v.ReadInConfig(); err != nil {
		return types.ConversionOptions{}, fmt.Errorf("reading settings %s: %w", path, err)
	}
	return types.ConversionOptions{
		RemoveFormattedName: v.GetBool(KeyRemoveFormattedName),
		RemovePhotos:        v.GetBool(KeyRemovePhotos),
	}, nil
}

// Save writes opts to path, replacing any existing file. The format follows
// the extension, which must be one viper can write (.json, .yaml, .yml).
func Save(path string, opts types.ConversionOptions) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	v := newViper(path)
	v.Set(KeyRemoveFormattedName, opts.RemoveFormattedName)
	v.Set(KeyRemovePhotos, opts.RemovePhotos)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	return nil
}

// Prompt asks the first-run questions on out and reads the answers from in.
// An empty answer, "yes" or "y" (any case) means yes.
func Prompt(in io.Reader, out io.Writer) (types.ConversionOptions, error) {
	r := bufio.NewReader(in)

	fmt.Fprintln(out, "\nFirst time setup - Please configure your preferences:")
	fmt.Fprintln(out, "(Press Enter for default values)")

	removeFN, err := ask(r, out, "Remove FN (Formatted Name) field? (yes/no) [yes]: ")
	if err != nil {
		return types.ConversionOptions{}, err
	}
	removePhotos, err := ask(r, out, "Remove embedded photos? (yes/no) [yes]: ")
	if err != nil {
		return types.ConversionOptions{}, err
	}

	return types.ConversionOptions{
		RemoveFormattedName: removeFN,
		RemovePhotos:        removePhotos,
	}, nil
}

// LoadOrPrompt loads the settings file, or runs the first-run prompt and saves
// the answers when there is none. It reports whether the prompt ran.
func LoadOrPrompt(path string, in io.Reader, out io.Writer) (types.ConversionOptions, bool, error) {
	opts, err := Load(path)
	if err == nil {
		return opts, false, nil
	}
	if !errors.Is(err, ErrNoSettings) {
		return types.ConversionOptions{}, false, err
	}

	opts, err = Prompt(in, out)
	if err != nil {
		return types.ConversionOptions{}, true, err
	}
	if err := Save(path, opts); err != nil {
		return types.ConversionOptions{}, true, err
	}
	return opts, true, nil
}

// Show writes opts to w as YAML.
func Show(w io.Writer, opts types.ConversionOptions) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}
	return v
}

func ask(r *bufio.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprint(out, question)
	answer, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "yes", "y":
		return true, nil
	default:
		return false, nil
	}
}
