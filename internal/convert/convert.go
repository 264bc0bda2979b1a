// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert reads vCard 3.0 files, runs them through the vcard
// transformer, and writes vCard 4.0 files, one at a time or in batches.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/vcard-convert/internal/vcard"
	"github.com/pdiddy/vcard-convert/pkg/types"
)

// outputSuffix is appended to the input base name in batch mode.
const outputSuffix = "_v4.vcf"

// Converter converts vCard files with fixed options.
type Converter struct {
	opts    types.ConversionOptions
	workers int
}

// NewConverter returns a Converter that applies opts and transforms records
// on up to workers goroutines (zero or negative means one per CPU).
func NewConverter(opts types.ConversionOptions, workers int) *Converter {
	return &Converter{opts: opts, workers: workers}
}

// FileResult holds the outcome of converting one file.
type FileResult struct {
	Input   string
	Output  string
	Status  types.ConversionStatus
	Summary types.Summary
	Err     error
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Files     []FileResult
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertFile converts the file at in and writes the result to out. A missing
// input returns an error wrapping ErrInputNotFound.
func (c *Converter) ConvertFile(in, out string, w io.Writer) (FileResult, error) {
	res := FileResult{Input: in, Output: out, Status: types.ConversionFailed}

	text, err := ReadInput(in)
	if err != nil {
		res.Err = err
		return res, err
	}

	run := vcard.Run(text, c.opts, c.workers)
	res.Summary = run.Summary

	if err := WriteOutput(out, run.Text); err != nil {
		res.Err = err
		return res, err
	}

	res.Status = types.ConversionDone
	reportWarnings(w, in, run)
	return res, nil
}

// ConvertBatch converts each input into outDir as "<name>_v4.vcf", printing
// per-file status to w and returning a summary. Existing outputs are skipped
// unless force is set.
func (c *Converter) ConvertBatch(inputs []string, outDir string, force bool, w io.Writer) BatchResult {
	var result BatchResult
	for _, in := range inputs {
		base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		out := filepath.Join(outDir, base+outputSuffix)

		fr := c.convertOne(in, out, force, w)
		result.Files = append(result.Files, fr)
		switch fr.Status {
		case types.ConversionDone:
			result.Converted++
			fmt.Fprintf(w, "converted: %s (%d records, %d organizations)\n", base, fr.Summary.Records, fr.Summary.Organizations)
		case types.ConversionSkipped:
			result.Skipped++
			fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
		default:
			result.Failed++
			fmt.Fprintf(w, "failed:  %s (%v)\n", base, fr.Err)
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

func (c *Converter) convertOne(in, out string, force bool, w io.Writer) FileResult {
	if !force {
		if _, err := os.Stat(out); err == nil {
			return FileResult{Input: in, Output: out, Status: types.ConversionSkipped}
		}
	}
	fr, err := c.ConvertFile(in, out, w)
	if err != nil && errors.Is(err, ErrInputNotFound) {
		fr.Err = fmt.Errorf("%s not found", in)
	}
	return fr
}

// reportWarnings notes organizations that could not be marked KIND:org.
func reportWarnings(w io.Writer, in string, run vcard.Result) {
	if run.Summary.UnplacedKinds == 0 {
		return
	}
	fmt.Fprintf(w, "warning: %s: %d organization record(s) have no VERSION line; KIND:org not added\n",
		in, run.Summary.UnplacedKinds)
}
