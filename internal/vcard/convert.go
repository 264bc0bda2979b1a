// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vcard

import (
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/vcard-convert/pkg/types"
)

// recordSeparator joins transformed records in the output.
const recordSeparator = "\n\n"

// Result is the output of Run.
type Result struct {
	// Text is the converted vCard 4.0 document.
	Text string

	// Records holds each transformed record in input order.
	Records []TransformedRecord

	Summary types.Summary
}

// Convert splits text, transforms every record in order, and joins the
// results with one blank line between records.
func Convert(text string, opts types.ConversionOptions) string {
	return Run(text, opts, 1).Text
}

// ConvertConcurrent is Convert with records transformed on up to workers
// goroutines. The output is identical to Convert's.
func ConvertConcurrent(text string, opts types.ConversionOptions, workers int) string {
	return Run(text, opts, workers).Text
}

// Run converts text and reports what was done. Zero or negative workers
// means one per CPU.
func Run(text string, opts types.ConversionOptions, workers int) Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	records := Split(text)
	var transformed []TransformedRecord
	if workers == 1 || len(records) < 2 {
		transformed = make([]TransformedRecord, len(records))
		for i, rec := range records {
			transformed[i] = Transform(rec, opts)
		}
	} else {
		transformed = transformAll(records, opts, workers)
	}

	res := Result{Records: transformed}
	blocks := make([]string, len(transformed))
	for i, t := range transformed {
		blocks[i] = t.String()
		res.Summary.Records++
		res.Summary.PhotoLines += t.PhotoLines
		if t.Organization {
			res.Summary.Organizations++
			if !t.KindPlaced {
				res.Summary.UnplacedKinds++
			}
		}
	}
	res.Text = strings.Join(blocks, recordSeparator)
	return res
}

// sequenced tags a transformed record with its input position.
type sequenced struct {
	seq    int
	record TransformedRecord
}

// transformAll fans records out to a bounded group of workers and restores
// input order by sequence number.
func transformAll(records []RawRecord, opts types.ConversionOptions, workers int) []TransformedRecord {
	done := make(chan sequenced, len(records))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, rec := range records {
		g.Go(func() error {
			done <- sequenced{seq: i, record: Transform(rec, opts)}
			return nil
		})
	}
	// Transform never fails, so Wait only synchronizes.
	_ = g.Wait()
	close(done)

	collected := make([]sequenced, 0, len(records))
	for s := range done {
		collected = append(collected, s)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].seq < collected[j].seq })

	out := make([]TransformedRecord, len(collected))
	for i, s := range collected {
		out[i] = s.record
	}
	return out
}
