// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vcard

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/vcard-convert/pkg/types"
)

// appleExport is a two-card export as written by Contacts on macOS.
var appleExport = strings.Join([]string{
	"BEGIN:VCARD",
	"VERSION:3.0",
	"PRODID:-//Apple Inc.//macOS 14.4//EN",
	"N:Appleseed;John;;;",
	"FN:John Appleseed",
	"ORG:Apple Inc.;",
	"item1.EMAIL;type=INTERNET;type=pref:john@example.com",
	"TEL;type=CELL;type=VOICE;type=pref:+1 555 123 4567",
	"item2.ADR;type=HOME;type=pref:;;1 Infinite Loop;Cupertino;CA;95014;United States",
	"item2.X-ABADR:us",
	"item3.URL;type=pref:https://example.com",
	"item3.X-ABLabel:_$!<HomePage>!$_",
	"PHOTO;ENCODING=b;TYPE=JPEG:/9j/4AAQSkZJRgABAQAASABIAAD",
	" /4QBMRXhpZgAATU0AKgAAAAgAAYdpAAQAAAABAAAAGgAAAAAAA6ABAAMAAAABAAEAAKACAAQ",
	" AAAABAAAAgKADAAQAAAABAAAAgAAAAAD/7QA4UGhvdG9zaG9wIDMuMAA4QklNBAQAAAAAAAA",
	"X-APPLE-SUBADMINISTRATIVEAREA:",
	"END:VCARD",
	"",
	"BEGIN:VCARD",
	"VERSION:3.0",
	"PRODID:-//Apple Inc.//macOS 14.4//EN",
	"N:;;;;",
	"FN:Acme Corp",
	"ORG:Acme Corp;",
	"X-ABShowAs:COMPANY",
	"TEL;type=WORK;type=VOICE:+1 555 000 0000",
	"END:VCARD",
	"",
}, "\r\n")

const googleImport = `BEGIN:VCARD
VERSION:4.0
N:Appleseed;John;;;
ORG:Apple Inc.;
item1.EMAIL;TYPE=INTERNET;TYPE=pref:john@example.com
TEL;TYPE=CELL;TYPE=VOICE;TYPE=pref:+1 555 123 4567
ADR;TYPE=HOME;TYPE=pref:;;1 Infinite Loop;Cupertino;CA;95014;United States
URL;type=pref:https://example.com
END:VCARD

BEGIN:VCARD
VERSION:4.0
KIND:org
N:;;;;
ORG:Acme Corp;
TEL;TYPE=WORK;TYPE=VOICE:+1 555 000 0000
END:VCARD`

func TestConvertAppleExport(t *testing.T) {
	opts := types.ConversionOptions{RemoveFormattedName: true, RemovePhotos: true}

	assert.Equal(t, googleImport, Convert(appleExport, opts))
}

func TestRunSummary(t *testing.T) {
	opts := types.ConversionOptions{RemoveFormattedName: true, RemovePhotos: true}

	res := Run(appleExport, opts, 1)

	require.Len(t, res.Records, 2)
	assert.Equal(t, types.Summary{
		Records:       2,
		Organizations: 1,
		PhotoLines:    3,
	}, res.Summary)
	assert.False(t, res.Records[0].Organization)
	assert.True(t, res.Records[1].Organization)
}

func TestRunCountsUnplacedKinds(t *testing.T) {
	input := "BEGIN:VCARD\nN:;;;;\nORG:Acme\nEND:VCARD\nBEGIN:VCARD\nVERSION:3.0\nX-ABShowAs:COMPANY\nEND:VCARD"

	res := Run(input, types.ConversionOptions{}, 1)

	assert.Equal(t, 2, res.Summary.Organizations)
	assert.Equal(t, 1, res.Summary.UnplacedKinds)
}

func TestConvertJoinsRecords(t *testing.T) {
	input := "BEGIN:VCARD\nFN:A\nEND:VCARD\nBEGIN:VCARD\nFN:B\n"

	got := Convert(input, types.ConversionOptions{})

	assert.Equal(t, "BEGIN:VCARD\nFN:A\nEND:VCARD\n\nBEGIN:VCARD\nFN:B\nEND:VCARD", got)
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestConvertEmptyInput(t *testing.T) {
	assert.Equal(t, "", Convert("", types.ConversionOptions{}))
	assert.Equal(t, "", Convert("no cards here\n", types.ConversionOptions{}))
}

func TestConvertPreservesRecordCount(t *testing.T) {
	for _, n := range []int{1, 3, 25} {
		input := manyCards(n)
		out := Convert(input, types.ConversionOptions{RemovePhotos: true})
		assert.Equal(t, n, strings.Count(out, BeginMarker))
		assert.Equal(t, n, strings.Count(out, EndMarker))
		assert.Equal(t, n, len(Split(out)))
	}
}

func TestConvertConcurrentMatchesConvert(t *testing.T) {
	input := manyCards(120)
	opts := types.ConversionOptions{RemoveFormattedName: true, RemovePhotos: true}
	want := Convert(input, opts)

	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			assert.Equal(t, want, ConvertConcurrent(input, opts, workers))
		})
	}
}

func TestEveryVersionLineIsTarget(t *testing.T) {
	input := "BEGIN:VCARD\nVERSION:2.1\nEND:VCARD\nBEGIN:VCARD\nVERSION:3.0\nEND:VCARD\nBEGIN:VCARD\nVERSION:4.0\nEND:VCARD"

	for _, line := range strings.Split(Convert(input, types.ConversionOptions{}), "\n") {
		if strings.HasPrefix(line, "VERSION:") {
			assert.Equal(t, TargetVersion, line)
		}
	}
}

// manyCards builds n distinct cards, every third one a company and every
// fifth one missing its end marker.
func manyCards(n int) string {
	var lines []string
	for i := 0; i < n; i++ {
		lines = append(lines,
			"BEGIN:VCARD",
			"VERSION:3.0",
			fmt.Sprintf("N:Person%d;Given;;;", i),
			fmt.Sprintf("FN:Given Person%d", i),
			fmt.Sprintf("TEL;type=CELL:555-%04d", i),
		)
		if i%3 == 0 {
			lines = append(lines, "ORG:Acme;", "X-ABShowAs:COMPANY")
		}
		if i%5 != 0 {
			lines = append(lines, "END:VCARD")
		}
	}
	return strings.Join(lines, "\n")
}
