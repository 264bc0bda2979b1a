// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vcard

import "strings"

// Split partitions text into records. A begin marker closes any open record
// and starts a new one; an end marker closes the open record. A record still
// open at a new begin marker or at end of input gets a synthesized END:VCARD.
// Lines outside any record are dropped. CRLF line endings are accepted.
func Split(text string) []RawRecord {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var records []RawRecord
	var open RawRecord

	closeOpen := func() {
		if open == nil {
			return
		}
		if !isEnd(open[len(open)-1]) {
			open = append(open, EndMarker)
		}
		records = append(records, open)
		open = nil
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case isBegin(line):
			closeOpen()
			open = RawRecord{line}
		case open == nil:
			// Stray content between or before records.
		case isEnd(line):
			open = append(open, line)
			closeOpen()
		default:
			open = append(open, line)
		}
	}
	closeOpen()

	return records
}
