// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vcard converts Apple Contacts vCard 3.0 exports into vCard 4.0
// records that Google Contacts imports cleanly.
//
// Conversion is two stages. Split partitions the input into RawRecords, one per
// BEGIN:VCARD/END:VCARD pair. Transform classifies each record as a person or
// an organization and rewrites its lines through an ordered rule table. Records
// share no state, so Run may transform them on several workers; output order
// always follows input order.
//
// Nothing in this package fails: malformed input is normalized as far as the
// rules allow and anything unrecognized passes through unchanged.
package vcard

import "strings"

const (
	// BeginMarker opens a record.
	BeginMarker = "BEGIN:VCARD"
	// EndMarker closes a record.
	EndMarker = "END:VCARD"
	// TargetVersion replaces every source VERSION line.
	TargetVersion = "VERSION:4.0"
	// KindOrg marks a record as an organization in vCard 4.0.
	KindOrg = "KIND:org"
)

// RawRecord is one record as read from the input, markers included. The first
// line is a begin marker and the last an end marker.
type RawRecord []string

// TransformedRecord is the vCard 4.0 rendering of one RawRecord together with
// what the transformer learned about it.
type TransformedRecord struct {
	// Lines is the output block, from BEGIN:VCARD through END:VCARD.
	Lines []string

	// Organization reports whether the record was classified as a company.
	Organization bool

	// KindPlaced reports whether KIND:org was inserted. It is false for people
	// and for organizations without a VERSION line.
	KindPlaced bool

	// PhotoLines counts removed PHOTO lines and their continuation lines.
	PhotoLines int
}

// String joins the record lines with LF.
func (t TransformedRecord) String() string {
	return strings.Join(t.Lines, "\n")
}

func isBegin(line string) bool { return hasPrefixFold(line, BeginMarker) }

func isEnd(line string) bool { return hasPrefixFold(line, EndMarker) }

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func isBlank(line string) bool { return strings.TrimSpace(line) == "" }

// property splits the head of a property line into its group and upper-cased
// name, and reports whether parameters follow the name. For
// "item1.ADR;type=HOME:;;1 Main St" it returns ("item1", "ADR", true).
func property(line string) (group, name string, hasParams bool) {
	head := line
	if i := strings.IndexAny(line, ":;"); i >= 0 {
		head = line[:i]
		hasParams = line[i] == ';'
	}
	if i := strings.LastIndexByte(head, '.'); i >= 0 {
		group, head = head[:i], head[i+1:]
	}
	return group, strings.ToUpper(head), hasParams
}

// value returns everything after the first colon, or "" when there is none.
func value(line string) string {
	if i := strings.IndexByte(line, ':'); i >= 0 {
		return line[i+1:]
	}
	return ""
}
