// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vcard

import (
	"regexp"
	"strings"

	"github.com/pdiddy/vcard-convert/pkg/types"
)

// action is what a matching rule does with the line.
type action int

const (
	// chain passes the rewritten line on to the remaining rules.
	chain action = iota
	// emit writes the rewritten line and stops.
	emit
	// drop discards the line and stops.
	drop
)

func (a action) String() string {
	switch a {
	case emit:
		return "emit"
	case drop:
		return "drop"
	default:
		return "chain"
	}
}

// rule is one row of the field rewrite table.
type rule struct {
	name    string
	match   func(line string, opts types.ConversionOptions) bool
	rewrite func(line string) string
	action  action

	// base64Body marks properties whose unfolded base64 body lines count as
	// continuations, i.e. embedded photos.
	base64Body bool
}

var (
	typeParamRe  = regexp.MustCompile(`(?i)type=([^;]+)`)
	groupedADRRe = regexp.MustCompile(`item\d+\.ADR`)
	groupedURLRe = regexp.MustCompile(`^item\d+\.URL`)
	base64LineRe = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
)

// appleExtensions are substrings of Apple-only properties Google ignores or
// renders as clutter.
var appleExtensions = []string{"X-APPLE-", "X-ABADR:", "X-ABLabel:"}

// rules is evaluated top to bottom for every property line. The first drop or
// emit ends evaluation; chain rules rewrite and continue. A line that reaches
// the end of the table is written as it stands.
var rules = []rule{
	{
		name:   "begin",
		match:  func(line string, _ types.ConversionOptions) bool { return isBegin(line) },
		action: drop,
	},
	{
		name: "photo",
		match: func(line string, opts types.ConversionOptions) bool {
			return opts.RemovePhotos && hasName(line, "PHOTO")
		},
		action:     drop,
		base64Body: true,
	},
	{
		name: "formatted-name",
		match: func(line string, opts types.ConversionOptions) bool {
			return opts.RemoveFormattedName && hasName(line, "FN")
		},
		action: drop,
	},
	{
		name:   "apple-prodid",
		match:  prefix("PRODID:-//Apple Inc.//"),
		action: drop,
	},
	{
		name:    "version",
		match:   prefix("VERSION:"),
		rewrite: func(string) string { return TargetVersion },
		action:  emit,
	},
	{
		name:   "show-as-company",
		match:  prefix(showAsCompany),
		action: drop,
	},
	{
		name:  "address",
		match: func(line string, _ types.ConversionOptions) bool { return strings.Contains(line, "ADR") },
		rewrite: func(line string) string {
			return upperTypeParams(groupedADRRe.ReplaceAllString(line, "ADR"))
		},
	},
	{
		name:    "telephone",
		match:   parameterized("TEL"),
		rewrite: upperTypeParams,
	},
	{
		name:    "email",
		match:   parameterized("EMAIL"),
		rewrite: upperTypeParams,
	},
	{
		name:  "grouped-url",
		match: func(line string, _ types.ConversionOptions) bool { return groupedURLRe.MatchString(line) },
		rewrite: func(line string) string {
			return groupedURLRe.ReplaceAllString(line, "URL")
		},
	},
	{
		name:    "structured-name",
		match:   func(line string, _ types.ConversionOptions) bool { return hasName(line, "N") },
		rewrite: normalizeStructuredName,
	},
	{
		name: "apple-extension",
		match: func(line string, _ types.ConversionOptions) bool {
			for _, marker := range appleExtensions {
				if strings.Contains(line, marker) {
					return true
				}
			}
			return false
		},
		action: drop,
	},
}

// applyRules runs line through the table. It returns the resulting line, the
// terminal rule that stopped evaluation (nil if none did), and whether the
// line is kept.
func applyRules(line string, opts types.ConversionOptions) (string, *rule, bool) {
	for i := range rules {
		r := &rules[i]
		if !r.match(line, opts) {
			continue
		}
		if r.rewrite != nil {
			line = r.rewrite(line)
		}
		switch r.action {
		case drop:
			return "", r, false
		case emit:
			return line, r, true
		}
	}
	return line, nil, true
}

func prefix(p string) func(string, types.ConversionOptions) bool {
	return func(line string, _ types.ConversionOptions) bool { return strings.HasPrefix(line, p) }
}

func hasName(line, want string) bool {
	_, name, _ := property(line)
	return name == want
}

func parameterized(want string) func(string, types.ConversionOptions) bool {
	return func(line string, _ types.ConversionOptions) bool {
		_, name, params := property(line)
		return name == want && params
	}
}

// upperTypeParams rewrites type= parameter keys, in any case, to TYPE=.
func upperTypeParams(line string) string {
	return typeParamRe.ReplaceAllString(line, "TYPE=${1}")
}

// normalizeStructuredName trims trailing empty N components and pads the
// value back to the five vCard components. Values with more than five
// non-trailing components are left at their length.
func normalizeStructuredName(line string) string {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return line
	}
	parts := strings.Split(line[i+1:], ";")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for len(parts) < 5 {
		parts = append(parts, "")
	}
	return line[:i+1] + strings.Join(parts, ";")
}
