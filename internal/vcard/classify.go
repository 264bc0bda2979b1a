// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vcard

import "strings"

// showAsCompany is Apple's marker for contacts displayed as companies.
const showAsCompany = "X-ABShowAs:COMPANY"

// IsOrganization reports whether rec describes a company. Apple marks company
// cards explicitly; cards without the marker still count when the structured
// name is empty and an ORG field is present.
func IsOrganization(rec RawRecord) bool {
	var (
		nameSeen  bool
		nameEmpty = true
		hasOrg    bool
	)
	for _, line := range rec {
		if isContinuation(line) {
			continue
		}
		if strings.HasPrefix(line, showAsCompany) {
			return true
		}
		_, name, _ := property(line)
		switch name {
		case "N":
			if !nameSeen {
				nameSeen = true
				nameEmpty = structuredNameEmpty(value(line))
			}
		case "ORG":
			hasOrg = true
		}
	}
	return nameEmpty && hasOrg
}

// structuredNameEmpty reports whether every N component is blank.
func structuredNameEmpty(v string) bool {
	for _, part := range strings.Split(v, ";") {
		if strings.TrimSpace(part) != "" {
			return false
		}
	}
	return true
}

// isContinuation reports whether line is a folded continuation of the
// previous property line.
func isContinuation(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}
