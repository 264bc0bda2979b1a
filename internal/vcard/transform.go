// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vcard

import (
	"strings"

	"github.com/pdiddy/vcard-convert/pkg/types"
)

// continuation tracks the property the next folded lines belong to.
type continuation struct {
	open    bool // a property line was seen
	dropped bool // that property was removed
	photo   bool // that property was a removed PHOTO
}

// continues reports whether line belongs to the tracked property. Inside a
// removed photo, bare base64 lines count as well as folded ones.
func (c continuation) continues(line string) bool {
	if !c.open {
		return false
	}
	if isContinuation(line) {
		return true
	}
	return c.photo && base64LineRe.MatchString(line)
}

// Transform rewrites one record into vCard 4.0. Blank lines are dropped,
// property lines go through the rule table, and folded continuation lines
// follow their property: kept verbatim when it was kept, dropped when it was
// dropped. Organizations get KIND:org right after the VERSION line. The result
// always ends with END:VCARD.
func Transform(rec RawRecord, opts types.ConversionOptions) TransformedRecord {
	out := TransformedRecord{
		Organization: IsOrganization(rec),
		Lines:        make([]string, 0, len(rec)+2),
	}
	out.Lines = append(out.Lines, BeginMarker)

	var state continuation
	for _, line := range rec {
		if isBlank(line) {
			continue
		}
		if state.continues(line) {
			if !state.dropped {
				out.Lines = append(out.Lines, line)
			} else if state.photo {
				out.PhotoLines++
			}
			continue
		}

		rewritten, matched, kept := applyRules(line, opts)
		state = continuation{open: !isBegin(line), dropped: !kept}
		if matched != nil && matched.base64Body {
			state.photo = true
			out.PhotoLines++
		}
		if kept {
			out.Lines = append(out.Lines, rewritten)
		}
	}

	if out.Organization {
		out.KindPlaced = insertKind(&out)
	}
	if !isEnd(out.Lines[len(out.Lines)-1]) {
		out.Lines = append(out.Lines, EndMarker)
	}
	return out
}

// insertKind places KIND:org after the first VERSION line. Without one there
// is no placement point and the record is left as a person.
func insertKind(out *TransformedRecord) bool {
	for i, line := range out.Lines {
		if strings.HasPrefix(line, "VERSION:") {
			out.Lines = append(out.Lines[:i+1], append([]string{KindOrg}, out.Lines[i+1:]...)...)
			return true
		}
	}
	return false
}
