// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
)

// MissingInputHelp explains how to produce the input file from Apple Contacts.
func MissingInputHelp(w io.Writer, path string) {
	fmt.Fprintf(w, "\nError: %s not found!\n", path)
	fmt.Fprintf(w, "Please place your Apple Contacts export (%s) in the current folder or pass its path.\n", path)
	fmt.Fprintln(w, "\nHow to export contacts from Apple Contacts:")
	fmt.Fprintln(w, "1. Open Contacts app on your Mac")
	fmt.Fprintln(w, "2. Select the contacts you want to export")
	fmt.Fprintln(w, "3. Go to File > Export > Export vCard...")
	fmt.Fprintf(w, "4. Save as '%s'\n", path)
}
