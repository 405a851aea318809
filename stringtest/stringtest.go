// Package stringtest provides small helpers for building multi-line test
// fixtures with explicit line endings.
package stringtest

import "strings"

// Lines joins the given lines with LF endings and appends a trailing
// newline, matching how text files end.
//
// Example:
//
//	input := stringtest.Lines(
//		"# id: 1",
//		"time,depth",
//		"2012,0.575",
//	) // -> "# id: 1\ntime,depth\n2012,0.575\n"
func Lines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// LinesCRLF joins the given lines with CRLF endings and appends a trailing
// CRLF, for fixtures with Windows line endings.
func LinesCRLF(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n"
}
