// Package sysinfo - Formatting utilities
package sysinfo

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Accent is the colour used for fact labels, user@host and the banner.
var Accent termenv.Color = termenv.ANSICyan

// ansiRegex matches SGR escape codes for measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Colorize wraps text in the given foreground colour followed by a reset.
//
// Example: Colorize("zsh", termenv.ANSICyan) returns "\x1b[36mzsh\x1b[0m"
func Colorize(text string, color termenv.Color) string {
	return termenv.String(text).Foreground(color).String()
}

// formatData renders a labelled fact line: a leading space, the coloured
// label, a space and the value.
func formatData(key, value string) string {
	return " " + Colorize(key, Accent) + " " + value
}

// VisibleWidth returns the display width of s with ANSI escape codes removed.
// Wide runes count as two columns.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// PadRight pads a string with spaces to reach a minimum visible width.
//
// Parameters:
//   - s: The string to pad (may contain ANSI colour codes)
//   - width: The desired minimum width
//
// Returns:
//   - The padded string
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	w := VisibleWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
