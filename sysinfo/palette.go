package sysinfo

import (
	"fmt"
	"strings"
)

// swatchGlyph is the hexagon drawn once per colour.
const swatchGlyph = "⬣"

// Palette builds the terminal colour swatch.
//
// Returns:
//   - Row 1: the eight standard foreground colours (30-37), space-separated
//   - Row 2: a single space, then the bright variants (90-97)
//
// The rows do not reset the colour; the caller does that once after printing.
func Palette() (string, string) {
	return paletteRow(30), " " + paletteRow(90)
}

func paletteRow(first int) string {
	glyphs := make([]string, 0, 8)
	for code := first; code < first+8; code++ {
		glyphs = append(glyphs, fmt.Sprintf("\033[%dm%s", code, swatchGlyph))
	}
	return strings.Join(glyphs, " ")
}
