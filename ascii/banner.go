// Package ascii provides the optional sfetch banner: a small terminal-window
// picture stored as a bitmap and decoded on first use.
package ascii

import (
	"strings"
	"sync"

	"sfetch/sysinfo"
)

const (
	// bannerWidth is the number of columns encoded per row.
	bannerWidth = 16

	// bannerGlyph is drawn for every set bit.
	bannerGlyph = '#'
)

// bannerTable holds one big-endian uint16 per row; the most significant bit
// is the leftmost column.
var bannerTable = [...]byte{
	0xFF, 0xFF,
	0x80, 0x01,
	0xB0, 0x01,
	0x98, 0x01,
	0xB1, 0xE1,
	0x80, 0x01,
	0xFF, 0xFF,
}

var decodeBanner = sync.OnceValue(func() []string {
	lines := make([]string, 0, len(bannerTable)/2)
	for i := 0; i+1 < len(bannerTable); i += 2 {
		row := uint16(bannerTable[i])<<8 | uint16(bannerTable[i+1])

		var b strings.Builder
		for col := 0; col < bannerWidth; col++ {
			if row&(1<<(bannerWidth-1-col)) != 0 {
				b.WriteRune(bannerGlyph)
			} else {
				b.WriteByte(' ')
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
})

// Banner returns the decoded banner, one string per display line.
// The returned slice is a copy and may be modified.
func Banner() []string {
	return append([]string(nil), decodeBanner()...)
}

// Colored returns the banner with every non-empty line wrapped in the
// accent colour.
func Colored() []string {
	lines := Banner()
	for i, line := range lines {
		if line != "" {
			lines[i] = sysinfo.Colorize(line, sysinfo.Accent)
		}
	}
	return lines
}
