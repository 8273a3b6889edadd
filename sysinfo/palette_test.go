package sysinfo

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette(t *testing.T) {
	row1, row2 := Palette()

	glyphs := strings.Split(row1, " ")
	require.Len(t, glyphs, 8)
	for i, g := range glyphs {
		assert.Equal(t, fmt.Sprintf("\x1b[%dm⬣", 30+i), g)
	}

	require.True(t, strings.HasPrefix(row2, " \x1b["), "row 2 must start with a single space")
	glyphs = strings.Split(strings.TrimPrefix(row2, " "), " ")
	require.Len(t, glyphs, 8)
	for i, g := range glyphs {
		assert.Equal(t, fmt.Sprintf("\x1b[%dm⬣", 90+i), g)
	}
}

func TestPaletteWidth(t *testing.T) {
	row1, row2 := Palette()
	assert.Equal(t, VisibleWidth(row1)+1, VisibleWidth(row2))
}
