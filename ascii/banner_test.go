package ascii

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfetch/sysinfo"
)

func TestBannerDecodesBitmap(t *testing.T) {
	want := []string{
		"################",
		"#              #",
		"# ##           #",
		"#  ##          #",
		"# ##   ####    #",
		"#              #",
		"################",
	}
	assert.Equal(t, want, Banner())
}

func TestBannerReturnsCopy(t *testing.T) {
	first := Banner()
	first[0] = "changed"
	assert.Equal(t, strings.Repeat("#", bannerWidth), Banner()[0])
}

func TestColored(t *testing.T) {
	plain := Banner()
	colored := Colored()
	require.Len(t, colored, len(plain))

	for i := range plain {
		assert.Equal(t, "\x1b[36m"+plain[i]+"\x1b[0m", colored[i])
		assert.Equal(t, sysinfo.VisibleWidth(plain[i]), sysinfo.VisibleWidth(colored[i]))
	}
}
