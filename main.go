// Package main provides sfetch, a small command-line tool that prints who and
// where you are (user@host, OS, shell, uptime) and a colour swatch, with an
// optional ASCII banner.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sfetch/ascii"
	"sfetch/logging"
	"sfetch/sysinfo"
)

// Banner layouts accepted by --logo.
const (
	layoutNone = "none"
	layoutTop  = "top"
	layoutSide = "side"
)

var (
	logoLayout = envOr("SFETCH_LOGO", layoutNone)
	gapSize    = 4
	debug      = os.Getenv("SFETCH_DEBUG") != ""
)

var rootCmd = &cobra.Command{
	Use:           "sfetch",
	Short:         "Print a short, colourised summary of this machine",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&logoLayout, "logo", logoLayout, "banner layout: none, top or side (env SFETCH_LOGO)")
	rootCmd.Flags().IntVar(&gapSize, "gap", gapSize, "number of spaces between banner and info in side layout")
	rootCmd.Flags().BoolVar(&debug, "debug", debug, "log skipped facts to stderr (env SFETCH_DEBUG)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sfetch:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if gapSize < 0 {
		return fmt.Errorf("--gap must not be negative, got %d", gapSize)
	}

	var logo []string
	switch logoLayout {
	case layoutNone:
	case layoutTop, layoutSide:
		logo = ascii.Colored()
	default:
		return fmt.Errorf("unknown --logo layout %q (want none, top or side)", logoLayout)
	}

	logger := logging.NewNop()
	if debug {
		logger = logging.New(slog.LevelDebug)
	}

	lines := sysinfo.NewSource(logger).Collect()

	out := cmd.OutOrStdout()
	layout := fitLayout(out, logoLayout, logo, lines, gapSize, logger)
	displayInfo(out, layout, logo, lines, gapSize)
	return nil
}

// fitLayout downgrades the side layout to top when w is a terminal too
// narrow for banner, gap and info side by side.
func fitLayout(w io.Writer, layout string, logo, lines []string, gap int, logger *slog.Logger) string {
	if layout != layoutSide {
		return layout
	}
	if width, ok := terminalWidth(w); ok && sideWidth(logo, lines, gap) > width {
		logger.Debug("terminal too narrow for side layout", "width", width)
		return layoutTop
	}
	return layout
}

// displayInfo writes the fact lines in order, optionally with the banner
// above them or beside them, and finishes with a reset and a blank line.
func displayInfo(w io.Writer, layout string, logo, lines []string, gap int) {
	switch layout {
	case layoutTop:
		for _, line := range logo {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	case layoutSide:
		for _, line := range sideBySide(logo, lines, gap) {
			fmt.Fprintln(w, line)
		}
	default:
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintln(w, sysinfo.ColorReset)
}

// sideBySide top-aligns logo and info, padding every logo line to the widest
// visible logo width so the info column stays straight.
func sideBySide(logo, info []string, gap int) []string {
	logoWidth := maxWidth(logo)

	maxLines := len(logo)
	if len(info) > maxLines {
		maxLines = len(info)
	}

	spacer := strings.Repeat(" ", gap)
	out := make([]string, 0, maxLines)
	for i := 0; i < maxLines; i++ {
		var logoLine, infoLine string
		if i < len(logo) {
			logoLine = logo[i]
		}
		if i < len(info) {
			infoLine = info[i]
		}
		// Reset between columns so a swatch row cannot tint the next logo line.
		out = append(out, sysinfo.PadRight(logoLine, logoWidth)+spacer+infoLine+sysinfo.ColorReset)
	}
	return out
}

func sideWidth(logo, info []string, gap int) int {
	return maxWidth(logo) + gap + maxWidth(info)
}

func maxWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := sysinfo.VisibleWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// terminalWidth reports the column count of w when it is a terminal.
var terminalWidth = func(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
