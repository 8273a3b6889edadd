// Package sysinfo resolves the individual facts sfetch prints about the
// running machine. Every lookup is independent: it yields one formatted line
// or an error, and a failed lookup never affects the others.
package sysinfo

import (
	"log/slog"
	"os"
	"time"

	"sfetch/logging"
)

// ColorReset clears every SGR attribute.
const ColorReset = "\033[0m"

// Kernel holds the fields of the kernel identification call we care about.
type Kernel struct {
	// Sysname is the kernel name, e.g. "Linux" or "Darwin"
	Sysname string

	// Nodename is the network node name reported by the kernel
	Nodename string
}

// Source bundles the host touchpoints used by the lookups. NewSource wires
// the real machine; tests replace individual fields.
type Source struct {
	// LookupEnv reads an environment variable
	LookupEnv func(key string) (string, bool)

	// Command runs an external program and returns its stdout
	Command func(name string, args ...string) (string, error)

	// ReadFile reads a whole file
	ReadFile func(name string) ([]byte, error)

	// Kernel queries the kernel name and node name
	Kernel func() (Kernel, error)

	// Elapsed reports how long the system has been up
	Elapsed func() (time.Duration, error)

	// OSReleasePaths are tried in order when lsb_release is unavailable
	OSReleasePaths []string

	Logger *slog.Logger
}

// NewSource returns a Source backed by the running host. A nil logger
// discards everything.
func NewSource(logger *slog.Logger) *Source {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Source{
		LookupEnv:      os.LookupEnv,
		Command:        runCommand,
		ReadFile:       os.ReadFile,
		Kernel:         uname,
		Elapsed:        systemUptime,
		OSReleasePaths: []string{"/etc/os-release", "/usr/lib/os-release"},
		Logger:         logger,
	}
}

// Collect resolves every fact in display order: hostname, OS, shell, uptime,
// then the two swatch rows. Failed lookups are dropped without a trace on
// stdout; they only show up in the debug log.
func (s *Source) Collect() []string {
	lookups := []struct {
		name string
		fn   func() (string, error)
	}{
		{"hostname", s.Hostname},
		{"os", s.OS},
		{"shell", s.Shell},
		{"uptime", s.Uptime},
	}

	lines := make([]string, 0, len(lookups)+2)
	for _, l := range lookups {
		line, err := l.fn()
		if err != nil {
			s.logger().Debug("fact unavailable", "fact", l.name, "error", err)
			continue
		}
		lines = append(lines, line)
	}

	row1, row2 := Palette()
	return append(lines, row1, row2)
}

func (s *Source) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.NewNop()
	}
	return s.Logger
}
