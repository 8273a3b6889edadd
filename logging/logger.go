// Package logging builds the diagnostic logger. Diagnostics go to stderr so
// they never mix with the fetch output on stdout.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a text logger on stderr at the given level.
// The "error" key is shortened to "err" and error values are rendered with
// Error() only, so wrapped errors do not dump their stack traces.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			if a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					a.Value = slog.StringValue(err.Error())
				}
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
