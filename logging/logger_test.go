package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriterRenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelDebug)

	log.Debug("fact unavailable", "fact", "shell", "error", errors.New("SHELL is not set"))

	out := buf.String()
	assert.Contains(t, out, `err="SHELL is not set"`)
	assert.Contains(t, out, "fact=shell")
	assert.NotContains(t, out, "error=")
}

func TestNewWithWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewNopDiscards(t *testing.T) {
	log := NewNop()
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
	log.Error("nothing happens")
}

func TestNewWithWriterRendersErrorsWithoutStack(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelDebug)

	err := errors.Wrap(errors.New("exit status 1"), "run lsb_release")
	log.Debug("lsb_release unavailable", "error", err)

	out := buf.String()
	assert.Contains(t, out, `err="run lsb_release: exit status 1"`)
	assert.NotContains(t, out, "logger_test.go")
	assert.Equal(t, 1, strings.Count(out, "\n"), "one record per line, got %q", out)
}
