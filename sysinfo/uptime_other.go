//go:build !linux && !darwin

package sysinfo

import (
	"runtime"
	"time"

	"github.com/pkg/errors"
)

func systemUptime() (time.Duration, error) {
	return 0, errors.Errorf("uptime is not available on %s", runtime.GOOS)
}
