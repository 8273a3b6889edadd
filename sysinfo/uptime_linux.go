//go:build linux

package sysinfo

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// systemUptime reads the seconds since boot from sysinfo(2).
func systemUptime() (time.Duration, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, errors.Wrap(err, "sysinfo")
	}
	return time.Duration(info.Uptime) * time.Second, nil
}
