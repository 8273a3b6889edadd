//go:build darwin

package sysinfo

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// systemUptime derives the uptime from the kern.boottime sysctl.
func systemUptime() (time.Duration, error) {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return 0, errors.Wrap(err, "sysctl kern.boottime")
	}
	return time.Since(time.Unix(tv.Unix())), nil
}
