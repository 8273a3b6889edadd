//go:build unix

package sysinfo

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// uname queries the kernel name and node name.
func uname() (Kernel, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Kernel{}, errors.Wrap(err, "uname")
	}
	return Kernel{
		Sysname:  unix.ByteSliceToString(u.Sysname[:]),
		Nodename: unix.ByteSliceToString(u.Nodename[:]),
	}, nil
}
