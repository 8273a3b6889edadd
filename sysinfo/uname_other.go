//go:build !unix

package sysinfo

import (
	"runtime"

	"github.com/pkg/errors"
)

func uname() (Kernel, error) {
	return Kernel{}, errors.Errorf("uname is not available on %s", runtime.GOOS)
}
