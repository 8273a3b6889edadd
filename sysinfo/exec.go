package sysinfo

import (
	"os/exec"

	"github.com/pkg/errors"
)

// runCommand runs name with args and returns raw stdout. There is no timeout:
// a hung utility blocks the fetch.
func runCommand(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", errors.Wrapf(err, "run %s", name)
	}
	return string(out), nil
}
