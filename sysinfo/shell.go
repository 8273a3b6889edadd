package sysinfo

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	iconShell   = "\uf489"
	shellPrefix = "/bin/"
)

// Shell renders the login shell taken from $SHELL.
func (s *Source) Shell() (string, error) {
	path, ok := s.LookupEnv("SHELL")
	if !ok {
		return "", errors.New("SHELL is not set")
	}
	name, err := ShellName(path)
	if err != nil {
		return "", err
	}
	return formatData(iconShell, name), nil
}

// ShellName strips the /bin/ prefix from a shell path.
//
// Parameters:
//   - path: The value of $SHELL
//
// Returns:
//   - The shell name
//   - An error for paths outside /bin/, such as /usr/bin/zsh
//
// Example: ShellName("/bin/zsh") returns "zsh"
func ShellName(path string) (string, error) {
	name, ok := strings.CutPrefix(path, shellPrefix)
	if !ok {
		return "", errors.Errorf("unrecognised shell path %q", path)
	}
	return name, nil
}
