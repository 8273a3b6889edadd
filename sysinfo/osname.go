package sysinfo

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	iconApple = "\ue711"
	iconLinux = "\ue712"
)

var (
	// ErrNoPrettyName is returned when an os-release file has no PRETTY_NAME.
	ErrNoPrettyName = errors.New("unrecognised linux distro")

	// ErrUnsupportedKernel is returned for kernels other than Darwin and Linux.
	ErrUnsupportedKernel = errors.New("unrecognised os")
)

// macReleases maps a macOS major version to its marketing name.
var macReleases = map[string]string{
	"11": "Big Sur",
	"12": "Monterey",
	"13": "Ventura",
}

// OS renders the operating system name. Darwin asks sw_vers; Linux asks
// lsb_release and falls back to the os-release file.
func (s *Source) OS() (string, error) {
	k, err := s.Kernel()
	if err != nil {
		return "", err
	}

	switch k.Sysname {
	case "Darwin":
		name, err := s.macRelease()
		if err != nil {
			return "", err
		}
		return formatData(iconApple, name), nil
	case "Linux":
		name, err := s.lsbRelease()
		if err != nil {
			s.logger().Debug("lsb_release unavailable, reading os-release", "error", err)
			name, err = s.osRelease()
		}
		if err != nil {
			return "", err
		}
		return formatData(iconLinux, name), nil
	default:
		return "", errors.Wrapf(ErrUnsupportedKernel, "kernel %q", k.Sysname)
	}
}

func (s *Source) macRelease() (string, error) {
	product, err := s.Command("sw_vers", "-productName")
	if err != nil {
		return "", err
	}
	version, err := s.Command("sw_vers", "-productVersion")
	if err != nil {
		return "", err
	}
	nickname, err := MacNickname(version)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(strings.ReplaceAll(product, "\n", "")+" "+nickname, " "), nil
}

// MacNickname maps a macOS version to its release name.
//
// Parameters:
//   - version: The sw_vers product version, e.g. "12.6"
//
// Returns:
//   - The release name, or "" for versions missing from the table
//   - An error if the version has no dot
//
// Example: MacNickname("12.6") returns "Monterey"
func MacNickname(version string) (string, error) {
	major, _, ok := strings.Cut(strings.TrimSpace(version), ".")
	if !ok {
		return "", errors.Errorf("unrecognised macOS version %q", version)
	}
	return macReleases[major], nil
}

func (s *Source) lsbRelease() (string, error) {
	out, err := s.Command("lsb_release", "-sd")
	if err != nil {
		return "", err
	}
	name := strings.Trim(strings.TrimSpace(out), `"`)
	if name == "" {
		return "", errors.New("lsb_release printed no description")
	}
	return name, nil
}

func (s *Source) osRelease() (string, error) {
	var lastErr error = ErrNoPrettyName
	for _, path := range s.OSReleasePaths {
		data, err := s.ReadFile(path)
		if err != nil {
			lastErr = errors.Wrapf(err, "read %s", path)
			continue
		}
		return ParsePrettyName(bytes.NewReader(data))
	}
	return "", lastErr
}

// ParsePrettyName scans os-release content for the PRETTY_NAME entry.
//
// Parameters:
//   - r: The os-release content, one KEY=value entry per line
//
// Returns:
//   - The first PRETTY_NAME value with the quotes removed
//   - ErrNoPrettyName if no line starts with PRETTY_NAME=
//
// Example: the line PRETTY_NAME="Test OS 1.0" yields "Test OS 1.0"
func ParsePrettyName(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		value, ok := strings.CutPrefix(scanner.Text(), "PRETTY_NAME=")
		if !ok {
			continue
		}
		return strings.ReplaceAll(value, `"`, ""), nil
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrap(err, "scan os-release")
	}
	return "", ErrNoPrettyName
}
