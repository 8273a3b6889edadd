package sysinfo

import (
	"strings"

	"github.com/pkg/errors"
)

// Hostname renders "user@host" with both parts coloured.
//
// The user comes from $USER and is the only hard requirement. The host is
// taken from $HOSTNAME, then the hostname utility, then the kernel node name.
func (s *Source) Hostname() (string, error) {
	user, ok := s.LookupEnv("USER")
	if !ok {
		return "", errors.New("USER is not set")
	}
	return Colorize(user, Accent) + "@" + Colorize(s.hostName(), Accent), nil
}

func (s *Source) hostName() string {
	if host, ok := s.LookupEnv("HOSTNAME"); ok {
		return host
	}

	out, err := s.Command("hostname")
	switch host := strings.ReplaceAll(out, "\n", ""); {
	case err != nil:
		s.logger().Debug("hostname utility unavailable, asking the kernel", "error", err)
	case host == "":
		s.logger().Debug("hostname utility printed nothing, asking the kernel")
	default:
		return host
	}

	k, err := s.Kernel()
	if err != nil {
		s.logger().Debug("kernel node name unavailable", "error", err)
		return ""
	}
	return k.Nodename
}
