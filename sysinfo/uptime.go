package sysinfo

import (
	"fmt"
	"strings"
	"time"
)

const iconUptime = "\uf64f"

// Uptime renders the time since boot.
func (s *Source) Uptime() (string, error) {
	d, err := s.Elapsed()
	if err != nil {
		return "", err
	}
	return formatData(iconUptime, FormatUptime(d)), nil
}

// FormatUptime converts a duration into "Nd Nh Nm".
//
// Parameters:
//   - d: Time since boot
//
// Returns:
//   - The non-zero units, space-joined. Days are plain 24-hour blocks and
//     seconds are dropped, so anything under a minute formats as ""
//
// Example: FormatUptime(90061 * time.Second) returns "1d 1h 1m"
func FormatUptime(d time.Duration) string {
	secs := int64(d / time.Second)

	days := secs / (24 * 60 * 60)
	hours := secs % (24 * 60 * 60) / (60 * 60)
	minutes := secs % (60 * 60) / 60

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	return strings.Join(parts, " ")
}
