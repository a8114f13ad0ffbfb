package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses an age threshold like "30d", "24h", "90m",
// "3600s" or "2w" into a duration.
//
// Supported units: s (seconds), m (minutes), h (hours), d (days),
// w (weeks).
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("duration cannot be empty")
	}
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration %q: must be a number followed by a unit (s, m, h, d, w)", s)
	}

	numPart, unit := s[:len(s)-1], s[len(s)-1:]
	n, err := strconv.ParseUint(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number in duration: %s", numPart)
	}

	var multiplier time.Duration
	switch unit {
	case "s":
		multiplier = time.Second
	case "m":
		multiplier = time.Minute
	case "h":
		multiplier = time.Hour
	case "d":
		multiplier = 24 * time.Hour
	case "w":
		multiplier = 7 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("invalid duration unit %q: use 's', 'm', 'h', 'd', or 'w'", unit)
	}

	return time.Duration(n) * multiplier, nil
}
