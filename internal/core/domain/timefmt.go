package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const maxTimeComponents = 3

// ParseTime reads a "[[hh:]mm:]ss" timestamp. Components are read right to
// left as seconds, minutes and hours and must be non-negative integers.
func ParseTime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidTimeFormat)
	}

	parts := strings.Split(s, ":")
	if len(parts) > maxTimeComponents {
		return 0, fmt.Errorf("%w: too many components in %q", ErrInvalidTimeFormat, s)
	}

	var seconds uint64
	multiplier := uint64(1)

	for i := len(parts) - 1; i >= 0; i-- {
		v, err := strconv.ParseUint(parts[i], 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: component %q of %q", ErrInvalidTimeFormat, parts[i], s)
		}

		seconds += v * multiplier
		multiplier *= 60
	}

	if seconds > math.MaxInt64/uint64(time.Second) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidTimeFormat, s)
	}

	return time.Duration(seconds) * time.Second, nil
}

// FormatTime renders d as "mm:ss", or "hh:mm:ss" once it reaches an hour.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	t := int64(d / time.Second)
	sec := t % 60
	minutes := (t % 3600) / 60
	hours := t / 3600

	if hours != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, sec)
	}

	return fmt.Sprintf("%02d:%02d", minutes, sec)
}

// ClampDuration bounds d to [0, upper]. A negative upper counts as zero.
func ClampDuration(d, upper time.Duration) time.Duration {
	upper = max(0, upper)
	return max(0, min(upper, d))
}
