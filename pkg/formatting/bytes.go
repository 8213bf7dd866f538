// Package formatting converts byte sizes between counts and config strings.
package formatting

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var units = []string{"B", "KB", "MB", "GB", "TB"}

var sizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([A-Za-z]*)$`)

// ParseBytes reads a size such as "1MB", "512 kb" or "2048" (bytes).
// Units are base 1024 and case-insensitive.
func ParseBytes(s string) (int64, error) {
	m := sizePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid byte size %q", s)
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q: %w", s, err)
	}

	unit := strings.ToUpper(m[2])
	if unit == "" {
		unit = "B"
	}
	exp := slices.Index(units, unit)
	if exp < 0 {
		return 0, fmt.Errorf("unknown unit %q in byte size %q", m[2], s)
	}

	return int64(n * math.Pow(1024, float64(exp))), nil
}

// FormatBytes renders n with the largest unit that keeps the value at or above one.
func FormatBytes(n int64) string {
	f := float64(n)
	exp := 0
	for f >= 1024 && exp < len(units)-1 {
		f /= 1024
		exp++
	}
	return strconv.FormatFloat(f, 'f', -1, 64) + " " + units[exp]
}
