package frames

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	startupRe = regexp.MustCompile(`^i(\d+)`)
	numberRe  = regexp.MustCompile(`[-+]?\d+`)
)

// Parse extracts the numeric value from a frame-notation string.
// An "i" prefix marks startup notation ("i14" → 14); otherwise the first
// signed or unsigned integer anywhere in the string wins ("+5c" → 5,
// "-12a (JG)" → -12). Returns ok=false for empty strings and strings
// without any digit run. Never fails.
func Parse(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if m := startupRe.FindStringSubmatch(s); m != nil {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return v, true
	}
	m := numberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return v, true
}

// DamageValue extracts the first integer from a damage string, defaulting
// to 0 when the string carries no number ("21,24" → 21, "" → 0).
func DamageValue(s string) int {
	m := numberRe.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return v
}
