package frames

import (
	"regexp"
	"strconv"
	"strings"
)

var leadingPlusRe = regexp.MustCompile(`^\+(\d+)`)

// IsLauncher classifies a frame-advantage string as a launcher: either the
// notation carries the airborne marker "a" with no parenthetical and parses
// to at least +20, or a bare leading "+" run reaches +20 ("+25" qualifies
// even without the marker). This is the classification the filter engine
// and the counter-hit-launcher predicates use.
//
// It deliberately disagrees with IsAirborneLauncher on inputs like "+25";
// the two definitions have different call sites and are kept separate.
func IsLauncher(s string) bool {
	if s == "" {
		return false
	}
	if v, ok := Parse(s); ok && v >= 20 &&
		strings.Contains(s, "a") && !strings.Contains(s, "(") {
		return true
	}
	if m := leadingPlusRe.FindStringSubmatch(s); m != nil {
		v, err := strconv.Atoi(m[1])
		return err == nil && v >= 20
	}
	return false
}

// IsAirborneLauncher is the stricter classification used when scoring
// reward: the airborne marker must be present and the first numeric run
// must reach +20. "+25" is not a launcher under this definition.
func IsAirborneLauncher(s string) bool {
	if s == "" || !strings.Contains(s, "a") {
		return false
	}
	v, ok := Parse(s)
	return ok && v >= 20
}
