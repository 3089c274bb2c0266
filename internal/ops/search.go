package ops

import (
	"context"
	"strings"

	"github.com/mishimalab/frametrap/internal/frames"
)

// FilterSpec bounds a movelist search. Absent fields (nil pointers, empty
// strings, false booleans) leave that dimension unconstrained.
type FilterSpec struct {
	HitLevel            string `json:"hit_level,omitempty"`
	MinDamage           *int   `json:"min_damage,omitempty"`
	MaxStartup          *int   `json:"max_startup,omitempty"`
	MinBlock            *int   `json:"min_block,omitempty"`
	MaxBlock            *int   `json:"max_block,omitempty"`
	MinHit              *int   `json:"min_hit,omitempty"`
	MinCounterHit       *int   `json:"min_counter_hit,omitempty"`
	CounterHitLaunchers bool   `json:"counter_hit_launchers,omitempty"`
	SafeOnBlock         bool   `json:"safe_on_block,omitempty"`
	HasTag              string `json:"has_tag,omitempty"`
	Limit               int    `json:"limit,omitempty"`
}

// SearchOutput contains the result of the SearchMoves operation.
type SearchOutput struct {
	Character string        `json:"character"`
	Moves     []frames.Move `json:"moves"`
	Count     int           `json:"count"`
}

// safeOnBlockFloor is the block advantage at or above which a move counts
// as safe.
const safeOnBlockFloor = -10

// SearchMoves filters a character's decorated movelist. Constraints are
// AND'ed, original order is preserved, and limit truncates last. No match
// yields an empty list, never an error.
func (s *Service) SearchMoves(ctx context.Context, character string, spec FilterSpec) (*SearchOutput, error) {
	list, err := s.GetMovelist(ctx, character)
	if err != nil {
		return nil, err
	}

	matched := make([]frames.Move, 0, len(list.Moves))
	for _, mv := range list.Moves {
		if matches(&mv, &spec) {
			matched = append(matched, mv)
		}
	}

	if spec.Limit > 0 && len(matched) > spec.Limit {
		matched = matched[:spec.Limit]
	}

	return &SearchOutput{
		Character: list.Character,
		Moves:     matched,
		Count:     len(matched),
	}, nil
}

// matches applies every set constraint to a single move.
func matches(mv *frames.Move, spec *FilterSpec) bool {
	if spec.HitLevel != "" &&
		!strings.Contains(strings.ToLower(mv.HitLevel), strings.ToLower(spec.HitLevel)) {
		return false
	}

	if spec.MinDamage != nil && frames.DamageValue(mv.Damage) < *spec.MinDamage {
		return false
	}

	// A move with no startup field at all is kept: the constraint is
	// skipped, unlike the block/hit bounds below. Present-but-unparsable
	// startup still excludes.
	if spec.MaxStartup != nil && mv.Startup != "" {
		v, ok := frames.Parse(mv.Startup)
		if !ok || v > *spec.MaxStartup {
			return false
		}
	}

	if spec.MinBlock != nil {
		v, ok := frames.Parse(mv.Block)
		if !ok || v < *spec.MinBlock {
			return false
		}
	}
	if spec.MaxBlock != nil {
		v, ok := frames.Parse(mv.Block)
		if !ok || v > *spec.MaxBlock {
			return false
		}
	}
	if spec.MinHit != nil {
		v, ok := frames.Parse(mv.Hit)
		if !ok || v < *spec.MinHit {
			return false
		}
	}
	if spec.MinCounterHit != nil {
		v, ok := frames.Parse(mv.CounterHit)
		if !ok || v < *spec.MinCounterHit {
			return false
		}
	}

	if spec.CounterHitLaunchers && !frames.IsLauncher(mv.CounterHit) {
		return false
	}

	if spec.SafeOnBlock {
		v, ok := frames.Parse(mv.Block)
		if !ok || v < safeOnBlockFloor {
			return false
		}
	}

	if spec.HasTag != "" && !matchesTag(mv, strings.ToLower(spec.HasTag)) {
		return false
	}

	return true
}

// counterHitLauncherAliases are the hasTag spellings that ask for
// counter-hit launchers.
var counterHitLauncherAliases = map[string]bool{
	"ch-launcher":          true,
	"ch-launch":            true,
	"counter-hit-launcher": true,
}

// tagAliases maps requested tag names to the canonical keys of the move
// tag map.
var tagAliases = map[string]string{
	"he":             "he",
	"heat":           "he",
	"tornado":        "trn",
	"screw":          "trn",
	"wall":           "bbr",
	"guard-break":    "gb",
	"reversal-break": "rb",
	"charge":         "cs",
	"hold":           "cs",
}

// heatCommandPrefix marks heat-only moves in command notation.
const heatCommandPrefix = "H."

// matchesTag evaluates the hasTag predicate: an ordered, short-circuit
// list of special cases followed by tag-map membership. This is an OR of
// special cases nested inside the otherwise AND'ed filter; the order below
// is load-bearing and must not change.
func matchesTag(mv *frames.Move, tag string) bool {
	if counterHitLauncherAliases[tag] && frames.IsLauncher(mv.CounterHit) {
		return true
	}

	if tag == "charge" || tag == "hold" {
		notes := strings.ToLower(mv.Notes)
		if strings.Contains(notes, "charge") || strings.Contains(notes, "hold") {
			return true
		}
	}

	// "safe" is decided by block frames alone; a literal "safe" tag key
	// never rescues an unsafe move.
	if tag == "safe" {
		v, ok := frames.Parse(mv.Block)
		return ok && v >= safeOnBlockFloor
	}

	if (tag == "heat" || tag == "he") && strings.HasPrefix(mv.Command, heatCommandPrefix) {
		return true
	}

	key := tag
	if canonical, ok := tagAliases[tag]; ok {
		key = canonical
	}
	return mv.HasTag(key)
}
