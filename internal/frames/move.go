// Package frames holds the move record type and the numeric semantics of
// frame-notation strings: parsing, launcher classification, and the
// strategic-importance heuristic.
package frames

import "strings"

// Move is a single movelist entry as served by the frame-data provider,
// plus the computed StrategicImportance set during decoration.
type Move struct {
	MoveNumber          int               `json:"moveNumber"`
	Command             string            `json:"command"`
	Name                string            `json:"name,omitempty"`
	HitLevel            string            `json:"hitLevel"`
	Damage              string            `json:"damage"`
	Startup             string            `json:"startup,omitempty"`
	Block               string            `json:"block"`
	Hit                 string            `json:"hit"`
	CounterHit          string            `json:"counterHit"`
	Notes               string            `json:"notes,omitempty"`
	Tags                map[string]string `json:"tags,omitempty"`
	Transitions         []string          `json:"transitions,omitempty"`
	StrategicImportance int               `json:"strategicImportance"`
}

// HasTag reports whether the move's tag map contains the given key,
// compared case-insensitively.
func (m *Move) HasTag(key string) bool {
	for k := range m.Tags {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}
