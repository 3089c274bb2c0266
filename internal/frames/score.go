package frames

import "strings"

// Score computes the strategic-importance heuristic for a move. The weights
// are a frozen contract pinned by tests; they are additive over five
// independent factors and the function is pure and deterministic.
func Score(m *Move) int {
	score := 0

	// Safety: how punishable the move is on block.
	if b, ok := Parse(m.Block); ok {
		switch {
		case b > 0:
			score += 15
		case b >= -4:
			score += 10
		case b >= -9:
			score += 5
		case b >= -13:
			score -= 5
		case b >= -15:
			score -= 10
		default:
			score -= 15
		}
	}

	// Speed: faster startup interrupts more.
	startup, startupOK := Parse(m.Startup)
	if startupOK {
		switch {
		case startup <= 12:
			score += 10
		case startup <= 14:
			score += 7
		case startup <= 16:
			score += 5
		case startup <= 20:
			score += 2
		default:
			score -= 2
		}
	}

	// Reward: launchers dominate, then raw hit advantage.
	launcher := IsAirborneLauncher(m.Hit) || IsAirborneLauncher(m.CounterHit)
	if launcher {
		score += 20
	} else if h, ok := Parse(m.Hit); ok && h > 15 {
		score += 10
	}
	if strings.Contains(m.Hit, "c") || strings.Contains(m.CounterHit, "c") {
		score += 5 // forces crouch
	}

	// Utility: tagged properties and notable notes.
	if m.HasTag("he") {
		score += 15
	}
	if m.HasTag("pc") {
		score += 7
	}
	if m.HasTag("trn") {
		score += 5
	}
	if m.HasTag("bbr") {
		score += 5
	}
	notes := strings.ToLower(m.Notes)
	if strings.Contains(notes, "homing") {
		score += 10
	}
	for _, t := range m.Transitions {
		if strings.EqualFold(t, "DSS") {
			score += 12
			break
		}
	}
	if strings.Contains(notes, "guaranteed") {
		score += 15
	}

	// Hit level: mids and lows threaten more than slow highs.
	level := strings.ToLower(m.HitLevel)
	if strings.Contains(level, "m") {
		score += 5
	}
	if strings.Contains(level, "l") {
		if launcher {
			score += 15
		} else {
			score += 3
		}
	}
	if strings.Contains(level, "h") && startupOK && startup > 12 {
		score -= 3
	}

	return score
}
