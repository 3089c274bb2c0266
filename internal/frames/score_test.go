package frames

import "testing"

// The scorer weights are a frozen contract; these cases pin them.
func TestScore(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want int
	}{
		{
			name: "fast plus-on-block jab",
			move: Move{
				Command: "1", HitLevel: "h", Damage: "5",
				Startup: "i10", Block: "+1", Hit: "+8", CounterHit: "+8",
			},
			// safety +15, speed +10
			want: 25,
		},
		{
			name: "mid launcher",
			move: Move{
				Command: "u/f+4", HitLevel: "m", Damage: "13",
				Startup: "i15", Block: "-13", Hit: "+25a", CounterHit: "+25a",
			},
			// safety -5, speed +5, launcher +20, mid +5
			want: 25,
		},
		{
			name: "tagged utility low",
			move: Move{
				Command: "d/b+3", HitLevel: "l", Damage: "20",
				Startup: "i22", Block: "-15", Hit: "+17", CounterHit: "+23a",
				Tags:        map[string]string{"he": "1"},
				Notes:       "Homing. Guaranteed follow-up on counter hit",
				Transitions: []string{"DSS"},
			},
			// safety -10, speed -2, CH launcher +20, he +15,
			// homing +10, DSS +12, guaranteed +15, low launcher +15
			want: 75,
		},
		{
			name: "crouch-forcing hit",
			move: Move{
				Command: "d+4", HitLevel: "l", Damage: "10",
				Startup: "i12", Block: "-13", Hit: "+4c", CounterHit: "+4c",
			},
			// safety -5, speed +10, crouch +5, low +3
			want: 13,
		},
		{
			name: "everything unparsed",
			move: Move{Command: "1+3", HitLevel: "", Damage: "throw"},
			want: 0,
		},
		{
			name: "slow high gets penalized",
			move: Move{
				Command: "f+4", HitLevel: "h", Damage: "18",
				Startup: "i18", Block: "-9", Hit: "+30a", CounterHit: "+30a",
			},
			// safety +5, speed +2, launcher +20, slow high -3
			want: 24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(&tt.move); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	move := Move{
		Command: "d/f+2", HitLevel: "m", Damage: "12",
		Startup: "i15", Block: "-7", Hit: "+32a", CounterHit: "+32a",
		Tags: map[string]string{"pc": "1"},
	}

	first := Score(&move)
	for range 10 {
		if got := Score(&move); got != first {
			t.Fatalf("Score not deterministic: %d then %d", first, got)
		}
	}
}
