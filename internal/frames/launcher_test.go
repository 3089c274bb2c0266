package frames

import "testing"

func TestIsLauncher(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"+23a", true},
		{"+15a", false},
		{"+25", true},
		{"+19", false},
		{"+35a (+25)", true}, // parenthetical blocks the marker path, leading run still qualifies
		{"+15a (+8)", false},
		{"-12", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsLauncher(tt.input); got != tt.want {
			t.Errorf("IsLauncher(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsAirborneLauncher(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"+23a", true},
		{"+15a", false},
		{"+25", false}, // no airborne marker: diverges from IsLauncher
		{"", false},
		{"KND", false},
	}

	for _, tt := range tests {
		if got := IsAirborneLauncher(tt.input); got != tt.want {
			t.Errorf("IsAirborneLauncher(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
