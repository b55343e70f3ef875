package smurf

import (
	"testing"
)

func TestInflect(t *testing.T) {
	tests := []struct {
		stem     string
		original string
		expected string
	}{
		{"smurf", "fix", "smurf"},
		{"smurf", "running", "smurfing"},
		{"smurf", "Running", "Smurfing"},
		{"smurf", "FIXED", "SMURFED"},
		{"smurf", "walked", "smurfed"},
		{"smurf", "files", "smurfs"},
		{"smurf", "Files", "Smurfs"},
		{"smurf", "TESTS", "SMURFS"},
		{"smurfy", "bugs", "smurfys"},
		{"smurfy", "BROKEN", "SMURFY"},
		{"smurfy", "Nice", "Smurfy"},
		// -ss never counts as a plural
		{"smurf", "boss", "smurf"},
		{"smurf", "MESS", "SMURF"},
		// suffix rules never combine: -ing wins over trailing -s logic
		{"smurf", "sings", "smurfs"},
		{"smurf", "singing", "smurfing"},
	}

	for _, tc := range tests {
		if got := Inflect(tc.stem, tc.original); got != tc.expected {
			t.Errorf("Inflect(%q, %q) = %q, want %q", tc.stem, tc.original, got, tc.expected)
		}
	}
}

func TestInflectCasingEdges(t *testing.T) {
	tests := []struct {
		original string
		expected string
	}{
		// a single capital letter counts as all-uppercase, not title-case
		{"A", "SMURF"},
		// mixed case that is neither upper nor title stays as produced
		{"fIx", "smurf"},
		{"wEIRD", "smurf"},
		// digits do not break the casing checks
		{"R2", "SMURF"},
	}

	for _, tc := range tests {
		if got := Inflect("smurf", tc.original); got != tc.expected {
			t.Errorf("Inflect(\"smurf\", %q) = %q, want %q", tc.original, got, tc.expected)
		}
	}
}
