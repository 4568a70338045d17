package testutil

import (
	"os"
	"testing"
)

func TestLines(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"\n", 0},
		{"a\n", 1},
		{"a\nb\n", 2},
		{"a\nb", 2},
	}
	for _, tt := range tests {
		if got := len(Lines(tt.input)); got != tt.expected {
			t.Errorf("Lines(%q): expected %d lines, got %d", tt.input, tt.expected, got)
		}
	}
}

func TestUnsetEnv(t *testing.T) {
	t.Setenv("ENVLOG_TESTUTIL_VAR", "x")
	UnsetEnv(t, "ENVLOG_TESTUTIL_VAR")
	if _, ok := os.LookupEnv("ENVLOG_TESTUTIL_VAR"); ok {
		t.Error("expected variable to be unset")
	}
}
