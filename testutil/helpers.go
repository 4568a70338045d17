// Package testutil holds helpers shared by envlog tests.
package testutil

import (
	"os"
	"strings"
	"testing"
)

// UnsetEnv removes keys from the environment for the duration of the test.
// The previous values are restored when the test ends.
func UnsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

// Lines splits output into lines, dropping the trailing newline.
// Empty output has no lines.
func Lines(output string) []string {
	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return nil
	}
	return strings.Split(output, "\n")
}
