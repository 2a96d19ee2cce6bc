package cli

import (
	"reflect"
	"testing"

	"github.com/spf13/cobra"
)

func TestNormalizeToggleArguments(t *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
		expected  []string
	}{
		{
			name:      "literal joined",
			arguments: []string{"--copy", "no", "src"},
			expected:  []string{"--copy=no", "src"},
		},
		{
			name:      "folder after toggle kept",
			arguments: []string{"--copy", "src"},
			expected:  []string{"--copy", "src"},
		},
		{
			name:      "explicit value untouched",
			arguments: []string{"--tokens=off", "src"},
			expected:  []string{"--tokens=off", "src"},
		},
		{
			name:      "terminator stops rewriting",
			arguments: []string{"--", "--copy", "yes"},
			expected:  []string{"--", "--copy", "yes"},
		},
		{
			name:      "non toggle flag untouched",
			arguments: []string{"--no-gitignore", "true"},
			expected:  []string{"--no-gitignore", "true"},
		},
	}
	command := newApplication(nil).createRootCommand()
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := normalizeToggleArguments(command, testCase.arguments)
			if !reflect.DeepEqual(actual, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, actual)
			}
		})
	}
}

func TestToggleFlagValues(t *testing.T) {
	var enabled bool
	command := &cobra.Command{Use: "test"}
	registerToggleFlag(command.Flags(), &enabled, "copy", false, "copy")

	flag := command.Flags().Lookup("copy")
	if flag.DefValue != "false" || flag.NoOptDefVal != "true" {
		t.Fatalf("unexpected flag defaults %q %q", flag.DefValue, flag.NoOptDefVal)
	}
	for input, expected := range map[string]bool{"yes": true, "OFF": false, "1": true, "n": false} {
		if err := flag.Value.Set(input); err != nil {
			t.Fatalf("Set(%q) error: %v", input, err)
		}
		if enabled != expected {
			t.Fatalf("Set(%q) produced %v", input, enabled)
		}
	}
	if err := flag.Value.Set("maybe"); err == nil {
		t.Fatalf("expected an error for an unknown literal")
	}
}
