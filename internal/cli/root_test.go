package cli

import (
	"bytes"
	"strings"
	"testing"
)

// resetRootFlags clears the help and version flag values that cobra leaves
// set on the shared rootCmd after a previous Execute in the same process.
func resetRootFlags() {
	for _, name := range []string{"help", "version"} {
		if f := rootCmd.Flags().Lookup(name); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}
}

func TestRootCommand_Help(t *testing.T) {
	resetRootFlags()
	rootCmd.SetArgs([]string{"--help"})
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if output == "" {
		t.Error("expected help output, got empty string")
	}
	if !strings.Contains(output, "duskswap") {
		t.Error("expected help to contain 'duskswap'")
	}
}

func TestRootCommand_Version(t *testing.T) {
	resetRootFlags()
	SetVersion("1.2.3")
	rootCmd.SetArgs([]string{"--version"})
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "1.2.3") {
		t.Errorf("expected version output to contain version, got %q", output)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	resetRootFlags()
	rootCmd.SetArgs([]string{"invalid-command"})
	var buf bytes.Buffer
	rootCmd.SetErr(&buf)

	err := rootCmd.Execute()
	if err == nil {
		t.Error("expected error for invalid command")
	}
}

func TestRootCommand_RejectsPositionalArgs(t *testing.T) {
	resetRootFlags()
	rootCmd.SetArgs([]string{"reconcile", "extra"})
	var buf bytes.Buffer
	rootCmd.SetErr(&buf)

	err := rootCmd.Execute()
	if err == nil {
		t.Error("expected error for unexpected positional argument")
	}
}

func TestSetVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "sets version", version: "2.0.0", want: "2.0.0"},
		{name: "empty version keeps previous", version: "", want: "2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.version)
			if rootCmd.Version != tt.want {
				t.Errorf("Version = %q, want %q", rootCmd.Version, tt.want)
			}
		})
	}
}
