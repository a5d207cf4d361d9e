package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	version = "1.2.3"
	defer func() { version = "dev" }()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version command returned error: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "macfetch version 1.2.3") {
		t.Errorf("version output = %q, expected it to contain the injected version", got)
	}
}

func TestExecute_MissingProductIDExitsOne(t *testing.T) {
	// No product id and no latest flag fails validation before any
	// network access, so the root command is safe to run for real.
	rootCmd.SetArgs([]string{})
	defer rootCmd.SetArgs(nil)

	if code := Execute("test"); code != 1 {
		t.Errorf("Execute() = %d, expected exit code 1", code)
	}
}

func TestExecute_UnknownFlagExitsOne(t *testing.T) {
	rootCmd.SetArgs([]string{"--no-such-flag"})
	defer rootCmd.SetArgs(nil)

	if code := Execute("test"); code != 1 {
		t.Errorf("Execute() = %d, expected exit code 1", code)
	}
}
