// Package main tests for the polyroot CLI entry point.
package main

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
)

// TestMain_Quadratic verifies the binary solves a quadratic end to end.
func TestMain_Quadratic(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("go", "run", ".", "--config=/dev/null", "1", "-3", "2")
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("polyroot 1 -3 2 failed: %v\noutput: %s", err, out)
	}

	if got, want := string(out), "2.000000\n1.000000\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestMain_UsageExitCode verifies a wrong coefficient count exits with 2.
func TestMain_UsageExitCode(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("go", "run", ".", "1", "2")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v\noutput: %s", err, out)
	}
	// go run exits 1 and reports the child's status on stderr.
	if exitErr.ExitCode() != 2 && !strings.Contains(string(out), "exit status 2") {
		t.Errorf("exit code = %d, want 2\noutput: %s", exitErr.ExitCode(), out)
	}
	if !strings.Contains(string(out), "expected 0, 3 or 4 coefficients") {
		t.Errorf("output missing usage error:\n%s", out)
	}
}

// TestMain_VersionFlag verifies the --version flag works correctly.
func TestMain_VersionFlag(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("go", "run", ".", "--version")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("--version failed: %v\noutput: %s", err, out)
	}

	if !strings.HasPrefix(string(out), "polyroot ") {
		t.Errorf("--version output = %q, want polyroot prefix", out)
	}
}
