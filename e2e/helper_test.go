// Package e2e contains end-to-end tests for fcp.
//
// helper_test.go provides shared test utilities:
//   - buildBinary: builds the fcp binary for testing
//   - runFcp: executes fcp and returns stdout/stderr separately with the exit code
//   - assertExitCode: asserts the exit code of a finished run
package e2e

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	kexec "github.com/k1LoW/exec"
)

// buildBinary builds fcp binary for testing and returns the path.
func buildBinary(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	binPath := filepath.Join(tmpDir, "fcp")

	cmd := kexec.Command("go", "build", "-o", binPath, "..")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to build binary: %v", err)
	}

	return binPath
}

// runFcp runs fcp in dir and returns stdout, stderr, and the exit code.
// Pipes are not terminals, so the output carries no color codes.
func runFcp(t *testing.T, binPath, dir string, args ...string) (stdout string, stderr string, code int) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	cmd := kexec.CommandContext(ctx, binPath, args...)
	cmd.Dir = dir
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	err := cmd.Run()

	code = 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("failed to run fcp: %v", err)
		}
		code = exitErr.ExitCode()
	}
	return strings.TrimSpace(stdoutBuf.String()), strings.TrimSpace(stderrBuf.String()), code
}

// assertExitCode asserts that a run finished with the expected exit code.
func assertExitCode(t *testing.T, got, want int, stderr string) {
	t.Helper()
	if got != want {
		t.Fatalf("exit code = %d, want %d\nstderr: %s", got, want, stderr)
	}
}
