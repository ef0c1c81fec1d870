// Package integration provides CLI and API integration tests for
// farmer-house.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// farmhouseBin is the path to the built farmhouse binary.
	farmhouseBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated environment with its own config and data
// directory.
type TestEnv struct {
	t         *testing.T
	ConfigDir string
	DataDir   string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build farmhouse: %v", buildErr)
	}
	if farmhouseBin == "" {
		t.Fatal("farmhouse binary not built")
	}

	tmp := t.TempDir()
	return &TestEnv{
		t:         t,
		ConfigDir: filepath.Join(tmp, "config"),
		DataDir:   filepath.Join(tmp, "data"),
	}
}

// RunResult holds the output of one farmhouse invocation.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run invokes farmhouse with the environment's config and data directories.
func (e *TestEnv) Run(args ...string) RunResult {
	e.t.Helper()

	full := append([]string{
		"--config-dir", e.ConfigDir,
		"--data-dir", e.DataDir,
	}, args...)

	cmd := exec.Command(farmhouseBin, full...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("run farmhouse %v: %v", args, err)
	}

	return RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: code,
	}
}

// MustRun invokes farmhouse and fails the test on a non-zero exit.
func (e *TestEnv) MustRun(args ...string) RunResult {
	e.t.Helper()
	result := e.Run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("farmhouse %v exited %d\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// MustRunJSON invokes farmhouse with --json and unmarshals stdout into out.
func (e *TestEnv) MustRunJSON(out any, args ...string) {
	e.t.Helper()
	result := e.MustRun(append(args, "--json")...)
	if err := json.Unmarshal([]byte(result.Stdout), out); err != nil {
		e.t.Fatalf("unmarshal %v output: %v\nstdout: %s", args, err, result.Stdout)
	}
}
