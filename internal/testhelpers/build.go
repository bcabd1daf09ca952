package testhelpers

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RepoRoot returns the nearest parent of the working directory that holds go.mod.
func RepoRoot(t *testing.T) string {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("no go.mod above %s", cwd)
		}
		dir = parent
	}
}

// BuildBin builds the repo-local package at pkgPath into a temp binary and
// returns its path.
func BuildBin(t *testing.T, outName, pkgPath string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	dir := RepoRoot(t)
	outPath := filepath.Join(t.TempDir(), outName)
	cmd := exec.Command("go", "build", "-o", outPath, pkgPath)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build %s failed: %v\n%s", pkgPath, err, string(out))
	}
	return outPath
}

// Result is the outcome of RunBin.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunBin runs bin in an empty temp directory with stdin set to input and
// extra environment entries appended. A non-zero exit is reported in
// Result.ExitCode, not as a test failure.
func RunBin(t *testing.T, bin, input string, env ...string) Result {
	t.Helper()
	cmd := exec.Command(bin)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdin = strings.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		t.Fatalf("run %s failed: %v", bin, err)
	}
	return res
}
