// Package testhelpers builds repo-local binaries for integration tests.
package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	buildOnce sync.Once
	buildErr  error
	binPaths  = map[string]string{}
	binDir    string
)

// BuildBin builds the package at pkgPath (relative to the repository root)
// into a shared temp directory and returns the binary path. Builds are
// cached for the life of the test process.
func BuildBin(t *testing.T, outName, pkgPath string) string {
	t.Helper()

	buildOnce.Do(func() {
		binDir, buildErr = os.MkdirTemp("", "lnedit-testbin-")
	})
	if buildErr != nil {
		t.Fatalf("creating binary dir: %v", buildErr)
	}

	if p, ok := binPaths[outName]; ok {
		return p
	}

	root, err := repoRoot()
	if err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(binDir, outName)
	cmd := exec.Command("go", "build", "-o", outPath, pkgPath)
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build %s failed: %v\n%s", pkgPath, err, out)
	}
	binPaths[outName] = outPath
	return outPath
}

// repoRoot walks up from the working directory to the directory holding
// go.mod.
func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir, nil
		}
		dir = parent
	}
}
