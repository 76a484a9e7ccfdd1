// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> navigation/verification -> session and config
// files on disk -> the external linter process.
//
// The linter is the fakelint binary from internal/testhelpers, which
// reports a finding for every "lint:" marker comment in the target file.
// That keeps the tests hermetic: no flake8 installation is required, and
// a test controls exactly which findings each lint run produces.
//
// Each testEnv gets its own HOME and session file, so config, the audit
// log database and the session never leak between tests or into the
// developer's real ~/.lnedit.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath  string
	fakelintBin string
	buildOnce   sync.Once
	buildErr    error
)

// buildBinary compiles the lnedit and fakelint binaries once for all tests.
func buildBinary(t *testing.T) (string, string) {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "lnedit-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "lnedit"
		if os.PathSeparator == '\\' {
			binaryName = "lnedit.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)
		fakelintBin = filepath.Join(tmpDir, "fakelint")

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		for bin, pkg := range map[string]string{
			binaryPath:  ".",
			fakelintBin: "./internal/testhelpers/fakelint",
		} {
			cmd := exec.Command("go", "build", "-o", bin, pkg)
			cmd.Dir = projectRoot
			if out, err := cmd.CombinedOutput(); err != nil {
				buildErr = &buildError{err: err, output: string(out)}
				return
			}
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binaries: %v", buildErr)
	}
	return binaryPath, fakelintBin
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t       *testing.T
	dir     string
	home    string
	session string
	binary  string
}

// newTestEnv creates an isolated environment with fakelint configured as
// the linter.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary, fakelint := buildBinary(t)
	env := &testEnv{
		t:       t,
		dir:     t.TempDir(),
		home:    t.TempDir(),
		session: filepath.Join(t.TempDir(), "session.yaml"),
		binary:  binary,
	}

	env.run("config", "linter.command", fakelint+" --isolated")
	return env
}

// run executes lnedit with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("lnedit %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes lnedit and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"LNEDIT_SESSION="+e.session,
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// runStdin executes lnedit with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	out, err := e.runStdinErr(input, args...)
	if err != nil {
		e.t.Fatalf("lnedit %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runStdinErr executes lnedit with stdin input and returns any error.
func (e *testEnv) runStdinErr(input string, args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"LNEDIT_SESSION="+e.session,
	)
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// write places a file in the test working directory and returns its path.
func (e *testEnv) write(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatal(err)
	}
	return path
}

// read returns the content of a file in the test working directory.
func (e *testEnv) read(name string) string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.dir, name))
	if err != nil {
		e.t.Fatal(err)
	}
	return string(data)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
