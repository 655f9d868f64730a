package cmd

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli"

	"github.com/histdl/histdl/common"
	"github.com/histdl/histdl/pkg/histlib"
)

// captureOutput captures stdout and stderr during function execution.
// It redirects os.Stdout and os.Stderr to pipes, runs the provided function,
// and returns the captured output as strings. This is useful for testing
// CLI output without modifying the command implementations.
func captureOutput(f func()) (stdout, stderr string) {
	// Save original file descriptors
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	// Create pipes for capturing output
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	// Run the function
	f()

	// Close writers and restore original file descriptors
	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	// Read captured output
	var bufOut, bufErr bytes.Buffer
	io.Copy(&bufOut, rOut)
	io.Copy(&bufErr, rErr)
	rOut.Close()
	rErr.Close()

	return bufOut.String(), bufErr.String()
}

// assertContains checks if output contains the expected substring.
// It reports a test failure with the actual output if the substring is not found.
func assertContains(t *testing.T, output, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, output)
	}
}

// assertNotContains checks if output does NOT contain the specified substring.
// It reports a test failure if the substring is found in the output.
func assertNotContains(t *testing.T, output, notExpected string) {
	t.Helper()
	if strings.Contains(output, notExpected) {
		t.Errorf("expected output to NOT contain %q, got:\n%s", notExpected, output)
	}
}

// assertErrorFormat checks that error output follows the standard format:
// histdl: cmd[action]: msg
// This validates that runtime errors are formatted consistently.
func assertErrorFormat(t *testing.T, output, cmd, action string) {
	t.Helper()
	pattern := "histdl: " + cmd + "[" + action + "]:"
	if !strings.Contains(output, pattern) {
		t.Errorf("expected error format %q, got:\n%s", pattern, output)
	}
}

// newContext creates a CLI context for testing commands.
func newContext(app *cli.App, args []string, name string) *cli.Context {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	_ = set.Parse(args)
	ctx := cli.NewContext(app, set, nil)
	ctx.Command = cli.Command{Name: name}
	return ctx
}

// setupEnv points the config directory and history file at a temp dir
// and resets the package-level flag variables, so every test starts
// from defaults and an empty history. It returns the temp dir.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(common.ConfigDirEnv, dir)
	t.Setenv(common.HistoryFileEnv, filepath.Join(dir, "history.json"))
	t.Setenv(common.LangEnv, "")
	t.Setenv(common.DebugEnv, "")
	resetFlags(t)
	return dir
}

// resetFlags zeroes the package-level flag variables and restores the
// previous values when the test finishes.
func resetFlags(t *testing.T) {
	t.Helper()
	oldSearch, oldPages, oldAll := searchTerm, pageCount, showAll
	oldForce := forceClear
	oldBrowser, oldFile := importBrowser, importFile
	oldLimit, oldDup := importLimit, allowDuplicates
	searchTerm, pageCount, showAll = "", 1, false
	forceClear = false
	importBrowser, importFile = "auto", ""
	importLimit, allowDuplicates = 0, false
	t.Cleanup(func() {
		searchTerm, pageCount, showAll = oldSearch, oldPages, oldAll
		forceClear = oldForce
		importBrowser, importFile = oldBrowser, oldFile
		importLimit, allowDuplicates = oldLimit, oldDup
	})
}

// seedHistory appends url/status pairs to the history file the
// commands under test will read.
func seedHistory(t *testing.T, dir string, records ...[2]string) {
	t.Helper()
	st := histlib.NewStore(&histlib.StoreOpts{
		FileName: filepath.Join(dir, "history.json"),
	})
	for _, r := range records {
		st.Add(r[0], r[1])
	}
}

// openSeededStore loads the history file the commands wrote, for
// asserting on persisted state.
func openSeededStore(t *testing.T, dir string) *histlib.Store {
	t.Helper()
	return histlib.NewStore(&histlib.StoreOpts{
		FileName: filepath.Join(dir, "history.json"),
	})
}
