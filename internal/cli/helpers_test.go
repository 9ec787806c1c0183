package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with a fresh flag set pointed at a
// temporary dir store and returns combined output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), stdin, args...)
}

func executeIn(t *testing.T, dataDir, stdin string, args ...string) (string, error) {
	t.Helper()
	cfgPath, storeFlag, dataDirFlag, logFile = "", "", "", ""
	verbose, noColor = false, false

	base := []string{
		"--config", filepath.Join(t.TempDir(), "config.toml"),
		"--data-dir", dataDir,
	}
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(base, args...))
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := Execute()
	return buf.String(), err
}

