package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/roach88/covid19/internal/config"
)

func init() {
	// Exact output comparisons assume uncolored text.
	color.NoColor = true
}

// cleanEnv clears every environment variable the config layer reads.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.EnvConfig, config.EnvSource, config.EnvFormat,
		config.EnvLogLevel, config.EnvLogFormat,
	} {
		t.Setenv(name, "")
	}
}

type cmdResult struct {
	Stdout string
	Stderr string
	Err    error
}

// execute runs the root command with args and stdin, using fixed trace ids.
func execute(t *testing.T, stdin string, args ...string) cmdResult {
	t.Helper()
	cleanEnv(t)
	return executeWithEnv(t, stdin, args...)
}

// executeWithEnv is execute without resetting the environment.
func executeWithEnv(t *testing.T, stdin string, args ...string) cmdResult {
	t.Helper()

	opts := &RootOptions{TraceIDs: NewFixedGenerator("trace-1", "trace-2", "trace-3")}
	cmd := NewRootCommandWithOptions(opts)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return cmdResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// row builds an 11-column data line.
func row(country, deaths, active, tests string) string {
	return strings.Join([]string{"1", country, "", deaths, "", "", active, "", "", "", tests}, ",")
}

// writeCSV writes lines to a temporary CSV file and returns its path.
func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
