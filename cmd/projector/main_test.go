package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeExample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	out, err := execute(t, "example", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example configuration written to "+path)
	return path
}

func TestProjectConsole(t *testing.T) {
	path := writeExample(t)

	out, err := execute(t, "project", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "SAVINGS PROJECTION BY ACCOUNT")
	assert.Contains(t, out, "SCENARIO 1: Baseline")
	assert.Contains(t, out, "SCENARIO 2: Conservative")
	assert.Contains(t, out, "Cash available: $57000.00")
	assert.Contains(t, out, "Best scenario: Baseline")
}

func TestProjectAsOfOverridesFraction(t *testing.T) {
	path := writeExample(t)

	out, err := execute(t, "project", "--config", path, "--as-of", "2024-01-01", "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "SAVINGS SCENARIO SUMMARY")

	verbose, err := execute(t, "project", "--config", path, "--as-of", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, verbose, "Cash available: $25000.00")
	assert.NotContains(t, verbose, "Cash available: $57000.00")

	_, err = execute(t, "project", "--config", path, "--as-of", "01/01/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --as-of")
}

func TestProjectWritesReports(t *testing.T) {
	path := writeExample(t)
	dir := t.TempDir()

	out, err := execute(t, "project", "--config", path, "--format", "all", "--output-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestProjectErrors(t *testing.T) {
	path := writeExample(t)

	_, err := execute(t, "project")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "config" not set`)

	_, err = execute(t, "project", "--config", path, "--format", "pdf", "--output-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")

	_, err = execute(t, "project", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestFraction(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Mid leap year", []string{"fraction", "2024-07-02"}, "2024-07-02 0.500000\n"},
		{"Since a date", []string{"fraction", "2024-07-02", "--since", "2024-01-01"}, "2024-07-02 0.501027\n"},
		{"Since clamps to a year", []string{"fraction", "2026-01-01", "--since", "2024-01-01"}, "2026-01-01 1.000000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFractionDefaultsToNow(t *testing.T) {
	old := nowFunc
	nowFunc = func() time.Time { return time.Date(2023, 1, 1, 9, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = old }()

	out, err := execute(t, "fraction")
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01 0.000000\n", out)
}

func TestFractionSinceIgnoresTimeOfDay(t *testing.T) {
	old := nowFunc
	nowFunc = func() time.Time { return time.Date(2024, 7, 2, 23, 30, 0, 0, time.UTC) }
	defer func() { nowFunc = old }()

	out, err := execute(t, "fraction", "--since", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-02 0.501027\n", out)
}
