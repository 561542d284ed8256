package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	results := []Result{
		{Name: "a", Items: []CheckItem{
			{Status: StatusPass},
			{Status: StatusPass},
			{Status: StatusWarn},
		}},
		{Name: "b", Items: []CheckItem{
			{Status: StatusFail},
			{Status: StatusPass},
		}},
	}

	passed, warned, failed := Summary(results)
	assert.Equal(t, 3, passed)
	assert.Equal(t, 1, warned)
	assert.Equal(t, 1, failed)
}

func TestRunAll(t *testing.T) {
	dir := t.TempDir()
	results := RunAll(context.Background(), []Check{
		NewLogsCheck(filepath.Join(dir, "logs", "docket.log")),
		NewLogsCheck(""),
	})

	require.Len(t, results, 2)
	assert.Equal(t, "Logging", results[0].Name)
}

func TestConfigCheck_MissingFile(t *testing.T) {
	check := NewConfigCheck(filepath.Join(t.TempDir(), "config.yaml"))
	result := check.Run(context.Background())

	require.Len(t, result.Items, 2)
	assert.Equal(t, "config file", result.Items[0].Label)
	assert.Equal(t, StatusWarn, result.Items[0].Status)
	assert.Contains(t, result.Items[0].Detail, "not found")

	// defaults still validate
	assert.Equal(t, "settings", result.Items[1].Label)
	assert.Equal(t, StatusPass, result.Items[1].Status)
}

func TestConfigCheck_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
tui:
  theme: catppuccin
defaults:
  priority: high
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result := NewConfigCheck(path).Run(context.Background())

	require.Len(t, result.Items, 2)
	assert.Equal(t, StatusPass, result.Items[0].Status)
	assert.Equal(t, StatusPass, result.Items[1].Status)
}

func TestConfigCheck_InvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
defaults:
  priority: urgent
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result := NewConfigCheck(path).Run(context.Background())

	require.Len(t, result.Items, 2)
	assert.Equal(t, StatusPass, result.Items[0].Status)
	assert.Equal(t, StatusFail, result.Items[1].Status)
	assert.Contains(t, result.Items[1].Detail, "priority")
}

func TestLogsCheck_CreatesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "docket.log")
	result := NewLogsCheck(path).Run(context.Background())

	require.Len(t, result.Items, 1)
	assert.Equal(t, "log file", result.Items[0].Label)
	assert.Equal(t, StatusPass, result.Items[0].Status)
	assert.Equal(t, path, result.Items[0].Detail)
}

func TestLogsCheck_Stderr(t *testing.T) {
	result := NewLogsCheck("").Run(context.Background())

	require.Len(t, result.Items, 1)
	assert.Equal(t, "log output", result.Items[0].Label)
	assert.Equal(t, StatusPass, result.Items[0].Status)
	assert.Equal(t, "stderr", result.Items[0].Detail)
}

func TestTerminalCheck_NoTTY(t *testing.T) {
	orig := isTerminalFunc
	t.Cleanup(func() { isTerminalFunc = orig })

	isTerminalFunc = func(fd int) bool { return false }
	t.Setenv("TERM", "xterm-256color")

	result := NewTerminalCheck().Run(context.Background())

	require.Len(t, result.Items, 2)
	assert.Equal(t, StatusWarn, result.Items[0].Status)
	assert.Contains(t, result.Items[0].Detail, "not a terminal")
	assert.Equal(t, StatusPass, result.Items[1].Status)
	assert.Equal(t, "xterm-256color", result.Items[1].Detail)
}

func TestTerminalCheck_DumbTerm(t *testing.T) {
	orig := isTerminalFunc
	t.Cleanup(func() { isTerminalFunc = orig })

	isTerminalFunc = func(fd int) bool { return true }
	t.Setenv("TERM", "dumb")

	result := NewTerminalCheck().Run(context.Background())

	require.Len(t, result.Items, 2)
	assert.Equal(t, StatusPass, result.Items[0].Status)
	assert.Equal(t, StatusWarn, result.Items[1].Status)
}
