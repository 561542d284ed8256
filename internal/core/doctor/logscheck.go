package doctor

import (
	"context"
	"os"
	"path/filepath"
)

// LogsCheck verifies that the log file location is writable.
type LogsCheck struct {
	path string
}

// NewLogsCheck creates a logs check for the given log file path. An empty
// path means logging goes to stderr and there is nothing to verify.
func NewLogsCheck(path string) *LogsCheck {
	return &LogsCheck{path: path}
}

func (c *LogsCheck) Name() string {
	return "Logging"
}

func (c *LogsCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if c.path == "" {
		result.Items = append(result.Items, CheckItem{
			Label:  "log output",
			Status: StatusPass,
			Detail: "stderr",
		})
		return result
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "log directory",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	f, err := os.OpenFile(c.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "log file",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}
	_ = f.Close()

	result.Items = append(result.Items, CheckItem{
		Label:  "log file",
		Status: StatusPass,
		Detail: c.path,
	})

	return result
}
