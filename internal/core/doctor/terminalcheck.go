package doctor

import (
	"context"
	"os"

	"golang.org/x/term"
)

// isTerminalFunc reports whether a file descriptor is a terminal.
// Package-level variable to allow test overrides.
var isTerminalFunc = term.IsTerminal

// TerminalCheck verifies that interactive features can run.
type TerminalCheck struct{}

// NewTerminalCheck creates a new terminal check.
func NewTerminalCheck() *TerminalCheck {
	return &TerminalCheck{}
}

func (c *TerminalCheck) Name() string {
	return "Terminal"
}

func (c *TerminalCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if isTerminalFunc(int(os.Stdin.Fd())) {
		result.Items = append(result.Items, CheckItem{
			Label:  "interactive input",
			Status: StatusPass,
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "interactive input",
			Status: StatusWarn,
			Detail: "stdin is not a terminal (menu, board, and forms unavailable)",
		})
	}

	switch termEnv := os.Getenv("TERM"); termEnv {
	case "":
		result.Items = append(result.Items, CheckItem{
			Label:  "TERM",
			Status: StatusWarn,
			Detail: "not set",
		})
	case "dumb":
		result.Items = append(result.Items, CheckItem{
			Label:  "TERM",
			Status: StatusWarn,
			Detail: "dumb terminal, styled output disabled",
		})
	default:
		result.Items = append(result.Items, CheckItem{
			Label:  "TERM",
			Status: StatusPass,
			Detail: termEnv,
		})
	}

	return result
}
