// Package docket wires the task store and services into the application
// entry point consumed by commands and the interactive surfaces.
package docket

import (
	"github.com/rs/zerolog"

	"github.com/docketcli/docket/internal/core/config"
	"github.com/docketcli/docket/internal/core/task"
)

// App is the central entry point for all docket operations.
// Commands and the TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Tasks  *TaskService
	Config *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(store task.Store, cfg *config.Config, log zerolog.Logger) *App {
	return &App{
		Tasks:  NewTaskService(store, log),
		Config: cfg,
	}
}
