package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/docket"
	"github.com/docketcli/docket/internal/printer"
)

// StatusCmd implements the done, start, and reopen shortcuts, which move a
// task straight to a target status without the full edit flow.
type StatusCmd struct {
	flags *Flags
	app   *docket.App
}

// NewStatusCmd creates a new status command group.
func NewStatusCmd(flags *Flags, app *docket.App) *StatusCmd {
	return &StatusCmd{flags: flags, app: app}
}

// Register adds the done, start, and reopen commands to the application.
func (cmd *StatusCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "done",
			Usage:     "Mark a task as done",
			UsageText: "docket done <id>",
			Description: `Marks a task as done.

Examples:
  docket done abc123`,
			Action:        cmd.runFor(task.StatusDone),
			ShellComplete: TaskIDCompleter(cmd.app),
		},
		&cli.Command{
			Name:      "start",
			Usage:     "Mark a task as in progress",
			UsageText: "docket start <id>",
			Description: `Marks a task as in progress.

Examples:
  docket start abc123`,
			Action:        cmd.runFor(task.StatusInProgress),
			ShellComplete: TaskIDCompleter(cmd.app),
		},
		&cli.Command{
			Name:      "reopen",
			Usage:     "Move a task back to to-do",
			UsageText: "docket reopen <id>",
			Description: `Moves a task back to the to-do column, whatever its current status.

Examples:
  docket reopen abc123`,
			Action:        cmd.runFor(task.StatusTodo),
			ShellComplete: TaskIDCompleter(cmd.app),
		},
	)

	return app
}

func (cmd *StatusCmd) runFor(status task.Status) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		if c.NArg() < 1 {
			return fmt.Errorf("usage: docket %s <id>", c.Name)
		}

		updated, err := cmd.app.Tasks.SetStatus(ctx, c.Args().Get(0), status)
		if err != nil {
			return err
		}

		printer.Ctx(ctx).Successf("%s  %s -> %s", updated.ID, updated.Title, updated.Status.Label())
		return nil
	}
}
