package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/docketcli/docket/internal/core/styles"
	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/core/validate"
	"github.com/docketcli/docket/internal/docket"
	"github.com/docketcli/docket/internal/printer"
)

type EditCmd struct {
	flags *Flags
	app   *docket.App

	// Command-specific flags
	title       string
	description string
	priority    string
	status      string
}

// NewEditCmd creates a new edit command
func NewEditCmd(flags *Flags, app *docket.App) *EditCmd {
	return &EditCmd{flags: flags, app: app}
}

// Register adds the edit command to the application
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Edit a task",
		UsageText: "docket edit <id> [options]",
		Description: `Changes fields of an existing task. Only the given flags change;
everything else is left as it was. If any new value is invalid the task is
not modified at all.

With no flags, an interactive form opens prefilled with current values.

The id may be abbreviated to a prefix; the first matching task wins.

Examples:
  docket edit abc123 --title "New title"
  docket edit abc --priority high --status in-progress
  docket edit abc`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "new title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "new description (empty string clears it)",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "new priority (low, medium, high or 1-3)",
				Destination: &cmd.priority,
			},
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "new status (todo, in-progress, done or 1-3)",
				Destination: &cmd.status,
			},
		},
		Action:        cmd.run,
		ShellComplete: TaskIDCompleter(cmd.app),
	})

	return app
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if c.NArg() < 1 {
		return fmt.Errorf("usage: docket edit <id> [options]")
	}
	lookup := c.Args().Get(0)

	var opts task.UpdateOptions

	interactive := !c.IsSet("title") && !c.IsSet("description") &&
		!c.IsSet("priority") && !c.IsSet("status")

	if interactive {
		current, err := cmd.app.Tasks.Resolve(ctx, lookup)
		if err != nil {
			return err
		}

		opts, err = cmd.runForm(current)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	} else {
		if c.IsSet("title") {
			opts.Title = &cmd.title
		}
		if c.IsSet("description") {
			opts.Description = &cmd.description
		}
		if c.IsSet("priority") {
			prio, err := task.ParsePriority(cmd.priority)
			if err != nil {
				return err
			}
			opts.Priority = &prio
		}
		if c.IsSet("status") {
			status, err := task.ParseStatus(cmd.status)
			if err != nil {
				return err
			}
			opts.Status = &status
		}
	}

	updated, err := cmd.app.Tasks.Update(ctx, lookup, opts)
	if err != nil {
		return err
	}

	p.Success("Task updated", fmt.Sprintf("%s  %s", updated.ID, updated.Title))

	return nil
}

// runForm opens the edit form prefilled with the task's current values and
// returns the resulting update.
func (cmd *EditCmd) runForm(current task.Task) (task.UpdateOptions, error) {
	title := current.Title
	description := current.Description
	prio := current.Priority
	status := current.Status

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Validate(validate.TaskTitle).
				Value(&title),
			huh.NewText().
				Title("Description").
				Value(&description),
			huh.NewSelect[task.Priority]().
				Title("Priority").
				Options(priorityOptions()...).
				Value(&prio),
			huh.NewSelect[task.Status]().
				Title("Status").
				Options(statusOptions()...).
				Value(&status),
		),
	).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return task.UpdateOptions{}, err
	}

	return task.UpdateOptions{
		Title:       &title,
		Description: &description,
		Priority:    &prio,
		Status:      &status,
	}, nil
}
