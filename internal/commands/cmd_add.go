package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/docketcli/docket/internal/core/styles"
	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/core/validate"
	"github.com/docketcli/docket/internal/docket"
	"github.com/docketcli/docket/internal/printer"
)

type AddCmd struct {
	flags *Flags
	app   *docket.App

	// Command-specific flags
	title       string
	description string
	priority    string
	status      string
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags, app *docket.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a new task",
		UsageText: "docket add [options] [title]",
		Description: `Adds a task to the collection.

The title can be given as a positional argument. Priority and status fall
back to the configured defaults when omitted.

When no title is given, an interactive form prompts for input.

Examples:
  docket add "Write weekly report"
  docket add "Pay rent" --priority high
  docket add --title "Call dentist" --description "Ask about Thursday"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "task title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "optional longer description",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "task priority (low, medium, high or 1-3)",
				Destination: &cmd.priority,
			},
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "initial status (todo, in-progress, done or 1-3)",
				Destination: &cmd.status,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if cmd.title == "" && c.Args().Len() > 0 {
		cmd.title = strings.Join(c.Args().Slice(), " ")
	}

	// Show interactive form if title not provided
	if cmd.title == "" {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	t := task.Task{
		Title:       cmd.title,
		Description: cmd.description,
		Priority:    cmd.app.Config.Defaults.TaskPriority(),
		Status:      cmd.app.Config.Defaults.TaskStatus(),
	}

	if cmd.priority != "" {
		prio, err := task.ParsePriority(cmd.priority)
		if err != nil {
			return err
		}
		t.Priority = prio
	}
	if cmd.status != "" {
		status, err := task.ParseStatus(cmd.status)
		if err != nil {
			return err
		}
		t.Status = status
	}

	created, err := cmd.app.Tasks.Add(ctx, t)
	if err != nil {
		return err
	}

	p.Success("Task added", fmt.Sprintf("%s  %s", created.ID, created.Title))

	return nil
}

func (cmd *AddCmd) runForm() error {
	prio := cmd.app.Config.Defaults.TaskPriority()
	status := cmd.app.Config.Defaults.TaskStatus()

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("What needs doing").
				Validate(validate.TaskTitle).
				Value(&cmd.title),
			huh.NewText().
				Title("Description").
				Description("Optional details").
				Value(&cmd.description),
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
		return err
	}

	cmd.priority = prio.String()
	cmd.status = status.String()
	return nil
}

func priorityOptions() []huh.Option[task.Priority] {
	opts := make([]huh.Option[task.Priority], 0, len(task.Priorities()))
	for _, p := range task.Priorities() {
		opts = append(opts, huh.NewOption(p.Label(), p))
	}
	return opts
}

func statusOptions() []huh.Option[task.Status] {
	opts := make([]huh.Option[task.Status], 0, len(task.Statuses()))
	for _, s := range task.Statuses() {
		opts = append(opts, huh.NewOption(s.Label(), s))
	}
	return opts
}
