package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/docketcli/docket/internal/core/styles"
	"github.com/docketcli/docket/internal/docket"
	"github.com/docketcli/docket/internal/printer"
)

type RmCmd struct {
	flags *Flags
	app   *docket.App

	// flags
	yes bool
}

// NewRmCmd creates a new rm command
func NewRmCmd(flags *Flags, app *docket.App) *RmCmd {
	return &RmCmd{flags: flags, app: app}
}

// Register adds the rm command to the application
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rm",
		Aliases:   []string{"delete"},
		Usage:     "Delete a task",
		UsageText: "docket rm <id> [--yes]",
		Description: `Deletes a task permanently after a confirmation prompt.

The id may be abbreviated to a prefix; the first matching task wins.

Examples:
  docket rm abc123
  docket rm abc --yes`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.yes,
			},
		},
		Action:        cmd.run,
		ShellComplete: TaskIDCompleter(cmd.app),
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if c.NArg() < 1 {
		return fmt.Errorf("usage: docket rm <id>")
	}

	t, err := cmd.app.Tasks.Resolve(ctx, c.Args().Get(0))
	if err != nil {
		return err
	}

	if !cmd.yes {
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q?", t.Title)).
			Description("This cannot be undone.").
			Value(&confirmed).
			WithTheme(styles.FormTheme()).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("confirm: %w", err)
		}
		if !confirmed {
			p.Infof("Cancelled")
			return nil
		}
	}

	removed, err := cmd.app.Tasks.Remove(ctx, t.ID)
	if err != nil {
		return err
	}

	p.Success("Task deleted", fmt.Sprintf("%s  %s", removed.ID, removed.Title))

	return nil
}
