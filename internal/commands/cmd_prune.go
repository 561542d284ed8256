package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/docketcli/docket/internal/core/styles"
	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/docket"
	"github.com/docketcli/docket/internal/printer"
)

type PruneCmd struct {
	flags *Flags
	app   *docket.App

	// flags
	yes bool
}

// NewPruneCmd creates a new prune command
func NewPruneCmd(flags *Flags, app *docket.App) *PruneCmd {
	return &PruneCmd{flags: flags, app: app}
}

// Register adds the prune command to the application
func (cmd *PruneCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "prune",
		Usage:     "Delete all done tasks",
		UsageText: "docket prune [--yes]",
		Description: `Deletes every task marked as done after a confirmation prompt.

To-do and in-progress tasks are not affected. Use this to clear finished
work out of the list in one go.

Examples:
  docket prune
  docket prune --yes`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PruneCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	done, err := cmd.app.Tasks.Filter(ctx, task.StatusEquals(task.StatusDone))
	if err != nil {
		return err
	}

	if len(done) == 0 {
		p.Infof("No done tasks to prune")
		return nil
	}

	if !cmd.yes {
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %d done task(s)?", len(done))).
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

	count, err := cmd.app.Tasks.Prune(ctx)
	if err != nil {
		return fmt.Errorf("prune tasks: %w", err)
	}

	p.Successf("Pruned %d task(s)", count)

	return nil
}
