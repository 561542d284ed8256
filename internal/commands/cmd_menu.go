package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/docketcli/docket/internal/commands/menu"
	"github.com/docketcli/docket/internal/docket"
)

type MenuCmd struct {
	flags *Flags
	app   *docket.App
}

// NewMenuCmd creates a new menu command
func NewMenuCmd(flags *Flags, app *docket.App) *MenuCmd {
	return &MenuCmd{flags: flags, app: app}
}

// Register adds the menu command to the application
func (cmd *MenuCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "menu",
		Usage:       "Open the interactive menu",
		UsageText:   "docket menu",
		Description: "Runs the interactive menu loop. This is also what runs when docket is started without a subcommand.",
		Action:      cmd.Run,
	})

	return app
}

// Run executes the menu. Exported for use as default command.
func (cmd *MenuCmd) Run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("the interactive menu requires a terminal; use the docket subcommands instead")
	}

	m := menu.NewMenu(menu.Options{App: cmd.app}, log.Logger)
	return m.Run(ctx)
}
