package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/docketcli/docket/internal/docket"
	"github.com/docketcli/docket/internal/tui"
)

type BoardCmd struct {
	flags *Flags
	app   *docket.App
}

// NewBoardCmd creates a new board command
func NewBoardCmd(flags *Flags, app *docket.App) *BoardCmd {
	return &BoardCmd{flags: flags, app: app}
}

// Register adds the board command to the application
func (cmd *BoardCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "board",
		Usage:     "Open the status board",
		UsageText: "docket board",
		Description: `Opens a three-column status board.

Navigate with the arrow keys or hjkl, press t to move the selected task to
the next status, d to delete it, and q to quit.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *BoardCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("the board requires a terminal")
	}

	p := tea.NewProgram(tui.NewBoard(cmd.app.Tasks), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}

	return nil
}
