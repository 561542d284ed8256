package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/docketcli/docket/internal/core/styles"
	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/docket"
	"github.com/docketcli/docket/pkg/iojson"
)

type ShowCmd struct {
	flags *Flags
	app   *docket.App

	// flags
	jsonOutput bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags, app *docket.App) *ShowCmd {
	return &ShowCmd{flags: flags, app: app}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show a single task",
		UsageText: "docket show <id> [--json]",
		Description: `Displays one task in full, including its description.

The id may be abbreviated to a prefix; the first matching task wins.

Examples:
  docket show abc123
  docket show abc --json`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action:        cmd.run,
		ShellComplete: TaskIDCompleter(cmd.app),
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: docket show <id>")
	}

	t, err := cmd.app.Tasks.Resolve(ctx, c.Args().Get(0))
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteWith(out, buildTaskInfo(t))
	}

	_, _ = fmt.Fprint(out, renderTaskCard(t))
	return nil
}

// renderTaskCard renders a task as themed markdown, falling back to the
// raw markdown when the renderer cannot be built.
func renderTaskCard(t task.Task) string {
	md := taskMarkdown(t)

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = min(w, 100)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return md
	}

	return rendered
}

func taskMarkdown(t task.Task) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| ID | `%s` |\n", t.ID)
	fmt.Fprintf(&b, "| Priority | %s %s |\n", styles.PriorityIcon(t.Priority), t.Priority.Label())
	fmt.Fprintf(&b, "| Status | %s %s |\n", styles.StatusIcon(t.Status), t.Status.Label())
	fmt.Fprintf(&b, "| Created | %s |\n", t.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "| Updated | %s |\n", t.UpdatedAt.Format("2006-01-02 15:04"))

	if t.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", t.Description)
	}

	return b.String()
}
