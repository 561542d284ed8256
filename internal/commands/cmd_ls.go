package commands

import (
	"context"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/docket"
	"github.com/docketcli/docket/pkg/iojson"
)

type LsCmd struct {
	flags *Flags
	app   *docket.App

	// flags
	jsonOutput bool
	status     string
	priority   string
	title      string
	view       string
	sortBy     string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *docket.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List tasks",
		UsageText: "docket ls [--status <status>] [--priority <priority>] [--title <glob>] [--view <name>] [--sort <key>] [--json]",
		Description: `Displays a table of tasks in the order they were added.

Filters combine: a task must match every given criterion. Saved views from
the config file are applied with --view and combine with ad-hoc filters.

Use --json for script-friendly output as JSON lines.

Examples:
  docket ls
  docket ls --status todo --priority high
  docket ls --title "*report*"
  docket ls --view urgent
  docket ls --sort priority`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "filter by status (todo, in-progress, done)",
				Destination: &cmd.status,
			},
			&cli.StringFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "filter by priority (low, medium, high)",
				Destination: &cmd.priority,
			},
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "filter by title glob (bare words match as substrings)",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "view",
				Usage:       "apply a saved view from the config file",
				Destination: &cmd.view,
			},
			&cli.StringFlag{
				Name:        "sort",
				Usage:       "sort by key (priority, title, created)",
				Destination: &cmd.sortBy,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	pred, err := cmd.buildPredicate()
	if err != nil {
		return err
	}

	tasks, err := cmd.app.Tasks.Filter(ctx, pred)
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	if cmd.sortBy != "" {
		comparator, err := comparatorFor(cmd.sortBy)
		if err != nil {
			return err
		}
		slices.SortStableFunc(tasks, comparator)
	}

	if len(tasks) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No tasks found\n")
		}
		return nil
	}

	out := c.Root().Writer

	// JSON output mode
	if cmd.jsonOutput {
		for _, t := range tasks {
			if err := iojson.WriteLine(out, buildTaskInfo(t)); err != nil {
				return fmt.Errorf("encode task: %w", err)
			}
		}
		return nil
	}

	// Table output mode
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tPRIORITY\tSTATUS\tTITLE\tCREATED")

	for _, t := range tasks {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Priority.Label(), t.Status.Label(), t.Title, t.CreatedAt.Format("Jan 02 15:04"))
	}

	return w.Flush()
}

// buildPredicate combines the saved view (if any) with the ad-hoc filter
// flags into a single predicate.
func (cmd *LsCmd) buildPredicate() (task.Predicate, error) {
	preds := make([]task.Predicate, 0, 4)

	if cmd.view != "" {
		v, ok := cmd.app.Config.View(cmd.view)
		if !ok {
			return nil, fmt.Errorf("unknown view %q, define it in the config file", cmd.view)
		}
		pred, err := v.Predicate()
		if err != nil {
			return nil, err
		}
		preds = append(preds, pred)
	}

	if cmd.status != "" {
		s, err := task.ParseStatus(cmd.status)
		if err != nil {
			return nil, err
		}
		preds = append(preds, task.StatusEquals(s))
	}

	if cmd.priority != "" {
		p, err := task.ParsePriority(cmd.priority)
		if err != nil {
			return nil, err
		}
		preds = append(preds, task.PriorityEquals(p))
	}

	if cmd.title != "" {
		pred, err := task.TitleMatches(cmd.title)
		if err != nil {
			return nil, err
		}
		preds = append(preds, pred)
	}

	return task.And(preds...), nil
}

// comparatorFor maps a sort key to its comparator.
func comparatorFor(key string) (task.Comparator, error) {
	switch key {
	case "priority":
		return task.ByPriorityDesc, nil
	case "title":
		return task.ByTitle, nil
	case "created":
		return task.ByCreatedAt, nil
	default:
		return nil, fmt.Errorf("%w: unknown sort key %q (priority, title, created)", task.ErrInvalidInput, key)
	}
}

// taskInfo is the JSON output format for docket ls --json.
type taskInfo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func buildTaskInfo(t task.Task) taskInfo {
	return taskInfo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.String(),
		Status:      t.Status.String(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
