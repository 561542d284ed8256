package commands

import (
	"context"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/core/validate"
	"github.com/docketcli/docket/internal/docket"
	"github.com/docketcli/docket/internal/printer"
	"github.com/docketcli/docket/pkg/iojson"
)

type ImportCmd struct {
	flags *Flags
	app   *docket.App
	fr    *iojson.FileReader[ImportInput]
}

func NewImportCmd(flags *Flags, app *docket.App) *ImportCmd {
	return &ImportCmd{
		flags: flags,
		app:   app,
		fr:    &iojson.FileReader[ImportInput]{},
	}
}

func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "import",
		Usage: "Create tasks from JSON input",
		UsageText: `docket import [options]

Read from stdin:
  echo '{"tasks":[{"title":"Buy groceries"}]}' | docket import

Read from file:
  docket import -f tasks.json`,
		Description: `Creates tasks from a JSON specification.

The whole input is validated before anything is created; one bad entry
rejects the entire import.

Input JSON schema:
  {
    "tasks": [
      {
        "title": "task title",
        "description": "optional details",
        "priority": "low | medium | high",
        "status": "todo | in-progress | done"
      }
    ]
  }

Fields:
  title       - Required. Must not be blank.
  description - Optional.
  priority    - Optional. Falls back to the configured default.
  status      - Optional. Falls back to the configured default.`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	input, err := cmd.fr.Read()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if err := input.Validate(); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	for _, in := range input.Tasks {
		t, err := in.toTask(cmd.app)
		if err != nil {
			return err
		}

		if _, err := cmd.app.Tasks.Add(ctx, t); err != nil {
			return fmt.Errorf("import %q: %w", in.Title, err)
		}
	}

	p.Successf("Imported %d task(s)", len(input.Tasks))

	return nil
}

// ImportInput is the JSON input schema for task import.
type ImportInput struct {
	Tasks []ImportTask `json:"tasks"`
}

// Validate checks the import input for errors using criterio.
func (in ImportInput) Validate() error {
	if len(in.Tasks) == 0 {
		return criterio.NewFieldErrors("tasks", fmt.Errorf("array is empty"))
	}

	var errs criterio.FieldErrorsBuilder

	for i, t := range in.Tasks {
		field := fmt.Sprintf("tasks[%d]", i)

		if err := validate.TaskTitle(t.Title); err != nil {
			errs = errs.Append(field+".title", err)
		}

		if t.Priority != "" {
			if _, err := task.ParsePriority(t.Priority); err != nil {
				errs = errs.Append(field+".priority", err)
			}
		}

		if t.Status != "" {
			if _, err := task.ParseStatus(t.Status); err != nil {
				errs = errs.Append(field+".status", err)
			}
		}
	}

	return errs.ToError()
}

// ImportTask defines a single task to create.
type ImportTask struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Status      string `json:"status,omitempty"`
}

// toTask converts the entry to a task, filling omitted fields from the
// configured defaults.
func (in ImportTask) toTask(app *docket.App) (task.Task, error) {
	t := task.Task{
		Title:       in.Title,
		Description: in.Description,
		Priority:    app.Config.Defaults.TaskPriority(),
		Status:      app.Config.Defaults.TaskStatus(),
	}

	if in.Priority != "" {
		prio, err := task.ParsePriority(in.Priority)
		if err != nil {
			return task.Task{}, err
		}
		t.Priority = prio
	}

	if in.Status != "" {
		status, err := task.ParseStatus(in.Status)
		if err != nil {
			return task.Task{}, err
		}
		t.Status = status
	}

	return t, nil
}
