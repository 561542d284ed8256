package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/docketcli/docket/internal/core/config"
	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/data/stores"
	"github.com/docketcli/docket/internal/docket"
)

func TestImportInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   ImportInput
		wantErr string
	}{
		{
			name:    "empty tasks",
			input:   ImportInput{Tasks: []ImportTask{}},
			wantErr: "tasks",
		},
		{
			name: "missing title",
			input: ImportInput{Tasks: []ImportTask{
				{Description: "no title here"},
			}},
			wantErr: "title",
		},
		{
			name: "whitespace title",
			input: ImportInput{Tasks: []ImportTask{
				{Title: "   "},
			}},
			wantErr: "title",
		},
		{
			name: "unknown priority",
			input: ImportInput{Tasks: []ImportTask{
				{Title: "valid", Priority: "urgent"},
			}},
			wantErr: "priority",
		},
		{
			name: "unknown status",
			input: ImportInput{Tasks: []ImportTask{
				{Title: "valid", Status: "blocked"},
			}},
			wantErr: "status",
		},
		{
			name: "second entry bad",
			input: ImportInput{Tasks: []ImportTask{
				{Title: "fine"},
				{Title: ""},
			}},
			wantErr: "tasks[1].title",
		},
		{
			name: "valid input",
			input: ImportInput{Tasks: []ImportTask{
				{Title: "buy groceries"},
				{Title: "file taxes", Priority: "high", Status: "in-progress"},
			}},
			wantErr: "",
		},
		{
			name: "numeric priority and status",
			input: ImportInput{Tasks: []ImportTask{
				{Title: "water plants", Priority: "3", Status: "1"},
			}},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err, "expected error containing %q, got nil", tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantErr, "expected error containing %q, got %q", tt.wantErr, err.Error())
		})
	}
}

func TestImportInput_JSON(t *testing.T) {
	jsonInput := `{
		"tasks": [
			{"title": "buy groceries", "priority": "high"},
			{"title": "file taxes", "description": "before April", "status": "in-progress"}
		]
	}`

	var input ImportInput
	require.NoError(t, json.Unmarshal([]byte(jsonInput), &input))

	assert.Len(t, input.Tasks, 2, "expected 2 tasks, got %d", len(input.Tasks))
	assert.Equal(t, "buy groceries", input.Tasks[0].Title)
	assert.Equal(t, "high", input.Tasks[0].Priority)
	assert.Equal(t, "before April", input.Tasks[1].Description)
}

func TestImportTask_toTask(t *testing.T) {
	cfg := config.DefaultConfig()
	app := docket.NewApp(stores.NewTaskStore(), &cfg, zerolog.Nop())

	got, err := ImportTask{Title: "water plants"}.toTask(app)
	require.NoError(t, err)
	assert.Equal(t, task.PriorityMedium, got.Priority, "omitted priority should use the default")
	assert.Equal(t, task.StatusTodo, got.Status, "omitted status should use the default")

	got, err = ImportTask{Title: "file taxes", Priority: "high", Status: "done"}.toTask(app)
	require.NoError(t, err)
	assert.Equal(t, task.PriorityHigh, got.Priority)
	assert.Equal(t, task.StatusDone, got.Status)
}

func TestImportCommand_FromFile(t *testing.T) {
	cfg := config.DefaultConfig()
	dapp := docket.NewApp(stores.NewTaskStore(), &cfg, zerolog.Nop())
	flags := &Flags{Config: &cfg}

	path := filepath.Join(t.TempDir(), "tasks.json")
	payload := `{"tasks":[
		{"title": "buy groceries"},
		{"title": "file taxes", "priority": "high", "status": "in-progress"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	var buf bytes.Buffer
	app := &cli.Command{Name: "docket", Writer: &buf}
	NewImportCmd(flags, dapp).Register(app)

	err := app.Run(context.Background(), []string{"docket", "import", "-f", path})
	require.NoError(t, err)

	tasks, err := dapp.Tasks.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "buy groceries", tasks[0].Title)
	assert.Equal(t, task.PriorityMedium, tasks[0].Priority)
	assert.Equal(t, "file taxes", tasks[1].Title)
	assert.Equal(t, task.PriorityHigh, tasks[1].Priority)
	assert.Equal(t, task.StatusInProgress, tasks[1].Status)
}

func TestImportCommand_RejectsBadInput(t *testing.T) {
	cfg := config.DefaultConfig()
	dapp := docket.NewApp(stores.NewTaskStore(), &cfg, zerolog.Nop())
	flags := &Flags{Config: &cfg}

	path := filepath.Join(t.TempDir(), "tasks.json")
	payload := `{"tasks":[{"title": "fine"}, {"title": "", "priority": "urgent"}]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	var buf bytes.Buffer
	app := &cli.Command{Name: "docket", Writer: &buf}
	NewImportCmd(flags, dapp).Register(app)

	err := app.Run(context.Background(), []string{"docket", "import", "-f", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")

	// nothing was created
	count, err := dapp.Tasks.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
