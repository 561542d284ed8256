package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docketcli/docket/internal/core/task"
)

func TestLoadDefaults(t *testing.T) {
	// Load with no config file
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.TUI.Theme != "tokyo-night" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "tokyo-night")
	}
	if got := cfg.Defaults.TaskPriority(); got != task.PriorityMedium {
		t.Errorf("Defaults.TaskPriority() = %v, want %v", got, task.PriorityMedium)
	}
	if got := cfg.Defaults.TaskStatus(); got != task.StatusTodo {
		t.Errorf("Defaults.TaskStatus() = %v, want %v", got, task.StatusTodo)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TUI.Theme != "tokyo-night" {
		t.Errorf("TUI.Theme = %q, want default", cfg.TUI.Theme)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
tui:
  theme: gruvbox
defaults:
  priority: high
views:
  - name: urgent
    status: todo
    priority: high
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.TUI.Theme != "gruvbox" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "gruvbox")
	}
	if got := cfg.Defaults.TaskPriority(); got != task.PriorityHigh {
		t.Errorf("Defaults.TaskPriority() = %v, want %v", got, task.PriorityHigh)
	}
	// unset default still filled in
	if got := cfg.Defaults.TaskStatus(); got != task.StatusTodo {
		t.Errorf("Defaults.TaskStatus() = %v, want %v", got, task.StatusTodo)
	}

	v, ok := cfg.View("urgent")
	if !ok {
		t.Fatal("View(urgent) not found")
	}
	if v.Priority != "high" {
		t.Errorf("view priority = %q, want %q", v.Priority, "high")
	}
	if _, ok := cfg.View("missing"); ok {
		t.Error("View(missing) should not exist")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("views: {not a list"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected parse error, got nil")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "bad default priority",
			mutate:  func(c *Config) { c.Defaults.Priority = "urgent" },
			wantErr: "defaults.priority",
		},
		{
			name:    "bad default status",
			mutate:  func(c *Config) { c.Defaults.Status = "blocked" },
			wantErr: "defaults.status",
		},
		{
			name:    "view without name",
			mutate:  func(c *Config) { c.Views = []View{{Status: "todo"}} },
			wantErr: "name is required",
		},
		{
			name: "duplicate view names",
			mutate: func(c *Config) {
				c.Views = []View{{Name: "a"}, {Name: "a"}}
			},
			wantErr: "duplicate view name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Errorf("Validate() expected error containing %q, got nil", tt.wantErr)
				return
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want error containing %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestViewPredicate(t *testing.T) {
	open := task.Task{Title: "Write weekly report", Priority: task.PriorityHigh, Status: task.StatusTodo}
	done := task.Task{Title: "Water plants", Priority: task.PriorityLow, Status: task.StatusDone}

	tests := []struct {
		name      string
		view      View
		wantOpen  bool
		wantDone  bool
		wantError bool
	}{
		{
			name:     "no criteria matches all",
			view:     View{Name: "all"},
			wantOpen: true,
			wantDone: true,
		},
		{
			name:     "status only",
			view:     View{Name: "open", Status: "todo"},
			wantOpen: true,
			wantDone: false,
		},
		{
			name:     "combined criteria",
			view:     View{Name: "urgent", Status: "todo", Priority: "high"},
			wantOpen: true,
			wantDone: false,
		},
		{
			name:     "title substring",
			view:     View{Name: "reports", Title: "report"},
			wantOpen: true,
			wantDone: false,
		},
		{
			name:      "bad status",
			view:      View{Name: "bad", Status: "nope"},
			wantError: true,
		},
		{
			name:      "bad title pattern",
			view:      View{Name: "bad", Title: "report["},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := tt.view.Predicate()
			if tt.wantError {
				if err == nil {
					t.Error("Predicate() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Predicate() unexpected error: %v", err)
			}

			if got := pred(open); got != tt.wantOpen {
				t.Errorf("pred(open) = %v, want %v", got, tt.wantOpen)
			}
			if got := pred(done); got != tt.wantDone {
				t.Errorf("pred(done) = %v, want %v", got, tt.wantDone)
			}
		})
	}
}
