// Package config handles configuration loading and validation for docket.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/docketcli/docket/internal/core/styles"
	"github.com/docketcli/docket/internal/core/task"
)

// Config holds the application configuration.
type Config struct {
	TUI      TUIConfig `yaml:"tui"`
	Defaults Defaults  `yaml:"defaults"`
	Views    []View    `yaml:"views"`
}

// TUIConfig holds appearance settings shared by the CLI and the board.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// Defaults holds the field values applied to new tasks when the user does
// not choose them explicitly.
type Defaults struct {
	Priority string `yaml:"priority"`
	Status   string `yaml:"status"`
}

// TaskPriority returns the parsed default priority.
func (d Defaults) TaskPriority() task.Priority {
	p, err := task.ParsePriority(d.Priority)
	if err != nil {
		return task.PriorityMedium
	}
	return p
}

// TaskStatus returns the parsed default status.
func (d Defaults) TaskStatus() task.Status {
	s, err := task.ParseStatus(d.Status)
	if err != nil {
		return task.StatusTodo
	}
	return s
}

// View is a named saved filter. Empty criteria are skipped; a view with
// several criteria matches tasks satisfying all of them.
type View struct {
	Name     string `yaml:"name"`
	Status   string `yaml:"status"`
	Priority string `yaml:"priority"`
	// Title is a case-insensitive glob; a bare word matches as a substring.
	Title string `yaml:"title"`
}

// Predicate compiles the view's criteria into a single task predicate.
func (v View) Predicate() (task.Predicate, error) {
	preds := make([]task.Predicate, 0, 3)

	if v.Status != "" {
		s, err := task.ParseStatus(v.Status)
		if err != nil {
			return nil, fmt.Errorf("view %q: %w", v.Name, err)
		}
		preds = append(preds, task.StatusEquals(s))
	}

	if v.Priority != "" {
		p, err := task.ParsePriority(v.Priority)
		if err != nil {
			return nil, fmt.Errorf("view %q: %w", v.Name, err)
		}
		preds = append(preds, task.PriorityEquals(p))
	}

	if v.Title != "" {
		pred, err := task.TitleMatches(v.Title)
		if err != nil {
			return nil, fmt.Errorf("view %q: %w", v.Name, err)
		}
		preds = append(preds, pred)
	}

	return task.And(preds...), nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Defaults: Defaults{
			Priority: task.PriorityMedium.String(),
			Status:   task.StatusTodo.String(),
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.Defaults.Priority == "" {
		c.Defaults.Priority = defaults.Defaults.Priority
	}
	if c.Defaults.Status == "" {
		c.Defaults.Status = defaults.Defaults.Status
	}
}

// View returns the saved view with the given name.
func (c *Config) View(name string) (View, bool) {
	for _, v := range c.Views {
		if v.Name == name {
			return v, true
		}
	}
	return View{}, false
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, err := task.ParsePriority(c.Defaults.Priority); err != nil {
		return fmt.Errorf("defaults.priority: %w", err)
	}

	if _, err := task.ParseStatus(c.Defaults.Status); err != nil {
		return fmt.Errorf("defaults.status: %w", err)
	}

	seen := make(map[string]bool, len(c.Views))
	for i, v := range c.Views {
		if v.Name == "" {
			return fmt.Errorf("views[%d]: name is required", i)
		}
		if seen[v.Name] {
			return fmt.Errorf("views[%d]: duplicate view name %q", i, v.Name)
		}
		seen[v.Name] = true
	}

	return nil
}
