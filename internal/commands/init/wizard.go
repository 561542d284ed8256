// Package initcmd implements the first-run setup wizard.
package initcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/docketcli/docket/internal/core/config"
	"github.com/docketcli/docket/internal/core/doctor"
	"github.com/docketcli/docket/internal/core/styles"
	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	// Check for existing config
	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			WithTheme(styles.FormTheme()).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	// Collect configuration
	cfg := config.DefaultConfig()
	if !w.opts.Yes {
		if err := w.promptUser(&cfg); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	// Backup existing config if needed
	if ConfigExists(w.opts.ConfigPath) {
		backupPath, err := BackupConfig(w.opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("backup config: %w", err)
		}
		if backupPath != "" {
			p.Successf("Backed up config to: %s", backupPath)
		}
	}

	if err := WriteConfig(cfg, w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	// Run validation checks
	p.Printf("")
	result := doctor.NewConfigCheck(w.opts.ConfigPath).Run(ctx)

	p.Section(result.Name)
	for _, item := range result.Items {
		switch item.Status {
		case doctor.StatusPass:
			p.CheckItem(item.Label, item.Detail)
		case doctor.StatusWarn:
			p.WarnItem(item.Label, item.Detail)
		case doctor.StatusFail:
			p.FailItem(item.Label, item.Detail)
		}
	}

	w.printNextSteps(p)

	return nil
}

func (w *Wizard) promptUser(cfg *config.Config) error {
	themeOpts := make([]huh.Option[string], 0, len(styles.ThemeNames()))
	for _, name := range styles.ThemeNames() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	prioOpts := make([]huh.Option[string], 0, len(task.Priorities()))
	for _, prio := range task.Priorities() {
		prioOpts = append(prioOpts, huh.NewOption(prio.Label(), prio.String()))
	}

	statusOpts := make([]huh.Option[string], 0, len(task.Statuses()))
	for _, status := range task.Statuses() {
		statusOpts = append(statusOpts, huh.NewOption(status.Label(), status.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Description("Color theme for the CLI and the board").
				Options(themeOpts...).
				Value(&cfg.TUI.Theme),
			huh.NewSelect[string]().
				Title("Default priority").
				Description("Priority for new tasks when none is given").
				Options(prioOpts...).
				Value(&cfg.Defaults.Priority),
			huh.NewSelect[string]().
				Title("Default status").
				Description("Status for new tasks when none is given").
				Options(statusOpts...).
				Value(&cfg.Defaults.Status),
		),
	).WithTheme(styles.FormTheme()).Run()
}

func (w *Wizard) printNextSteps(p *printer.Printer) {
	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Run 'docket add \"My first task\"' to add a task")
	p.Printf("  2. Run 'docket' to open the menu")
	p.Printf("  3. Run 'docket board' for the status board")
}

// WriteConfig marshals cfg to YAML and writes it to path, creating parent
// directories as needed.
func WriteConfig(cfg config.Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	header := "# docket configuration (generated by docket init)\n"
	return os.WriteFile(path, append([]byte(header), data...), 0o644)
}
