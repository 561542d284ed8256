package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/docketcli/docket/internal/core/styles"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration
// including theme lookup and view filter compilation. The configPath
// argument specifies the config file location to validate (empty string
// skips the config file check). This calls Validate() first for basic
// structural validation.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		c.validateViews(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	for _, v := range c.Views {
		if v.Status == "" && v.Priority == "" && v.Title == "" {
			warnings = append(warnings, ValidationWarning{
				Category: "Views",
				Item:     v.Name,
				Message:  "view has no criteria and matches every task",
			})
		}
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// themeExists validates that the theme name is a built-in theme.
func themeExists(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q, available: %v", name, styles.ThemeNames())
	}
	return nil
}

// validateViews checks that every saved view compiles to a predicate.
func (c *Config) validateViews() error {
	var errs criterio.FieldErrorsBuilder
	for i, v := range c.Views {
		if _, err := v.Predicate(); err != nil {
			errs = errs.Append(fmt.Sprintf("views[%d]", i), err)
		}
	}
	return errs.ToError()
}
