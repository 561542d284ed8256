package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/docketcli/docket/internal/core/config"
)

// ConfigCheck verifies that the config file loads and validates.
type ConfigCheck struct {
	path string
}

// NewConfigCheck creates a config check for the given file path.
func NewConfigCheck(path string) *ConfigCheck {
	return &ConfigCheck{path: path}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if _, err := os.Stat(c.path); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusWarn,
			Detail: fmt.Sprintf("%s not found, using defaults", c.path),
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusPass,
			Detail: c.path,
		})
	}

	cfg, err := config.Load(c.path)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "settings",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	if err := cfg.ValidateDeep(c.path); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "settings",
			Status: StatusFail,
			Detail: err.Error(),
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "settings",
			Status: StatusPass,
			Detail: "valid",
		})
	}

	for _, warn := range cfg.Warnings() {
		label := warn.Category
		if warn.Item != "" {
			label = fmt.Sprintf("%s (%s)", warn.Category, warn.Item)
		}
		result.Items = append(result.Items, CheckItem{
			Label:  label,
			Status: StatusWarn,
			Detail: warn.Message,
		})
	}

	return result
}
