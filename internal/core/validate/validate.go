// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/docketcli/docket/internal/core/task"
)

// TaskTitle validates a title is non-empty after trimming whitespace.
func TaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return task.ErrEmptyTitle
	}
	return nil
}

// TaskTitleField returns a criterio validator for task titles.
func TaskTitleField(field, title string) error {
	return criterio.Run(field, title, TaskTitle)
}

// TaskID validates an id is non-empty lowercase alphanumeric, the shape
// produced by the id generator.
func TaskID(id string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	for _, r := range id {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return fmt.Errorf("id must be lowercase alphanumeric, got %q", id)
		}
	}
	return nil
}
