package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/docketcli/docket/internal/core/styles"
	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/printer"
)

const titleWidth = 32

// renderTasks prints one styled row per task, in the order given.
func renderTasks(p *printer.Printer, tasks []task.Task) {
	if len(tasks) == 0 {
		p.Printf("%s", styles.SubtleStyle.Render("No tasks yet"))
		return
	}

	for _, t := range tasks {
		p.Printf("%s", taskRow(t))
	}
}

// taskRow renders one task as a styled line: status icon, id, title,
// priority label, status label. A non-empty description goes on its own
// indented line underneath.
func taskRow(t task.Task) string {
	var b strings.Builder

	b.WriteString(styles.StatusStyle(t.Status).Render(styles.StatusIcon(t.Status)))
	b.WriteString(" ")
	b.WriteString(styles.IDStyle.Render(t.ID))
	b.WriteString("  ")
	b.WriteString(truncateOrPad(t.Title, titleWidth))
	b.WriteString("  ")
	b.WriteString(styles.PriorityStyle(t.Priority).Render(fmt.Sprintf("%-6s", t.Priority.Label())))
	b.WriteString("  ")
	b.WriteString(styles.StatusStyle(t.Status).Render(t.Status.Label()))

	if t.Description != "" {
		// indent past icon and id so the description lines up with the title
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", 12))
		b.WriteString(styles.SubtleStyle.Render(truncate(t.Description, 60)))
	}

	return b.String()
}

// errorMessage maps core errors to the line shown to the user. Anything
// unrecognized gets a generic message; the cause is already in the log.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, task.ErrEmptyTitle):
		return "Title cannot be empty."
	case errors.Is(err, task.ErrNotFound):
		return "No task matches that id."
	case errors.Is(err, task.ErrInvalidInput):
		return "That is not a valid choice."
	default:
		return "An error occurred. Please try again."
	}
}

func truncateOrPad(s string, width int) string {
	if len(s) > width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
