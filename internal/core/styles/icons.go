package styles

import "github.com/docketcli/docket/internal/core/task"

// Status glyphs.
var (
	IconTodo       = "○"
	IconInProgress = "◐"
	IconDone       = "✓"
)

// Priority glyphs.
var (
	IconPriorityLow    = "▽"
	IconPriorityMedium = "■"
	IconPriorityHigh   = "▲"
)

// StatusIcon returns the glyph for a task status.
func StatusIcon(s task.Status) string {
	switch s {
	case task.StatusInProgress:
		return IconInProgress
	case task.StatusDone:
		return IconDone
	default:
		return IconTodo
	}
}

// PriorityIcon returns the glyph for a task priority.
func PriorityIcon(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return IconPriorityHigh
	case task.PriorityMedium:
		return IconPriorityMedium
	default:
		return IconPriorityLow
	}
}
