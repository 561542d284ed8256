// Package task defines the task domain model and the store contract for docket.
package task

import (
	"fmt"
	"strings"
	"time"
)

// Priority orders tasks by importance. The ordinal doubles as the numeric
// chooser value in menus, so values start at 1.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// Priorities returns all priorities in ascending ordinal order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// String returns the machine name used in flags, config, and JSON output.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Label returns the human-readable display label.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// IsValid reports whether p is one of the defined priorities.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// ParsePriority converts user input to a Priority. It accepts the machine
// name, the display label (case-insensitively), or the ordinal digit 1-3.
// Anything else fails wrapping ErrInvalidInput.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "low":
		return PriorityLow, nil
	case "2", "medium":
		return PriorityMedium, nil
	case "3", "high":
		return PriorityHigh, nil
	default:
		return 0, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, s)
	}
}

// Status describes how far along a task is. Any status may be set to any
// other status; there is no managed transition system.
type Status int

const (
	StatusTodo Status = iota + 1
	StatusInProgress
	StatusDone
)

// Statuses returns all statuses in ascending ordinal order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// String returns the machine name used in flags, config, and JSON output.
func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "todo"
	case StatusInProgress:
		return "in-progress"
	case StatusDone:
		return "done"
	default:
		return "unknown"
	}
}

// Label returns the human-readable display label.
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// IsValid reports whether s is one of the defined statuses.
func (s Status) IsValid() bool {
	return s >= StatusTodo && s <= StatusDone
}

// ParseStatus converts user input to a Status. It accepts the machine name,
// the display label (case-insensitively, spaces optional), or the ordinal
// digit 1-3. Anything else fails wrapping ErrInvalidInput.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "todo", "to do", "to-do":
		return StatusTodo, nil
	case "2", "in-progress", "in progress", "inprogress":
		return StatusInProgress, nil
	case "3", "done":
		return StatusDone, nil
	default:
		return 0, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
	}
}

// Next returns the status after s, wrapping Done back to To Do. Used by
// interactive surfaces that cycle a task through its states.
func (s Status) Next() Status {
	if s >= StatusDone || s < StatusTodo {
		return StatusTodo
	}
	return s + 1
}

// Task represents a single to-do item.
//
// Tasks are value types with no reference fields, so copies handed out by
// the store are true snapshots: mutating a copy never touches stored state.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
