package task

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no task matches an id or id prefix.
	ErrNotFound = errors.New("task not found")

	// ErrEmptyTitle is returned when a title is empty or only whitespace.
	ErrEmptyTitle = errors.New("task title is empty")

	// ErrInvalidInput is returned when input cannot be parsed into one of
	// the defined choices.
	ErrInvalidInput = errors.New("invalid input")
)

// UpdateOptions carries the mutable fields of a task. Nil fields are left
// unchanged. An update either applies every non-nil field or, if any of
// them fails validation, applies none of them.
type UpdateOptions struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *Status
}

// Store defines the persistence contract for tasks. Implementations must
// be safe for concurrent use and must return tasks as value snapshots.
type Store interface {
	// Create validates and stores a new task. The zero ID is replaced with
	// a generated one and timestamps are backfilled. Returns the stored
	// snapshot.
	Create(ctx context.Context, t Task) (Task, error)

	// Get returns the task with the exact id, or ErrNotFound.
	Get(ctx context.Context, id string) (Task, error)

	// List returns all tasks in insertion order.
	List(ctx context.Context) ([]Task, error)

	// Update applies opts to the task with the exact id. Fails with
	// ErrNotFound when the id is unknown, or a validation error when any
	// requested field is invalid, in which case nothing changes.
	Update(ctx context.Context, id string, opts UpdateOptions) (Task, error)

	// Delete removes the task with the exact id, or fails with ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Resolve returns the first task in insertion order whose id begins
	// with prefix, or ErrNotFound. An empty prefix matches nothing.
	Resolve(ctx context.Context, prefix string) (Task, error)

	// Filter returns the tasks matching pred, in insertion order.
	Filter(ctx context.Context, pred Predicate) ([]Task, error)

	// Sort returns all tasks ordered by cmp. The sort is stable, so tasks
	// that compare equal keep their insertion order.
	Sort(ctx context.Context, cmp Comparator) ([]Task, error)

	// Count returns the number of stored tasks.
	Count(ctx context.Context) (int, error)
}
