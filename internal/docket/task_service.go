package docket

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/docketcli/docket/internal/core/task"
)

// TaskService wraps task.Store with domain logic for id resolution and
// logging. All lookup arguments accept either a full id or a unique-enough
// prefix of one.
type TaskService struct {
	store task.Store
	log   zerolog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(store task.Store, log zerolog.Logger) *TaskService {
	return &TaskService{
		store: store,
		log:   log.With().Str("component", "task-service").Logger(),
	}
}

// Add creates a new task. Zero-valued priority and status fall back to the
// store defaults (medium priority, to-do).
func (s *TaskService) Add(ctx context.Context, t task.Task) (task.Task, error) {
	created, err := s.store.Create(ctx, t)
	if err != nil {
		return task.Task{}, fmt.Errorf("add task: %w", err)
	}

	s.log.Info().
		Str("id", created.ID).
		Str("title", created.Title).
		Str("priority", created.Priority.String()).
		Msg("task added")

	return created, nil
}

// Resolve finds a task by id or id prefix, case-insensitively. An exact id
// match wins over a prefix match; otherwise the first task in insertion
// order whose id begins with lookup is returned.
func (s *TaskService) Resolve(ctx context.Context, lookup string) (task.Task, error) {
	lookup = strings.ToLower(strings.TrimSpace(lookup))

	t, err := s.store.Get(ctx, lookup)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, task.ErrNotFound) {
		return task.Task{}, err
	}

	return s.store.Resolve(ctx, lookup)
}

// Get returns a single task by exact id.
func (s *TaskService) Get(ctx context.Context, id string) (task.Task, error) {
	return s.store.Get(ctx, id)
}

// List returns all tasks in insertion order.
func (s *TaskService) List(ctx context.Context) ([]task.Task, error) {
	return s.store.List(ctx)
}

// Count returns the number of tasks.
func (s *TaskService) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// Update resolves lookup and applies the non-nil fields of opts to the
// matched task. A validation failure applies nothing.
func (s *TaskService) Update(ctx context.Context, lookup string, opts task.UpdateOptions) (task.Task, error) {
	t, err := s.Resolve(ctx, lookup)
	if err != nil {
		return task.Task{}, fmt.Errorf("update task: %w", err)
	}

	updated, err := s.store.Update(ctx, t.ID, opts)
	if err != nil {
		return task.Task{}, fmt.Errorf("update task: %w", err)
	}

	s.log.Info().Str("id", updated.ID).Msg("task updated")

	return updated, nil
}

// SetStatus resolves lookup and moves the matched task to status.
func (s *TaskService) SetStatus(ctx context.Context, lookup string, status task.Status) (task.Task, error) {
	t, err := s.Resolve(ctx, lookup)
	if err != nil {
		return task.Task{}, fmt.Errorf("set task status: %w", err)
	}

	updated, err := s.store.Update(ctx, t.ID, task.UpdateOptions{Status: &status})
	if err != nil {
		return task.Task{}, fmt.Errorf("set task status: %w", err)
	}

	s.log.Info().
		Str("id", updated.ID).
		Str("status", updated.Status.String()).
		Msg("task status changed")

	return updated, nil
}

// Remove resolves lookup and deletes the matched task, returning the
// removed snapshot.
func (s *TaskService) Remove(ctx context.Context, lookup string) (task.Task, error) {
	t, err := s.Resolve(ctx, lookup)
	if err != nil {
		return task.Task{}, fmt.Errorf("remove task: %w", err)
	}

	if err := s.store.Delete(ctx, t.ID); err != nil {
		return task.Task{}, fmt.Errorf("remove task: %w", err)
	}

	s.log.Info().Str("id", t.ID).Str("title", t.Title).Msg("task removed")

	return t, nil
}

// Prune deletes every done task. Returns the number of tasks removed.
func (s *TaskService) Prune(ctx context.Context) (int, error) {
	s.log.Info().Msg("pruning done tasks")

	tasks, err := s.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list tasks: %w", err)
	}

	count := 0
	for _, t := range tasks {
		if t.Status != task.StatusDone {
			continue
		}
		if err := s.store.Delete(ctx, t.ID); err != nil {
			s.log.Warn().Err(err).Str("id", t.ID).Msg("failed to prune task")
			continue
		}
		count++
	}

	return count, nil
}

// Filter returns the tasks matching pred, in insertion order.
func (s *TaskService) Filter(ctx context.Context, pred task.Predicate) ([]task.Task, error) {
	return s.store.Filter(ctx, pred)
}

// SortBy returns all tasks ordered by cmp, ties keeping insertion order.
func (s *TaskService) SortBy(ctx context.Context, cmp task.Comparator) ([]task.Task, error) {
	return s.store.Sort(ctx, cmp)
}
