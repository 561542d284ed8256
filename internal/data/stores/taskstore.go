package stores

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/core/validate"
	"github.com/docketcli/docket/pkg/randid"
)

const idLength = 8

// TaskStore implements task.Store with an in-memory ordered collection.
// The backing slice preserves insertion order, which is the collection's
// default ordering everywhere it is listed or searched.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []task.Task
}

var _ task.Store = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// Create validates and stores a new task.
// Generates an ID if not set and backfills timestamps and field defaults.
func (s *TaskStore) Create(ctx context.Context, t task.Task) (task.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)

	if t.Title == "" {
		return task.Task{}, task.ErrEmptyTitle
	}

	if t.Priority == 0 {
		t.Priority = task.PriorityMedium
	}
	if t.Status == 0 {
		t.Status = task.StatusTodo
	}
	if !t.Priority.IsValid() {
		return task.Task{}, fmt.Errorf("%w: priority %d out of range", task.ErrInvalidInput, t.Priority)
	}
	if !t.Status.IsValid() {
		return task.Task{}, fmt.Errorf("%w: status %d out of range", task.ErrInvalidInput, t.Status)
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = s.nextID()
	} else {
		// Resolve relies on stored ids being lowercase alphanumeric.
		if err := validate.TaskID(t.ID); err != nil {
			return task.Task{}, fmt.Errorf("%w: %s", task.ErrInvalidInput, err)
		}
		if s.indexOf(t.ID) >= 0 {
			return task.Task{}, fmt.Errorf("%w: id %q already exists", task.ErrInvalidInput, t.ID)
		}
	}

	s.tasks = append(s.tasks, t)
	return t, nil
}

// Get returns a single task by exact ID.
func (s *TaskStore) Get(ctx context.Context, id string) (task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return task.Task{}, task.ErrNotFound
	}
	return s.tasks[i], nil
}

// List returns snapshots of all tasks in insertion order.
func (s *TaskStore) List(ctx context.Context) ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.tasks), nil
}

// Update applies the non-nil fields of opts to the task with the given ID.
// Every requested field is validated before anything is written, so a
// failed update leaves the task untouched.
func (s *TaskStore) Update(ctx context.Context, id string, opts task.UpdateOptions) (task.Task, error) {
	var (
		title       string
		description string
	)

	if opts.Title != nil {
		title = strings.TrimSpace(*opts.Title)
		if title == "" {
			return task.Task{}, task.ErrEmptyTitle
		}
	}
	if opts.Description != nil {
		description = strings.TrimSpace(*opts.Description)
	}
	if opts.Priority != nil && !opts.Priority.IsValid() {
		return task.Task{}, fmt.Errorf("%w: priority %d out of range", task.ErrInvalidInput, *opts.Priority)
	}
	if opts.Status != nil && !opts.Status.IsValid() {
		return task.Task{}, fmt.Errorf("%w: status %d out of range", task.ErrInvalidInput, *opts.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return task.Task{}, task.ErrNotFound
	}

	t := s.tasks[i]
	if opts.Title != nil {
		t.Title = title
	}
	if opts.Description != nil {
		t.Description = description
	}
	if opts.Priority != nil {
		t.Priority = *opts.Priority
	}
	if opts.Status != nil {
		t.Status = *opts.Status
	}
	t.UpdatedAt = time.Now()

	s.tasks[i] = t
	return t, nil
}

// Delete removes the task with the exact ID.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return task.ErrNotFound
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)
	return nil
}

// Resolve returns the first task in insertion order whose ID starts with
// prefix. Stored IDs are lowercase, so matching is case-insensitive. An
// empty prefix matches nothing rather than everything.
func (s *TaskStore) Resolve(ctx context.Context, prefix string) (task.Task, error) {
	prefix = strings.ToLower(prefix)
	if prefix == "" {
		return task.Task{}, task.ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if strings.HasPrefix(t.ID, prefix) {
			return t, nil
		}
	}
	return task.Task{}, task.ErrNotFound
}

// Filter returns snapshots of the tasks matching pred, in insertion order.
func (s *TaskStore) Filter(ctx context.Context, pred task.Predicate) ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if pred(t) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Sort returns snapshots of all tasks ordered by cmp. The stored order is
// never changed; ties keep their insertion order.
func (s *TaskStore) Sort(ctx context.Context, cmp task.Comparator) ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := slices.Clone(s.tasks)
	slices.SortStableFunc(sorted, cmp)
	return sorted, nil
}

// Count returns the number of stored tasks.
func (s *TaskStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tasks), nil
}

// indexOf returns the position of the task with the exact id, or -1.
// Callers must hold s.mu.
func (s *TaskStore) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool { return t.ID == id })
}

// nextID generates an id that is not already in use. Callers must hold
// s.mu for writing.
func (s *TaskStore) nextID() string {
	for {
		id := randid.Generate(idLength)
		if s.indexOf(id) < 0 {
			return id
		}
	}
}
