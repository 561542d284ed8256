package task

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Predicate reports whether a task should be included in a filtered view.
type Predicate func(Task) bool

// StatusEquals matches tasks with the given status.
func StatusEquals(s Status) Predicate {
	return func(t Task) bool { return t.Status == s }
}

// PriorityEquals matches tasks with the given priority.
func PriorityEquals(p Priority) Predicate {
	return func(t Task) bool { return t.Priority == p }
}

// TitleMatches matches task titles against a case-insensitive glob pattern.
// A bare word with no glob metacharacters matches as a substring, so
// "report" finds "Write weekly report" without the user spelling out
// "*report*". Fails wrapping ErrInvalidInput when the pattern is malformed.
func TitleMatches(pattern string) (Predicate, error) {
	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad title pattern %q", ErrInvalidInput, pattern)
	}

	if !strings.ContainsAny(pattern, `*?[{\`) {
		return func(t Task) bool {
			return strings.Contains(strings.ToLower(t.Title), pattern)
		}, nil
	}

	return func(t Task) bool {
		return doublestar.MatchUnvalidated(pattern, strings.ToLower(t.Title))
	}, nil
}

// And matches tasks that satisfy every given predicate. With no arguments
// it matches everything.
func And(preds ...Predicate) Predicate {
	return func(t Task) bool {
		for _, p := range preds {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// Comparator orders two tasks for sorting, returning a negative number
// when a sorts before b, zero when they tie, and a positive number when a
// sorts after b. Ties keep insertion order under the store's stable sort.
type Comparator func(a, b Task) int

// ByPriorityDesc orders tasks from high priority to low.
func ByPriorityDesc(a, b Task) int {
	return cmp.Compare(b.Priority, a.Priority)
}

// ByTitle orders tasks alphabetically by title, case-insensitively.
func ByTitle(a, b Task) int {
	return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
}

// ByCreatedAt orders tasks from oldest to newest.
func ByCreatedAt(a, b Task) int {
	return a.CreatedAt.Compare(b.CreatedAt)
}
