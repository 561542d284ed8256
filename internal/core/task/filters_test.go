package task

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicates(t *testing.T) {
	done := Task{Title: "Ship release", Priority: PriorityHigh, Status: StatusDone}
	open := Task{Title: "Write weekly report", Priority: PriorityLow, Status: StatusTodo}

	assert.True(t, StatusEquals(StatusDone)(done))
	assert.False(t, StatusEquals(StatusDone)(open))

	assert.True(t, PriorityEquals(PriorityHigh)(done))
	assert.False(t, PriorityEquals(PriorityHigh)(open))

	both := And(StatusEquals(StatusTodo), PriorityEquals(PriorityLow))
	assert.True(t, both(open))
	assert.False(t, both(done))

	assert.True(t, And()(done), "empty And matches everything")
}

func TestTitleMatches(t *testing.T) {
	tasks := []Task{
		{Title: "Write weekly report"},
		{Title: "Review PR"},
		{Title: "weekly groceries"},
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "bare word is substring", pattern: "weekly", want: []string{"Write weekly report", "weekly groceries"}},
		{name: "case insensitive", pattern: "REVIEW", want: []string{"Review PR"}},
		{name: "glob anchors whole title", pattern: "weekly*", want: []string{"weekly groceries"}},
		{name: "glob wildcards", pattern: "*report", want: []string{"Write weekly report"}},
		{name: "no match", pattern: "deploy", want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pred, err := TitleMatches(tc.pattern)
			require.NoError(t, err)

			var got []string
			for _, task := range tasks {
				if pred(task) {
					got = append(got, task.Title)
				}
			}

			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("malformed pattern", func(t *testing.T) {
		_, err := TitleMatches("report[")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestComparators(t *testing.T) {
	low := Task{Title: "b low", Priority: PriorityLow, CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)}
	high := Task{Title: "a high", Priority: PriorityHigh, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	t.Run("priority desc", func(t *testing.T) {
		got := []Task{low, high}
		slices.SortStableFunc(got, ByPriorityDesc)
		assert.Equal(t, []Task{high, low}, got)
	})

	t.Run("title", func(t *testing.T) {
		got := []Task{low, high}
		slices.SortStableFunc(got, ByTitle)
		assert.Equal(t, []Task{high, low}, got)

		assert.Zero(t, ByTitle(Task{Title: "Same"}, Task{Title: "same"}), "title compare ignores case")
	})

	t.Run("created at", func(t *testing.T) {
		got := []Task{low, high}
		slices.SortStableFunc(got, ByCreatedAt)
		assert.Equal(t, []Task{high, low}, got)
	})
}
