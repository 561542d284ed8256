package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Priority
		wantErr bool
	}{
		{name: "machine name", input: "high", want: PriorityHigh},
		{name: "display label", input: "Medium", want: PriorityMedium},
		{name: "ordinal digit", input: "1", want: PriorityLow},
		{name: "surrounding whitespace", input: "  low  ", want: PriorityLow},
		{name: "mixed case", input: "HIGH", want: PriorityHigh},
		{name: "unknown word", input: "urgent", wantErr: true},
		{name: "out of range ordinal", input: "4", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePriority(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "machine name", input: "todo", want: StatusTodo},
		{name: "hyphenated", input: "in-progress", want: StatusInProgress},
		{name: "display label", input: "In Progress", want: StatusInProgress},
		{name: "label with space", input: "To Do", want: StatusTodo},
		{name: "ordinal digit", input: "3", want: StatusDone},
		{name: "unknown word", input: "blocked", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStatus(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPriority_Names(t *testing.T) {
	for _, p := range Priorities() {
		assert.True(t, p.IsValid())
		assert.NotEqual(t, "unknown", p.String())

		// every name and label parses back to the same value
		got, err := ParsePriority(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)

		got, err = ParsePriority(p.Label())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	assert.False(t, Priority(0).IsValid())
	assert.Equal(t, "unknown", Priority(99).String())
}

func TestStatus_Names(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.IsValid())
		assert.NotEqual(t, "unknown", s.String())

		got, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)

		got, err = ParseStatus(s.Label())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	assert.False(t, Status(0).IsValid())
	assert.Equal(t, "unknown", Status(99).String())
}

func TestStatus_Next(t *testing.T) {
	assert.Equal(t, StatusInProgress, StatusTodo.Next())
	assert.Equal(t, StatusDone, StatusInProgress.Next())
	assert.Equal(t, StatusTodo, StatusDone.Next())
	assert.Equal(t, StatusTodo, Status(0).Next())
}
