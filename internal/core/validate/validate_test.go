package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketcli/docket/internal/core/task"
)

func TestTaskTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid title", "write report", false},
		{"valid with punctuation", "call: dentist!", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TaskTitle(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "TaskTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}

	t.Run("empty title error kind", func(t *testing.T) {
		require.ErrorIs(t, TaskTitle("  "), task.ErrEmptyTitle)
	})
}

func TestTaskID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid alphanumeric", "abc123", false},
		{"valid letters only", "abcdef", false},
		{"valid numbers only", "123456", false},
		{"empty string", "", true},
		{"with spaces", "abc 123", true},
		{"with hyphen", "abc-123", true},
		{"with underscore", "abc_123", true},
		{"uppercase letters", "ABC123", true},
		{"mixed case", "AbC123", true},
		{"special chars", "abc!@#", true},
		{"unicode", "abc日本", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TaskID(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "TaskID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}
