package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/data/stores"
	"github.com/docketcli/docket/internal/docket"
)

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newTestBoard seeds a store with two to-do tasks, one in progress, and
// one done, then loads the board from it.
func newTestBoard(t *testing.T) (*Board, *docket.TaskService) {
	t.Helper()

	svc := docket.NewTaskService(stores.NewTaskStore(), zerolog.Nop())
	ctx := context.Background()

	for _, tt := range []struct {
		title  string
		status task.Status
	}{
		{"buy groceries", task.StatusTodo},
		{"call dentist", task.StatusTodo},
		{"write report", task.StatusInProgress},
		{"file taxes", task.StatusDone},
	} {
		_, err := svc.Add(ctx, task.Task{Title: tt.title, Status: tt.status})
		require.NoError(t, err)
	}

	board := NewBoard(svc)
	model, _ := board.Update(board.loadTasks()())
	return model.(*Board), svc
}

func TestBoardLoadGroupsByStatus(t *testing.T) {
	board, _ := newTestBoard(t)

	assert.Len(t, board.columns[0], 2)
	assert.Len(t, board.columns[1], 1)
	assert.Len(t, board.columns[2], 1)

	// insertion order within a column
	assert.Equal(t, "buy groceries", board.columns[0][0].Title)
	assert.Equal(t, "call dentist", board.columns[0][1].Title)
}

func TestBoardNavigation(t *testing.T) {
	board, _ := newTestBoard(t)

	// Move down within the to-do column
	model, _ := board.Update(keyPress("j"))
	board = model.(*Board)
	assert.Equal(t, 1, board.rows[0])

	// Past the end - stays
	model, _ = board.Update(keyPress("j"))
	board = model.(*Board)
	assert.Equal(t, 1, board.rows[0])

	// Back up, then past the beginning - stays
	model, _ = board.Update(keyPress("k"))
	board = model.(*Board)
	model, _ = board.Update(keyPress("k"))
	board = model.(*Board)
	assert.Equal(t, 0, board.rows[0])

	// Across columns, clamped at both edges
	model, _ = board.Update(keyPress("h"))
	board = model.(*Board)
	assert.Equal(t, 0, board.col)

	model, _ = board.Update(keyPress("l"))
	board = model.(*Board)
	model, _ = board.Update(keyPress("l"))
	board = model.(*Board)
	model, _ = board.Update(keyPress("l"))
	board = model.(*Board)
	assert.Equal(t, 2, board.col)

	// Arrow keys work the same as hjkl
	model, _ = board.Update(tea.KeyMsg{Type: tea.KeyLeft})
	board = model.(*Board)
	assert.Equal(t, 1, board.col)
}

func TestBoardCycleStatus(t *testing.T) {
	board, svc := newTestBoard(t)

	moved, ok := board.selected()
	require.True(t, ok)
	require.Equal(t, "buy groceries", moved.Title)

	model, cmd := board.Update(keyPress("t"))
	board = model.(*Board)
	require.NotNil(t, cmd)

	// cycle command mutates, then the board reloads
	model, cmd = board.Update(cmd())
	board = model.(*Board)
	require.NotNil(t, cmd)
	model, _ = board.Update(cmd())
	board = model.(*Board)

	assert.Len(t, board.columns[0], 1)
	assert.Len(t, board.columns[1], 2)

	got, err := svc.Get(context.Background(), moved.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, got.Status)
}

func TestBoardCycleWrapsDoneToTodo(t *testing.T) {
	board, svc := newTestBoard(t)

	// Focus the done column
	model, _ := board.Update(keyPress("l"))
	board = model.(*Board)
	model, _ = board.Update(keyPress("l"))
	board = model.(*Board)

	moved, ok := board.selected()
	require.True(t, ok)
	require.Equal(t, task.StatusDone, moved.Status)

	model, cmd := board.Update(keyPress("t"))
	board = model.(*Board)
	require.NotNil(t, cmd)
	model, cmd = board.Update(cmd())
	board = model.(*Board)
	model, _ = board.Update(cmd())
	board = model.(*Board)

	got, err := svc.Get(context.Background(), moved.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusTodo, got.Status)
}

func TestBoardDelete(t *testing.T) {
	board, svc := newTestBoard(t)

	removed, ok := board.selected()
	require.True(t, ok)

	model, cmd := board.Update(keyPress("d"))
	board = model.(*Board)
	require.NotNil(t, cmd)
	model, cmd = board.Update(cmd())
	board = model.(*Board)
	model, _ = board.Update(cmd())
	board = model.(*Board)

	assert.Len(t, board.columns[0], 1)
	assert.Equal(t, "call dentist", board.columns[0][0].Title)

	_, err := svc.Get(context.Background(), removed.ID)
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestBoardActionsOnEmptyColumnAreNoops(t *testing.T) {
	svc := docket.NewTaskService(stores.NewTaskStore(), zerolog.Nop())
	board := NewBoard(svc)
	model, _ := board.Update(board.loadTasks()())
	board = model.(*Board)

	_, cmd := board.Update(keyPress("t"))
	assert.Nil(t, cmd)

	_, cmd = board.Update(keyPress("d"))
	assert.Nil(t, cmd)
}

func TestBoardQuit(t *testing.T) {
	board, _ := newTestBoard(t)

	_, cmd := board.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = board.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestBoardClampAfterReload(t *testing.T) {
	board, svc := newTestBoard(t)

	// Cursor on the second to-do task
	model, _ := board.Update(keyPress("j"))
	board = model.(*Board)
	require.Equal(t, 1, board.rows[0])

	// Store shrinks behind the board's back, then a reload arrives
	_, err := svc.Remove(context.Background(), board.columns[0][1].ID)
	require.NoError(t, err)

	model, _ = board.Update(board.loadTasks()())
	board = model.(*Board)

	assert.Equal(t, 0, board.rows[0])
}

func TestBoardViewRenders(t *testing.T) {
	board, _ := newTestBoard(t)
	board.width = 120
	board.height = 40

	view := board.View()
	assert.Contains(t, view, "To Do (2)")
	assert.Contains(t, view, "In Progress (1)")
	assert.Contains(t, view, "Done (1)")
	assert.Contains(t, view, "buy groceries")
	assert.Contains(t, view, "write report")
}

func TestBoardViewEmptyColumns(t *testing.T) {
	svc := docket.NewTaskService(stores.NewTaskStore(), zerolog.Nop())
	board := NewBoard(svc)

	view := board.View()
	assert.Contains(t, view, "nothing here")
}

func TestBoardTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hel...", truncate("hello world", 6))
	assert.Equal(t, "he", truncate("hello", 2))
}
