package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docketcli/docket/internal/core/task"
)

// tasksLoadedMsg is sent when the task list has been fetched and grouped
// into status columns.
type tasksLoadedMsg struct {
	columns [3][]task.Task
	err     error
}

// taskMutatedMsg is sent when a board action changed the store.
type taskMutatedMsg struct {
	err error
}

// loadTasks returns a tea.Cmd that fetches all tasks grouped by status.
func (b *Board) loadTasks() tea.Cmd {
	svc := b.svc
	return func() tea.Msg {
		tasks, err := svc.List(context.Background())
		if err != nil {
			return tasksLoadedMsg{err: err}
		}

		var msg tasksLoadedMsg
		for _, t := range tasks {
			i := int(t.Status) - 1
			if i < 0 || i >= len(msg.columns) {
				continue
			}
			msg.columns[i] = append(msg.columns[i], t)
		}
		return msg
	}
}

// cycleStatus advances t to the next status in the to-do cycle.
func (b *Board) cycleStatus(t task.Task) tea.Cmd {
	svc := b.svc
	return func() tea.Msg {
		_, err := svc.SetStatus(context.Background(), t.ID, t.Status.Next())
		return taskMutatedMsg{err: err}
	}
}

// deleteTask removes t from the store.
func (b *Board) deleteTask(t task.Task) tea.Cmd {
	svc := b.svc
	return func() tea.Msg {
		_, err := svc.Remove(context.Background(), t.ID)
		return taskMutatedMsg{err: err}
	}
}
