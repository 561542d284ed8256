// Package tui contains the interactive status board.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/docketcli/docket/internal/core/styles"
	"github.com/docketcli/docket/internal/core/task"
	"github.com/docketcli/docket/internal/docket"
)

// keyMap defines the board keybindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Cycle   key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Cycle:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle status")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the help footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Cycle, k.Delete, k.Quit}
}

// FullHelp returns the bindings grouped for expanded help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Cycle, k.Delete, k.Refresh, k.Quit},
	}
}

// Board is a three-column status board over the task store. Every mutation
// goes through the service and the board re-reads the store afterwards, so
// the view never drifts from the authoritative list.
type Board struct {
	svc *docket.TaskService

	columns [3][]task.Task // indexed by status ordinal - 1
	col     int            // focused column
	rows    [3]int         // cursor per column
	scroll  [3]int         // first visible card per column

	width  int
	height int

	keys    keyMap
	help    help.Model
	errLine string
}

var _ tea.Model = (*Board)(nil)

// NewBoard creates a board backed by svc.
func NewBoard(svc *docket.TaskService) *Board {
	return &Board{
		svc:  svc,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

// Init loads the initial task list.
func (b *Board) Init() tea.Cmd {
	return b.loadTasks()
}

// Update handles board messages.
func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.help.Width = msg.Width
		return b, nil

	case tasksLoadedMsg:
		if msg.err != nil {
			b.errLine = msg.err.Error()
			return b, nil
		}
		b.errLine = ""
		b.columns = msg.columns
		b.clampCursors()
		return b, nil

	case taskMutatedMsg:
		if msg.err != nil {
			b.errLine = msg.err.Error()
			return b, nil
		}
		b.errLine = ""
		return b, b.loadTasks()

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	return b, nil
}

func (b *Board) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit

	case key.Matches(msg, b.keys.Up):
		if b.rows[b.col] > 0 {
			b.rows[b.col]--
			b.ensureVisible()
		}

	case key.Matches(msg, b.keys.Down):
		if b.rows[b.col] < len(b.columns[b.col])-1 {
			b.rows[b.col]++
			b.ensureVisible()
		}

	case key.Matches(msg, b.keys.Left):
		if b.col > 0 {
			b.col--
		}

	case key.Matches(msg, b.keys.Right):
		if b.col < len(b.columns)-1 {
			b.col++
		}

	case key.Matches(msg, b.keys.Cycle):
		if t, ok := b.selected(); ok {
			return b, b.cycleStatus(t)
		}

	case key.Matches(msg, b.keys.Delete):
		if t, ok := b.selected(); ok {
			return b, b.deleteTask(t)
		}

	case key.Matches(msg, b.keys.Refresh):
		return b, b.loadTasks()
	}

	return b, nil
}

// View renders the three columns side by side with a help footer.
func (b *Board) View() string {
	cols := make([]string, 0, len(b.columns))
	for i := range b.columns {
		cols = append(cols, b.renderColumn(i))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	return lipgloss.JoinVertical(lipgloss.Left, board, b.renderFooter())
}

func (b *Board) renderColumn(i int) string {
	status := task.Status(i + 1)
	items := b.columns[i]
	colWidth := b.columnWidth()

	title := styles.BoardColumnTitleStyle.Render(
		fmt.Sprintf("%s %s (%d)", styles.StatusIcon(status), status.Label(), len(items)))
	rows := []string{title, ""}

	if len(items) == 0 {
		rows = append(rows, styles.SubtleStyle.Render("  nothing here"))
	} else {
		end := min(b.scroll[i]+b.cardsPerColumn(), len(items))
		for ri := b.scroll[i]; ri < end; ri++ {
			selected := i == b.col && ri == b.rows[i]
			rows = append(rows, b.renderCard(items[ri], selected, colWidth))
		}
	}

	style := styles.BoardColumnStyle
	if i == b.col {
		style = styles.BoardColumnFocusedStyle
	}

	return style.Width(colWidth).Render(strings.Join(rows, "\n"))
}

// renderCard renders one task as a two-line card: title, then priority and
// id on a muted meta line.
func (b *Board) renderCard(t task.Task, selected bool, width int) string {
	title := truncate(t.Title, max(width-4, 10))
	meta := styles.SubtleStyle.Render(
		fmt.Sprintf("%s %s  %s", styles.PriorityIcon(t.Priority), t.Priority.Label(), t.ID))

	if selected {
		marker := styles.BoardCardSelectedStyle.Render("┃ ")
		return marker + styles.BoardCardSelectedStyle.Render(title) + "\n" + marker + meta
	}
	return "  " + styles.BoardCardStyle.Render(title) + "\n  " + meta
}

func (b *Board) renderFooter() string {
	helpLine := styles.BoardHelpStyle.Render(b.help.View(b.keys))
	if b.errLine != "" {
		return lipgloss.JoinVertical(lipgloss.Left, styles.ErrorStyle.Render(b.errLine), helpLine)
	}
	return helpLine
}

// selected returns the task under the cursor, if any.
func (b *Board) selected() (task.Task, bool) {
	col := b.columns[b.col]
	if len(col) == 0 {
		return task.Task{}, false
	}
	return col[b.rows[b.col]], true
}

// clampCursors keeps cursors and scroll offsets inside their columns after
// a reload shrank or emptied them.
func (b *Board) clampCursors() {
	for i := range b.columns {
		if len(b.columns[i]) == 0 {
			b.rows[i] = 0
			b.scroll[i] = 0
			continue
		}
		if b.rows[i] >= len(b.columns[i]) {
			b.rows[i] = len(b.columns[i]) - 1
		}
		if b.scroll[i] > b.rows[i] {
			b.scroll[i] = b.rows[i]
		}
	}
}

// ensureVisible adjusts the focused column's scroll so the cursor is visible.
func (b *Board) ensureVisible() {
	i := b.col
	if b.rows[i] < b.scroll[i] {
		b.scroll[i] = b.rows[i]
	}
	if b.rows[i] >= b.scroll[i]+b.cardsPerColumn() {
		b.scroll[i] = b.rows[i] - b.cardsPerColumn() + 1
	}
}

func (b *Board) columnWidth() int {
	width := b.width
	if width == 0 {
		width = 80
	}
	return max(width/3-4, 24)
}

// cardsPerColumn returns how many two-line cards fit in a column.
func (b *Board) cardsPerColumn() int {
	height := b.height
	if height == 0 {
		height = 24
	}
	return max((height-6)/2, 1)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
