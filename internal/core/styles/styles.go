// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/huh"
	lipgloss "github.com/charmbracelet/lipgloss"

	"github.com/docketcli/docket/internal/core/task"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	// CLI styles.
	TitleStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style
	SubtleStyle  lipgloss.Style
	DividerStyle lipgloss.Style

	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	IDStyle      lipgloss.Style

	// Task field styles.
	StatusTodoStyle       lipgloss.Style
	StatusInProgressStyle lipgloss.Style
	StatusDoneStyle       lipgloss.Style

	PriorityLowStyle    lipgloss.Style
	PriorityMediumStyle lipgloss.Style
	PriorityHighStyle   lipgloss.Style

	// Menu styles.
	MenuTitleStyle    lipgloss.Style
	MenuChoiceStyle   lipgloss.Style
	MenuOrdinalStyle  lipgloss.Style
	MenuSelectedStyle lipgloss.Style

	// Board styles.
	BoardColumnStyle        lipgloss.Style
	BoardColumnFocusedStyle lipgloss.Style
	BoardColumnTitleStyle   lipgloss.Style
	BoardCardStyle          lipgloss.Style
	BoardCardSelectedStyle  lipgloss.Style
	BoardHelpStyle          lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	SubtleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorSurface)

	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	IDStyle = lipgloss.NewStyle().Foreground(ColorSecondary)

	StatusTodoStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusInProgressStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	StatusDoneStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	PriorityLowStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	PriorityMediumStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	PriorityHighStyle = lipgloss.NewStyle().Foreground(ColorError)

	MenuTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	MenuChoiceStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	MenuOrdinalStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	MenuSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	BoardColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	BoardColumnFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)
	BoardColumnTitleStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	BoardCardStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	BoardCardSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	BoardHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
}

// StatusStyle returns the style for a task status.
func StatusStyle(s task.Status) lipgloss.Style {
	switch s {
	case task.StatusInProgress:
		return StatusInProgressStyle
	case task.StatusDone:
		return StatusDoneStyle
	default:
		return StatusTodoStyle
	}
}

// PriorityStyle returns the style for a task priority.
func PriorityStyle(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityHigh:
		return PriorityHighStyle
	case task.PriorityMedium:
		return PriorityMediumStyle
	default:
		return PriorityLowStyle
	}
}

// FormTheme returns a huh form theme derived from the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary).Bold(true)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Blurred.Description = t.Blurred.Description.Foreground(ColorMuted)
	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorSurface)

	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)

	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorSecondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Background(ColorSurface).
		Foreground(ColorMuted)

	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(ColorPrimary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorSecondary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(ColorMuted)

	t.Help.ShortKey = t.Help.ShortKey.Foreground(ColorMuted)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(ColorSurface)

	return t
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
