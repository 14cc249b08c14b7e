package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Toolbar       *lipgloss.Style
	ToolbarKey    *lipgloss.Style
	Text          *lipgloss.Style
	CursorCell    *lipgloss.Style
	SelectedText  *lipgloss.Style
	StatusBar     *lipgloss.Style
	StatusPath    *lipgloss.Style
	StatusError   *lipgloss.Style
	StatusLoading *lipgloss.Style
	Position      *lipgloss.Style
	DialogTitle   *lipgloss.Style
	DialogItem    *lipgloss.Style
	DialogCursor  *lipgloss.Style
	DialogDir     *lipgloss.Style
	DialogMeta    *lipgloss.Style
	FilterPrompt  *lipgloss.Style
	Filter        *lipgloss.Style
	Footer        *lipgloss.Style
	Info          *lipgloss.Style
}

var defaultStyles = Styles{
	Toolbar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ToolbarKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Text: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	CursorCell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	SelectedText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
	),
	StatusBar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	StatusPath: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	StatusError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	StatusLoading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Position: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	DialogTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	DialogItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	DialogCursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DialogDir: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	),
	DialogMeta: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
