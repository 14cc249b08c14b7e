// Package app bootstraps the editor: it wires the dialog bridge, file
// gateway, session controller, and UI model together and runs the Bubble
// Tea program.
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pennaedit/penna/internal/fileio"
	"github.com/pennaedit/penna/internal/session"
	"github.com/pennaedit/penna/internal/ui"
	"github.com/pennaedit/penna/internal/ui/dialog"
)

// Config describes user-provided application options.
type Config struct {
	File       string
	Dir        string
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	bridge := dialog.NewBridge()
	gateway := fileio.NewGateway(bridge)
	ctrl := session.NewController(cfg.File)
	model := ui.NewModel(ctrl, gateway, bridge, cfg.Dir, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
