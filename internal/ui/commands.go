package ui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pennaedit/penna/internal/fileio"
	"github.com/pennaedit/penna/internal/session"
	"github.com/pennaedit/penna/internal/ui/dialog"
)

// dialogRequestMsg surfaces a gateway pick that is parked on the bridge.
type dialogRequestMsg struct {
	req *dialog.Request
}

// clipboardReadMsg carries the system clipboard content for a paste.
type clipboardReadMsg struct {
	text string
	err  error
}

// clipboardWrittenMsg reports the outcome of a copy.
type clipboardWrittenMsg struct {
	err error
}

// dispatchEffect turns a controller effect into the matching asynchronous
// gateway command. Each command runs on its own goroutine and delivers
// exactly one session result message.
func (m *Model) dispatchEffect(eff session.Effect) tea.Cmd {
	switch eff.Kind {
	case session.EffectPickOpen:
		return pickOpenCmd(m.gateway)
	case session.EffectLoad:
		return loadFileCmd(m.gateway, eff.Path)
	case session.EffectSave:
		return saveFileCmd(m.gateway, eff.Path, eff.Text)
	default:
		return nil
	}
}

func loadFileCmd(g *fileio.Gateway, path string) tea.Cmd {
	return func() tea.Msg {
		opened, err := g.LoadFile(context.Background(), path)
		return session.Opened{Path: opened.Path, Text: opened.Text, Err: err}
	}
}

func pickOpenCmd(g *fileio.Gateway) tea.Cmd {
	return func() tea.Msg {
		opened, err := g.PickFile(context.Background())
		return session.Opened{Path: opened.Path, Text: opened.Text, Err: err}
	}
}

func saveFileCmd(g *fileio.Gateway, path, text string) tea.Cmd {
	return func() tea.Msg {
		saved, err := g.SaveFile(context.Background(), path, text)
		return session.Saved{Path: saved, Err: err}
	}
}

// waitForDialogRequest blocks on the bridge until a gateway operation needs
// an interactive pick; the handler re-arms it after every delivery.
func waitForDialogRequest(bridge *dialog.Bridge) tea.Cmd {
	if bridge == nil {
		return nil
	}
	return func() tea.Msg {
		req, ok := <-bridge.Requests()
		if !ok {
			return nil
		}
		return dialogRequestMsg{req: req}
	}
}

func readClipboardCmd() tea.Msg {
	text, err := clipboard.ReadAll()
	return clipboardReadMsg{text: text, err: err}
}

func writeClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardWrittenMsg{err: clipboard.WriteAll(text)}
	}
}
