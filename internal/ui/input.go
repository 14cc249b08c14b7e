package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pennaedit/penna/internal/buffer"
	"github.com/pennaedit/penna/internal/logging/events"
	"github.com/pennaedit/penna/internal/session"
)

// motionKeys maps key names to cursor motions. Shift extends the selection,
// ctrl switches to word/document granularity.
var motionKeys = map[string]buffer.Move{
	"left":             {Unit: buffer.UnitRune, Dir: buffer.DirLeft},
	"right":            {Unit: buffer.UnitRune, Dir: buffer.DirRight},
	"up":               {Unit: buffer.UnitRune, Dir: buffer.DirUp},
	"down":             {Unit: buffer.UnitRune, Dir: buffer.DirDown},
	"home":             {Unit: buffer.UnitLine, Dir: buffer.DirHome},
	"end":              {Unit: buffer.UnitLine, Dir: buffer.DirEnd},
	"shift+left":       {Unit: buffer.UnitRune, Dir: buffer.DirLeft, Extend: true},
	"shift+right":      {Unit: buffer.UnitRune, Dir: buffer.DirRight, Extend: true},
	"shift+up":         {Unit: buffer.UnitRune, Dir: buffer.DirUp, Extend: true},
	"shift+down":       {Unit: buffer.UnitRune, Dir: buffer.DirDown, Extend: true},
	"shift+home":       {Unit: buffer.UnitLine, Dir: buffer.DirHome, Extend: true},
	"shift+end":        {Unit: buffer.UnitLine, Dir: buffer.DirEnd, Extend: true},
	"ctrl+left":        {Unit: buffer.UnitWord, Dir: buffer.DirLeft},
	"ctrl+right":       {Unit: buffer.UnitWord, Dir: buffer.DirRight},
	"ctrl+shift+left":  {Unit: buffer.UnitWord, Dir: buffer.DirLeft, Extend: true},
	"ctrl+shift+right": {Unit: buffer.UnitWord, Dir: buffer.DirRight, Extend: true},
	"ctrl+home":        {Unit: buffer.UnitDoc, Dir: buffer.DirHome},
	"ctrl+end":         {Unit: buffer.UnitDoc, Dir: buffer.DirEnd},
	"ctrl+shift+home":  {Unit: buffer.UnitDoc, Dir: buffer.DirHome, Extend: true},
	"ctrl+shift+end":   {Unit: buffer.UnitDoc, Dir: buffer.DirEnd, Extend: true},
}

func pasteOp(text string) session.Intent {
	return session.Edit{Op: buffer.InsertText{Text: text}}
}

// handleKeyMsg translates editor-mode key presses into session intents.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.infoMsg = ""

	if key.Paste {
		return m.applyEdit(pasteOp(string(key.Runes)))
	}

	name := key.String()
	if motion, ok := motionKeys[name]; ok {
		return m.applyEdit(session.Edit{Op: motion})
	}

	switch name {
	case "ctrl+q":
		events.UI.Quit()
		return tea.Quit
	case "ctrl+n":
		return m.applyIntent(session.New{})
	case "ctrl+o":
		return m.applyIntent(session.Open{})
	case "ctrl+s":
		return m.applyIntent(session.Save{})
	case "ctrl+a":
		return m.applyEdit(session.Edit{Op: buffer.SelectAll{}})
	case "ctrl+c":
		text := m.ctrl.Buffer().SelectedText()
		if text == "" {
			return nil
		}
		return writeClipboardCmd(text)
	case "ctrl+v":
		return readClipboardCmd
	case "enter":
		return m.applyEdit(session.Edit{Op: buffer.InsertNewline{}})
	case "backspace":
		return m.applyEdit(session.Edit{Op: buffer.DeleteBackward{}})
	case "delete":
		return m.applyEdit(session.Edit{Op: buffer.DeleteForward{}})
	case "tab":
		return m.applyEdit(session.Edit{Op: buffer.InsertRune{R: '\t'}})
	case " ":
		return m.applyEdit(session.Edit{Op: buffer.InsertRune{R: ' '}})
	}

	if key.Type == tea.KeyRunes && !key.Alt {
		if len(key.Runes) == 1 {
			return m.applyEdit(session.Edit{Op: buffer.InsertRune{R: key.Runes[0]}})
		}
		return m.applyEdit(pasteOp(string(key.Runes)))
	}
	return nil
}
