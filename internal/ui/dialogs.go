package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/pennaedit/penna/internal/logging"
	"github.com/pennaedit/penna/internal/logging/events"
	"github.com/pennaedit/penna/internal/ui/dialog"
	uistate "github.com/pennaedit/penna/internal/ui/state"
)

type dialogMode int

const (
	dialogBrowse dialogMode = iota
	dialogSaveForm
)

// dialogState is the modal surface serving one parked pick request.
type dialogState struct {
	req  *dialog.Request
	mode dialogMode

	// browse mode
	dir          string
	list         *uistate.List
	filterCursor cursor.Model

	// save mode
	input textinput.Model
}

// browseDir picks where a dialog starts: next to the current file when the
// session has one, else the configured start directory.
func (m *Model) browseDir() string {
	if !m.ctrl.Untitled() {
		return filepath.Dir(m.ctrl.Path())
	}
	return m.startDir
}

func (m *Model) openDialog(req *dialog.Request) tea.Cmd {
	events.Dialog.Open(req.Kind.String())
	dir, err := filepath.Abs(m.browseDir())
	if err != nil {
		dir = m.startDir
	}
	if req.Kind == dialog.KindSave {
		ti := textinput.New()
		ti.Prompt = "Save as: "
		if styles.FilterPrompt != nil {
			ti.PromptStyle = *styles.FilterPrompt
		}
		if m.ctrl.Untitled() {
			ti.SetValue(dir + string(filepath.Separator))
		} else {
			ti.SetValue(m.ctrl.Path())
		}
		ti.CursorEnd()
		ti.Focus()
		m.dialog = &dialogState{req: req, mode: dialogSaveForm, dir: dir, input: ti}
		return textinput.Blink
	}

	entries, derr := readDirEntries(dir)
	if derr != nil {
		if dir != "." {
			dir = "."
			entries, derr = readDirEntries(dir)
		}
		if derr != nil {
			logging.Error(derr)
			req.Cancel()
			events.Dialog.Closed(req.Kind.String())
			return nil
		}
	}
	c := cursor.New()
	if styles.DialogCursor != nil {
		c.Style = *styles.DialogCursor
	}
	ds := &dialogState{
		req:          req,
		mode:         dialogBrowse,
		dir:          dir,
		list:         uistate.NewList(entries),
		filterCursor: c,
	}
	m.dialog = ds
	return ds.filterCursor.Focus()
}

// closeDialog drops the active dialog and opens the next queued pick, if
// any.
func (m *Model) closeDialog() tea.Cmd {
	m.dialog = nil
	if len(m.queued) == 0 {
		return nil
	}
	next := m.queued[0]
	m.queued = m.queued[1:]
	return m.openDialog(next)
}

// handleActiveDialog consumes messages while a dialog is on screen.
func (m *Model) handleActiveDialog(msg tea.Msg) (bool, tea.Cmd) {
	if m.dialog == nil {
		return false, nil
	}
	// Session results and queued dialog requests keep flowing while a
	// dialog is up; only input and blink messages belong to the dialog.
	switch msg.(type) {
	case tea.KeyMsg, cursor.BlinkMsg:
	default:
		return false, nil
	}
	if m.dialog.mode == dialogSaveForm {
		return true, m.handleSaveForm(msg)
	}
	return true, m.handleBrowse(msg)
}

func (m *Model) handleSaveForm(msg tea.Msg) tea.Cmd {
	ds := m.dialog
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+q":
			ds.req.Cancel()
			events.Dialog.Closed("save")
			return m.closeDialog()
		case "enter":
			value := strings.TrimSpace(ds.input.Value())
			if value == "" {
				return nil
			}
			if !filepath.IsAbs(value) {
				value = filepath.Join(ds.dir, value)
			}
			ds.req.Resolve(value)
			events.Dialog.Picked("save", value)
			return m.closeDialog()
		}
	}
	var cmd tea.Cmd
	ds.input, cmd = ds.input.Update(msg)
	return cmd
}

func (m *Model) handleBrowse(msg tea.Msg) tea.Cmd {
	ds := m.dialog
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		ds.filterCursor, cmd = ds.filterCursor.Update(msg)
		return cmd
	}

	switch key.String() {
	case "esc", "ctrl+q":
		ds.req.Cancel()
		events.Dialog.Closed("open")
		return m.closeDialog()
	case "up", "ctrl+p":
		ds.list.CursorUp()
		return nil
	case "down", "ctrl+n":
		ds.list.CursorDown()
		return nil
	case "ctrl+u":
		ds.list.ClearFilter()
		return nil
	case "backspace":
		ds.list.BackspaceFilter()
		return nil
	case "enter":
		entry, ok := ds.list.Current()
		if !ok {
			return nil
		}
		if entry.Dir {
			return m.navigateBrowse(entry.Path)
		}
		ds.req.Resolve(entry.Path)
		events.Dialog.Picked("open", entry.Path)
		return m.closeDialog()
	}

	if key.Type == tea.KeyRunes && !key.Alt {
		ds.list.AppendFilter(string(key.Runes))
	} else if key.String() == " " {
		ds.list.AppendFilter(" ")
	}
	return nil
}

func (m *Model) navigateBrowse(dir string) tea.Cmd {
	ds := m.dialog
	entries, err := readDirEntries(dir)
	if err != nil {
		logging.Error(err)
		return nil
	}
	ds.dir = dir
	ds.list.SetEntries(entries)
	ds.list.SetFilter("", 0)
	return nil
}

// readDirEntries lists dir with directories first, each group sorted by
// name, and a parent entry at the top unless dir is the root.
func readDirEntries(dir string) ([]uistate.Entry, error) {
	raw, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	dirs := make([]uistate.Entry, 0, len(raw))
	files := make([]uistate.Entry, 0, len(raw))
	for _, de := range raw {
		entry := uistate.Entry{
			Name: de.Name(),
			Path: filepath.Join(dir, de.Name()),
			Dir:  de.IsDir(),
		}
		if de.IsDir() {
			entry.Name += string(filepath.Separator)
			dirs = append(dirs, entry)
			continue
		}
		if info, ierr := de.Info(); ierr == nil && info.Mode().IsRegular() {
			entry.Meta = humanize.Bytes(uint64(info.Size()))
			files = append(files, entry)
		}
	}
	byName := func(entries []uistate.Entry) {
		sort.Slice(entries, func(a, b int) bool {
			return strings.ToLower(entries[a].Name) < strings.ToLower(entries[b].Name)
		})
	}
	byName(dirs)
	byName(files)

	out := make([]uistate.Entry, 0, len(dirs)+len(files)+1)
	if parent := filepath.Dir(dir); parent != dir {
		out = append(out, uistate.Entry{Name: "..", Path: parent, Dir: true})
	}
	out = append(out, dirs...)
	out = append(out, files...)
	return out, nil
}
