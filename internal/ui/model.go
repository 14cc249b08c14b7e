package ui

import (
	"fmt"
	"path/filepath"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pennaedit/penna/internal/fileio"
	"github.com/pennaedit/penna/internal/logging/events"
	"github.com/pennaedit/penna/internal/session"
	"github.com/pennaedit/penna/internal/theme"
	"github.com/pennaedit/penna/internal/ui/dialog"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the editor. It owns the
// presentation state only; document state lives in the session controller
// and all file I/O happens in dispatched commands.
type Model struct {
	ctrl    *session.Controller
	gateway *fileio.Gateway
	bridge  *dialog.Bridge

	width      int
	height     int
	showFooter bool
	verbose    bool
	startDir   string
	infoMsg    string

	dialog *dialogState
	queued []*dialog.Request

	viewportTop int
	hscroll     int

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the UI to the session controller and gateway. The bridge
// may be nil in tests; startDir is where the open dialog begins browsing.
func NewModel(ctrl *session.Controller, gateway *fileio.Gateway, bridge *dialog.Bridge, startDir string, showFooter, verbose bool) *Model {
	if startDir == "" {
		startDir = "."
	}
	m := &Model{
		ctrl:       ctrl,
		gateway:    gateway,
		bridge:     bridge,
		showFooter: showFooter,
		verbose:    verbose,
		startDir:   startDir,
	}
	m.registerHandlers()
	return m
}

// Init dispatches the startup load (when configured) and starts listening
// for parked dialog requests.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(m.windowTitle())}
	if m.bridge != nil {
		cmds = append(cmds, waitForDialogRequest(m.bridge))
	}
	if cmd := m.dispatchEffect(m.ctrl.Start()); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages. An active dialog consumes input
// first; everything else routes through the typed handler registry.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleActiveDialog(msg); handled {
		return m, cmd
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(session.Opened{}):      m.handleOpenedMsg,
		reflect.TypeOf(session.Saved{}):       m.handleSavedMsg,
		reflect.TypeOf(dialogRequestMsg{}):    m.handleDialogRequestMsg,
		reflect.TypeOf(clipboardReadMsg{}):    m.handleClipboardReadMsg,
		reflect.TypeOf(clipboardWrittenMsg{}): m.handleClipboardWrittenMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	events.UI.Resize(size.Width, size.Height)
	m.ensureCursorVisible()
	return nil
}

func (m *Model) handleOpenedMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(session.Opened)
	if !ok {
		return nil
	}
	m.ctrl.Resolve(res)
	if res.Err == nil {
		m.viewportTop = 0
		m.hscroll = 0
		if m.verbose {
			m.infoMsg = fmt.Sprintf("Opened %s", res.Path)
		}
	}
	return tea.SetWindowTitle(m.windowTitle())
}

func (m *Model) handleSavedMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(session.Saved)
	if !ok {
		return nil
	}
	m.ctrl.Resolve(res)
	if res.Err == nil && m.verbose {
		m.infoMsg = fmt.Sprintf("Saved %s", res.Path)
	}
	return tea.SetWindowTitle(m.windowTitle())
}

func (m *Model) handleDialogRequestMsg(msg tea.Msg) tea.Cmd {
	req, ok := msg.(dialogRequestMsg)
	if !ok || req.req == nil {
		return nil
	}
	rearm := waitForDialogRequest(m.bridge)
	if m.dialog != nil {
		// A dialog is already on screen; serve this pick once it closes.
		m.queued = append(m.queued, req.req)
		return rearm
	}
	cmd := m.openDialog(req.req)
	return tea.Batch(rearm, cmd)
}

func (m *Model) handleClipboardReadMsg(msg tea.Msg) tea.Cmd {
	read, ok := msg.(clipboardReadMsg)
	if !ok {
		return nil
	}
	if read.err != nil {
		m.infoMsg = "clipboard unavailable"
		return nil
	}
	if read.text == "" {
		return nil
	}
	return m.applyEdit(pasteOp(read.text))
}

func (m *Model) handleClipboardWrittenMsg(msg tea.Msg) tea.Cmd {
	written, ok := msg.(clipboardWrittenMsg)
	if !ok {
		return nil
	}
	if written.err != nil {
		m.infoMsg = "clipboard unavailable"
	}
	return nil
}

// applyIntent routes a user intent through the controller and dispatches
// whatever I/O it asks for.
func (m *Model) applyIntent(intent session.Intent) tea.Cmd {
	eff := m.ctrl.Apply(intent)
	m.ensureCursorVisible()
	cmds := []tea.Cmd{tea.SetWindowTitle(m.windowTitle())}
	if cmd := m.dispatchEffect(eff); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// applyEdit is applyIntent for buffer operations, which never dispatch I/O.
func (m *Model) applyEdit(op session.Intent) tea.Cmd {
	m.ctrl.Apply(op)
	m.ensureCursorVisible()
	return nil
}

func (m *Model) windowTitle() string {
	if m.ctrl.Untitled() {
		return "penna — new file"
	}
	return "penna — " + filepath.Base(m.ctrl.Path())
}
