// Package session owns the single unit of editor state: the current file
// path, the text buffer, and the last error. It is a synchronous state
// machine; intents and I/O results mutate it in arrival order and every
// piece of I/O it wants performed is returned as an Effect for the caller
// to dispatch asynchronously. The package has no dependency on any UI
// toolkit or on the file system.
package session

import (
	"github.com/pennaedit/penna/internal/buffer"
	"github.com/pennaedit/penna/internal/logging/events"
)

// Intent is a user-initiated request forwarded by the presentation shell.
type Intent interface{ isIntent() }

// New discards the current document and starts an untitled one.
type New struct{}

// Open asks for a file to be picked and loaded.
type Open struct{}

// Save writes the current text to the current path, or to a picked target
// when the session is untitled.
type Save struct{}

// Edit applies one discrete buffer operation.
type Edit struct{ Op buffer.Op }

func (New) isIntent()  {}
func (Open) isIntent() {}
func (Save) isIntent() {}
func (Edit) isIntent() {}

// Result is the outcome of a dispatched gateway operation.
type Result interface{ isResult() }

// Opened reports a finished load or pick-and-load.
type Opened struct {
	Path string
	Text string
	Err  error
}

// Saved reports a finished save.
type Saved struct {
	Path string
	Err  error
}

func (Opened) isResult() {}
func (Saved) isResult()  {}

// EffectKind names the I/O the controller wants dispatched.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectPickOpen
	EffectLoad
	EffectSave
)

// Effect describes zero or one asynchronous gateway operation. For
// EffectSave, Text carries the buffer content captured at the moment the
// Save intent was applied, so edits arriving while the write is in flight
// cannot leak into it.
type Effect struct {
	Kind EffectKind
	Path string
	Text string
}

// Controller coordinates the session state. All methods must be called from
// a single logical thread of control (the Bubble Tea update loop in the
// production wiring); the controller itself never blocks.
type Controller struct {
	path      string
	buf       *buffer.Buffer
	err       error
	startPath string
	pending   int
}

// NewController returns a controller with an empty untitled session.
// startPath, when non-empty, names a file to load on Start.
func NewController(startPath string) *Controller {
	return &Controller{buf: buffer.New(), startPath: startPath}
}

// Start returns the initial load effect, or EffectNone when the session
// begins untitled.
func (c *Controller) Start() Effect {
	if c.startPath == "" {
		return Effect{Kind: EffectNone}
	}
	c.pending++
	return Effect{Kind: EffectLoad, Path: c.startPath}
}

// Apply handles one intent and returns the I/O to dispatch, if any.
func (c *Controller) Apply(intent Intent) Effect {
	switch in := intent.(type) {
	case New:
		events.Session.Intent("new")
		c.path = ""
		c.buf = buffer.New()
		c.err = nil
	case Open:
		events.Session.Intent("open")
		c.pending++
		return Effect{Kind: EffectPickOpen}
	case Save:
		events.Session.Intent("save")
		c.pending++
		return Effect{Kind: EffectSave, Path: c.path, Text: c.buf.Text()}
	case Edit:
		c.buf.Apply(in.Op)
		c.err = nil
	}
	return Effect{Kind: EffectNone}
}

// Resolve applies a gateway result. Results are applied unconditionally in
// arrival order; with a single edit source the last arrival is the state
// the user most recently asked for.
func (c *Controller) Resolve(result Result) {
	if c.pending > 0 {
		c.pending--
	}
	switch res := result.(type) {
	case Opened:
		if res.Err != nil {
			c.err = res.Err
			events.Session.OpenFailed(res.Err)
			return
		}
		c.path = res.Path
		c.buf.Load(res.Text)
		c.err = nil
		events.Session.Opened(res.Path)
	case Saved:
		if res.Err != nil {
			c.err = res.Err
			events.Session.SaveFailed(res.Err)
			return
		}
		c.path = res.Path
		c.err = nil
		events.Session.Saved(res.Path)
	}
}

// Path returns the current file path; empty means untitled.
func (c *Controller) Path() string { return c.path }

// Untitled reports whether the session has no backing file.
func (c *Controller) Untitled() bool { return c.path == "" }

// Buffer exposes the document state for rendering and clipboard access.
func (c *Controller) Buffer() *buffer.Buffer { return c.buf }

// Err returns the last gateway error, or nil. It is transient: cleared by
// the next edit or overwritten by the next resolved operation.
func (c *Controller) Err() error { return c.err }

// Loading reports whether at least one dispatched operation has not yet
// resolved. Display only; intents are never gated on it.
func (c *Controller) Loading() bool { return c.pending > 0 }
