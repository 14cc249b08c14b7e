// Package dialog bridges the gateway's blocking pick calls and the Bubble
// Tea update loop. A gateway operation runs on its own goroutine; when it
// needs an interactive target it parks on the bridge until the UI has shown
// the dialog and the user has chosen or dismissed it. This keeps the modal
// wait inside the asynchronous unit of work while the UI stays responsive.
package dialog

import (
	"context"

	"github.com/pennaedit/penna/internal/fileio"
)

// Kind distinguishes the open-file dialog from the save-target dialog.
type Kind int

const (
	KindOpen Kind = iota
	KindSave
)

func (k Kind) String() string {
	if k == KindSave {
		return "save"
	}
	return "open"
}

// Request is one parked pick call. The UI resolves it exactly once, with
// either a chosen path or a cancellation.
type Request struct {
	Kind  Kind
	reply chan result
}

type result struct {
	path string
	err  error
}

// Resolve delivers the chosen path to the waiting gateway operation.
func (r *Request) Resolve(path string) {
	r.reply <- result{path: path}
}

// Cancel reports that the dialog was dismissed without a selection.
func (r *Request) Cancel() {
	r.reply <- result{err: fileio.ErrDialogClosed}
}

// Bridge implements fileio.Picker by round-tripping each pick through the
// UI. The requests channel is buffered so concurrent in-flight operations
// queue up rather than deadlock.
type Bridge struct {
	requests chan *Request
}

func NewBridge() *Bridge {
	return &Bridge{requests: make(chan *Request, 4)}
}

// Requests returns the channel the UI listens on for parked picks.
func (b *Bridge) Requests() <-chan *Request {
	return b.requests
}

func (b *Bridge) PickOpen(ctx context.Context) (string, error) {
	return b.pick(ctx, KindOpen)
}

func (b *Bridge) PickSave(ctx context.Context) (string, error) {
	return b.pick(ctx, KindSave)
}

func (b *Bridge) pick(ctx context.Context, kind Kind) (string, error) {
	req := &Request{Kind: kind, reply: make(chan result, 1)}
	select {
	case b.requests <- req:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	select {
	case res := <-req.reply:
		return res.path, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
