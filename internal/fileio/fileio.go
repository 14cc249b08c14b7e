// Package fileio is the gateway between the session controller and the file
// system. Its three operations (load, pick-then-load, save) each run inside
// one asynchronous unit of work and produce exactly one result; interactive
// target selection is delegated to a Picker so the gateway itself stays
// headless and testable.
package fileio

import (
	"context"
	"errors"
	"os"
	"unicode/utf8"

	"github.com/pennaedit/penna/internal/logging/events"
)

// OpenedFile is the successful outcome of a load: the resolved path and the
// full file content.
type OpenedFile struct {
	Path string
	Text string
}

// Picker resolves a file target interactively. Implementations block until
// the user chooses or cancels; cancellation is reported as ErrDialogClosed,
// a cancelled context as ctx.Err().
type Picker interface {
	PickOpen(ctx context.Context) (string, error)
	PickSave(ctx context.Context) (string, error)
}

// Gateway performs the blocking-capable file operations. It holds no state
// beyond its picker and never retries a failed operation.
type Gateway struct {
	picker Picker
}

func NewGateway(picker Picker) *Gateway {
	return &Gateway{picker: picker}
}

// LoadFile reads the file at path fully into memory as UTF-8 text.
func (g *Gateway) LoadFile(ctx context.Context, path string) (OpenedFile, error) {
	if err := ctx.Err(); err != nil {
		return OpenedFile{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		ioErr := classify(path, err)
		events.File.LoadFailed(path, ioErr)
		return OpenedFile{}, ioErr
	}
	if !utf8.Valid(data) {
		ioErr := &IOError{Kind: KindInvalidText, Path: path, Err: errors.New("file content is not valid UTF-8")}
		events.File.LoadFailed(path, ioErr)
		return OpenedFile{}, ioErr
	}
	events.File.Loaded(path, len(data))
	return OpenedFile{Path: path, Text: string(data)}, nil
}

// PickFile asks the picker for a file to open and loads it. Dismissing the
// picker surfaces ErrDialogClosed.
func (g *Gateway) PickFile(ctx context.Context) (OpenedFile, error) {
	path, err := g.picker.PickOpen(ctx)
	if err != nil {
		return OpenedFile{}, err
	}
	return g.LoadFile(ctx, path)
}

// SaveFile writes text to path when it still names an existing regular file.
// Otherwise (untitled session, or the backing file vanished) the picker
// chooses the target first. Returns the path actually written.
func (g *Gateway) SaveFile(ctx context.Context, path, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !isRegularFile(path) {
		picked, err := g.picker.PickSave(ctx)
		if err != nil {
			return "", err
		}
		path = picked
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		ioErr := classify(path, err)
		events.File.SaveFailed(path, ioErr)
		return "", ioErr
	}
	events.File.Saved(path, len(text))
	return path, nil
}

func isRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
