package fileio

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrDialogClosed reports that the user dismissed a picker without choosing
// a target. It is informational rather than a fault and is matched with
// errors.Is.
var ErrDialogClosed = errors.New("dialog closed")

// Kind is a coarse classification of an I/O failure, sufficient for the
// status bar; the wrapped error keeps the OS-level detail for the log.
type Kind int

const (
	KindOther Kind = iota
	KindNotFound
	KindPermission
	KindInvalidText
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	case KindInvalidText:
		return "not valid text"
	default:
		return "I/O error"
	}
}

// IOError wraps a failed read or write with its classification.
type IOError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return e.Kind.String()
}

func (e *IOError) Unwrap() error { return e.Err }

// classify maps an os-level error onto the editor's error taxonomy.
func classify(path string, err error) *IOError {
	kind := KindOther
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	}
	return &IOError{Kind: kind, Path: path, Err: err}
}
