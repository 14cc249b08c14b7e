// Package state holds the open-dialog list state: the full entry set, the
// fuzzy-filtered view of it, the cursor, and the scroll viewport. Keeping it
// separate from the Bubble Tea model makes filtering and cursor behaviour
// testable without a terminal.
package state

// Entry is one row of the open dialog: a directory or a regular file.
type Entry struct {
	Name string // display name, also the fuzzy-match target
	Path string // full path
	Dir  bool
	Meta string // right-aligned detail column (file size)
}

// List tracks entries plus filter/cursor/viewport state.
type List struct {
	Full           []Entry
	Items          []Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	ViewportOffset int
}

// NewList constructs a list over the given entries.
func NewList(entries []Entry) *List {
	l := &List{}
	l.SetEntries(entries)
	return l
}

// SetEntries replaces the entry set and re-applies the current filter.
func (l *List) SetEntries(entries []Entry) {
	l.Full = append([]Entry(nil), entries...)
	l.applyFilter()
	l.Cursor = 0
	l.ViewportOffset = 0
}

// Current returns the entry under the cursor.
func (l *List) Current() (Entry, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Entry{}, false
	}
	return l.Items[l.Cursor], true
}

// CursorUp moves the cursor one row up, stopping at the top.
func (l *List) CursorUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
	l.syncViewportToCursor()
}

// CursorDown moves the cursor one row down, stopping at the bottom.
func (l *List) CursorDown() {
	if l.Cursor < len(l.Items)-1 {
		l.Cursor++
	}
	l.syncViewportToCursor()
}

// Window returns the slice of items visible in a viewport of the given
// height, keeping the cursor inside it.
func (l *List) Window(height int) []Entry {
	if height <= 0 || len(l.Items) <= height {
		l.ViewportOffset = 0
		return l.Items
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor >= l.ViewportOffset+height {
		l.ViewportOffset = l.Cursor - height + 1
	}
	if l.ViewportOffset+height > len(l.Items) {
		l.ViewportOffset = len(l.Items) - height
	}
	return l.Items[l.ViewportOffset : l.ViewportOffset+height]
}

func (l *List) syncViewportToCursor() {
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
}
