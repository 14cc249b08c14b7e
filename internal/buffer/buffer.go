// Package buffer holds the editable document state: text lines, a cursor,
// and an optional selection. Edits arrive as discrete Op values; operations
// that would land outside the document are clamped rather than rejected, so
// no edit can fail or leave the cursor at an invalid location.
package buffer

import "strings"

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is pure in-memory state; it never touches the file system.
type Buffer struct {
	lines  [][]rune
	cursor Pos
	sel    selectionState
}

// New returns an empty buffer with the cursor at (0,0).
func New() *Buffer {
	return &Buffer{lines: splitLines("")}
}

// Load replaces the whole content with text and resets cursor and selection.
// Any string is valid, including the empty one.
func (b *Buffer) Load(text string) {
	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.sel = selectionState{}
}

// Text returns the full content, lines joined by '\n'. Load followed by Text
// round-trips exactly.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Cursor returns the current cursor position, 0-based.
func (b *Buffer) Cursor() Pos { return b.cursor }

// LineCount reports the number of logical lines; never less than 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the runes of the given row, or nil when out of range.
func (b *Buffer) Line(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

// Selection returns the active selection normalized to document order.
// Empty selections report ok=false.
func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectedText returns the text covered by the active selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return b.textInRange(r)
}

func (b *Buffer) setSelection(r Range) {
	clamped := NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if clamped.IsEmpty() {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	b.cursor = clamped.End
}

func (b *Buffer) textInRange(r Range) string {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.Start.Row == r.End.Row {
		return string(b.lines[r.Start.Row][r.Start.Col:r.End.Col])
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[r.Start.Row][r.Start.Col:]))
	for row := r.Start.Row + 1; row < r.End.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[row]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[r.End.Row][:r.End.Col]))
	return sb.String()
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
