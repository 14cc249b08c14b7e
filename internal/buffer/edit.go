package buffer

import "strings"

// InsertText inserts text at the cursor, replacing the active selection when
// one exists. Text may contain '\n'.
func (b *Buffer) InsertText(text string) {
	if text == "" {
		b.DeleteSelection()
		return
	}
	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.cursor = b.replaceRange(r, text)
	b.sel = selectionState{}
}

// InsertNewline inserts a line break at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics: remove the selection if active,
// otherwise the rune before the cursor, joining lines at column 0.
func (b *Buffer) DeleteBackward() {
	if b.DeleteSelection() {
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col > 0:
		b.cursor = b.replaceRange(Range{Start: Pos{row, col - 1}, End: Pos{row, col}}, "")
	case row > 0:
		start := Pos{Row: row - 1, Col: len(b.lines[row-1])}
		b.cursor = b.replaceRange(Range{Start: start, End: Pos{Row: row}}, "")
	}
}

// DeleteForward applies delete-key semantics: remove the selection if active,
// otherwise the rune after the cursor, joining lines at line end.
func (b *Buffer) DeleteForward() {
	if b.DeleteSelection() {
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col < len(b.lines[row]):
		b.cursor = b.replaceRange(Range{Start: Pos{row, col}, End: Pos{row, col + 1}}, "")
	case row < len(b.lines)-1:
		b.cursor = b.replaceRange(Range{Start: Pos{row, col}, End: Pos{Row: row + 1}}, "")
	}
}

// DeleteSelection removes the active selection and reports whether one
// existed.
func (b *Buffer) DeleteSelection() bool {
	r, ok := b.Selection()
	if !ok {
		return false
	}
	b.cursor = b.replaceRange(r, "")
	b.sel = selectionState{}
	return true
}

// replaceRange substitutes text for the span r and returns the cursor
// position just past the inserted text.
func (b *Buffer) replaceRange(r Range, text string) Pos {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))

	prefix := append([]rune(nil), b.lines[r.Start.Row][:r.Start.Col]...)
	suffix := append([]rune(nil), b.lines[r.End.Row][r.End.Col:]...)

	parts := strings.Split(text, "\n")
	repl := make([][]rune, 0, len(parts))
	if len(parts) == 1 {
		line := append(prefix, []rune(parts[0])...)
		end := Pos{Row: r.Start.Row, Col: len(line)}
		repl = append(repl, append(line, suffix...))
		return b.spliceLines(r, repl, end)
	}
	repl = append(repl, append(prefix, []rune(parts[0])...))
	for _, p := range parts[1 : len(parts)-1] {
		repl = append(repl, []rune(p))
	}
	last := []rune(parts[len(parts)-1])
	end := Pos{Row: r.Start.Row + len(parts) - 1, Col: len(last)}
	repl = append(repl, append(last, suffix...))
	return b.spliceLines(r, repl, end)
}

func (b *Buffer) spliceLines(r Range, repl [][]rune, cursor Pos) Pos {
	next := make([][]rune, 0, len(b.lines)-(r.End.Row-r.Start.Row+1)+len(repl))
	next = append(next, b.lines[:r.Start.Row]...)
	next = append(next, repl...)
	next = append(next, b.lines[r.End.Row+1:]...)
	b.lines = next
	return b.clampPos(cursor)
}
