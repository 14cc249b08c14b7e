package buffer

import "unicode"

// MoveUnit selects the granularity of a cursor motion.
type MoveUnit int

const (
	UnitRune MoveUnit = iota
	UnitWord
	UnitLine
	UnitDoc
)

// MoveDir selects the direction of a cursor motion. Home and End mean line
// start/end for UnitRune and UnitLine, and document start/end for UnitDoc.
type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome
	DirEnd
)

// MoveCursor applies a motion. Extend keeps (or starts) a selection anchored
// at the pre-motion cursor; without Extend any selection is cleared.
func (b *Buffer) MoveCursor(unit MoveUnit, dir MoveDir, extend bool) {
	prev := b.cursor
	next := b.clampPos(b.targetPos(prev, unit, dir))

	if !extend {
		b.cursor = next
		b.sel = selectionState{}
		return
	}
	anchor := prev
	if b.sel.active {
		anchor = b.sel.anchor
	}
	b.cursor = next
	if anchor == next {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{active: true, anchor: anchor, end: next}
}

func (b *Buffer) targetPos(p Pos, unit MoveUnit, dir MoveDir) Pos {
	switch unit {
	case UnitWord:
		return b.wordTarget(p, dir)
	case UnitDoc:
		return b.docTarget(p, dir)
	default:
		return b.runeTarget(p, dir)
	}
}

func (b *Buffer) runeTarget(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1
	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, Col: col - 1}
		}
		if row > 0 {
			return Pos{Row: row - 1, Col: len(b.lines[row-1])}
		}
	case DirRight:
		if col < len(b.lines[row]) {
			return Pos{Row: row, Col: col + 1}
		}
		if row < lastRow {
			return Pos{Row: row + 1}
		}
	case DirUp:
		if row > 0 {
			return Pos{Row: row - 1, Col: col}
		}
	case DirDown:
		if row < lastRow {
			return Pos{Row: row + 1, Col: col}
		}
	case DirHome:
		return Pos{Row: row}
	case DirEnd:
		return Pos{Row: row, Col: len(b.lines[row])}
	}
	return p
}

func (b *Buffer) docTarget(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome, DirUp, DirLeft:
		return Pos{}
	default:
		last := len(b.lines) - 1
		return Pos{Row: last, Col: len(b.lines[last])}
	}
}

// wordTarget skips a run of separators and then a run of word runes,
// matching the usual ctrl+arrow feel. At a line edge it falls back to a
// single rune motion onto the neighbouring line.
func (b *Buffer) wordTarget(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		if p.Col == 0 {
			return b.runeTarget(p, DirLeft)
		}
		col := p.Col
		for col > 0 && !isWordRune(line[col-1]) {
			col--
		}
		for col > 0 && isWordRune(line[col-1]) {
			col--
		}
		return Pos{Row: p.Row, Col: col}
	case DirRight:
		if p.Col >= len(line) {
			return b.runeTarget(p, DirRight)
		}
		col := p.Col
		for col < len(line) && !isWordRune(line[col]) {
			col++
		}
		for col < len(line) && isWordRune(line[col]) {
			col++
		}
		return Pos{Row: p.Row, Col: col}
	default:
		return b.runeTarget(p, dir)
	}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
