package buffer

// Op is a discrete edit operation. The presentation layer translates key
// presses into Op values and hands them to the session controller, which
// applies them verbatim; the buffer is never mutated any other way.
type Op interface {
	apply(b *Buffer)
}

// InsertRune types a single character at the cursor.
type InsertRune struct{ R rune }

// InsertNewline breaks the current line at the cursor.
type InsertNewline struct{}

// InsertText pastes text, which may span multiple lines.
type InsertText struct{ Text string }

// DeleteBackward removes the selection, or the rune before the cursor.
type DeleteBackward struct{}

// DeleteForward removes the selection, or the rune after the cursor.
type DeleteForward struct{}

// Move repositions the cursor; Extend turns the motion into a selection.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

// Select replaces the selection with an explicit range.
type Select struct{ Range Range }

// SelectAll selects the whole document.
type SelectAll struct{}

func (op InsertRune) apply(b *Buffer)  { b.InsertText(string(op.R)) }
func (InsertNewline) apply(b *Buffer)  { b.InsertNewline() }
func (op InsertText) apply(b *Buffer)  { b.InsertText(op.Text) }
func (DeleteBackward) apply(b *Buffer) { b.DeleteBackward() }
func (DeleteForward) apply(b *Buffer)  { b.DeleteForward() }
func (op Move) apply(b *Buffer)        { b.MoveCursor(op.Unit, op.Dir, op.Extend) }
func (op Select) apply(b *Buffer)      { b.setSelection(op.Range) }
func (SelectAll) apply(b *Buffer) {
	last := len(b.lines) - 1
	b.setSelection(Range{End: Pos{Row: last, Col: len(b.lines[last])}})
}

// Apply executes a single edit operation. Nil ops are ignored; no operation
// can fail.
func (b *Buffer) Apply(op Op) {
	if op == nil {
		return
	}
	op.apply(b)
}
