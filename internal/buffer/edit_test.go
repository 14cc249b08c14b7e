package buffer

import "testing"

func TestInsertRunes(t *testing.T) {
	b := New()
	for _, r := range "hi" {
		b.Apply(InsertRune{R: r})
	}
	if got := b.Text(); got != "hi" {
		t.Fatalf("expected %q, got %q", "hi", got)
	}
	if got := b.Cursor(); got != (Pos{0, 2}) {
		t.Fatalf("expected cursor after text, got %+v", got)
	}
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	b := New()
	b.Load("hello")
	b.Apply(Move{Unit: UnitRune, Dir: DirRight})
	b.Apply(Move{Unit: UnitRune, Dir: DirRight})
	b.Apply(InsertNewline{})
	if got := b.Text(); got != "he\nllo" {
		t.Fatalf("expected %q, got %q", "he\nllo", got)
	}
	if got := b.Cursor(); got != (Pos{1, 0}) {
		t.Fatalf("expected cursor at next line start, got %+v", got)
	}
}

func TestInsertTextMultiline(t *testing.T) {
	b := New()
	b.Load("ad")
	b.Apply(Move{Unit: UnitRune, Dir: DirRight})
	b.Apply(InsertText{Text: "b\nc"})
	if got := b.Text(); got != "ab\ncd" {
		t.Fatalf("expected %q, got %q", "ab\ncd", got)
	}
	if got := b.Cursor(); got != (Pos{1, 1}) {
		t.Fatalf("expected cursor after pasted text, got %+v", got)
	}
}

func TestInsertReplacesSelection(t *testing.T) {
	b := New()
	b.Load("hello world")
	b.Apply(Select{Range: Range{Start: Pos{0, 6}, End: Pos{0, 11}}})
	b.Apply(InsertText{Text: "there"})
	if got := b.Text(); got != "hello there" {
		t.Fatalf("expected %q, got %q", "hello there", got)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared after insert")
	}
}

func TestDeleteBackward(t *testing.T) {
	b := New()
	b.Load("ab")
	b.Apply(Move{Unit: UnitLine, Dir: DirEnd})
	b.Apply(DeleteBackward{})
	if got := b.Text(); got != "a" {
		t.Fatalf("expected %q, got %q", "a", got)
	}
}

func TestDeleteBackwardAtLineStartJoinsLines(t *testing.T) {
	b := New()
	b.Load("ab\ncd")
	b.Apply(Move{Unit: UnitRune, Dir: DirDown})
	b.Apply(Move{Unit: UnitLine, Dir: DirHome})
	b.Apply(DeleteBackward{})
	if got := b.Text(); got != "abcd" {
		t.Fatalf("expected %q, got %q", "abcd", got)
	}
	if got := b.Cursor(); got != (Pos{0, 2}) {
		t.Fatalf("expected cursor at join point, got %+v", got)
	}
}

func TestDeleteBackwardAtOriginIsNoop(t *testing.T) {
	b := New()
	b.Load("ab")
	b.Apply(DeleteBackward{})
	if got := b.Text(); got != "ab" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestDeleteForward(t *testing.T) {
	b := New()
	b.Load("ab")
	b.Apply(DeleteForward{})
	if got := b.Text(); got != "b" {
		t.Fatalf("expected %q, got %q", "b", got)
	}
}

func TestDeleteForwardAtLineEndJoinsLines(t *testing.T) {
	b := New()
	b.Load("ab\ncd")
	b.Apply(Move{Unit: UnitLine, Dir: DirEnd})
	b.Apply(DeleteForward{})
	if got := b.Text(); got != "abcd" {
		t.Fatalf("expected %q, got %q", "abcd", got)
	}
}

func TestDeleteForwardAtDocEndIsNoop(t *testing.T) {
	b := New()
	b.Load("ab")
	b.Apply(Move{Unit: UnitDoc, Dir: DirEnd})
	b.Apply(DeleteForward{})
	if got := b.Text(); got != "ab" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestDeleteRemovesSelectionFirst(t *testing.T) {
	b := New()
	b.Load("one two three")
	b.Apply(Select{Range: Range{Start: Pos{0, 3}, End: Pos{0, 8}}})
	b.Apply(DeleteBackward{})
	if got := b.Text(); got != "onethree" {
		t.Fatalf("expected %q, got %q", "onethree", got)
	}
	if got := b.Cursor(); got != (Pos{0, 3}) {
		t.Fatalf("expected cursor at deletion point, got %+v", got)
	}
}

func TestSelectAllThenType(t *testing.T) {
	b := New()
	b.Load("old\ncontent")
	b.Apply(SelectAll{})
	b.Apply(InsertRune{R: 'x'})
	if got := b.Text(); got != "x" {
		t.Fatalf("expected %q, got %q", "x", got)
	}
}
