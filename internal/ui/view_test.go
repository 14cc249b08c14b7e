package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pennaedit/penna/internal/testutil"
)

func TestStatusPositionIsOneBased(t *testing.T) {
	h := newTestHarness(t, "", nil)
	if !strings.Contains(h.View(), "1:1") {
		t.Fatalf("expected 1:1 at start, view =\n%s", h.View())
	}
	typeText(h, "ab\nc")
	if !strings.Contains(h.View(), "2:2") {
		t.Fatalf("expected 2:2 after edits, view =\n%s", h.View())
	}
}

func TestViewportFollowsCursorDown(t *testing.T) {
	content := ""
	for i := 0; i < 30; i++ {
		content += "line-" + string(rune('a'+i%26)) + "\n"
	}
	path := testutil.WriteFile(t, t.TempDir(), "long.txt", content)
	h := newTestHarness(t, path, nil)
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 8})

	for i := 0; i < 29; i++ {
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	m := h.Model()
	cur := m.ctrl.Buffer().Cursor()
	if cur.Row != 29 {
		t.Fatalf("expected cursor on row 29, got %d", cur.Row)
	}
	_, height := m.contentSize()
	if cur.Row < m.viewportTop || cur.Row >= m.viewportTop+height {
		t.Fatalf("cursor row %d outside viewport [%d,%d)", cur.Row, m.viewportTop, m.viewportTop+height)
	}
}

func TestHorizontalScrollFollowsCursor(t *testing.T) {
	h := newTestHarness(t, "", nil)
	h.Send(tea.WindowSizeMsg{Width: 20, Height: 8})
	typeText(h, strings.Repeat("x", 40))
	m := h.Model()
	cur := m.ctrl.Buffer().Cursor()
	width, _ := m.contentSize()
	if cur.Col < m.hscroll || cur.Col >= m.hscroll+width {
		t.Fatalf("cursor col %d outside horizontal window [%d,%d)", cur.Col, m.hscroll, m.hscroll+width)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyHome})
	if h.Model().hscroll != 0 {
		t.Fatalf("expected hscroll reset at home, got %d", h.Model().hscroll)
	}
}

func TestToolbarListsActions(t *testing.T) {
	h := newTestHarness(t, "", nil)
	view := h.View()
	for _, label := range []string{"New", "Open", "Save", "Quit"} {
		if !strings.Contains(view, label) {
			t.Fatalf("expected toolbar label %q, view =\n%s", label, view)
		}
	}
}

func TestFooterHiddenByDefault(t *testing.T) {
	h := newTestHarness(t, "", nil)
	if strings.Contains(h.View(), "select all") {
		t.Fatalf("expected footer hidden, view =\n%s", h.View())
	}
}

func TestViewLineCountMatchesHeight(t *testing.T) {
	h := newTestHarness(t, "", nil)
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 10})
	lines := strings.Split(h.View(), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d:\n%s", len(lines), h.View())
	}
}
