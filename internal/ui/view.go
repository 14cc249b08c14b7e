package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/pennaedit/penna/internal/buffer"
	"github.com/pennaedit/penna/internal/format/table"
)

// contentSize returns the editor area dimensions, leaving room for the
// toolbar, status bar and optional footer. Defaults apply before the first
// WindowSizeMsg arrives.
func (m *Model) contentSize() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	h -= 2
	if m.showFooter {
		h--
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// ensureCursorVisible scrolls the viewport so the buffer cursor stays on
// screen after edits, motions and resizes.
func (m *Model) ensureCursorVisible() {
	w, h := m.contentSize()
	cur := m.ctrl.Buffer().Cursor()
	if cur.Row < m.viewportTop {
		m.viewportTop = cur.Row
	}
	if cur.Row >= m.viewportTop+h {
		m.viewportTop = cur.Row - h + 1
	}
	if m.viewportTop < 0 {
		m.viewportTop = 0
	}
	if cur.Col < m.hscroll {
		m.hscroll = cur.Col
	}
	if cur.Col >= m.hscroll+w {
		m.hscroll = cur.Col - w + 1
	}
	if m.hscroll < 0 {
		m.hscroll = 0
	}
}

func (m *Model) View() string {
	w, h := m.contentSize()
	var b strings.Builder
	b.WriteString(truncate.String(m.toolbarView(), uint(w)))
	b.WriteByte('\n')
	if m.dialog != nil {
		b.WriteString(m.dialogView(w, h))
	} else {
		b.WriteString(m.editorView(w, h))
	}
	b.WriteByte('\n')
	b.WriteString(m.statusView(w))
	if m.showFooter {
		b.WriteByte('\n')
		b.WriteString(truncate.String(m.footerView(), uint(w)))
	}
	return b.String()
}

func (m *Model) toolbarView() string {
	actions := []struct{ key, label string }{
		{"^N", "New"},
		{"^O", "Open"},
		{"^S", "Save"},
		{"^Q", "Quit"},
	}
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = styles.ToolbarKey.Render(a.key) + " " + styles.Toolbar.Render(a.label)
	}
	return strings.Join(parts, "  ")
}

func (m *Model) editorView(w, h int) string {
	buf := m.ctrl.Buffer()
	rows := make([]string, h)
	for i := 0; i < h; i++ {
		row := m.viewportTop + i
		if row >= buf.LineCount() {
			rows[i] = ""
			continue
		}
		rows[i] = m.renderLine(buf, row, w)
	}
	return strings.Join(rows, "\n")
}

// renderLine draws one buffer row, inverting the cursor cell and
// highlighting the selection. The cursor can rest one past the last rune,
// which renders as a highlighted space.
func (m *Model) renderLine(buf *buffer.Buffer, row, w int) string {
	line := buf.Line(row)
	cur := buf.Cursor()
	sel, hasSel := buf.Selection()
	var b strings.Builder
	for col := m.hscroll; col < m.hscroll+w && col <= len(line); col++ {
		r := ' '
		if col < len(line) {
			r = line[col]
			if r == '\t' {
				r = ' '
			}
		}
		p := buffer.Pos{Row: row, Col: col}
		switch {
		case p == cur:
			b.WriteString(styles.CursorCell.Render(string(r)))
		case col == len(line):
		case hasSel && inSelection(sel, p):
			b.WriteString(styles.SelectedText.Render(string(r)))
		default:
			b.WriteString(styles.Text.Render(string(r)))
		}
	}
	return b.String()
}

func inSelection(sel buffer.Range, p buffer.Pos) bool {
	return buffer.ComparePos(sel.Start, p) <= 0 && buffer.ComparePos(p, sel.End) < 0
}

// statusView renders the bottom bar: current path or error on the left,
// 1-based cursor position on the right.
func (m *Model) statusView(w int) string {
	cur := m.ctrl.Buffer().Cursor()
	pos := styles.Position.Render(fmt.Sprintf("%d:%d", cur.Row+1, cur.Col+1))

	var left string
	switch {
	case m.ctrl.Err() != nil:
		left = styles.StatusError.Render(m.ctrl.Err().Error())
	case m.infoMsg != "":
		left = styles.Info.Render(m.infoMsg)
	case m.ctrl.Untitled():
		left = styles.StatusPath.Render("New file")
	default:
		left = styles.StatusPath.Render(m.ctrl.Path())
	}
	if m.ctrl.Loading() {
		left += " " + styles.StatusLoading.Render("working…")
	}

	posWidth := ansi.StringWidth(pos)
	avail := w - posWidth - 1
	if avail < 0 {
		avail = 0
	}
	if ansi.StringWidth(left) > avail {
		left = truncate.StringWithTail(left, uint(avail), "…")
	}
	gap := w - ansi.StringWidth(left) - posWidth
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + pos
}

func (m *Model) footerView() string {
	return styles.Footer.Render("ctrl+a select all · ctrl+c copy · ctrl+v paste · shift+arrows select")
}

// dialogView replaces the editor area while a pick is on screen.
func (m *Model) dialogView(w, h int) string {
	ds := m.dialog
	rows := make([]string, 0, h)
	if ds.mode == dialogSaveForm {
		rows = append(rows, styles.DialogTitle.Render("Save file"))
		if h > 2 {
			rows = append(rows, "")
		}
		rows = append(rows, ds.input.View())
	} else {
		rows = append(rows, styles.DialogTitle.Render("Open file: "+ds.dir))
		filter := styles.FilterPrompt.Render("> ") + styles.Filter.Render(ds.list.Filter) + ds.filterCursor.View()
		rows = append(rows, filter)
		rows = append(rows, m.browseRows(h-len(rows))...)
	}
	for len(rows) < h {
		rows = append(rows, "")
	}
	rows = rows[:h]
	for i, row := range rows {
		rows[i] = truncate.String(row, uint(w))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) browseRows(h int) []string {
	ds := m.dialog
	if h <= 0 {
		return nil
	}
	window := ds.list.Window(h)
	if len(window) == 0 {
		return []string{styles.DialogMeta.Render("no matches")}
	}
	cursorIdx := ds.list.Cursor - ds.list.ViewportOffset
	rows := make([][]string, len(window))
	for i, e := range window {
		name, meta := e.Name, e.Meta
		if i != cursorIdx {
			if e.Dir {
				name = styles.DialogDir.Render(name)
			} else {
				name = styles.DialogItem.Render(name)
			}
			if meta != "" {
				meta = styles.DialogMeta.Render(meta)
			}
		}
		rows[i] = []string{name, meta}
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
	for i, line := range lines {
		if i == cursorIdx {
			lines[i] = styles.DialogCursor.Render("> " + line)
		} else {
			lines[i] = "  " + line
		}
	}
	return lines
}
