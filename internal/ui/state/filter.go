package state

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query and cursor position within it, then
// re-ranks the visible items.
func (l *List) SetFilter(query string, cursor int) {
	l.Filter = query
	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	l.FilterCursor = cursor
	l.applyFilter()
	l.Cursor = 0
	l.ViewportOffset = 0
}

// AppendFilter adds text at the filter cursor.
func (l *List) AppendFilter(text string) {
	runes := []rune(l.Filter)
	at := l.FilterCursor
	next := string(runes[:at]) + text + string(runes[at:])
	l.SetFilter(next, at+len([]rune(text)))
}

// BackspaceFilter removes the rune before the filter cursor and reports
// whether anything changed.
func (l *List) BackspaceFilter() bool {
	if l.FilterCursor == 0 {
		return false
	}
	runes := []rune(l.Filter)
	at := l.FilterCursor
	next := string(runes[:at-1]) + string(runes[at:])
	l.SetFilter(next, at-1)
	return true
}

// ClearFilter resets the query and reports whether anything changed.
func (l *List) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("", 0)
	return true
}

// applyFilter ranks Full against the trimmed query. Directories keep their
// position relative to files of equal rank; an empty query shows everything.
func (l *List) applyFilter() {
	query := strings.TrimSpace(l.Filter)
	if query == "" {
		l.Items = append([]Entry(nil), l.Full...)
		return
	}
	type scored struct {
		entry Entry
		rank  int
		order int
	}
	matches := make([]scored, 0, len(l.Full))
	for i, e := range l.Full {
		rank := fuzzy.RankMatchNormalizedFold(query, e.Name)
		if rank < 0 {
			continue
		}
		matches = append(matches, scored{entry: e, rank: rank, order: i})
	}
	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].rank != matches[b].rank {
			return matches[a].rank < matches[b].rank
		}
		return matches[a].order < matches[b].order
	})
	l.Items = make([]Entry, 0, len(matches))
	for _, m := range matches {
		l.Items = append(l.Items, m.entry)
	}
}
