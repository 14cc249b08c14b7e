package buffer

// Pos points into the document by (row, col) in runes. Both are 0-based;
// the presentation layer converts to 1-based for display.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open span in document coordinates: [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

// ComparePos orders positions in document order.
func ComparePos(a, b Pos) int {
	if a.Row != b.Row {
		if a.Row < b.Row {
			return -1
		}
		return 1
	}
	if a.Col != b.Col {
		if a.Col < b.Col {
			return -1
		}
		return 1
	}
	return 0
}

// NormalizeRange returns r with Start <= End in document order.
func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into the bounds described by rowCount and lineLen so the
// result always satisfies 0 <= Row < rowCount and 0 <= Col <= lineLen(Row).
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}
	row := clampInt(p.Row, 0, rowCount-1)
	maxCol := 0
	if lineLen != nil {
		if n := lineLen(row); n > 0 {
			maxCol = n
		}
	}
	return Pos{Row: row, Col: clampInt(p.Col, 0, maxCol)}
}

// ClampRange clamps both endpoints of r.
func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
