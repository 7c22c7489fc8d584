package tablekit

// LineKind is the kind of a visual line produced by Layout.
type LineKind int

const (
	LineHeader LineKind = iota // Section title
	LineRow                    // Selectable item row
	LineSpacer                 // Gap between two sections
)

// Line is one visual line of a laid-out table.
type Line struct {
	Kind      LineKind
	Text      string
	IndexPath IndexPath // Row address for LineRow; section index only for LineHeader
}

// Layout flattens a data source into display lines: a spacer between
// sections, a header for titled sections, then one line per row.
func Layout(ds DataSource) []Line {
	var lines []Line
	for s := 0; s < ds.NumberOfSections(); s++ {
		if s > 0 {
			lines = append(lines, Line{Kind: LineSpacer, IndexPath: IndexPath{Section: s, Row: -1}})
		}
		if title, ok := ds.TitleForSection(s); ok {
			lines = append(lines, Line{Kind: LineHeader, Text: title, IndexPath: IndexPath{Section: s, Row: -1}})
		}
		for r := 0; r < ds.NumberOfRows(s); r++ {
			lines = append(lines, Line{
				Kind:      LineRow,
				Text:      ds.TitleForRow(s, r),
				IndexPath: IndexPath{Section: s, Row: r},
			})
		}
	}
	return lines
}

// Focus tracks the focused row and scroll offset over a set of lines.
// Headers and spacers are never focused. Both hosts drive their cursor
// through it.
type Focus struct {
	lines   []Line
	rows    []int // line index of every LineRow
	index   int   // position in rows
	offset  int   // first visible line
	visible int   // lines that fit on screen
}

// NewFocus places the cursor on resume's row when it exists, otherwise on
// the first row, and scrolls so it is visible.
func NewFocus(lines []Line, resume Cursor, visible int) *Focus {
	f := &Focus{
		lines:   lines,
		visible: max(visible, 1),
		offset:  resume.Offset,
	}
	for i, l := range lines {
		if l.Kind == LineRow {
			f.rows = append(f.rows, i)
		}
	}
	if !f.JumpTo(resume.IndexPath) {
		f.index = 0
		f.scrollToFocus()
	}
	return f
}

// Lines returns every line.
func (f *Focus) Lines() []Line {
	return f.lines
}

// HasRows reports whether any line is selectable.
func (f *Focus) HasRows() bool {
	return len(f.rows) > 0
}

// Move shifts the cursor by delta rows. Single steps wrap around the ends
// of the list; larger jumps stop at the first or last row.
func (f *Focus) Move(delta int) {
	if len(f.rows) == 0 || delta == 0 {
		return
	}

	next := f.index + delta
	switch {
	case delta == 1 || delta == -1:
		n := len(f.rows)
		next = ((next % n) + n) % n
	case next < 0:
		next = 0
	case next >= len(f.rows):
		next = len(f.rows) - 1
	}

	f.index = next
	f.scrollToFocus()
}

// First focuses the first row.
func (f *Focus) First() {
	f.index = 0
	f.scrollToFocus()
}

// Last focuses the last row.
func (f *Focus) Last() {
	if len(f.rows) == 0 {
		return
	}
	f.index = len(f.rows) - 1
	f.scrollToFocus()
}

// JumpTo focuses the row at path. Returns false if no line has that path.
func (f *Focus) JumpTo(path IndexPath) bool {
	for i, line := range f.rows {
		if f.lines[line].IndexPath == path {
			f.index = i
			f.scrollToFocus()
			return true
		}
	}
	return false
}

// IndexPath returns the focused row, or false when there are no rows.
func (f *Focus) IndexPath() (IndexPath, bool) {
	if len(f.rows) == 0 {
		return IndexPath{}, false
	}
	return f.lines[f.rows[f.index]].IndexPath, true
}

// FocusedLine returns the line index of the focused row, or -1.
func (f *Focus) FocusedLine() int {
	if len(f.rows) == 0 {
		return -1
	}
	return f.rows[f.index]
}

// Offset returns the first visible line.
func (f *Focus) Offset() int {
	return f.offset
}

// Visible returns how many lines fit on screen.
func (f *Focus) Visible() int {
	return f.visible
}

// SetVisible changes the number of lines that fit and re-scrolls.
func (f *Focus) SetVisible(n int) {
	f.visible = max(n, 1)
	f.scrollToFocus()
}

// VisibleLines returns the lines currently on screen.
func (f *Focus) VisibleLines() []Line {
	end := min(f.offset+f.visible, len(f.lines))
	if f.offset >= end {
		return nil
	}
	return f.lines[f.offset:end]
}

// MoreAbove reports whether lines are scrolled off the top.
func (f *Focus) MoreAbove() bool {
	return f.offset > 0
}

// MoreBelow reports whether lines are scrolled off the bottom.
func (f *Focus) MoreBelow() bool {
	return f.offset+f.visible < len(f.lines)
}

// Cursor returns resume state for the current position.
func (f *Focus) Cursor() Cursor {
	path, _ := f.IndexPath()
	return Cursor{IndexPath: path, Offset: f.offset}
}

func (f *Focus) scrollToFocus() {
	target := f.FocusedLine()
	if target >= 0 {
		// Keep the section title in view with its first row.
		top := target
		if top > 0 && f.lines[top-1].Kind == LineHeader {
			top--
		}
		if top < f.offset {
			f.offset = top
		}
		if target >= f.offset+f.visible {
			f.offset = target - f.visible + 1
		}
	}

	maxOffset := max(len(f.lines)-f.visible, 0)
	f.offset = min(max(f.offset, 0), maxOffset)
}
