package tablekit

// Snapshot is a frozen copy of a Contents tree taken for one render pass.
// Items are shared (they are immutable); the section and item lists are
// copied, so appends to the live tree do not show up here.
type Snapshot struct {
	title    string
	sections []sectionSnapshot
}

type sectionSnapshot struct {
	title string
	items []*Item
}

func newSnapshot(c *Contents) *Snapshot {
	snap := &Snapshot{
		title:    c.Title(),
		sections: make([]sectionSnapshot, 0, c.Len()),
	}
	for _, s := range c.sections {
		snap.sections = append(snap.sections, sectionSnapshot{
			title: s.Title(),
			items: s.Items(),
		})
	}
	return snap
}

// Title returns the contents title at snapshot time.
func (s *Snapshot) Title() string {
	return s.title
}

// NumberOfSections returns the number of sections.
func (s *Snapshot) NumberOfSections() int {
	return len(s.sections)
}

// NumberOfRows returns the item count of section, or 0 if out of range.
func (s *Snapshot) NumberOfRows(section int) int {
	if section < 0 || section >= len(s.sections) {
		return 0
	}
	return len(s.sections[section].items)
}

// TitleForSection returns the section title and whether it has one.
func (s *Snapshot) TitleForSection(section int) (string, bool) {
	if section < 0 || section >= len(s.sections) {
		return "", false
	}
	title := s.sections[section].title
	return title, title != ""
}

// TitleForRow returns the item title at (section, row), or "".
func (s *Snapshot) TitleForRow(section, row int) string {
	item := s.itemAt(section, row)
	if item == nil {
		return ""
	}
	return item.Title()
}

// DidSelectRow runs the action of the item that was at (section, row)
// when the snapshot was taken.
func (s *Snapshot) DidSelectRow(section, row int) {
	selectItem(s.itemAt(section, row), section, row)
}

// RowCount returns the number of rows across all sections.
func (s *Snapshot) RowCount() int {
	total := 0
	for _, sec := range s.sections {
		total += len(sec.items)
	}
	return total
}

// IndexPaths lists every row in display order.
func (s *Snapshot) IndexPaths() []IndexPath {
	paths := make([]IndexPath, 0, s.RowCount())
	for i, sec := range s.sections {
		for j := range sec.items {
			paths = append(paths, IndexPath{Section: i, Row: j})
		}
	}
	return paths
}

func (s *Snapshot) itemAt(section, row int) *Item {
	if section < 0 || section >= len(s.sections) {
		return nil
	}
	items := s.sections[section].items
	if row < 0 || row >= len(items) {
		return nil
	}
	return items[row]
}
