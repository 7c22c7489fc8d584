package tablekit

import "slices"

// Section is an ordered, optionally titled group of items.
// Items can only be appended; display order is insertion order.
type Section struct {
	title string
	items []*Item
}

// NewSection returns an empty section without a title.
func NewSection() *Section {
	return &Section{}
}

// SectionWithTitle returns a section holding items in the given order.
// An empty title means the section is drawn without a title bar.
func SectionWithTitle(title string, items []*Item) *Section {
	s := &Section{
		title: title,
		items: make([]*Item, 0, len(items)),
	}
	for _, item := range items {
		s.AddItem(item)
	}
	return s
}

// Title returns the section title, or "" when it has none.
func (s *Section) Title() string {
	return s.title
}

// HasTitle reports whether the section draws a title bar.
func (s *Section) HasTitle() bool {
	return s.title != ""
}

// SetTitle changes the title. Use "" to remove it.
func (s *Section) SetTitle(title string) {
	s.title = title
}

// AddItem appends item to the end of the section. Nil items are ignored.
func (s *Section) AddItem(item *Item) {
	if item == nil {
		return
	}
	s.items = append(s.items, item)
}

// Items returns the items in display order.
func (s *Section) Items() []*Item {
	return slices.Clone(s.items)
}

// Item returns the item at index i, or nil if i is out of range.
func (s *Section) Item(i int) *Item {
	if i < 0 || i >= len(s.items) {
		return nil
	}
	return s.items[i]
}

// Len returns the number of items.
func (s *Section) Len() int {
	return len(s.items)
}
