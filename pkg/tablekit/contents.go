package tablekit

import "slices"

// Contents is the whole screen: an optional title and an ordered list of
// sections. Sections can only be appended.
type Contents struct {
	title    string
	sections []*Section
}

// NewContents returns empty, untitled contents.
func NewContents() *Contents {
	return &Contents{}
}

// NewContentsWithTitle returns empty contents with a page title.
func NewContentsWithTitle(title string) *Contents {
	return &Contents{title: title}
}

// Title returns the page title.
func (c *Contents) Title() string {
	return c.title
}

// SetTitle changes the page title. It has no structural effect.
func (c *Contents) SetTitle(title string) {
	c.title = title
}

// AddSection appends section to the end. Nil sections are ignored.
func (c *Contents) AddSection(section *Section) {
	if section == nil {
		return
	}
	c.sections = append(c.sections, section)
}

// Sections returns the sections in display order.
func (c *Contents) Sections() []*Section {
	return slices.Clone(c.sections)
}

// Section returns the section at index i, or nil if i is out of range.
func (c *Contents) Section(i int) *Section {
	if i < 0 || i >= len(c.sections) {
		return nil
	}
	return c.sections[i]
}

// Len returns the number of sections.
func (c *Contents) Len() int {
	return len(c.sections)
}

// RowCount returns the number of rows across all sections.
func (c *Contents) RowCount() int {
	total := 0
	for _, s := range c.sections {
		total += s.Len()
	}
	return total
}

func (c *Contents) itemAt(section, row int) *Item {
	s := c.Section(section)
	if s == nil {
		return nil
	}
	return s.Item(row)
}
