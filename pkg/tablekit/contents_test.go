package tablekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentsEmptyIsValid(t *testing.T) {
	c := NewContents()

	assert.Equal(t, "", c.Title())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.RowCount())
	assert.Nil(t, c.Section(0))
}

func TestContentsAddSectionKeepsOrder(t *testing.T) {
	c := NewContentsWithTitle("Settings")

	first := SectionWithTitle("Account", nil)
	second := NewSection()
	third := SectionWithTitle("About", nil)

	c.AddSection(first)
	c.AddSection(nil)
	c.AddSection(second)
	c.AddSection(third)

	require.Equal(t, 3, c.Len())
	assert.Same(t, first, c.Section(0))
	assert.Same(t, second, c.Section(1))
	assert.Same(t, third, c.Section(2))
	assert.Equal(t, []*Section{first, second, third}, c.Sections())
}

func TestContentsInterleavedAppends(t *testing.T) {
	c := NewContents()
	a := NewSection()
	b := NewSection()
	c.AddSection(a)
	c.AddSection(b)

	// Appending to a section after it joined the contents is still visible.
	a.AddItem(Action("a0", noop))
	b.AddItem(Action("b0", noop))
	a.AddItem(Action("a1", noop))

	assert.Equal(t, 3, c.RowCount())
	assert.Equal(t, "a1", c.Section(0).Item(1).Title())
	assert.Equal(t, "b0", c.Section(1).Item(0).Title())
}

func TestContentsSetTitle(t *testing.T) {
	c := NewContentsWithTitle("Before")
	c.SetTitle("After")
	assert.Equal(t, "After", c.Title())
}
