package tablekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotMirrorsContents(t *testing.T) {
	c := NewControllerWithContents(accountContents(map[string]int{}))
	snap := c.Snapshot()

	assert.Equal(t, c.Title(), snap.Title())
	assert.Equal(t, c.NumberOfSections(), snap.NumberOfSections())
	for s := 0; s < c.NumberOfSections(); s++ {
		assert.Equal(t, c.NumberOfRows(s), snap.NumberOfRows(s))

		ct, cok := c.TitleForSection(s)
		st, sok := snap.TitleForSection(s)
		assert.Equal(t, ct, st)
		assert.Equal(t, cok, sok)

		for r := 0; r < c.NumberOfRows(s); r++ {
			assert.Equal(t, c.TitleForRow(s, r), snap.TitleForRow(s, r))
		}
	}

	assert.Equal(t, []IndexPath{{0, 0}, {0, 1}, {1, 0}}, snap.IndexPaths())
	assert.Equal(t, 3, snap.RowCount())
}

func TestSnapshotIgnoresLaterAppends(t *testing.T) {
	contents := NewContents()
	section := NewSection()
	section.AddItem(Action("first", noop))
	contents.AddSection(section)

	c := NewControllerWithContents(contents)
	snap := c.Snapshot()

	section.AddItem(Action("second", noop))
	contents.AddSection(SectionWithTitle("late", nil))

	assert.Equal(t, 1, snap.NumberOfSections())
	assert.Equal(t, 1, snap.NumberOfRows(0))
	assert.Equal(t, 2, c.NumberOfRows(0))
}

func TestSnapshotSelectionResolvesAgainstCapturedTree(t *testing.T) {
	oldCalls, newCalls := 0, 0

	t1 := NewContents()
	t1.AddSection(SectionWithTitle("", []*Item{Action("old", func() { oldCalls++ })}))
	c := NewControllerWithContents(t1)

	snap := c.Snapshot()

	t2 := NewContents()
	t2.AddSection(SectionWithTitle("", []*Item{Action("new", func() { newCalls++ })}))
	c.SetContents(t2)

	snap.DidSelectRow(0, 0)
	assert.Equal(t, 1, oldCalls)
	assert.Equal(t, 0, newCalls)

	c.DidSelectRow(0, 0)
	assert.Equal(t, 1, newCalls)
}

func TestSnapshotOutOfRange(t *testing.T) {
	snap := NewController().Snapshot()

	assert.Equal(t, 0, snap.NumberOfRows(3))
	_, ok := snap.TitleForSection(-1)
	assert.False(t, ok)
	assert.Equal(t, "", snap.TitleForRow(0, 0))
	assert.Empty(t, snap.IndexPaths())
	assert.NotPanics(t, func() { snap.DidSelectRow(0, 0) })
}
