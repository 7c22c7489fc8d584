package tablekit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type showStep func(c *Controller, resume Cursor) (Interaction, error)

// scriptedHost plays one step per show pass and records what it was shown.
type scriptedHost struct {
	t       *testing.T
	steps   []showStep
	shown   []string
	resumes []Cursor
}

func (h *scriptedHost) Show(c *Controller, resume Cursor) (Interaction, error) {
	h.shown = append(h.shown, c.Title())
	h.resumes = append(h.resumes, resume)

	if len(h.steps) == 0 {
		h.t.Fatalf("unexpected show pass for %q", c.Title())
	}
	step := h.steps[0]
	h.steps = h.steps[1:]
	return step(c, resume)
}

func selectRow(section, row int, cursor Cursor) showStep {
	return func(c *Controller, _ Cursor) (Interaction, error) {
		return Selected(c.Snapshot(), IndexPath{Section: section, Row: row}, cursor), nil
	}
}

func goBack() showStep {
	return func(_ *Controller, resume Cursor) (Interaction, error) {
		return Back(resume), nil
	}
}

func TestNavigatorSettingsScenario(t *testing.T) {
	privacy, logout := 0, 0

	contents := NewContentsWithTitle("Settings")
	contents.AddSection(SectionWithTitle("", []*Item{
		Action("Privacy", func() { privacy++ }),
		Action("Logout", func() { logout++ }),
	}))
	controller := NewController()
	controller.SetContents(contents)

	host := &scriptedHost{t: t, steps: []showStep{
		selectRow(0, 1, Cursor{IndexPath: IndexPath{Section: 0, Row: 1}}),
		goBack(),
	}}
	nav := NewNavigator(host)

	controller.PresentFrom(nav)
	assert.True(t, controller.IsPresented())
	assert.Same(t, controller, nav.Top())

	require.NoError(t, nav.Run())

	assert.Equal(t, 1, logout)
	assert.Equal(t, 0, privacy)
	assert.Equal(t, []string{"Settings", "Settings"}, host.shown)
	assert.False(t, controller.IsPresented())
	assert.Equal(t, 0, nav.Depth())
}

func TestNavigatorPresentsChildAndRestoresCursor(t *testing.T) {
	root := NewController()
	child := NewControllerWithContents(NewContentsWithTitle("Privacy"))

	rootContents := NewContentsWithTitle("Settings")
	rootContents.AddSection(SectionWithTitle("Account", []*Item{
		Action("Profile", noop),
		Action("Privacy", func() { child.PresentFrom(root) }),
	}))
	root.SetContents(rootContents)

	cursor := Cursor{IndexPath: IndexPath{Section: 0, Row: 1}, Offset: 2}
	host := &scriptedHost{t: t, steps: []showStep{
		selectRow(0, 1, cursor),
		func(c *Controller, resume Cursor) (Interaction, error) {
			assert.Same(t, child, c)
			assert.Equal(t, Cursor{}, resume, "a fresh screen has no resume state")
			assert.True(t, child.IsPresented())
			return Back(resume), nil
		},
		goBack(),
	}}
	nav := NewNavigator(host)
	root.PresentFrom(nav)

	require.NoError(t, nav.Run())

	assert.Equal(t, []string{"Settings", "Privacy", "Settings"}, host.shown)
	assert.Equal(t, cursor, host.resumes[2])
	assert.False(t, child.IsPresented())
	assert.False(t, root.IsPresented())
}

func TestNavigatorRunWithNothingPresented(t *testing.T) {
	host := &scriptedHost{t: t}
	nav := NewNavigator(host)

	require.NoError(t, nav.Run())
	assert.Empty(t, host.shown)
}

func TestNavigatorCancelledEndsRun(t *testing.T) {
	root := NewControllerWithContents(NewContentsWithTitle("Root"))
	child := NewControllerWithContents(NewContentsWithTitle("Child"))

	host := &scriptedHost{t: t, steps: []showStep{
		func(*Controller, Cursor) (Interaction, error) {
			return Interaction{}, ErrCancelled
		},
	}}
	nav := NewNavigator(host)
	root.PresentFrom(nav)
	child.PresentFrom(root)
	require.Equal(t, 2, nav.Depth())

	require.NoError(t, nav.Run())

	assert.Equal(t, []string{"Child"}, host.shown)
	assert.Equal(t, 0, nav.Depth())
	assert.False(t, root.IsPresented())
	assert.False(t, child.IsPresented())
}

func TestNavigatorHostErrorIsReturned(t *testing.T) {
	boom := NewInfrastructureError("render", errors.New("no renderer"))

	host := &scriptedHost{t: t, steps: []showStep{
		func(*Controller, Cursor) (Interaction, error) {
			return Interaction{}, boom
		},
	}}
	nav := NewNavigator(host)
	NewController().PresentFrom(nav)

	err := nav.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, IsInfrastructureError(err))
	assert.False(t, IsCancelled(err))
}

func TestNavigatorWithoutHost(t *testing.T) {
	nav := NewNavigator(nil)
	NewController().PresentFrom(nav)

	err := nav.Run()
	assert.ErrorIs(t, err, ErrNotPresentable)
}

func TestNavigatorIgnoresDoublePresentation(t *testing.T) {
	nav := NewNavigator(&scriptedHost{t: t})
	c := NewController()

	c.PresentFrom(nav)
	c.PresentFrom(nav)
	nav.PresentViewController(nil)

	assert.Equal(t, 1, nav.Depth())
}

func TestActionCanDismissItsController(t *testing.T) {
	c := NewController()
	contents := NewContentsWithTitle("Confirm")
	contents.AddSection(SectionWithTitle("", []*Item{
		Action("Done", func() { c.Dismiss() }),
	}))
	c.SetContents(contents)

	host := &scriptedHost{t: t, steps: []showStep{selectRow(0, 0, Cursor{})}}
	nav := NewNavigator(host)
	c.PresentFrom(nav)

	require.NoError(t, nav.Run())
	assert.Equal(t, []string{"Confirm"}, host.shown)
	assert.False(t, c.IsPresented())
}

func TestDismissOnlyPopsTop(t *testing.T) {
	nav := NewNavigator(&scriptedHost{t: t})
	root := NewController()
	child := NewController()

	root.PresentFrom(nav)
	child.PresentFrom(root)

	root.Dismiss()
	assert.Equal(t, 2, nav.Depth())

	child.Dismiss()
	assert.Equal(t, 1, nav.Depth())
	assert.Same(t, root, nav.Top())
}

func TestHostFuncAdapter(t *testing.T) {
	calls := 0
	c := NewController()
	c.SetContents(func() *Contents {
		contents := NewContents()
		contents.AddSection(SectionWithTitle("", []*Item{Action("Only", func() { calls++ })}))
		return contents
	}())

	passes := 0
	nav := NewNavigator(HostFunc(func(c *Controller, resume Cursor) (Interaction, error) {
		passes++
		if passes == 1 {
			return Selected(nil, IndexPath{}, resume), nil
		}
		return Back(resume), nil
	}))
	c.PresentFrom(nav)

	require.NoError(t, nav.Run())
	assert.Equal(t, 1, calls, "a nil snapshot resolves against the live tree")
}

func TestDismissNilIsIgnored(t *testing.T) {
	nav := NewNavigator(nil)
	assert.NotPanics(t, func() { nav.Dismiss(nil) })

	c := NewController()
	c.PresentFrom(nav)
	nav.Dismiss(nil)
	assert.Equal(t, 1, nav.Depth())
}

func TestBackgroundSetContentsReloadsShowingHost(t *testing.T) {
	c := NewControllerWithContents(NewContentsWithTitle("Loading"))

	picked := ""
	loaded := NewContentsWithTitle("Loaded")
	loaded.AddSection(SectionWithTitle("", []*Item{
		Action("Ready", func() { picked = "Ready" }),
	}))

	host := &scriptedHost{t: t, steps: []showStep{
		func(c *Controller, _ Cursor) (Interaction, error) {
			reloaded := make(chan struct{}, 1)
			c.OnReload(func() { reloaded <- struct{}{} })
			defer c.OnReload(nil)

			require.Equal(t, 0, c.Snapshot().RowCount())
			go c.SetContents(loaded)

			select {
			case <-reloaded:
			case <-time.After(5 * time.Second):
				t.Fatal("contents were not reloaded while showing")
			}

			snap := c.Snapshot()
			require.Equal(t, 1, snap.RowCount())
			return Selected(snap, IndexPath{}, Cursor{}), nil
		},
		goBack(),
	}}
	nav := NewNavigator(host)
	c.PresentFrom(nav)

	require.NoError(t, nav.Run())
	assert.Equal(t, "Ready", picked)
	assert.Equal(t, []string{"Loading", "Loaded"}, host.shown)
}
