package tablekit

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

// Controller holds one Contents tree and answers a host's data-source
// queries against it. It runs the selected item's action block when the
// host reports a selection, and forwards presentation requests.
//
// Presentation and selection methods must be called from the goroutine
// that runs the Navigator. SetContents, the data-source methods and
// IsPresented may be called from any goroutine, so a background task can
// swap in a new tree while a host is showing the controller. A tree passed
// to SetContents must not be modified afterwards.
type Controller struct {
	mu       sync.RWMutex
	contents *Contents
	onReload func()

	presented atomic.Bool
	navigator *Navigator
}

// NewController returns a controller with empty contents.
func NewController() *Controller {
	return &Controller{contents: NewContents()}
}

// NewControllerWithContents returns a controller showing contents.
func NewControllerWithContents(contents *Contents) *Controller {
	c := NewController()
	c.SetContents(contents)
	return c
}

// Contents returns the tree currently assigned.
func (c *Controller) Contents() *Contents {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.contents
}

// SetContents replaces the tree wholesale and asks any host showing this
// controller to rebuild from it. Nil installs empty contents.
func (c *Controller) SetContents(contents *Contents) {
	if contents == nil {
		contents = NewContents()
	}

	c.mu.Lock()
	c.contents = contents
	reload := c.onReload
	c.mu.Unlock()

	internal.GetInternalLogger().Debug("Contents replaced",
		"title", contents.Title(),
		"sections", contents.Len(),
		"rows", contents.RowCount())

	if reload != nil {
		reload()
	}
}

// OnReload registers fn to be called after every SetContents, on the
// goroutine that called SetContents. Hosts set it while showing the
// controller and clear it with nil after.
func (c *Controller) OnReload(fn func()) {
	c.mu.Lock()
	c.onReload = fn
	c.mu.Unlock()
}

// Snapshot freezes the current tree for a render pass.
func (c *Controller) Snapshot() *Snapshot {
	return newSnapshot(c.Contents())
}

// Title returns the contents title.
func (c *Controller) Title() string {
	return c.Contents().Title()
}

// NumberOfSections returns the number of sections.
func (c *Controller) NumberOfSections() int {
	return c.Contents().Len()
}

// NumberOfRows returns the item count of section, or 0 if out of range.
func (c *Controller) NumberOfRows(section int) int {
	s := c.Contents().Section(section)
	if s == nil {
		return 0
	}
	return s.Len()
}

// TitleForSection returns the section title and whether it has one.
func (c *Controller) TitleForSection(section int) (string, bool) {
	s := c.Contents().Section(section)
	if s == nil || !s.HasTitle() {
		return "", false
	}
	return s.Title(), true
}

// TitleForRow returns the item title at (section, row), or "".
func (c *Controller) TitleForRow(section, row int) string {
	item := c.Contents().itemAt(section, row)
	if item == nil {
		return ""
	}
	return item.Title()
}

// DidSelectRow runs the action of the item at (section, row) exactly once.
// Coordinates that do not resolve to an item are logged and ignored.
func (c *Controller) DidSelectRow(section, row int) {
	selectItem(c.Contents().itemAt(section, row), section, row)
}

// PresentFrom asks caller to present this controller. Whether the
// presentation succeeds is up to caller; failures are logged.
func (c *Controller) PresentFrom(caller ViewController) {
	if caller == nil {
		internal.GetInternalLogger().Error("PresentFrom called with a nil presentation context",
			"title", c.Title())
		return
	}
	caller.PresentViewController(c)
}

// PresentViewController presents child on top of this controller.
// Only a presented controller is a valid presentation context.
func (c *Controller) PresentViewController(child *Controller) {
	if !c.IsPresented() || c.navigator == nil {
		internal.GetInternalLogger().Error("Cannot present from a controller that is not presented",
			"from", c.Title())
		return
	}
	c.navigator.PresentViewController(child)
}

// Dismiss removes this controller from its navigator when it is on top.
func (c *Controller) Dismiss() {
	if c.navigator == nil {
		return
	}
	c.navigator.Dismiss(c)
}

// IsPresented reports whether a navigator is currently presenting this controller.
func (c *Controller) IsPresented() bool {
	return c.presented.Load()
}

func (c *Controller) attach(n *Navigator) {
	c.navigator = n
	c.presented.Store(true)
}

func (c *Controller) detach() {
	c.navigator = nil
	c.presented.Store(false)
}

func selectItem(item *Item, section, row int) {
	if item == nil {
		internal.GetInternalLogger().Warn("Selection does not resolve to an item",
			"section", section, "row", row)
		return
	}

	internal.GetInternalLogger().Debug("Row selected",
		"section", section, "row", row,
		"title", item.Title(), "type", item.Type().String())

	item.perform()
}
