package tablekit

// DataSource is the read side a host toolkit renders from.
// Both *Controller (live tree) and *Snapshot (frozen tree) implement it.
type DataSource interface {
	Title() string
	NumberOfSections() int
	NumberOfRows(section int) int
	TitleForSection(section int) (string, bool)
	TitleForRow(section, row int) string
	DidSelectRow(section, row int)
}

// Host renders a Controller and blocks until the user activates a row or
// goes back. Implementations must register with Controller.OnReload for
// the duration of the pass so a tree replaced from another goroutine is
// redrawn. The hook runs on that goroutine, not the host's.
type Host interface {
	Show(c *Controller, resume Cursor) (Interaction, error)
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(c *Controller, resume Cursor) (Interaction, error)

func (f HostFunc) Show(c *Controller, resume Cursor) (Interaction, error) {
	return f(c, resume)
}

// ViewController is a presentation context: something other controllers
// can be presented from. *Navigator is the root context; a presented
// *Controller is one too.
type ViewController interface {
	PresentViewController(c *Controller)
}

var (
	_ DataSource     = (*Controller)(nil)
	_ DataSource     = (*Snapshot)(nil)
	_ ViewController = (*Controller)(nil)
	_ ViewController = (*Navigator)(nil)
)
