package tablekit

import (
	"fmt"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/router"
)

// Navigator is the root presentation context. It keeps the stack of
// presented controllers and shows the top one on its Host until the stack
// is empty.
//
//	nav := tablekit.NewNavigator(host)
//	settings.PresentFrom(nav)
//	err := nav.Run()
//
// Action blocks run on the goroutine calling Run, between two show passes.
// An action may present another controller from the current one, dismiss
// the current one, or replace its contents.
type Navigator struct {
	host   Host
	router *router.Router[*Controller]
}

// NewNavigator creates a Navigator that presents on host.
func NewNavigator(host Host) *Navigator {
	n := &Navigator{
		host:   host,
		router: router.New[*Controller](),
	}
	n.router.OnShow(n.show).OnTransition(n.transition)
	return n
}

// PresentViewController pushes c on top of the stack.
// A controller that is already presented is left where it is.
func (n *Navigator) PresentViewController(c *Controller) {
	if c == nil {
		internal.GetInternalLogger().Error("Cannot present a nil controller")
		return
	}
	if c.IsPresented() {
		internal.GetInternalLogger().Warn("Controller is already presented", "title", c.Title())
		return
	}

	c.attach(n)
	n.router.Push(c)

	internal.GetInternalLogger().Debug("Presenting controller",
		"title", c.Title(), "depth", n.Depth())
}

// Dismiss pops c if it is the top controller.
func (n *Navigator) Dismiss(c *Controller) {
	if c == nil {
		internal.GetInternalLogger().Error("Cannot dismiss a nil controller")
		return
	}

	stack := n.router.Stack()
	top := stack.Peek()
	if top == nil || top.Page != c {
		internal.GetInternalLogger().Warn("Only the top controller can be dismissed", "title", c.Title())
		return
	}

	stack.Pop()
	c.detach()

	internal.GetInternalLogger().Debug("Dismissed controller",
		"title", c.Title(), "depth", stack.Len())
}

// Depth returns the number of presented controllers.
func (n *Navigator) Depth() int {
	return n.router.Stack().Len()
}

// Top returns the controller being shown, or nil.
func (n *Navigator) Top() *Controller {
	top := n.router.Stack().Peek()
	if top == nil {
		return nil
	}
	return top.Page
}

// Run shows presented controllers until none are left.
// A host reporting ErrCancelled ends the run without error and dismisses
// everything still presented.
func (n *Navigator) Run() error {
	err := n.router.Run()
	if err == nil {
		return nil
	}

	if IsCancelled(err) {
		internal.GetInternalLogger().Debug("Presentation cancelled", "depth", n.Depth())
		n.dismissAll()
		return nil
	}

	return fmt.Errorf("navigator: %w", err)
}

func (n *Navigator) show(c *Controller, resume any) (any, error) {
	if n.host == nil {
		return nil, ErrNotPresentable
	}

	cursor, _ := resume.(Cursor)
	return n.host.Show(c, cursor)
}

func (n *Navigator) transition(from *Controller, result any, stack *router.Stack[*Controller]) {
	in, ok := result.(Interaction)
	if !ok {
		internal.GetInternalLogger().Error("Host returned an unexpected result", "result", fmt.Sprintf("%T", result))
		n.Dismiss(from)
		return
	}

	switch in.Kind {
	case InteractionSelected:
		if top := stack.Peek(); top != nil && top.Page == from {
			top.Resume = in.Cursor
		}

		if in.Snapshot != nil {
			in.Snapshot.DidSelectRow(in.IndexPath.Section, in.IndexPath.Row)
		} else {
			from.DidSelectRow(in.IndexPath.Section, in.IndexPath.Row)
		}

	case InteractionBack:
		n.Dismiss(from)
	}
}

func (n *Navigator) dismissAll() {
	stack := n.router.Stack()
	for entry := stack.Pop(); entry != nil; entry = stack.Pop() {
		entry.Page.detach()
	}
}
