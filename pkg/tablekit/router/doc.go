// Package router provides stack-based page presentation with explicit data flow.
//
// A Router owns a stack of presented pages. One show function renders
// whatever page is on top and returns a result; one transition function
// looks at that result and pushes, pops or leaves the stack alone. The
// router exits when the stack is empty.
//
// # Basic Usage
//
//	r := router.New[*Page]()
//
//	r.OnShow(func(page *Page, resume any) (any, error) {
//	    cursor, _ := resume.(int)
//	    return showPage(page, cursor), nil
//	})
//
//	r.OnTransition(func(from *Page, result any, stack *router.Stack[*Page]) {
//	    res := result.(PageResult)
//	    switch res.Action {
//	    case ActionOpen:
//	        // Remember where we were, then go forward
//	        stack.Peek().Resume = res.Cursor
//	        stack.Push(res.Child, nil)
//	    case ActionBack:
//	        stack.Pop()
//	    }
//	})
//
//	r.Push(home)
//	r.Run()
//
// # Resume State
//
// Each stack entry carries the resume state (cursor, scroll position) its
// page last reported. When a child is popped the parent is shown again
// with that state, so it can restore position.
//
// Resume is nil the first time a page is shown.
package router
