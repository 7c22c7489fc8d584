package router

import "fmt"

// ShowFunc shows a page and blocks until the user leaves it.
// resume is whatever the page's last result stored on its stack entry.
type ShowFunc[T any] func(page T, resume any) (result any, err error)

// TransitionFunc is called after each show pass with the page that was
// shown and its result. It drives navigation by mutating the stack:
// push to go forward, pop to go back, leave it alone to show the same
// page again. The router exits once the stack is empty.
type TransitionFunc[T any] func(from T, result any, stack *Stack[T])

// Router runs pages from a stack with explicit data flow.
// A single show function renders whatever page is on top, and a single
// transition function handles all routing logic in one place.
type Router[T any] struct {
	show       ShowFunc[T]
	transition TransitionFunc[T]
	stack      *Stack[T]
}

// New creates a new Router with an empty stack.
func New[T any]() *Router[T] {
	return &Router[T]{
		stack: NewStack[T](),
	}
}

// OnShow sets the function that presents the top page.
func (r *Router[T]) OnShow(fn ShowFunc[T]) *Router[T] {
	r.show = fn
	return r
}

// OnTransition sets the transition function that determines navigation flow.
func (r *Router[T]) OnTransition(fn TransitionFunc[T]) *Router[T] {
	r.transition = fn
	return r
}

// Push presents a page on top of the stack.
func (r *Router[T]) Push(page T) {
	r.stack.Push(page, nil)
}

// Run shows the top page until the stack is empty or an error occurs.
func (r *Router[T]) Run() error {
	if r.show == nil {
		return fmt.Errorf("router: no show function set")
	}
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	for {
		top := r.stack.Peek()
		if top == nil {
			return nil
		}
		depth := r.stack.Len()

		result, err := r.show(top.Page, top.Resume)
		if err != nil {
			return fmt.Errorf("router: page %d error: %w", depth, err)
		}

		r.transition(top.Page, result, r.stack)
	}
}

// Stack returns the navigation stack.
func (r *Router[T]) Stack() *Stack[T] {
	return r.stack
}
