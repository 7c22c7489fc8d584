package router

// Entry is a single page on the navigation stack together with the
// resume state its screen returned the last time it was shown.
type Entry[T any] struct {
	Page   T
	Resume any
}

// Stack manages the pages that are currently presented.
// The top entry is the page being shown.
type Stack[T any] struct {
	entries []Entry[T]
}

// NewStack creates a new empty navigation stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		entries: make([]Entry[T], 0),
	}
}

// Push adds a page on top of the stack.
func (s *Stack[T]) Push(page T, resume any) {
	s.entries = append(s.entries, Entry[T]{
		Page:   page,
		Resume: resume,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack[T]) Pop() *Entry[T] {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// The returned entry may be modified in place (e.g. to store resume state).
// Returns nil if the stack is empty.
func (s *Stack[T]) Peek() *Entry[T] {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack[T]) Len() int {
	return len(s.entries)
}

// Pages returns the presented pages, bottom first.
func (s *Stack[T]) Pages() []T {
	pages := make([]T, len(s.entries))
	for i, e := range s.entries {
		pages[i] = e.Page
	}
	return pages
}

// Clear removes all entries from the stack.
func (s *Stack[T]) Clear() {
	s.entries = s.entries[:0]
}
