package tablekit

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user quit the presentation (ctrl+c, closing
	// the window, the power button). Navigator.Run treats it as a normal exit.
	ErrCancelled = errors.New("presentation cancelled by user")

	// ErrNotPresentable indicates the host cannot present right now, for
	// example because stdout is not a terminal or no window exists.
	ErrNotPresentable = errors.New("host cannot present")

	// ErrNilAction is the panic value for an action item built without an
	// action block. It is a programming error at the call site.
	ErrNilAction = errors.New("tablekit: action item requires a non-nil action block")
)

// InfrastructureError represents a host-level failure (window creation,
// font loading, rendering). The data model never produces one.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tablekit: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("tablekit: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
