package internal

import (
	"time"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit/constants"
)

// Direction is a cursor movement derived from a held button.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionPageUp
	DirectionPageDown
)

// Step returns the row delta for a direction, given the page size.
func (d Direction) Step(pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	switch d {
	case DirectionUp:
		return -1
	case DirectionDown:
		return 1
	case DirectionPageUp:
		return -pageSize
	case DirectionPageDown:
		return pageSize
	default:
		return 0
	}
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionPageUp:
		return "page_up"
	case DirectionPageDown:
		return "page_down"
	default:
		return ""
	}
}

// DirectionalInput tracks held navigation buttons and decides when a held
// button should repeat. The first repeat waits repeatDelay, later repeats
// wait repeatInterval.
type DirectionalInput struct {
	held           Direction
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// DirectionFor maps a virtual button to the direction it drives.
func DirectionFor(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	case constants.VirtualButtonL1, constants.VirtualButtonLeft:
		return DirectionPageUp
	case constants.VirtualButtonR1, constants.VirtualButtonRight:
		return DirectionPageDown
	default:
		return DirectionNone
	}
}

// SetHeld records a press or release. Returns false for non-directional buttons.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	dir := DirectionFor(button)
	if dir == DirectionNone {
		return false
	}

	if held {
		d.held = dir
		d.hasRepeated = false
		d.lastRepeatTime = d.clock()
	} else if d.held == dir {
		d.held = DirectionNone
		d.hasRepeated = false
	}
	return true
}

// HeldDirection returns the currently held direction.
func (d *DirectionalInput) HeldDirection() Direction {
	return d.held
}

// Update returns the direction to apply this frame, or DirectionNone.
// Call it once per frame.
func (d *DirectionalInput) Update() Direction {
	now := d.clock()
	if d.held == DirectionNone {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.held
	}

	return DirectionNone
}

// Reset clears the held direction and timing state.
func (d *DirectionalInput) Reset() {
	d.held = DirectionNone
	d.hasRepeated = false
	d.lastRepeatTime = d.clock()
}

func (d *DirectionalInput) clock() time.Time {
	if d.now == nil {
		return time.Now()
	}
	return d.now()
}
