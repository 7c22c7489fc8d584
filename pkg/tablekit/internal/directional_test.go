package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit/constants"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestInput() (*DirectionalInput, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
	d.now = clock.now
	return &d, clock
}

func TestDirectionStep(t *testing.T) {
	assert.Equal(t, -1, DirectionUp.Step(5))
	assert.Equal(t, 1, DirectionDown.Step(5))
	assert.Equal(t, -5, DirectionPageUp.Step(5))
	assert.Equal(t, 1, DirectionPageDown.Step(0))
	assert.Equal(t, 0, DirectionNone.Step(5))
}

func TestDirectionFor(t *testing.T) {
	assert.Equal(t, DirectionUp, DirectionFor(constants.VirtualButtonUp))
	assert.Equal(t, DirectionPageUp, DirectionFor(constants.VirtualButtonL1))
	assert.Equal(t, DirectionPageDown, DirectionFor(constants.VirtualButtonRight))
	assert.Equal(t, DirectionNone, DirectionFor(constants.VirtualButtonA))
}

func TestDirectionalInputRepeats(t *testing.T) {
	d, clock := newTestInput()

	assert.True(t, d.SetHeld(constants.VirtualButtonDown, true))
	assert.Equal(t, DirectionNone, d.Update())

	clock.advance(299 * time.Millisecond)
	assert.Equal(t, DirectionNone, d.Update())

	clock.advance(time.Millisecond)
	assert.Equal(t, DirectionDown, d.Update())

	clock.advance(49 * time.Millisecond)
	assert.Equal(t, DirectionNone, d.Update())

	clock.advance(time.Millisecond)
	assert.Equal(t, DirectionDown, d.Update())
}

func TestDirectionalInputRelease(t *testing.T) {
	d, clock := newTestInput()

	d.SetHeld(constants.VirtualButtonUp, true)
	d.SetHeld(constants.VirtualButtonDown, true)
	assert.Equal(t, DirectionDown, d.HeldDirection())

	// Releasing a button that is no longer the held one changes nothing.
	d.SetHeld(constants.VirtualButtonUp, false)
	assert.Equal(t, DirectionDown, d.HeldDirection())

	d.SetHeld(constants.VirtualButtonDown, false)
	clock.advance(time.Second)
	assert.Equal(t, DirectionNone, d.Update())
}

func TestDirectionalInputIgnoresOtherButtons(t *testing.T) {
	d, _ := newTestInput()

	assert.False(t, d.SetHeld(constants.VirtualButtonA, true))
	assert.Equal(t, DirectionNone, d.HeldDirection())
}

func TestDirectionalInputReset(t *testing.T) {
	d, clock := newTestInput()

	d.SetHeld(constants.VirtualButtonDown, true)
	d.Reset()
	clock.advance(time.Second)

	assert.Equal(t, DirectionNone, d.Update())
}
