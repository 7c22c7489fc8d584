//go:build linux

package sdlhost

import (
	"context"
	"errors"
	"os"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

// powerWatcher reads an evdev device in the background and latches a flag
// when the power key goes down. The show loop polls the flag every frame.
type powerWatcher struct {
	device  *evdev.InputDevice
	pressed atomic.Bool
	cancel  context.CancelFunc
	group   *errgroup.Group
}

func startPowerWatcher(path string) (*powerWatcher, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)

	w := &powerWatcher{device: device, cancel: cancel, group: group}
	group.Go(func() error {
		return w.watch(ctx)
	})

	internal.GetInternalLogger().Debug("Watching power button", "device", path)
	return w, nil
}

func (w *powerWatcher) watch(ctx context.Context) error {
	for {
		ev, err := w.device.ReadOne()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return err
		}
		if isPowerPress(ev.Type, ev.Code, ev.Value) {
			internal.GetInternalLogger().Debug("Power button pressed")
			w.pressed.Store(true)
		}
	}
}

func isPowerPress(typ evdev.EvType, code evdev.EvCode, value int32) bool {
	return typ == evdev.EV_KEY && code == evdev.KEY_POWER && value == 1
}

// consume reports whether the power key was pressed since the last call.
func (w *powerWatcher) consume() bool {
	if w == nil {
		return false
	}
	return w.pressed.Swap(false)
}

// stop closes the device, which unblocks the reader, and waits for it.
func (w *powerWatcher) stop() error {
	if w == nil {
		return nil
	}
	w.cancel()
	closeErr := w.device.Close()
	if err := w.group.Wait(); err != nil {
		return err
	}
	return closeErr
}
