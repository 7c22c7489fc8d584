//go:build !linux

package sdlhost

import "errors"

type powerWatcher struct{}

func startPowerWatcher(path string) (*powerWatcher, error) {
	return nil, errors.New("power button watching requires linux evdev")
}

func (w *powerWatcher) consume() bool {
	return false
}

func (w *powerWatcher) stop() error {
	return nil
}
