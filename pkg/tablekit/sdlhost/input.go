package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit/constants"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

var keyboardButtons = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_SPACE:     constants.VirtualButtonA,
	sdl.K_a:         constants.VirtualButtonA,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_b:         constants.VirtualButtonB,
	sdl.K_x:         constants.VirtualButtonX,
	sdl.K_y:         constants.VirtualButtonY,
	sdl.K_PAGEUP:    constants.VirtualButtonL1,
	sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
	sdl.K_TAB:       constants.VirtualButtonSelect,
	sdl.K_F1:        constants.VirtualButtonMenu,
}

// Controller face buttons use SDL's Xbox-style names. Handhelds print the
// Nintendo layout on their buttons, so A/B and X/Y are swapped unless the
// mapping is flipped.
var controllerButtons = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonY,
	sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonX,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
}

// buttonEvent is a press or release of a virtual button.
type buttonEvent struct {
	Button  constants.VirtualButton
	Pressed bool
}

type inputMapper struct {
	flipFaceButtons bool
	controllers     map[sdl.JoystickID]*sdl.GameController
}

func newInputMapper(flip bool) *inputMapper {
	return &inputMapper{
		flipFaceButtons: flip,
		controllers:     make(map[sdl.JoystickID]*sdl.GameController),
	}
}

// mapKey translates a keyboard key. Key repeat from the OS is ignored;
// held directions repeat through internal.DirectionalInput instead.
func (m *inputMapper) mapKey(sym sdl.Keycode, pressed bool, repeat bool) (buttonEvent, bool) {
	if repeat {
		return buttonEvent{}, false
	}
	button, ok := keyboardButtons[sym]
	if !ok {
		return buttonEvent{}, false
	}
	return buttonEvent{Button: button, Pressed: pressed}, true
}

func (m *inputMapper) mapControllerButton(b sdl.GameControllerButton, pressed bool) (buttonEvent, bool) {
	button, ok := controllerButtons[b]
	if !ok {
		return buttonEvent{}, false
	}
	if m.flipFaceButtons {
		button = flipFace(button)
	}
	return buttonEvent{Button: button, Pressed: pressed}, true
}

func flipFace(b constants.VirtualButton) constants.VirtualButton {
	switch b {
	case constants.VirtualButtonA:
		return constants.VirtualButtonB
	case constants.VirtualButtonB:
		return constants.VirtualButtonA
	case constants.VirtualButtonX:
		return constants.VirtualButtonY
	case constants.VirtualButtonY:
		return constants.VirtualButtonX
	}
	return b
}

// translate maps an SDL event to a virtual button event.
func (m *inputMapper) translate(event sdl.Event) (buttonEvent, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		return m.mapKey(e.Keysym.Sym, e.Type == sdl.KEYDOWN, e.Repeat != 0)

	case *sdl.ControllerButtonEvent:
		return m.mapControllerButton(sdl.GameControllerButton(e.Button), e.Type == sdl.CONTROLLERBUTTONDOWN)

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			m.open(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			m.remove(sdl.JoystickID(e.Which))
		}
	}
	return buttonEvent{}, false
}

func (m *inputMapper) openAll() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		m.open(i)
	}
}

func (m *inputMapper) open(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		internal.GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}
	id := gc.Joystick().InstanceID()
	if _, ok := m.controllers[id]; ok {
		gc.Close()
		return
	}
	m.controllers[id] = gc
	internal.GetInternalLogger().Debug("Opened game controller", "index", index, "name", gc.Name())
}

func (m *inputMapper) remove(id sdl.JoystickID) {
	if gc, ok := m.controllers[id]; ok {
		gc.Close()
		delete(m.controllers, id)
	}
}

func (m *inputMapper) closeAll() {
	for id, gc := range m.controllers {
		gc.Close()
		delete(m.controllers, id)
	}
}
