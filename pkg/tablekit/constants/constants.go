// Package constants defines shared constants, types, and configuration values
// used throughout tablekit and its hosts.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by tablekit.
const (
	EnvironmentEnvVar      = "ENVIRONMENT"
	InternalLogLevelEnvVar = "TABLEKIT_INTERNAL_LOG_LEVEL" // tablekit's own logger, not the application's
	ConfigPathEnvVar       = "TABLEKIT_CONFIG"
	WindowWidthEnvVar      = "WINDOW_WIDTH"
	WindowHeightEnvVar     = "WINDOW_HEIGHT"
	FlipFaceButtonsVar     = "FLIP_FACE_BUTTONS"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

var buttonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonR1:         "R1",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
	VirtualButtonPower:      "Power",
}

func (vb VirtualButton) String() string {
	if name, ok := buttonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

// Default timing and spacing constants.
const (
	DefaultFrameTimeout         = 16 // Event wait per frame, in milliseconds
	DefaultTitleSpacing   int32 = 5  // Vertical spacing below title text
	DefaultRowHeight      int32 = 60 // Row height before scaling
	DefaultHeaderHeight   int32 = 44 // Section title height before scaling
	DefaultTerminalHeight       = 24 // Rows assumed before the first WindowSizeMsg
	DefaultTerminalWidth        = 80
)
