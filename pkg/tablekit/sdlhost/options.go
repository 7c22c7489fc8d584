package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions are the SDL window flags used when the host creates its window.
type WindowOptions struct {
	Borderless        bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	Hidden            bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) flags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}

// Options configures a Host. Zero values fall back to the loaded config.
type Options struct {
	Title             string        // Window title in windowed mode
	Window            WindowOptions // Window flags
	Width             int32         // Window width, 0 uses the config or the display size
	Height            int32         // Window height, 0 uses the config or the display size
	FontPath          string        // TTF font, overrides the theme
	FontSize          int           // Row font size in points
	ShowBackground    bool          // Draw the theme background image
	FlipFaceButtons   bool          // Use A=A, B=B instead of the Nintendo-style swap
	PowerButtonDevice string        // evdev device to watch for the power key, empty disables it
}
