package sdlhost

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit/constants"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

// window wraps the SDL window and renderer.
type window struct {
	window          *sdl.Window
	renderer        *sdl.Renderer
	background      *sdl.Texture
	hasVSync        bool
	lastPresentTime uint64
}

// windowSize picks the window size: explicit options first, then the
// WINDOW_WIDTH/WINDOW_HEIGHT variables in dev mode, then the display.
func windowSize(width, height int32) (int32, int32) {
	if width > 0 && height > 0 {
		return width, height
	}

	if constants.IsDevMode() {
		return envSize(constants.WindowWidthEnvVar, 1024), envSize(constants.WindowHeightEnvVar, 768)
	}

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
		return 1024, 768
	}
	return mode.W, mode.H
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "var", name, "value", v)
		return fallback
	}
	return int32(n)
}

func newWindow(title string, width, height int32, opts WindowOptions) (*window, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
	}

	internal.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	w, err := sdl.CreateWindow(title, x, y, width, height, opts.flags())
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		internal.GetInternalLogger().Warn("Accelerated renderer unavailable, using software", "error", err)
		renderer, err = sdl.CreateRenderer(w, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			w.Destroy()
			return nil, err
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &window{
		window:   w,
		renderer: renderer,
		hasVSync: vsync,
	}, nil
}

func (w *window) loadBackground(path string) {
	if path == "" {
		return
	}
	texture, err := img.LoadTexture(w.renderer, path)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to load background image", "path", path, "error", err)
		return
	}
	w.background = texture
}

// size is the logical drawing size.
func (w *window) size() (int32, int32) {
	if width, height := w.renderer.GetLogicalSize(); width > 0 && height > 0 {
		return width, height
	}
	return w.window.GetSize()
}

// clear draws the background image, or fills with the theme colour.
func (w *window) clear(bg sdl.Color) {
	if w.background != nil {
		width, height := w.size()
		w.renderer.Copy(w.background, nil, &sdl.Rect{X: 0, Y: 0, W: width, H: height})
		return
	}
	w.renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	w.renderer.Clear()
}

// present swaps the buffer and holds ~60fps when vsync is not available.
func (w *window) present() {
	w.renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < constants.DefaultFrameTimeout {
			sdl.Delay(uint32(constants.DefaultFrameTimeout - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *window) destroy() {
	if w.background != nil {
		w.background.Destroy()
	}
	w.renderer.Destroy()
	w.window.Destroy()
}
