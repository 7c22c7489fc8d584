// Package sdlhost shows tablekit controllers in an SDL2 window, for
// handheld Linux devices driven by a d-pad and face buttons.
//
// SDL must be driven from the main OS thread, so create the host and run
// the Navigator from main (or inside sdl.Main).
//
//	host, err := sdlhost.New(sdlhost.Options{Title: "Settings"})
//	if err != nil {
//	    return err
//	}
//	defer host.Close()
//	nav := tablekit.NewNavigator(host)
//
// Up/down move the cursor and repeat while held, L1/R1 (or left/right)
// page, A selects, B goes back. The menu button, closing the window and
// the power button cancel the presentation.
package sdlhost

import (
	"os"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/constants"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

// Host is a tablekit.Host backed by an SDL window.
type Host struct {
	opts    Options
	win     *window
	fonts   *fonts
	cache   *textureCache[*sdl.Texture]
	chevron *sdl.Texture
	input   *inputMapper
	power   *powerWatcher
	repeat  internal.DirectionalInput
	reload  atomic.Bool
}

// resolveOptions fills zero fields from the loaded config and theme.
func resolveOptions(opts Options) Options {
	cfg := internal.GetConfig().Handheld

	if opts.Width == 0 && opts.Height == 0 {
		opts.Width, opts.Height = cfg.WindowWidth, cfg.WindowHeight
	}
	if opts.FontSize <= 0 {
		opts.FontSize = cfg.FontSize
	}
	if opts.FontSize <= 0 {
		opts.FontSize = referenceFontSize
	}
	if opts.FontPath == "" {
		opts.FontPath = internal.GetTheme().FontPath
	}
	if opts.PowerButtonDevice == "" {
		opts.PowerButtonDevice = cfg.PowerButtonDevice
	}
	opts.FlipFaceButtons = opts.FlipFaceButtons || cfg.FlipFaceButtons ||
		os.Getenv(constants.FlipFaceButtonsVar) != ""

	if opts.Window.IsZero() {
		if constants.IsDevMode() {
			opts.Window = WindowOptions{Resizable: true}
		} else {
			opts.Window = WindowOptions{Borderless: true}
		}
	}
	return opts
}

// New initialises SDL, opens the window and loads fonts.
// Failures are returned as *tablekit.InfrastructureError.
func New(opts Options) (*Host, error) {
	opts = resolveOptions(opts)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return nil, tablekit.NewInfrastructureError("sdl_init", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, tablekit.NewInfrastructureError("ttf_init", err)
	}
	img.Init(img.INIT_PNG | img.INIT_JPG)

	h := &Host{
		opts:   opts,
		cache:  newTextureCache[*sdl.Texture](defaultMaxCacheSize),
		input:  newInputMapper(opts.FlipFaceButtons),
		repeat: internal.NewDirectionalInput(),
	}

	width, height := windowSize(opts.Width, opts.Height)
	win, err := newWindow(opts.Title, width, height, opts.Window)
	if err != nil {
		h.Close()
		return nil, tablekit.NewInfrastructureError("create_window", err)
	}
	h.win = win

	if opts.ShowBackground {
		win.loadBackground(internal.GetTheme().BackgroundImagePath)
	}

	f, err := openFonts(opts.FontPath, opts.FontSize)
	if err != nil {
		h.Close()
		return nil, tablekit.NewInfrastructureError("load_font", err)
	}
	h.fonts = f

	m := h.metrics()
	if h.chevron, err = chevronTexture(win.renderer, int(m.iconSize), hexToRGBA(0xFFFFFF)); err != nil {
		internal.GetInternalLogger().Warn("Failed to rasterize chevron icon", "error", err)
	}

	h.input.openAll()

	if opts.PowerButtonDevice != "" && !constants.IsDevMode() {
		if h.power, err = startPowerWatcher(opts.PowerButtonDevice); err != nil {
			internal.GetInternalLogger().Warn("Power button unavailable",
				"device", opts.PowerButtonDevice, "error", err)
		}
	}

	internal.GetInternalLogger().Debug("SDL host ready",
		"width", width, "height", height, "font_size", opts.FontSize,
		"flip_face_buttons", opts.FlipFaceButtons)

	return h, nil
}

// Close stops the power watcher and releases every SDL resource.
func (h *Host) Close() error {
	err := h.power.stop()
	h.power = nil

	h.cache.Destroy()
	if h.chevron != nil {
		h.chevron.Destroy()
		h.chevron = nil
	}
	if h.fonts != nil {
		h.fonts.close()
		h.fonts = nil
	}
	h.input.closeAll()
	if h.win != nil {
		h.win.destroy()
		h.win = nil
	}

	img.Quit()
	ttf.Quit()
	sdl.Quit()
	return err
}

func (h *Host) metrics() metrics {
	var w, ht int32
	if h.win != nil {
		w, ht = h.win.size()
	}
	return newMetrics(w, ht, h.opts.FontSize)
}

// screen is the state of one show pass.
type screen struct {
	controller *tablekit.Controller
	snap       *tablekit.Snapshot
	focus      *tablekit.Focus
}

func newScreen(c *tablekit.Controller, resume tablekit.Cursor, visible int) *screen {
	snap := c.Snapshot()
	return &screen{
		controller: c,
		snap:       snap,
		focus:      tablekit.NewFocus(tablekit.Layout(snap), resume, visible),
	}
}

func (s *screen) reload() {
	current, _ := s.focus.IndexPath()
	s.snap = s.controller.Snapshot()
	s.focus = tablekit.NewFocus(tablekit.Layout(s.snap), tablekit.Cursor{IndexPath: current}, s.focus.Visible())
}

func (s *screen) pageSize() int {
	return max(s.focus.Visible()-1, 1)
}

// Show runs the event loop for c until a row is selected, the user goes
// back, or the presentation is cancelled.
func (h *Host) Show(c *tablekit.Controller, resume tablekit.Cursor) (tablekit.Interaction, error) {
	if h.win == nil || h.fonts == nil {
		return tablekit.Interaction{}, tablekit.ErrNotPresentable
	}

	s := newScreen(c, resume, h.metrics().visibleLines())

	c.OnReload(func() {
		h.reload.Store(true)
	})
	defer c.OnReload(nil)

	h.repeat.Reset()

	internal.GetInternalLogger().Debug("Showing controller in SDL window",
		"title", c.Title(), "resume", resume.IndexPath.String())

	for {
		if event := sdl.WaitEventTimeout(constants.DefaultFrameTimeout); event != nil {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return tablekit.Interaction{}, tablekit.ErrCancelled

			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					s.focus.SetVisible(h.metrics().visibleLines())
				}

			default:
				if be, ok := h.input.translate(event); ok {
					if in, done, err := h.handle(s, be); done {
						return in, err
					}
				}
			}
		}

		if dir := h.repeat.Update(); dir != internal.DirectionNone {
			s.focus.Move(dir.Step(s.pageSize()))
		}

		if h.power.consume() {
			return tablekit.Interaction{}, tablekit.ErrCancelled
		}

		if h.reload.Swap(false) {
			s.reload()
		}

		if err := h.render(s); err != nil {
			return tablekit.Interaction{}, tablekit.NewInfrastructureError("render", err)
		}
	}
}

// handle applies one button event. done reports whether the show pass ends.
func (h *Host) handle(s *screen, be buttonEvent) (in tablekit.Interaction, done bool, err error) {
	if !be.Pressed {
		h.repeat.SetHeld(be.Button, false)
		return in, false, nil
	}

	if h.repeat.SetHeld(be.Button, true) {
		s.focus.Move(internal.DirectionFor(be.Button).Step(s.pageSize()))
		return in, false, nil
	}

	return decide(s, be.Button)
}

// decide maps a non-directional press to the end of a show pass.
func decide(s *screen, button constants.VirtualButton) (tablekit.Interaction, bool, error) {
	switch button {
	case constants.VirtualButtonA:
		path, ok := s.focus.IndexPath()
		if !ok {
			return tablekit.Interaction{}, false, nil
		}
		return tablekit.Selected(s.snap, path, s.focus.Cursor()), true, nil

	case constants.VirtualButtonB:
		return tablekit.Back(s.focus.Cursor()), true, nil

	case constants.VirtualButtonMenu:
		return tablekit.Interaction{}, true, tablekit.ErrCancelled
	}
	return tablekit.Interaction{}, false, nil
}

var _ tablekit.Host = (*Host)(nil)
