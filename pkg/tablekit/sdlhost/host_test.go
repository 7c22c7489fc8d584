package sdlhost

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/constants"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

func settingsScreen(visible int) *screen {
	c := tablekit.NewContentsWithTitle("Settings")
	c.AddSection(tablekit.SectionWithTitle("Account", []*tablekit.Item{
		tablekit.Action("Profile", func() {}),
		tablekit.Action("Log Out", func() {}),
	}))
	c.AddSection(tablekit.SectionWithTitle("", []*tablekit.Item{
		tablekit.Action("About", func() {}),
	}))
	return newScreen(tablekit.NewControllerWithContents(c), tablekit.Cursor{}, visible)
}

func testHost() *Host {
	return &Host{repeat: internal.NewDirectionalInput()}
}

func TestHandleDirectionMovesImmediately(t *testing.T) {
	h := testHost()
	s := settingsScreen(10)

	_, done, err := h.handle(s, buttonEvent{Button: constants.VirtualButtonDown, Pressed: true})
	require.NoError(t, err)
	assert.False(t, done)

	path, _ := s.focus.IndexPath()
	assert.Equal(t, tablekit.IndexPath{Section: 0, Row: 1}, path)
	assert.Equal(t, internal.DirectionDown, h.repeat.HeldDirection())

	h.handle(s, buttonEvent{Button: constants.VirtualButtonDown, Pressed: false})
	assert.Equal(t, internal.DirectionNone, h.repeat.HeldDirection())
}

func TestHandleSelect(t *testing.T) {
	h := testHost()
	s := settingsScreen(10)

	h.handle(s, buttonEvent{Button: constants.VirtualButtonUp, Pressed: true})
	in, done, err := h.handle(s, buttonEvent{Button: constants.VirtualButtonA, Pressed: true})

	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, tablekit.InteractionSelected, in.Kind)
	assert.Equal(t, tablekit.IndexPath{Section: 1, Row: 0}, in.IndexPath)
	assert.Same(t, s.snap, in.Snapshot)
}

func TestHandleBackAndMenu(t *testing.T) {
	h := testHost()

	in, done, err := h.handle(settingsScreen(10), buttonEvent{Button: constants.VirtualButtonB, Pressed: true})
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, tablekit.InteractionBack, in.Kind)

	_, done, err = h.handle(settingsScreen(10), buttonEvent{Button: constants.VirtualButtonMenu, Pressed: true})
	assert.True(t, done)
	assert.ErrorIs(t, err, tablekit.ErrCancelled)
}

func TestDecideOnEmptyScreen(t *testing.T) {
	s := newScreen(tablekit.NewController(), tablekit.Cursor{}, 5)

	_, done, err := decide(s, constants.VirtualButtonA)
	assert.NoError(t, err)
	assert.False(t, done)

	_, done, _ = decide(s, constants.VirtualButtonX)
	assert.False(t, done)
}

func TestScreenReloadKeepsCursor(t *testing.T) {
	s := settingsScreen(10)
	s.focus.JumpTo(tablekit.IndexPath{Section: 0, Row: 1})

	c := tablekit.NewContentsWithTitle("Settings")
	c.AddSection(tablekit.SectionWithTitle("Account", []*tablekit.Item{
		tablekit.Action("Profile", func() {}),
		tablekit.Action("Sign In", func() {}),
	}))
	s.controller.SetContents(c)
	s.reload()

	path, _ := s.focus.IndexPath()
	assert.Equal(t, tablekit.IndexPath{Section: 0, Row: 1}, path)
	assert.Equal(t, "Sign In", s.snap.TitleForRow(0, 1))
}

func TestMetrics(t *testing.T) {
	m := newMetrics(640, 480, 28)

	assert.Equal(t, int32(20), m.padding.Top)
	assert.Equal(t, constants.DefaultRowHeight, m.lineHeight)
	assert.Equal(t, 6, m.visibleLines())
	assert.Equal(t, m.padding.Top+m.titleHeight+2*m.lineHeight, m.lineTop(2))

	big := newMetrics(640, 480, 56)
	assert.Less(t, big.visibleLines(), m.visibleLines())

	assert.Equal(t, 1, newMetrics(0, 0, 0).visibleLines())
}

func TestScrollThumb(t *testing.T) {
	y, h := scrollThumb(5, 0, 10, 300)
	assert.Zero(t, y)
	assert.Zero(t, h)

	y, h = scrollThumb(20, 0, 10, 300)
	assert.Equal(t, int32(0), y)
	assert.Equal(t, int32(150), h)

	y, h = scrollThumb(20, 10, 10, 300)
	assert.Equal(t, int32(150), y)
	assert.Equal(t, int32(150), h)
}

func TestRasterizeAndTintChevron(t *testing.T) {
	img, err := rasterizeSVG(constants.ChevronSVG, 24)
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())

	tint(img, color.RGBA{R: 255, A: 255})

	covered := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if a := img.Pix[i+3]; a > 0 {
			covered++
			assert.Equal(t, a, img.Pix[i])
			assert.Equal(t, uint8(0), img.Pix[i+1])
		}
	}
	assert.Positive(t, covered)
}

func TestFontCandidates(t *testing.T) {
	assert.Equal(t, fallbackFonts, fontCandidates(""))
	assert.Equal(t, "/tmp/font.ttf", fontCandidates("/tmp/font.ttf")[0])

	_, err := firstExisting([]string{"/does/not/exist.ttf"})
	assert.Error(t, err)
}

func TestResolveOptionsUsesConfig(t *testing.T) {
	t.Setenv(constants.EnvironmentEnvVar, "")
	t.Setenv(constants.FlipFaceButtonsVar, "")

	cfg := internal.DefaultConfig()
	cfg.Handheld.FontSize = 32
	cfg.Handheld.FlipFaceButtons = true
	cfg.Handheld.PowerButtonDevice = "/dev/input/event1"
	internal.SetConfig(cfg)
	defer internal.SetConfig(internal.DefaultConfig())

	opts := resolveOptions(Options{})
	assert.Equal(t, 32, opts.FontSize)
	assert.True(t, opts.FlipFaceButtons)
	assert.Equal(t, "/dev/input/event1", opts.PowerButtonDevice)
	assert.Equal(t, internal.GetTheme().FontPath, opts.FontPath)
	assert.True(t, opts.Window.Borderless)

	opts = resolveOptions(Options{FontSize: 20, Window: WindowOptions{Fullscreen: true}})
	assert.Equal(t, 20, opts.FontSize)
	assert.Equal(t, WindowOptions{Fullscreen: true}, opts.Window)
}
