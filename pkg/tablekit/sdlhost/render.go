package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

// textTexture renders text once per font and colour and keeps it in the cache.
func (h *Host) textTexture(font *ttf.Font, text string, hex uint32) (*sdl.Texture, int32, int32, error) {
	key := fmt.Sprintf("%p|%06x|%s", font, hex, text)
	if texture, ok := h.cache.Get(key); ok {
		_, _, w, hh, err := texture.Query()
		return texture, w, hh, err
	}

	surface, err := font.RenderUTF8Blended(text, hexToColor(hex))
	if err != nil {
		return nil, 0, 0, err
	}
	defer surface.Free()

	texture, err := h.win.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, err
	}
	h.cache.Set(key, texture)
	return texture, surface.W, surface.H, nil
}

// drawText draws text left-aligned in the box, vertically centred and
// clipped to the box width.
func (h *Host) drawText(font *ttf.Font, text string, hex uint32, box sdl.Rect) error {
	if text == "" {
		return nil
	}
	texture, w, ht, err := h.textTexture(font, text, hex)
	if err != nil {
		return err
	}

	src := sdl.Rect{W: min(w, box.W), H: ht}
	dst := sdl.Rect{X: box.X, Y: box.Y + (box.H-ht)/2, W: src.W, H: ht}
	return h.win.renderer.Copy(texture, &src, &dst)
}

func (h *Host) fillRect(rect sdl.Rect, hex uint32) {
	c := hexToColor(hex)
	h.win.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	h.win.renderer.FillRect(&rect)
}

func (h *Host) render(s *screen) error {
	theme := internal.GetTheme()
	m := h.metrics()
	contentW := m.width - m.padding.Horizontal() - m.scrollbarW*2

	h.win.clear(hexToColor(theme.BackgroundColor))

	titleBox := sdl.Rect{X: m.padding.Left, Y: m.padding.Top, W: contentW, H: m.titleHeight}
	if err := h.drawText(h.fonts.title, s.snap.Title(), theme.AccentColor, titleBox); err != nil {
		return err
	}

	if s.snap.RowCount() == 0 {
		box := sdl.Rect{X: m.padding.Left, Y: m.lineTop(0), W: contentW, H: m.lineHeight}
		if err := h.drawText(h.fonts.row, internal.Localize(internal.MsgEmptyContents), theme.HintColor, box); err != nil {
			return err
		}
		h.win.present()
		return nil
	}

	focused := s.focus.FocusedLine()
	for i, line := range s.focus.VisibleLines() {
		box := sdl.Rect{X: m.padding.Left, Y: m.lineTop(i), W: contentW, H: m.lineHeight}

		switch line.Kind {
		case tablekit.LineHeader:
			if err := h.drawText(h.fonts.header, line.Text, theme.HintColor, box); err != nil {
				return err
			}

		case tablekit.LineRow:
			if err := h.renderRow(line, box, s.focus.Offset()+i == focused, theme, m); err != nil {
				return err
			}
		}
	}

	h.renderScrollbar(s.focus, theme, m)
	h.win.present()
	return nil
}

func (h *Host) renderRow(line tablekit.Line, box sdl.Rect, focused bool, theme internal.Theme, m metrics) error {
	textColor := theme.TextColor
	if focused {
		h.fillRect(box, theme.HighlightColor)
		textColor = theme.HighlightedTextColor
	}

	inner := sdl.Rect{
		X: box.X + m.padding.Left/2,
		Y: box.Y,
		W: box.W - m.padding.Left - m.iconSize,
		H: box.H,
	}
	if err := h.drawText(h.fonts.row, line.Text, textColor, inner); err != nil {
		return err
	}

	if h.chevron != nil {
		icon := sdl.Rect{
			X: box.X + box.W - m.iconSize - m.padding.Right/2,
			Y: box.Y + (box.H-m.iconSize)/2,
			W: m.iconSize,
			H: m.iconSize,
		}
		c := hexToColor(theme.HintColor)
		if focused {
			c = hexToColor(theme.HighlightedTextColor)
		}
		h.chevron.SetColorMod(c.R, c.G, c.B)
		return h.win.renderer.Copy(h.chevron, nil, &icon)
	}
	return nil
}

func (h *Host) renderScrollbar(f *tablekit.Focus, theme internal.Theme, m metrics) {
	track := m.height - m.padding.Vertical() - m.titleHeight
	y, ht := scrollThumb(len(f.Lines()), f.Offset(), f.Visible(), track)
	if ht == 0 {
		return
	}
	h.fillRect(sdl.Rect{
		X: m.width - m.padding.Right - m.scrollbarW,
		Y: m.lineTop(0) + y,
		W: m.scrollbarW,
		H: ht,
	}, theme.HintColor)
}
