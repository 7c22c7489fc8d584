package sdlhost

import (
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/constants"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

const referenceFontSize = 28

// metrics is the screen geometry for one window size and font size.
type metrics struct {
	width, height int32
	padding       internal.Padding
	titleHeight   int32
	lineHeight    int32
	iconSize      int32
	scrollbarW    int32
}

func newMetrics(width, height int32, fontSize int) metrics {
	if fontSize <= 0 {
		fontSize = referenceFontSize
	}
	scale := float32(fontSize) / referenceFontSize

	return metrics{
		width:       width,
		height:      height,
		padding:     internal.UniformPadding(int32(20 * scale)),
		titleHeight: int32(float32(constants.DefaultHeaderHeight)*scale) + constants.DefaultTitleSpacing,
		lineHeight:  int32(float32(constants.DefaultRowHeight) * scale),
		iconSize:    int32(24 * scale),
		scrollbarW:  max(int32(4*scale), 2),
	}
}

// visibleLines is how many layout lines fit below the title.
func (m metrics) visibleLines() int {
	available := m.height - m.padding.Vertical() - m.titleHeight
	if m.lineHeight <= 0 || available <= 0 {
		return 1
	}
	return max(int(available/m.lineHeight), 1)
}

// lineTop returns the y coordinate of the i-th visible line.
func (m metrics) lineTop(i int) int32 {
	return m.padding.Top + m.titleHeight + int32(i)*m.lineHeight
}

// scrollThumb returns the y offset and height of the scrollbar thumb
// inside a track of trackHeight. It returns 0, 0 when everything fits.
func scrollThumb(total, offset, visible int, trackHeight int32) (int32, int32) {
	if total <= visible || total <= 0 || trackHeight <= 0 {
		return 0, 0
	}
	h := max(trackHeight*int32(visible)/int32(total), 8)
	y := (trackHeight - h) * int32(offset) / int32(total-visible)
	return y, h
}
