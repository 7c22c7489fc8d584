package constants

// Glyphs used by the terminal host.
const (
	Cursor    = "›"
	Chevron   = "›"
	MoreAbove = "↑"
	MoreBelow = "↓"
)

// ChevronSVG is the disclosure indicator drawn at the end of every action
// row by the handheld host.
const ChevronSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
  <path d="M8.59 16.59 13.17 12 8.59 7.41 10 6l6 6-6 6z" fill="#FFFFFF"/>
</svg>`
