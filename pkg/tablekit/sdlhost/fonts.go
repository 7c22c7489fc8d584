package sdlhost

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// Tried in order when the theme names no font or its font is missing.
var fallbackFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
}

type fonts struct {
	title  *ttf.Font
	header *ttf.Font
	row    *ttf.Font
}

func fontCandidates(path string) []string {
	if path == "" {
		return fallbackFonts
	}
	return append([]string{path}, fallbackFonts...)
}

func firstExisting(paths []string) (string, error) {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.New("no usable font found")
}

func openFonts(path string, size int) (*fonts, error) {
	file, err := firstExisting(fontCandidates(path))
	if err != nil {
		return nil, err
	}

	f := &fonts{}
	if f.title, err = ttf.OpenFont(file, size*5/4); err != nil {
		return nil, fmt.Errorf("open %s: %w", file, err)
	}
	if f.header, err = ttf.OpenFont(file, size*3/4); err != nil {
		f.close()
		return nil, fmt.Errorf("open %s: %w", file, err)
	}
	if f.row, err = ttf.OpenFont(file, size); err != nil {
		f.close()
		return nil, fmt.Errorf("open %s: %w", file, err)
	}
	return f, nil
}

func (f *fonts) close() {
	for _, font := range []*ttf.Font{f.title, f.header, f.row} {
		if font != nil {
			font.Close()
		}
	}
}
