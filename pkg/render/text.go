package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// FontSize is the glyph size in pixels used on the 64-pixel-high panel.
const FontSize = 8

// LoadFace parses Go Mono and returns a face of the given pixel size.
func LoadFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse gomono: %w", err)
	}

	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create %vpx face: %w", size, err)
	}
	return face, nil
}

var (
	defaultFaceOnce sync.Once
	defaultFace     font.Face
)

// DefaultFace returns the shared FontSize Go Mono face, or basicfont 7x13
// when the embedded font cannot be parsed.
func DefaultFace() font.Face {
	defaultFaceOnce.Do(func() {
		face, err := LoadFace(FontSize)
		if err != nil {
			defaultFace = basicfont.Face7x13
			return
		}
		defaultFace = face
	})
	return defaultFace
}
