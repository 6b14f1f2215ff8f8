// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
)

// Palette is the pair of colors a presenter uses for lit and dark pixels.
type Palette struct {
	Ink   color.RGBA
	Paper color.RGBA
}

var (
	// PaletteWhite mimics a white SSD1306 panel.
	PaletteWhite = Palette{
		Ink:   color.RGBA{R: 0xF0, G: 0xF4, B: 0xFF, A: 0xFF},
		Paper: color.RGBA{R: 0x05, G: 0x06, B: 0x0A, A: 0xFF},
	}
	// PaletteBlue mimics the blue variant of the panel.
	PaletteBlue = Palette{
		Ink:   color.RGBA{R: 0x4F, G: 0xC3, B: 0xF7, A: 0xFF},
		Paper: color.RGBA{R: 0x02, G: 0x08, B: 0x12, A: 0xFF},
	}
)

// PaletteByName resolves a tint name from the settings.
func PaletteByName(name string) (Palette, error) {
	switch name {
	case "", "white":
		return PaletteWhite, nil
	case "blue":
		return PaletteBlue, nil
	}
	return Palette{}, fmt.Errorf("unknown tint %q", name)
}

// Dimmed returns the palette with ink at half brightness.
func (p Palette) Dimmed() Palette {
	return Palette{Ink: DarkenColor(p.Ink), Paper: p.Paper}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// RGBA fills dst with the frame in premultiplied RGBA order, 4 bytes per
// pixel, and returns it. dst is reallocated when too small.
func (f Frame) RGBA(dst []byte, p Palette) []byte {
	n := 4 * f.Width * f.Height
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	for i, on := range f.Pix {
		c := p.Paper
		if on {
			c = p.Ink
		}
		dst[4*i+0] = c.R
		dst[4*i+1] = c.G
		dst[4*i+2] = c.B
		dst[4*i+3] = c.A
	}
	return dst
}
