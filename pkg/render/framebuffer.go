package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
)

// Frame is one published monochrome image, row-major.
type Frame struct {
	Width  int
	Height int
	Pix    []bool
}

// On reports whether pixel (x, y) is lit; out-of-range pixels are dark.
func (f Frame) On(x, y int) bool {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return false
	}
	return f.Pix[y*f.Width+x]
}

// Framebuffer is an in-memory Surface with a back buffer for drawing and a
// front buffer holding the last displayed frame. It also implements
// draw.Image so glyphs from golang.org/x/image/font can be drawn into it.
type Framebuffer struct {
	width  int
	height int
	back   []bool
	front  []bool
	frames uint64

	face    font.Face
	ascent  int
	cursorX int
	cursorY int
}

// NewFramebuffer creates a width x height buffer that prints text with face.
// A nil face selects DefaultFace.
func NewFramebuffer(width, height int, face font.Face) *Framebuffer {
	if face == nil {
		face = DefaultFace()
	}
	return &Framebuffer{
		width:  width,
		height: height,
		back:   make([]bool, width*height),
		front:  make([]bool, width*height),
		face:   face,
		ascent: face.Metrics().Ascent.Ceil(),
	}
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }

// Frames returns how many times Display has been called.
func (fb *Framebuffer) Frames() uint64 { return fb.frames }

// Front returns the last displayed frame. The slice is owned by the
// framebuffer and changes on the next Display.
func (fb *Framebuffer) Front() Frame {
	return Frame{Width: fb.width, Height: fb.height, Pix: fb.front}
}

// Back returns the frame being drawn.
func (fb *Framebuffer) Back() Frame {
	return Frame{Width: fb.width, Height: fb.height, Pix: fb.back}
}

// Pixel reports whether (x, y) is lit in the back buffer.
func (fb *Framebuffer) Pixel(x, y int) bool {
	return fb.Back().On(x, y)
}

// LitCount returns the number of lit pixels in the back buffer.
func (fb *Framebuffer) LitCount() int {
	n := 0
	for _, on := range fb.back {
		if on {
			n++
		}
	}
	return n
}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// ===== SURFACE API =====

func (fb *Framebuffer) Clear() {
	clear(fb.back)
	fb.cursorX, fb.cursorY = 0, 0
}

func (fb *Framebuffer) SetPixel(x, y int, on bool) {
	if !fb.inBounds(x, y) {
		return
	}
	fb.back[y*fb.width+x] = on
}

func (fb *Framebuffer) Display() {
	copy(fb.front, fb.back)
	fb.frames++
}

// Primitives are rasterised by tinydraw through the panel adapter, so every
// pixel still goes through SetPixel and its clip.

// DrawLine draws a line including both end points.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int) {
	tinydraw.Line(fb.panel(), i16(x0), i16(y0), i16(x1), i16(y1), ink)
}

func (fb *Framebuffer) DrawCircle(x, y, r int) {
	if r < 0 {
		return
	}
	tinydraw.Circle(fb.panel(), i16(x), i16(y), i16(r), ink)
}

// FillCircle fills a disc of radius r with lit (on) or dark pixels.
func (fb *Framebuffer) FillCircle(x, y, r int, on bool) {
	if r < 0 {
		return
	}
	c := paper
	if on {
		c = ink
	}
	tinydraw.FilledCircle(fb.panel(), i16(x), i16(y), i16(r), c)
}

func (fb *Framebuffer) DrawRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	tinydraw.Rectangle(fb.panel(), i16(x), i16(y), i16(w), i16(h), ink)
}

func (fb *Framebuffer) FillRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	tinydraw.FilledRectangle(fb.panel(), i16(x), i16(y), i16(w), i16(h), ink)
}

func (fb *Framebuffer) DrawTriangle(x0, y0, x1, y1, x2, y2 int) {
	tinydraw.Triangle(fb.panel(), i16(x0), i16(y0), i16(x1), i16(y1), i16(x2), i16(y2), ink)
}

func (fb *Framebuffer) FillTriangle(x0, y0, x1, y1, x2, y2 int) {
	tinydraw.FilledTriangle(fb.panel(), i16(x0), i16(y0), i16(x1), i16(y1), i16(x2), i16(y2), ink)
}

// ===== TEXT =====

func (fb *Framebuffer) SetCursor(x, y int) {
	fb.cursorX, fb.cursorY = x, y
}

// Cursor returns the position the next Print starts at.
func (fb *Framebuffer) Cursor() (x, y int) {
	return fb.cursorX, fb.cursorY
}

// Print draws s at the cursor and advances it. A newline returns to x = 0
// on the next text row.
func (fb *Framebuffer) Print(s string) {
	lineHeight := fb.face.Metrics().Height.Ceil()

	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '\n' {
			continue
		}
		fb.printRun(s[start:i])
		if i < len(s) {
			fb.cursorX = 0
			fb.cursorY += lineHeight
		}
		start = i + 1
	}
}

func (fb *Framebuffer) printRun(s string) {
	if s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  fb,
		Src:  image.NewUniform(color.White),
		Face: fb.face,
		Dot:  fixed.P(fb.cursorX, fb.cursorY+fb.ascent),
	}
	d.DrawString(s)
	fb.cursorX = d.Dot.X.Ceil()
}

// ===== draw.Image =====

func (fb *Framebuffer) ColorModel() color.Model {
	return color.GrayModel
}

func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

func (fb *Framebuffer) At(x, y int) color.Color {
	if fb.Pixel(x, y) {
		return color.White
	}
	return color.Black
}

// Set thresholds c to a lit or dark pixel; antialiased glyph edges at half
// intensity or more are lit.
func (fb *Framebuffer) Set(x, y int, c color.Color) {
	g := color.GrayModel.Convert(c).(color.Gray)
	fb.SetPixel(x, y, g.Y >= 0x80)
}

// Colors handed to tinydraw; any non-black color lights a pixel.
var (
	ink   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	paper = color.RGBA{A: 0xFF}
)

// panel is the back buffer seen as a tinygo display.
type panel struct {
	fb *Framebuffer
}

var _ drivers.Displayer = panel{}

func (fb *Framebuffer) panel() panel { return panel{fb: fb} }

func (p panel) Size() (x, y int16) {
	return i16(p.fb.width), i16(p.fb.height)
}

func (p panel) SetPixel(x, y int16, c color.RGBA) {
	p.fb.SetPixel(int(x), int(y), c.R|c.G|c.B != 0)
}

// Display is a no-op; frames are published by Framebuffer.Display.
func (p panel) Display() error { return nil }

// i16 narrows a coordinate, saturating far off-panel values.
func i16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
