// Package render provides the monochrome raster surface the device draws on:
// the Surface capability, an in-memory Framebuffer implementing it, glyph
// text, and the palette presenters use to show a finished frame.
package render

// Surface is the drawing capability of a small monochrome panel. Coordinates
// are pixels with the origin at the top-left; anything outside the panel is
// clipped. Drawing goes to a back buffer until Display publishes it.
type Surface interface {
	Width() int
	Height() int

	Clear()
	SetPixel(x, y int, on bool)
	DrawLine(x0, y0, x1, y1 int)
	DrawCircle(x, y, r int)
	FillCircle(x, y, r int, on bool)
	DrawRect(x, y, w, h int)
	FillRect(x, y, w, h int)
	DrawTriangle(x0, y0, x1, y1, x2, y2 int)
	FillTriangle(x0, y0, x1, y1, x2, y2 int)

	// SetCursor places the top-left corner of the next Print.
	SetCursor(x, y int)
	Print(s string)

	// Display publishes the back buffer as the current frame.
	Display()
}
