// internal/app/window.go
package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"projectile-machine/internal/config"
	"projectile-machine/internal/input"
	"projectile-machine/pkg/render"
)

// Window shows the machine in a desktop window. Arrow keys (or W/S) are Up
// and Down, Enter or Space is the Enter button, Escape quits. The panel is
// dimmed while the window is not focused.
type Window struct {
	machine *Machine
	palette render.Palette
	start   time.Time

	panel *ebiten.Image
	pix   []byte
}

func NewWindow(m *Machine, palette render.Palette) *Window {
	return &Window{
		machine: m,
		palette: palette,
		start:   time.Now(),
	}
}

// Run opens the window at scale screen pixels per panel pixel and blocks
// until it is closed.
func (w *Window) Run(scale int) error {
	ebiten.SetWindowSize(config.ScreenWidth*scale, config.ScreenHeight*scale)
	ebiten.SetWindowTitle("Projectile Machine")
	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	w.machine.Step(time.Since(w.start), keyLevels())
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.panel == nil {
		w.panel = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	}
	p := w.palette
	if !ebiten.IsFocused() {
		p = p.Dimmed()
	}
	w.pix = w.machine.Front().RGBA(w.pix, p)
	w.panel.WritePixels(w.pix)
	screen.DrawImage(w.panel, nil)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func keyLevels() input.Levels {
	var l input.Levels
	l[input.ButtonUp] = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	l[input.ButtonDown] = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	l[input.ButtonEnter] = ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeySpace)
	return l
}
