// internal/state/gravity_state.go
package state

import (
	"time"

	"projectile-machine/internal/event"
	"projectile-machine/internal/input"
	"projectile-machine/internal/scene"
	"projectile-machine/internal/utils"
)

// Gravity menu rows.
const (
	GravityEarth = iota
	GravityMoon
	GravityCustom

	gravityRows
)

// GravityState — меню выбора гравитации.
type GravityState struct {
	d *Device
}

func NewGravityState(d *Device) *GravityState {
	return &GravityState{d: d}
}

func (g *GravityState) Enter() {
	g.d.Renderer.SetGravityMenu(g.d.gravityCursor)
}

func (g *GravityState) Update(now time.Duration) {
	d := g.d

	if d.pressed(input.ButtonUp) {
		d.gravityCursor = utils.ClampInt(d.gravityCursor-1, 0, gravityRows-1)
	}
	if d.pressed(input.ButtonDown) {
		d.gravityCursor = utils.ClampInt(d.gravityCursor+1, 0, gravityRows-1)
	}
	d.Renderer.SetGravityMenu(d.gravityCursor)

	if d.back(now) {
		d.Go(NewHeightState(d))
		return
	}
	if !d.confirmed() {
		return
	}

	switch d.gravityCursor {
	case GravityEarth:
		g.choose(d.Presets.Earth)
	case GravityMoon:
		g.choose(d.Presets.Moon)
	default:
		d.Go(NewMorseState(d))
	}
}

func (g *GravityState) choose(value float64) {
	d := g.d
	d.Params.Gravity = value
	d.emit(event.ValueChanged, event.ValueChange{Name: "gravity", Value: value})
	d.Go(NewAngleState(d))
}

func (g *GravityState) Screen() scene.Screen { return scene.ScreenGravity }

func (g *GravityState) Exit() {}
