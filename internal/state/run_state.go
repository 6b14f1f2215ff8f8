// internal/state/run_state.go
package state

import (
	"time"

	"projectile-machine/internal/event"
	"projectile-machine/internal/scene"
)

// RunState — полёт снаряда. Долгое нажатие Enter прерывает полёт.
type RunState struct {
	d *Device
}

func NewRunState(d *Device) *RunState {
	return &RunState{d: d}
}

func (r *RunState) Enter() {
	d := r.d
	p := d.Params.Launch()

	d.Renderer.SetCannonMouthPosition(d.Params.Angle, d.Params.Height)
	d.Renderer.ResetRun()
	d.Engine.StartRun(p)
	d.emit(event.RunStarted, p)
}

func (r *RunState) Update(now time.Duration) {
	d := r.d

	if d.back(now) {
		d.Engine.StopRun()
		d.emit(event.RunStopped, d.Engine.Summary())
		d.Go(NewResultsState(d))
		return
	}

	if !d.Engine.Tick(now) {
		return
	}
	pos := d.Engine.Position()
	d.Renderer.AddDottedPathPoint(pos.X, pos.Y)

	if d.Engine.Complete() {
		d.emit(event.GroundImpact, d.Engine.Summary())
		d.Go(NewResultsState(d))
	}
}

func (r *RunState) Screen() scene.Screen { return scene.ScreenSimulation }

func (r *RunState) Exit() {}
