// internal/state/results_state.go
package state

import (
	"time"

	"projectile-machine/internal/scene"
)

// ResultsState — итоги полёта. Enter возвращает к выбору высоты, параметры сохраняются.
type ResultsState struct {
	d *Device
}

func NewResultsState(d *Device) *ResultsState {
	return &ResultsState{d: d}
}

func (r *ResultsState) Enter() {
	r.d.Renderer.SetResults(r.d.Engine.Summary())
}

func (r *ResultsState) Update(now time.Duration) {
	if r.d.confirmed() {
		r.d.Go(NewHeightState(r.d))
	}
}

func (r *ResultsState) Screen() scene.Screen { return scene.ScreenResults }

func (r *ResultsState) Exit() {}
