// internal/state/height_state.go
package state

import (
	"time"

	"projectile-machine/internal/config"
	"projectile-machine/internal/scene"
)

// HeightState — выбор высоты старта.
type HeightState struct {
	d *Device
}

func NewHeightState(d *Device) *HeightState {
	return &HeightState{d: d}
}

func (h *HeightState) Enter() {
	h.d.preview()
}

func (h *HeightState) Update(now time.Duration) {
	d := h.d
	if d.adjust(now, "height", &d.Params.Height, config.HeightStep, config.MinHeight, config.MaxHeight) {
		d.preview()
	}
	if d.confirmed() {
		d.Go(NewGravityState(d))
	}
}

func (h *HeightState) Screen() scene.Screen { return scene.ScreenHeight }

func (h *HeightState) Exit() {}
