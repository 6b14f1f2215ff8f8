// internal/state/boot_state.go
package state

import (
	"time"

	"projectile-machine/internal/config"
	"projectile-machine/internal/input"
	"projectile-machine/internal/scene"
)

// BootState — заставка при включении. Любая кнопка пропускает её.
type BootState struct {
	d       *Device
	started bool
	start   time.Duration
}

func NewBootState(d *Device) *BootState {
	return &BootState{d: d}
}

func (b *BootState) Enter() {
	b.started = false
	b.d.Renderer.SetBootPhase(0)
}

func (b *BootState) Update(now time.Duration) {
	if !b.started {
		b.started = true
		b.start = now
	}
	elapsed := now - b.start
	b.d.Renderer.SetBootPhase(int(elapsed / config.BootPhaseStep))

	skipped := false
	for btn := input.Button(0); btn < input.ButtonCount; btn++ {
		if b.d.Buttons.Pressed(btn) {
			skipped = true
		}
	}

	if skipped || elapsed >= config.BootDuration {
		b.d.Go(NewHeightState(b.d))
	}
}

func (b *BootState) Screen() scene.Screen { return scene.ScreenBoot }

func (b *BootState) Exit() {}
