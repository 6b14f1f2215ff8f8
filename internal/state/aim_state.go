// internal/state/aim_state.go
package state

import (
	"time"

	"projectile-machine/internal/config"
	"projectile-machine/internal/scene"
)

// AngleState — наводка ствола. Траектория пересчитывается при каждом изменении.
type AngleState struct {
	d *Device
}

func NewAngleState(d *Device) *AngleState {
	return &AngleState{d: d}
}

func (a *AngleState) Enter() {
	a.d.preview()
}

func (a *AngleState) Update(now time.Duration) {
	d := a.d
	if d.adjust(now, "angle", &d.Params.Angle, config.AngleStep, config.MinAngle, config.MaxAngle) {
		d.preview()
	}
	if d.back(now) {
		d.Go(NewGravityState(d))
		return
	}
	if d.confirmed() {
		d.Go(NewVelocityState(d))
	}
}

func (a *AngleState) Screen() scene.Screen { return scene.ScreenAngle }

func (a *AngleState) Exit() {}

// VelocityState — выбор начальной скорости.
type VelocityState struct {
	d *Device
}

func NewVelocityState(d *Device) *VelocityState {
	return &VelocityState{d: d}
}

func (v *VelocityState) Enter() {
	v.d.preview()
}

func (v *VelocityState) Update(now time.Duration) {
	d := v.d
	if d.adjust(now, "velocity", &d.Params.Velocity, config.VelocityStep, config.MinVelocity, config.MaxVelocity) {
		d.preview()
	}
	if d.back(now) {
		d.Go(NewAngleState(d))
		return
	}
	if d.confirmed() {
		d.Go(NewRunState(d))
	}
}

func (v *VelocityState) Screen() scene.Screen { return scene.ScreenVelocity }

func (v *VelocityState) Exit() {}
