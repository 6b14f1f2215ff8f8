// internal/state/device.go
package state

import (
	"time"

	"github.com/rs/zerolog"

	"projectile-machine/internal/config"
	"projectile-machine/internal/event"
	"projectile-machine/internal/input"
	"projectile-machine/internal/physics"
	"projectile-machine/internal/scene"
	"projectile-machine/internal/utils"
)

// Params — параметры выстрела, выбранные пользователем. Сохраняются между запусками.
type Params struct {
	Height   float64
	Gravity  float64
	Angle    float64 // degrees
	Velocity float64
}

// DefaultParams are the values shown on first boot.
func DefaultParams() Params {
	return Params{
		Height:   0,
		Gravity:  config.EarthGravity,
		Angle:    45,
		Velocity: 20,
	}
}

// Launch converts the selection into engine parameters.
func (p Params) Launch() physics.LaunchParameters {
	return physics.NewLaunchParameters(p.Height, p.Gravity, p.Angle, p.Velocity)
}

// Presets — значения строк Earth и Moon в меню гравитации.
type Presets struct {
	Earth float64
	Moon  float64
}

// Device — общий контекст состояний: ядро, рендерер, кнопки и события.
type Device struct {
	Engine   *physics.Engine
	Renderer *scene.Renderer
	Buttons  *input.Buttons
	Events   *event.Dispatcher
	Log      zerolog.Logger

	Presets Presets
	Params  Params

	gravityCursor int

	sm *StateMachine
}

// NewDevice wires a device around sm. Events may be nil.
func NewDevice(sm *StateMachine, engine *physics.Engine, renderer *scene.Renderer, buttons *input.Buttons, events *event.Dispatcher, log zerolog.Logger) *Device {
	if events == nil {
		events = event.NewDispatcher()
	}
	d := &Device{
		Engine:   engine,
		Renderer: renderer,
		Buttons:  buttons,
		Events:   events,
		Log:      log.With().Str("component", "state").Logger(),
		Presets:  Presets{Earth: config.EarthGravity, Moon: config.MoonGravity},
		Params:   DefaultParams(),
		sm:       sm,
	}
	return d
}

// SetPresets changes the gravity menu values.
func (d *Device) SetPresets(p Presets) {
	d.Presets = p
	d.Renderer.SetGravityPresets(p.Earth, p.Moon)
}

// Go switches to next, drops pending button events and announces the change.
func (d *Device) Go(next State) {
	from := d.sm.Screen()
	d.sm.SetState(next)
	d.Buttons.Reset()
	d.emit(event.ScreenChanged, event.ScreenChange{From: from, To: next.Screen()})
}

func (d *Device) emit(t event.EventType, data interface{}) {
	d.Events.Dispatch(event.Event{Type: t, Data: data})
}

func (d *Device) reject(err error) {
	d.emit(event.InputRejected, event.Rejection{Reason: err})
}

// pressed reports a press edge of btn and announces it.
func (d *Device) pressed(btn input.Button) bool {
	if d.Buttons.Pressed(btn) {
		d.emit(event.ButtonPressed, event.ButtonPress{Button: btn})
		return true
	}
	return false
}

// adjust applies Up/Down presses and hold repeats to *v. It reports whether
// the value changed.
func (d *Device) adjust(now time.Duration, name string, v *float64, step, lo, hi float64) bool {
	var delta float64
	if d.pressed(input.ButtonUp) || d.Buttons.Held(input.ButtonUp, now) {
		delta += step
	}
	if d.pressed(input.ButtonDown) || d.Buttons.Held(input.ButtonDown, now) {
		delta -= step
	}
	if delta == 0 {
		return false
	}

	next := utils.Step(*v, delta, step, lo, hi)
	if next == *v {
		return false
	}
	*v = next

	change := event.ValueChange{Name: name, Value: next}
	d.emit(event.ValueChanged, change)
	if next == lo || next == hi {
		d.emit(event.LimitReached, change)
	}
	return true
}

// preview pushes the current aim to the engine and the renderer.
func (d *Device) preview() {
	p := d.Params
	d.Engine.SetPreviewParameters(p.Launch())
	d.Renderer.SetHeight(p.Height)
	d.Renderer.SetAngle(p.Angle)
	d.Renderer.SetVelocity(p.Velocity)
	d.Renderer.SetCannonMouthPosition(p.Angle, p.Height)
}

// confirmed reports a short Enter press.
func (d *Device) confirmed() bool {
	if d.Buttons.Clicked(input.ButtonEnter) {
		d.emit(event.ButtonPressed, event.ButtonPress{Button: input.ButtonEnter})
		return true
	}
	return false
}

// back reports a long Enter press.
func (d *Device) back(now time.Duration) bool {
	return d.Buttons.LongPress(input.ButtonEnter, now)
}
