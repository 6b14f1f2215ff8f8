// internal/app/machine.go
package app

import (
	"time"

	"github.com/rs/zerolog"

	"projectile-machine/internal/audio"
	"projectile-machine/internal/config"
	"projectile-machine/internal/event"
	"projectile-machine/internal/input"
	"projectile-machine/internal/physics"
	"projectile-machine/internal/scene"
	"projectile-machine/internal/state"
	"projectile-machine/pkg/render"
)

// Machine is the whole device: engine, panel, buttons, buzzer and the screen
// flow. Backends feed it button levels and show its front buffer.
type Machine struct {
	Engine   *physics.Engine
	Frame    *render.Framebuffer
	Renderer *scene.Renderer
	Buttons  *input.Buttons
	Events   *event.Dispatcher
	Device   *state.Device

	sm     *state.StateMachine
	beeper audio.Beeper
	log    zerolog.Logger
}

// NewMachine builds a machine from settings. A nil beeper is silent.
func NewMachine(s config.Settings, beeper audio.Beeper, log zerolog.Logger) *Machine {
	if beeper == nil {
		beeper = audio.Silent{}
	}

	engine := physics.NewEngine()
	frame := render.NewFramebuffer(config.ScreenWidth, config.ScreenHeight, nil)
	renderer := scene.NewRenderer(frame, engine)
	buttons := &input.Buttons{}

	events := event.NewDispatcher()
	events.SubscribeAll(event.NewBeepListener(beeper), event.AllTypes...)
	events.SubscribeAll(event.NewLogListener(log), event.AllTypes...)

	sm := state.NewStateMachine()
	device := state.NewDevice(sm, engine, renderer, buttons, events, log)
	if s.Gravity.Earth > 0 && s.Gravity.Moon > 0 {
		device.SetPresets(state.Presets{Earth: s.Gravity.Earth, Moon: s.Gravity.Moon})
	}

	m := &Machine{
		Engine:   engine,
		Frame:    frame,
		Renderer: renderer,
		Buttons:  buttons,
		Events:   events,
		Device:   device,
		sm:       sm,
		beeper:   beeper,
		log:      log.With().Str("component", "machine").Logger(),
	}

	if s.Boot.Skip {
		sm.SetState(state.NewHeightState(device))
	} else {
		sm.SetState(state.NewBootState(device))
	}
	m.log.Info().Stringer("screen", sm.Screen()).Msg("machine started")
	return m
}

// Step runs one pass of the device loop at now: sample buttons, advance the
// current screen (which ticks the engine during a run), sound the buzzer and
// redraw the panel.
func (m *Machine) Step(now time.Duration, levels input.Levels) {
	m.Buttons.Update(now, levels)
	m.sm.Update(now)
	m.beeper.Update(now)
	m.Renderer.Render(m.sm.Screen())
}

// Screen returns the screen being shown.
func (m *Machine) Screen() scene.Screen {
	return m.sm.Screen()
}

// Front returns the last displayed frame.
func (m *Machine) Front() render.Frame {
	return m.Frame.Front()
}
