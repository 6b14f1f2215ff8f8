package state

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"projectile-machine/internal/audio"
	"projectile-machine/internal/config"
	"projectile-machine/internal/event"
	"projectile-machine/internal/input"
	"projectile-machine/internal/logging"
	"projectile-machine/internal/physics"
	"projectile-machine/internal/scene"
	"projectile-machine/pkg/render"
)

const step = config.FrameInterval

type harness struct {
	t      *testing.T
	sm     *StateMachine
	d      *Device
	beeps  *audio.Recorder
	events []event.Event
	now    time.Duration
}

func newHarness(t *testing.T) *harness {
	h := &harness{t: t, sm: NewStateMachine(), beeps: &audio.Recorder{}}

	engine := physics.NewEngine()
	fb := render.NewFramebuffer(config.ScreenWidth, config.ScreenHeight, basicfont.Face7x13)
	renderer := scene.NewRenderer(fb, engine)
	events := event.NewDispatcher()
	events.SubscribeAll(event.NewBeepListener(h.beeps), event.AllTypes...)
	events.SubscribeAll(event.ListenerFunc(func(e event.Event) { h.events = append(h.events, e) }), event.AllTypes...)

	h.d = NewDevice(h.sm, engine, renderer, &input.Buttons{}, events, logging.Nop())
	return h
}

// boot starts the device on the given state.
func (h *harness) boot(s State) {
	h.sm.SetState(s)
}

func (h *harness) step(down ...input.Button) {
	var l input.Levels
	for _, b := range down {
		l[b] = true
	}
	h.now += step
	h.d.Buttons.Update(h.now, l)
	h.sm.Update(h.now)
}

func (h *harness) tap(btn input.Button) {
	h.step(btn)
	h.step()
}

func (h *harness) hold(btn input.Button, d time.Duration) {
	for end := h.now + d; h.now < end; {
		h.step(btn)
	}
	h.step()
}

func (h *harness) screen() scene.Screen {
	return h.sm.Screen()
}

func (h *harness) count(t event.EventType) int {
	n := 0
	for _, e := range h.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (h *harness) typeMorse(seq string) {
	for i := 0; i < len(seq); i++ {
		if seq[i] == '.' {
			h.tap(input.ButtonUp)
		} else {
			h.tap(input.ButtonDown)
		}
	}
	h.tap(input.ButtonEnter)
}

type fakeState struct {
	log *[]string
	id  string
}

func (f *fakeState) Enter()               { *f.log = append(*f.log, "enter "+f.id) }
func (f *fakeState) Update(time.Duration) { *f.log = append(*f.log, "update "+f.id) }
func (f *fakeState) Screen() scene.Screen { return scene.ScreenResults }
func (f *fakeState) Exit()                { *f.log = append(*f.log, "exit "+f.id) }

func TestStateMachine_EnterExitOrder(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	assert.Equal(t, NoScreen, sm.Screen())
	sm.Update(time.Second)

	sm.SetState(&fakeState{log: &log, id: "a"})
	sm.Update(time.Second)
	sm.SetState(&fakeState{log: &log, id: "b"})
	sm.SetState(nil)

	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b", "exit b"}, log)
	assert.Nil(t, sm.Current())
}

func TestBoot_TimesOut(t *testing.T) {
	h := newHarness(t)
	h.boot(NewBootState(h.d))

	for i := 0; i < 200 && h.screen() == scene.ScreenBoot; i++ {
		h.step()
	}
	assert.Equal(t, scene.ScreenHeight, h.screen())
	assert.GreaterOrEqual(t, h.now, config.BootDuration)
	assert.Less(t, h.now, config.BootDuration+2*step)
}

func TestBoot_AnyButtonSkips(t *testing.T) {
	h := newHarness(t)
	h.boot(NewBootState(h.d))
	h.step(input.ButtonDown)
	assert.Equal(t, scene.ScreenHeight, h.screen())

	// The skipping press does not leak into the next screen.
	h.step()
	assert.Zero(t, h.d.Params.Height)
	assert.Equal(t, scene.ScreenHeight, h.screen())
}

func TestFlow_FullRunAndBack(t *testing.T) {
	h := newHarness(t)
	h.boot(NewHeightState(h.d))

	h.tap(input.ButtonUp)
	h.tap(input.ButtonUp)
	assert.Equal(t, 1.0, h.d.Params.Height)

	h.tap(input.ButtonEnter)
	require.Equal(t, scene.ScreenGravity, h.screen())

	h.tap(input.ButtonDown)
	h.tap(input.ButtonEnter)
	require.Equal(t, scene.ScreenAngle, h.screen())
	assert.Equal(t, config.MoonGravity, h.d.Params.Gravity)

	h.tap(input.ButtonUp)
	assert.Equal(t, 45.5, h.d.Params.Angle)
	assert.NotEmpty(t, h.d.Engine.Prediction(), "angle changes refresh the preview")
	assert.InDelta(t, 45.5*math.Pi/180, h.d.Engine.Parameters().Angle, 1e-12, "preview uses the new angle")

	h.tap(input.ButtonEnter)
	require.Equal(t, scene.ScreenVelocity, h.screen())
	h.tap(input.ButtonDown)
	assert.Equal(t, 19.5, h.d.Params.Velocity)

	h.tap(input.ButtonEnter)
	require.Equal(t, scene.ScreenSimulation, h.screen())
	assert.Equal(t, 1, h.count(event.RunStarted))
	assert.True(t, h.beeps.Flying())

	for i := 0; i < 5000 && h.screen() == scene.ScreenSimulation; i++ {
		h.step()
	}
	require.Equal(t, scene.ScreenResults, h.screen())
	assert.Equal(t, 1, h.count(event.GroundImpact))
	assert.False(t, h.beeps.Flying())

	s := h.d.Engine.Summary()
	p := h.d.Params.Launch()
	impact, ok := p.ImpactTime()
	require.True(t, ok)
	assert.InDelta(t, p.InitialVelocity().X*impact, s.Range, 1e-9)
	assert.Greater(t, s.MaxHeight, 1.0)
	assert.NotEmpty(t, h.d.Renderer.DottedPath())

	h.tap(input.ButtonEnter)
	assert.Equal(t, scene.ScreenHeight, h.screen())
	assert.Equal(t, Params{Height: 1, Gravity: config.MoonGravity, Angle: 45.5, Velocity: 19.5}, h.d.Params)
}

func TestLongPress_GoesBack(t *testing.T) {
	h := newHarness(t)
	h.boot(NewVelocityState(h.d))

	h.hold(input.ButtonEnter, config.LongPress+2*step)
	assert.Equal(t, scene.ScreenAngle, h.screen())

	h.hold(input.ButtonEnter, config.LongPress+2*step)
	assert.Equal(t, scene.ScreenGravity, h.screen())

	h.hold(input.ButtonEnter, config.LongPress+2*step)
	assert.Equal(t, scene.ScreenHeight, h.screen())
}

func TestRun_LongPressStops(t *testing.T) {
	h := newHarness(t)
	h.d.Params = Params{Height: 10, Gravity: config.MoonGravity, Angle: 60, Velocity: 30}
	h.boot(NewRunState(h.d))

	h.hold(input.ButtonEnter, config.LongPress+2*step)
	require.Equal(t, scene.ScreenResults, h.screen())
	assert.Equal(t, 1, h.count(event.RunStopped))
	assert.Zero(t, h.count(event.GroundImpact))
	assert.True(t, h.d.Engine.Complete())
	assert.Equal(t, h.d.Engine.Position().X, h.d.Engine.Summary().Range)
	for _, tp := range h.d.Engine.Trail() {
		assert.Equal(t, uint8(config.TrailAgeMax), tp.Age)
	}

	// The stop press does not also confirm the results screen.
	assert.Equal(t, scene.ScreenResults, h.screen())
}

func TestHeight_Limits(t *testing.T) {
	h := newHarness(t)
	h.boot(NewHeightState(h.d))

	h.tap(input.ButtonDown)
	assert.Zero(t, h.d.Params.Height)
	assert.Zero(t, h.count(event.ValueChanged))
	assert.Equal(t, 1, h.count(event.ButtonPressed))

	h.hold(input.ButtonUp, 8*time.Second)
	assert.Equal(t, config.MaxHeight, h.d.Params.Height)
	assert.Equal(t, 1, h.count(event.LimitReached))

	h.tap(input.ButtonDown)
	assert.Equal(t, config.MaxHeight-config.HeightStep, h.d.Params.Height)
}

func TestMorse_CustomGravity(t *testing.T) {
	h := newHarness(t)
	h.boot(NewGravityState(h.d))
	h.tap(input.ButtonDown)
	h.tap(input.ButtonDown)
	h.tap(input.ButtonDown) // stays on the last row
	h.tap(input.ButtonEnter)
	require.Equal(t, scene.ScreenMorse, h.screen())
	m := h.sm.Current().(*MorseState)

	h.typeMorse("..---")
	h.typeMorse(".-")
	h.typeMorse(".....")
	assert.Equal(t, "2.5", m.Value())

	h.typeMorse("..-.")
	assert.Equal(t, 1, h.count(event.InputRejected))
	assert.Equal(t, "2.5", m.Value())
	assert.Equal(t, scene.ScreenMorse, h.screen())

	h.tap(input.ButtonEnter)
	require.Equal(t, scene.ScreenAngle, h.screen())
	assert.Equal(t, 2.5, h.d.Params.Gravity)
}

func TestMorse_EmptyAndClamped(t *testing.T) {
	h := newHarness(t)
	h.boot(NewMorseState(h.d))

	h.tap(input.ButtonEnter)
	assert.Equal(t, scene.ScreenMorse, h.screen(), "nothing typed yet")
	assert.Equal(t, 1, h.count(event.InputRejected))

	h.typeMorse("..---")
	h.typeMorse(".....")
	h.tap(input.ButtonEnter)
	require.Equal(t, scene.ScreenAngle, h.screen())
	assert.Equal(t, config.MaxGravity, h.d.Params.Gravity)
	assert.Equal(t, 1, h.count(event.LimitReached))
}

func TestMorse_LongPressDeletes(t *testing.T) {
	h := newHarness(t)
	h.boot(NewMorseState(h.d))
	m := h.sm.Current().(*MorseState)

	h.typeMorse("----.")
	h.tap(input.ButtonUp)
	assert.Equal(t, ".", m.Sequence())

	h.hold(input.ButtonEnter, config.LongPress+2*step)
	assert.Empty(t, m.Sequence(), "pending symbol removed first")
	assert.Equal(t, "9", m.Value())

	h.hold(input.ButtonEnter, config.LongPress+2*step)
	assert.Empty(t, m.Value())
	assert.Equal(t, scene.ScreenMorse, h.screen())

	h.hold(input.ButtonEnter, config.LongPress+2*step)
	assert.Equal(t, scene.ScreenGravity, h.screen(), "empty entry goes back")
}

func TestGoAnnouncesScreenChange(t *testing.T) {
	h := newHarness(t)
	h.boot(NewHeightState(h.d))
	h.tap(input.ButtonEnter)

	require.Equal(t, 1, h.count(event.ScreenChanged))
	for _, e := range h.events {
		if e.Type == event.ScreenChanged {
			assert.Equal(t, event.ScreenChange{From: scene.ScreenHeight, To: scene.ScreenGravity}, e.Data)
		}
	}
	assert.Contains(t, h.beeps.Beeps, config.BeepMedium)
}
