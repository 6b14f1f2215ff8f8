package app

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectile-machine/internal/audio"
	"projectile-machine/internal/config"
	"projectile-machine/internal/input"
	"projectile-machine/internal/logging"
	"projectile-machine/internal/scene"
	"projectile-machine/pkg/render"
)

type driver struct {
	m   *Machine
	now time.Duration
}

func (d *driver) step(down ...input.Button) {
	var l input.Levels
	for _, b := range down {
		l[b] = true
	}
	d.now += config.FrameInterval
	d.m.Step(d.now, l)
}

func (d *driver) tap(btn input.Button) {
	d.step(btn)
	d.step()
}

func countBeeps(beeps []time.Duration, want time.Duration) int {
	n := 0
	for _, b := range beeps {
		if b == want {
			n++
		}
	}
	return n
}

func TestMachine_BootTimesOutToHeight(t *testing.T) {
	rec := &audio.Recorder{}
	m := NewMachine(config.Settings{}, rec, logging.Nop())
	require.Equal(t, scene.ScreenBoot, m.Screen())

	d := &driver{m: m}
	for d.now < 3*time.Second {
		d.step()
	}

	assert.Equal(t, scene.ScreenHeight, m.Screen())
	assert.Positive(t, m.Frame.Frames())
	assert.Equal(t, 1, countBeeps(rec.Beeps, config.BeepMedium), "screen change")
}

func TestMachine_FullRun(t *testing.T) {
	rec := &audio.Recorder{}
	m := NewMachine(config.Settings{Boot: config.BootSettings{Skip: true}}, rec, logging.Nop())
	require.Equal(t, scene.ScreenHeight, m.Screen())

	d := &driver{m: m}
	d.tap(input.ButtonEnter)
	require.Equal(t, scene.ScreenGravity, m.Screen())
	d.tap(input.ButtonEnter)
	require.Equal(t, scene.ScreenAngle, m.Screen())
	d.tap(input.ButtonEnter)
	require.Equal(t, scene.ScreenVelocity, m.Screen())
	d.tap(input.ButtonEnter)
	require.Equal(t, scene.ScreenSimulation, m.Screen())
	assert.True(t, rec.Flying())

	for i := 0; i < 2000 && m.Screen() == scene.ScreenSimulation; i++ {
		d.step()
	}
	require.Equal(t, scene.ScreenResults, m.Screen())

	assert.True(t, m.Engine.Complete())
	assert.InDelta(t, 20*20/config.EarthGravity, m.Engine.Summary().Range, 1e-6)
	assert.NotEmpty(t, m.Renderer.DottedPath())

	assert.False(t, rec.Flying())
	assert.Positive(t, countBeeps(rec.Beeps, config.FlightClick))
	assert.Equal(t, 1, countBeeps(rec.Beeps, config.BeepLong), "impact")

	d.tap(input.ButtonEnter)
	assert.Equal(t, scene.ScreenHeight, m.Screen())
}

func TestMachine_GravityPresetsFromSettings(t *testing.T) {
	s := config.Settings{
		Gravity: config.GravitySettings{Earth: 9.8, Moon: 1.6},
		Boot:    config.BootSettings{Skip: true},
	}
	m := NewMachine(s, nil, logging.Nop())
	assert.Equal(t, 9.8, m.Device.Presets.Earth)
	assert.Equal(t, 1.6, m.Device.Presets.Moon)

	d := &driver{m: m}
	d.tap(input.ButtonEnter)
	d.tap(input.ButtonDown)
	d.tap(input.ButtonEnter)
	require.Equal(t, scene.ScreenAngle, m.Screen())
	assert.Equal(t, 1.6, m.Device.Params.Gravity)
}

func TestKeyLatch(t *testing.T) {
	var k keyLatch
	k.press(input.ButtonUp, 0, keyTap)

	assert.True(t, k.levels(keyTap-time.Millisecond)[input.ButtonUp])
	assert.False(t, k.levels(keyTap)[input.ButtonUp])
	assert.False(t, k.levels(0)[input.ButtonDown])

	// A repeat extends the hold, a shorter one never cuts it.
	k.press(input.ButtonUp, 100*time.Millisecond, keyTap)
	k.press(input.ButtonUp, 110*time.Millisecond, time.Millisecond)
	assert.True(t, k.levels(200*time.Millisecond)[input.ButtonUp])
	assert.False(t, k.levels(220*time.Millisecond)[input.ButtonUp])
}

func TestTerminal_HandleKey(t *testing.T) {
	term := NewTerminal(NewMachine(config.Settings{}, nil, logging.Nop()), render.PaletteWhite, logging.Nop())

	assert.True(t, term.handleKey(tcell.KeyUp, 0, 0))
	assert.True(t, term.handleKey(tcell.KeyRune, 's', 0))
	l := term.keys.levels(10 * time.Millisecond)
	assert.True(t, l[input.ButtonUp])
	assert.True(t, l[input.ButtonDown])
	assert.False(t, l[input.ButtonEnter])

	assert.True(t, term.handleKey(tcell.KeyBackspace2, 0, 0))
	assert.True(t, term.keys.levels(config.LongPress)[input.ButtonEnter])

	assert.False(t, term.handleKey(tcell.KeyEscape, 0, 0))
	assert.False(t, term.handleKey(tcell.KeyRune, 'q', 0))
}

type cell struct {
	r     rune
	style tcell.Style
}

type fakeCells map[[2]int]cell

func (f fakeCells) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	f[[2]int{x, y}] = cell{r: primary, style: style}
}

func TestTerminal_DrawHalfBlocks(t *testing.T) {
	m := NewMachine(config.Settings{}, nil, logging.Nop())
	term := NewTerminal(m, render.PaletteBlue, logging.Nop())

	m.Frame.Clear()
	m.Frame.SetPixel(3, 4, true)
	m.Frame.SetPixel(5, 7, true)
	m.Frame.Display()

	cells := fakeCells{}
	term.draw(cells)
	require.Len(t, cells, config.ScreenWidth*config.ScreenHeight/2)

	ink, paper := tcellColor(render.PaletteBlue.Ink), tcellColor(render.PaletteBlue.Paper)
	style := func(fg, bg tcell.Color) tcell.Style {
		return tcell.StyleDefault.Foreground(fg).Background(bg)
	}

	assert.Equal(t, cell{'▀', style(ink, paper)}, cells[[2]int{3, 2}])
	assert.Equal(t, cell{'▀', style(paper, ink)}, cells[[2]int{5, 3}])
	assert.Equal(t, cell{'▀', style(paper, paper)}, cells[[2]int{0, 0}])
}

func TestWindow_Layout(t *testing.T) {
	w := NewWindow(NewMachine(config.Settings{}, nil, logging.Nop()), render.PaletteWhite)
	sw, sh := w.Layout(1024, 768)
	assert.Equal(t, config.ScreenWidth, sw)
	assert.Equal(t, config.ScreenHeight, sh)
}
