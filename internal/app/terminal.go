// internal/app/terminal.go
package app

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"projectile-machine/internal/config"
	"projectile-machine/internal/input"
	"projectile-machine/pkg/render"
)

const (
	// Terminals only report key presses, so a key counts as held for this
	// long after its last event. Auto-repeat keeps it held.
	keyTap = 120 * time.Millisecond

	// Backspace holds Enter long enough to register a long press.
	keyLongPress = config.LongPress + 3*config.FrameInterval
)

// keyLatch turns key events into button levels.
type keyLatch struct {
	until [input.ButtonCount]time.Duration
}

// press keeps btn down until at least now+d.
func (k *keyLatch) press(btn input.Button, now, d time.Duration) {
	if now+d > k.until[btn] {
		k.until[btn] = now + d
	}
}

func (k *keyLatch) levels(now time.Duration) input.Levels {
	var l input.Levels
	for i := range l {
		l[i] = now < k.until[i]
	}
	return l
}

// cellSetter is the part of tcell.Screen the panel is drawn through.
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Terminal shows the machine in a text terminal, two panel rows per text row
// using the upper half block. Arrows (or w/s, k/j) are Up and Down, Enter or
// Space is Enter, Backspace is a long Enter press, Esc or Ctrl-C quits.
type Terminal struct {
	machine *Machine
	ink     tcell.Color
	paper   tcell.Color
	log     zerolog.Logger

	keys keyLatch
}

func NewTerminal(m *Machine, palette render.Palette, log zerolog.Logger) *Terminal {
	return &Terminal{
		machine: m,
		ink:     tcellColor(palette.Ink),
		paper:   tcellColor(palette.Paper),
		log:     log.With().Str("component", "terminal").Logger(),
	}
}

// Run drives the machine on a FrameInterval ticker until ctx is done or the
// user quits.
func (t *Terminal) Run(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			panic(r)
		}
	}()

	screen.HideCursor()
	screen.Clear()
	if w, h := screen.Size(); w < config.ScreenWidth || h < config.ScreenHeight/2 {
		t.log.Warn().Int("cols", w).Int("rows", h).Msg("terminal smaller than the panel, output is clipped")
	}

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !t.handleKey(ev.Key(), ev.Rune(), time.Since(start)) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			now := time.Since(start)
			t.machine.Step(now, t.keys.levels(now))
			t.draw(screen)
			screen.Show()
		}
	}
}

// handleKey latches the button for a key event. It reports false when the
// user quits.
func (t *Terminal) handleKey(key tcell.Key, r rune, now time.Duration) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		t.keys.press(input.ButtonUp, now, keyTap)
	case tcell.KeyDown:
		t.keys.press(input.ButtonDown, now, keyTap)
	case tcell.KeyEnter:
		t.keys.press(input.ButtonEnter, now, keyTap)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.keys.press(input.ButtonEnter, now, keyLongPress)
	case tcell.KeyRune:
		switch r {
		case 'w', 'k':
			t.keys.press(input.ButtonUp, now, keyTap)
		case 's', 'j':
			t.keys.press(input.ButtonDown, now, keyTap)
		case ' ':
			t.keys.press(input.ButtonEnter, now, keyTap)
		case 'q':
			return false
		}
	}
	return true
}

// draw paints the front buffer: cell (x, y) shows pixel (x, 2y) as the
// foreground and (x, 2y+1) as the background.
func (t *Terminal) draw(s cellSetter) {
	f := t.machine.Front()
	for y := 0; y < f.Height/2; y++ {
		for x := 0; x < f.Width; x++ {
			style := tcell.StyleDefault.
				Foreground(t.pick(f.On(x, 2*y))).
				Background(t.pick(f.On(x, 2*y+1)))
			s.SetContent(x, y, '▀', nil, style)
		}
	}
}

func (t *Terminal) pick(on bool) tcell.Color {
	if on {
		return t.ink
	}
	return t.paper
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
