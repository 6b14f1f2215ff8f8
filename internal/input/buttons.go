// internal/input/buttons.go
package input

import (
	"time"

	"projectile-machine/internal/config"
)

// Button is one of the three physical keys.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonEnter

	ButtonCount
)

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonEnter:
		return "enter"
	}
	return "unknown"
}

// Levels is the raw down state of every button for one sample.
type Levels [ButtonCount]bool

type buttonState struct {
	down bool

	pressTime  time.Duration
	lastRepeat time.Duration

	pressed   bool // unconsumed press edge
	clicked   bool // unconsumed release of a press shorter than LongPress
	holding   bool
	longFired bool
}

// Buttons debounces raw levels and turns them into press, hold-repeat,
// click and long-press events. Events are consumed by the query that
// reports them.
type Buttons struct {
	states     [ButtonCount]buttonState
	lastSample time.Duration
}

// Update samples levels at now. Samples closer than DebounceInterval to the
// previous one are ignored.
func (b *Buttons) Update(now time.Duration, levels Levels) {
	if now-b.lastSample < config.DebounceInterval {
		return
	}
	b.lastSample = now

	for i := range b.states {
		st := &b.states[i]
		was := st.down
		st.down = levels[i]

		switch {
		case st.down && !was:
			st.pressed = true
			st.clicked = false
			st.holding = false
			st.longFired = false
			st.pressTime = now
			st.lastRepeat = now
		case !st.down:
			if was && !st.longFired {
				st.clicked = true
			}
			st.pressed = false
			st.holding = false
		}

		if st.down && now-st.pressTime > config.HoldStart {
			st.holding = true
		}
	}
}

// IsDown reports the debounced level.
func (b *Buttons) IsDown(btn Button) bool {
	return b.states[btn].down
}

// Pressed reports a press edge once.
func (b *Buttons) Pressed(btn Button) bool {
	st := &b.states[btn]
	if st.pressed {
		st.pressed = false
		return true
	}
	return false
}

// Held reports a repeat tick while the button is held past HoldStart. Ticks
// come every HoldRepeat, and every HoldRepeatFast once the press is older
// than HoldAccelerate.
func (b *Buttons) Held(btn Button, now time.Duration) bool {
	st := &b.states[btn]
	if !st.holding {
		return false
	}

	rate := config.HoldRepeat
	if now-st.pressTime > config.HoldAccelerate {
		rate = config.HoldRepeatFast
	}
	if now-st.lastRepeat > rate {
		st.lastRepeat = now
		return true
	}
	return false
}

// Clicked reports, once, that the button was released before a long press
// registered.
func (b *Buttons) Clicked(btn Button) bool {
	st := &b.states[btn]
	if st.clicked {
		st.clicked = false
		return true
	}
	return false
}

// LongPress reports once per press that the button has been down for at
// least LongPress. The pending press edge is dropped with it.
func (b *Buttons) LongPress(btn Button, now time.Duration) bool {
	st := &b.states[btn]
	if st.down && !st.longFired && now-st.pressTime >= config.LongPress {
		st.longFired = true
		st.pressed = false
		return true
	}
	return false
}

// Reset forgets pending events; levels are kept so a key still down does not
// produce a new press.
func (b *Buttons) Reset() {
	for i := range b.states {
		st := &b.states[i]
		st.pressed = false
		st.clicked = false
		st.longFired = st.down
	}
}
