// internal/state/morse_state.go
package state

import (
	"errors"
	"fmt"
	"time"

	"projectile-machine/internal/config"
	"projectile-machine/internal/event"
	"projectile-machine/internal/input"
	"projectile-machine/internal/scene"
	"projectile-machine/internal/utils"
)

var (
	ErrUnknownSequence = errors.New("unknown morse sequence")
	ErrSequenceFull    = errors.New("morse sequence is full")
)

// MorseState — ввод своей гравитации кодом Морзе: Up = точка, Down = тире,
// Enter подтверждает символ, Enter на пустой последовательности завершает ввод.
type MorseState struct {
	d     *Device
	morse input.Morse
	entry input.NumberEntry
}

func NewMorseState(d *Device) *MorseState {
	return &MorseState{d: d}
}

func (m *MorseState) Enter() {
	m.morse.Reset()
	m.entry.Reset()
	m.show()
}

func (m *MorseState) Update(now time.Duration) {
	d := m.d

	if d.pressed(input.ButtonUp) {
		m.add(input.Dot)
	}
	if d.pressed(input.ButtonDown) {
		m.add(input.Dash)
	}

	if d.back(now) {
		if !m.deleteLast() {
			d.Go(NewGravityState(d))
			return
		}
	}

	if d.confirmed() {
		if m.confirm() {
			return
		}
	}
	m.show()
}

func (m *MorseState) add(symbol byte) {
	if !m.morse.Add(symbol) {
		m.d.reject(ErrSequenceFull)
	}
}

func (m *MorseState) deleteLast() bool {
	if m.morse.DeleteLast() {
		return true
	}
	return m.entry.Backspace()
}

// confirm decodes the pending symbol and reports whether the state was left.
func (m *MorseState) confirm() bool {
	d := m.d

	switch r := m.morse.Confirm(); r {
	case input.Invalid:
		d.reject(ErrUnknownSequence)
	case input.Complete:
		v, err := m.entry.Value()
		if err != nil {
			d.reject(fmt.Errorf("custom gravity: %w", err))
			return false
		}
		g := utils.Clamp(v, config.MinGravity, config.MaxGravity)
		d.Params.Gravity = g

		change := event.ValueChange{Name: "gravity", Value: g}
		d.emit(event.ValueChanged, change)
		if g != v {
			d.emit(event.LimitReached, change)
		}
		d.Log.Debug().Str("typed", m.entry.String()).Float64("gravity", g).Msg("custom gravity set")

		d.Go(NewAngleState(d))
		return true
	default:
		if err := m.entry.Append(r); err != nil {
			d.reject(err)
		}
	}
	return false
}

func (m *MorseState) show() {
	m.d.Renderer.SetMorseInput(m.entry.String(), m.morse.Sequence())
}

// Value returns the number typed so far.
func (m *MorseState) Value() string { return m.entry.String() }

// Sequence returns the pending dots and dashes.
func (m *MorseState) Sequence() string { return m.morse.Sequence() }

func (m *MorseState) Screen() scene.Screen { return scene.ScreenMorse }

func (m *MorseState) Exit() {}
