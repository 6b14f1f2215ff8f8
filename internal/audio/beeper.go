// Package audio defines the device buzzer and its test doubles. The sound
// card backend is in audio/tone.
package audio

import (
	"time"

	"projectile-machine/internal/config"
)

// Beeper is the buzzer: one-shot beeps plus a periodic click during flight.
type Beeper interface {
	Beep(d time.Duration)
	StartFlight()
	StopFlight()
	// Update emits a flight click when one is due.
	Update(now time.Duration)
}

// FlightClock decides when flight clicks are due.
type FlightClock struct {
	active  bool
	clicked bool
	last    time.Duration
}

func (f *FlightClock) Start() {
	f.active = true
	f.clicked = false
}

func (f *FlightClock) Stop() {
	f.active = false
}

// Active reports whether clicks are enabled.
func (f *FlightClock) Active() bool { return f.active }

// Due reports whether a click should sound at now and records it.
func (f *FlightClock) Due(now time.Duration) bool {
	if !f.active {
		return false
	}
	if f.clicked && now-f.last < config.FlightBeepInterval {
		return false
	}
	f.clicked = true
	f.last = now
	return true
}

// Silent discards every sound.
type Silent struct{}

func (Silent) Beep(time.Duration)   {}
func (Silent) StartFlight()         {}
func (Silent) StopFlight()          {}
func (Silent) Update(time.Duration) {}

// Recorder keeps the durations of everything it was asked to play.
type Recorder struct {
	Beeps  []time.Duration
	flight FlightClock
}

func (r *Recorder) Beep(d time.Duration) {
	r.Beeps = append(r.Beeps, d)
}

func (r *Recorder) StartFlight() { r.flight.Start() }
func (r *Recorder) StopFlight()  { r.flight.Stop() }

func (r *Recorder) Update(now time.Duration) {
	if r.flight.Due(now) {
		r.Beep(config.FlightClick)
	}
}

// Flying reports whether flight clicks are enabled.
func (r *Recorder) Flying() bool { return r.flight.Active() }

// Reset forgets recorded beeps.
func (r *Recorder) Reset() { r.Beeps = r.Beeps[:0] }
