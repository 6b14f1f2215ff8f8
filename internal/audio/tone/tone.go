// Package tone plays the buzzer on the default audio device.
package tone

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"projectile-machine/internal/audio"
	"projectile-machine/internal/config"
)

const sampleRate = beep.SampleRate(44100)

var _ audio.Beeper = (*Beeper)(nil)

// Beeper plays square-wave beeps on the default audio device.
type Beeper struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	flight audio.FlightClock
	log    zerolog.Logger
}

// New opens the speaker and starts the mixer. volume is in [0, 1].
func New(volume float64, log zerolog.Logger) (*Beeper, error) {
	b := &Beeper{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(1, volume)),
		log:    log.With().Str("component", "audio").Logger(),
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(b.mixer)

	b.log.Debug().Int("sample_rate", int(sampleRate)).Float64("volume", b.volume).Msg("speaker ready")
	return b, nil
}

func (b *Beeper) Beep(d time.Duration) {
	if d <= 0 {
		return
	}
	s := beep.Take(sampleRate.N(d), squareTone(sampleRate, config.BeepFrequency, b.volume))

	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
}

func (b *Beeper) StartFlight() {
	b.mu.Lock()
	b.flight.Start()
	b.mu.Unlock()
}

func (b *Beeper) StopFlight() {
	b.mu.Lock()
	b.flight.Stop()
	b.mu.Unlock()
}

func (b *Beeper) Update(now time.Duration) {
	b.mu.Lock()
	due := b.flight.Due(now)
	b.mu.Unlock()

	if due {
		b.Beep(config.FlightClick)
	}
}

// Close silences everything still playing.
func (b *Beeper) Close() {
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
}

// squareTone returns an endless square wave of freq Hz at the given amplitude.
func squareTone(sr beep.SampleRate, freq, amplitude float64) beep.Streamer {
	phase := 0.0
	step := freq / float64(sr)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			v := amplitude
			if phase >= 0.5 {
				v = -amplitude
			}
			samples[i][0] = v
			samples[i][1] = v

			phase += step
			phase -= math.Floor(phase)
		}
		return len(samples), true
	})
}
