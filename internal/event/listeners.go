// internal/event/listeners.go
package event

import (
	"time"

	"github.com/rs/zerolog"

	"projectile-machine/internal/audio"
	"projectile-machine/internal/config"
	"projectile-machine/internal/physics"
)

// BeepListener переводит события в звуки зуммера.
type BeepListener struct {
	beeper audio.Beeper
}

func NewBeepListener(b audio.Beeper) *BeepListener {
	return &BeepListener{beeper: b}
}

// Durations of the one-shot beep for each event; zero means silent.
var beepFor = map[EventType]time.Duration{
	ButtonPressed: config.BeepShort,
	LimitReached:  config.BeepShort,
	InputRejected: config.BeepError,
	ScreenChanged: config.BeepMedium,
	RunStarted:    config.BeepMedium,
	GroundImpact:  config.BeepLong,
	RunStopped:    config.BeepLong,
}

func (l *BeepListener) OnEvent(e Event) {
	switch e.Type {
	case RunStarted:
		l.beeper.StartFlight()
	case GroundImpact, RunStopped:
		l.beeper.StopFlight()
	}
	if d := beepFor[e.Type]; d > 0 {
		l.beeper.Beep(d)
	}
}

// LogListener пишет события в лог.
type LogListener struct {
	log zerolog.Logger
}

func NewLogListener(log zerolog.Logger) *LogListener {
	return &LogListener{log: log.With().Str("component", "events").Logger()}
}

func (l *LogListener) OnEvent(e Event) {
	switch d := e.Data.(type) {
	case ButtonPress:
		l.log.Debug().Str("event", string(e.Type)).Stringer("button", d.Button).Send()
	case ValueChange:
		l.log.Debug().Str("event", string(e.Type)).Str("name", d.Name).Float64("value", d.Value).Send()
	case Rejection:
		l.log.Warn().Str("event", string(e.Type)).Err(d.Reason).Msg("input rejected")
	case ScreenChange:
		l.log.Info().Str("event", string(e.Type)).Stringer("from", d.From).Stringer("to", d.To).Msg("screen changed")
	case physics.LaunchParameters:
		l.log.Info().
			Str("event", string(e.Type)).
			Float64("height", d.Height).
			Float64("gravity", d.Gravity).
			Float64("angle_rad", d.Angle).
			Float64("speed", d.Speed).
			Msg("run started")
	case physics.Summary:
		l.log.Info().
			Str("event", string(e.Type)).
			Float64("range", d.Range).
			Float64("max_height", d.MaxHeight).
			Float64("flight_time", d.FlightTime).
			Msg("run finished")
	default:
		l.log.Debug().Str("event", string(e.Type)).Interface("data", e.Data).Send()
	}
}
