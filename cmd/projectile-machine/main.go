// cmd/projectile-machine/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"projectile-machine/internal/app"
	"projectile-machine/internal/audio"
	"projectile-machine/internal/audio/tone"
	"projectile-machine/internal/config"
	"projectile-machine/internal/logging"
	"projectile-machine/pkg/render"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "projectile-machine: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("projectile-machine", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	configFile, _ := fs.GetString("config")

	settings, err := config.Load(configFile, fs)
	if err != nil {
		return err
	}

	logOut, closeLog, err := logWriter(settings)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logging.New(logOut, settings.LogLevel)

	palette, err := render.PaletteByName(settings.Display.Tint)
	if err != nil {
		return err
	}

	beeper := newBeeper(settings.Audio, log)
	if tb, ok := beeper.(*tone.Beeper); ok {
		defer tb.Close()
	}

	machine := app.NewMachine(*settings, beeper, log)

	log.Info().
		Str("backend", settings.Display.Backend).
		Int("scale", settings.Display.Scale).
		Str("tint", settings.Display.Tint).
		Msg("starting")

	switch settings.Display.Backend {
	case config.BackendTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return app.NewTerminal(machine, palette, log).Run(ctx)
	default:
		return app.NewWindow(machine, palette).Run(settings.Display.Scale)
	}
}

// logWriter picks where the log goes. The terminal backend owns the screen,
// so without a log file its log is dropped.
func logWriter(s *config.Settings) (io.Writer, func(), error) {
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
	if s.Display.Backend == config.BackendTerminal {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}

func newBeeper(s config.AudioSettings, log zerolog.Logger) audio.Beeper {
	if !s.Enabled {
		log.Info().Msg("buzzer muted")
		return audio.Silent{}
	}
	b, err := tone.New(s.Volume, log)
	if err != nil {
		log.Warn().Err(err).Msg("no audio device, buzzer disabled")
		return audio.Silent{}
	}
	return b
}
