package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Backends accepted by display.backend
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Settings holds runtime options that are not baked into the firmware constants.
type Settings struct {
	LogLevel string `mapstructure:"logLevel"`
	// LogFile receives the log instead of stderr when set.
	LogFile string `mapstructure:"logFile"`

	Display DisplaySettings `mapstructure:"display"`
	Audio   AudioSettings   `mapstructure:"audio"`
	Gravity GravitySettings `mapstructure:"gravity"`
	Boot    BootSettings    `mapstructure:"boot"`
}

type DisplaySettings struct {
	Backend string `mapstructure:"backend"`
	Scale   int    `mapstructure:"scale"`
	Tint    string `mapstructure:"tint"`
}

type AudioSettings struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// GravitySettings are the values offered by the Earth and Moon rows of the gravity menu.
type GravitySettings struct {
	Earth float64 `mapstructure:"earth"`
	Moon  float64 `mapstructure:"moon"`
}

type BootSettings struct {
	Skip bool `mapstructure:"skip"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")

	v.SetDefault("display.backend", BackendWindow)
	v.SetDefault("display.scale", 6)
	v.SetDefault("display.tint", "white")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.3)

	v.SetDefault("gravity.earth", EarthGravity)
	v.SetDefault("gravity.moon", MoonGravity)

	v.SetDefault("boot.skip", false)
}

// RegisterFlags declares the command line overrides understood by Load.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (json, yaml or toml)")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-file", "", "write the log to this file instead of stderr")
	fs.String("backend", BackendWindow, "display backend: window or terminal")
	fs.Int("scale", 6, "window pixel scale")
	fs.Bool("mute", false, "disable the buzzer")
	fs.Bool("skip-boot", false, "skip the boot animation")
}

// Load builds Settings from defaults, an optional config file, PROJECTILE_* environment
// variables and the given flag set (which may be nil).
func Load(configFile string, fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("projectile")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if fs != nil {
		bindings := map[string]string{
			"logLevel":        "log-level",
			"logFile":         "log-file",
			"display.backend": "backend",
			"display.scale":   "scale",
			"boot.skip":       "skip-boot",
		}
		for key, name := range bindings {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := fs.Lookup("mute"); f != nil && f.Changed && f.Value.String() == "true" {
			v.Set("audio.enabled", false)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects settings the device cannot run with.
func (s *Settings) Validate() error {
	var errs []error

	switch s.Display.Backend {
	case BackendWindow, BackendTerminal:
	default:
		errs = append(errs, fmt.Errorf("display.backend %q: want %q or %q", s.Display.Backend, BackendWindow, BackendTerminal))
	}
	if s.Display.Scale < 1 || s.Display.Scale > 16 {
		errs = append(errs, fmt.Errorf("display.scale %d out of range 1-16", s.Display.Scale))
	}
	switch s.Display.Tint {
	case "white", "blue":
	default:
		errs = append(errs, fmt.Errorf("display.tint %q: want white or blue", s.Display.Tint))
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %.2f out of range 0-1", s.Audio.Volume))
	}
	for name, g := range map[string]float64{"gravity.earth": s.Gravity.Earth, "gravity.moon": s.Gravity.Moon} {
		if g < MinGravity || g > MaxGravity {
			errs = append(errs, fmt.Errorf("%s %.2f out of range %.1f-%.1f", name, g, MinGravity, MaxGravity))
		}
	}

	return errors.Join(errs...)
}
