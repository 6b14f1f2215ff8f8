package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	s, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Empty(t, s.LogFile)
	assert.Equal(t, BackendWindow, s.Display.Backend)
	assert.Equal(t, 6, s.Display.Scale)
	assert.Equal(t, "white", s.Display.Tint)
	assert.True(t, s.Audio.Enabled)
	assert.InDelta(t, 0.3, s.Audio.Volume, 1e-9)
	assert.InDelta(t, EarthGravity, s.Gravity.Earth, 1e-9)
	assert.InDelta(t, MoonGravity, s.Gravity.Moon, 1e-9)
	assert.False(t, s.Boot.Skip)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.json")
	cfg := `{
		"logLevel": "debug",
		"display": { "backend": "terminal", "tint": "blue" },
		"gravity": { "moon": 1.6 }
	}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	s, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, BackendTerminal, s.Display.Backend)
	assert.Equal(t, "blue", s.Display.Tint)
	assert.InDelta(t, 1.6, s.Gravity.Moon, 1e-9)
	assert.InDelta(t, EarthGravity, s.Gravity.Earth, 1e-9)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/machine.json", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_FlagsOverrideDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--backend=terminal", "--scale=3", "--mute", "--skip-boot", "--log-level=warn", "--log-file=run.log"}))

	s, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, BackendTerminal, s.Display.Backend)
	assert.Equal(t, 3, s.Display.Scale)
	assert.False(t, s.Audio.Enabled)
	assert.True(t, s.Boot.Skip)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, "run.log", s.LogFile)
}

func TestLoad_UnchangedFlagsKeepFileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  scale: 9\n"), 0644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	s, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 9, s.Display.Scale)
}

func TestValidate(t *testing.T) {
	valid := func() Settings {
		return Settings{
			LogLevel: "info",
			Display:  DisplaySettings{Backend: BackendWindow, Scale: 4, Tint: "white"},
			Audio:    AudioSettings{Enabled: true, Volume: 0.5},
			Gravity:  GravitySettings{Earth: EarthGravity, Moon: MoonGravity},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"valid", func(*Settings) {}, ""},
		{"unknown backend", func(s *Settings) { s.Display.Backend = "oled" }, "display.backend"},
		{"scale too small", func(s *Settings) { s.Display.Scale = 0 }, "display.scale"},
		{"bad tint", func(s *Settings) { s.Display.Tint = "green" }, "display.tint"},
		{"loud", func(s *Settings) { s.Audio.Volume = 2 }, "audio.volume"},
		{"earth gravity too high", func(s *Settings) { s.Gravity.Earth = 25 }, "gravity.earth"},
		{"moon gravity too low", func(s *Settings) { s.Gravity.Moon = 0 }, "gravity.moon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
