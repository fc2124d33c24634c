package audio

import (
	"os"
	"strconv"
)

// Environment overrides read by LoadConfig
const (
	EnvAudioEnabled = "FLICK_AUDIO_ENABLED"
	EnvVolume       = "FLICK_VOLUME"
)

// Config controls cue playback
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0 - 1.0
	SampleRate int
}

// DefaultConfig returns audio enabled at half volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 44100,
	}
}

// LoadConfig loads audio configuration from environment variables
// Invalid values are ignored
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.SetVolumePercent(val)
		}
	}

	return cfg
}

// SetVolumePercent sets Volume from a 0-100 value, clamped
func (c *Config) SetVolumePercent(pct int) {
	c.Volume = float64(pct) / 100.0
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 1 {
		c.Volume = 1
	}
}
