package gesture

import (
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// DefaultLineThreshold is the allowed perpendicular deviation in view units
const DefaultLineThreshold = 10.0

// EnvLineThreshold overrides Config.LineThreshold when set
const EnvLineThreshold = "FLICK_LINE_THRESHOLD"

// ErrInvalidThreshold is returned for negative or non-finite thresholds
var ErrInvalidThreshold = errors.New("line threshold must be a finite non-negative number")

// Config tunes recognizer acceptance
type Config struct {
	// LineThreshold is how far a touch may stray from the line between the start and current point
	LineThreshold float64
}

// DefaultConfig returns the stock recognizer configuration
func DefaultConfig() Config {
	return Config{LineThreshold: DefaultLineThreshold}
}

// LoadConfig returns DefaultConfig with environment overrides applied
// Unparseable values are reported; the returned config keeps the default in that case
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvLineThreshold); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, errors.Wrapf(err, "parse %s", EnvLineThreshold)
		}
		cfg.LineThreshold = f
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Validate checks the configuration values
func (c Config) Validate() error {
	if c.LineThreshold < 0 || math.IsNaN(c.LineThreshold) || math.IsInf(c.LineThreshold, 0) {
		return errors.Wrapf(ErrInvalidThreshold, "got %v", c.LineThreshold)
	}
	return nil
}
