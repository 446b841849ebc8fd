package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix for environment overrides of Config fields,
// e.g. BEN_DURATION=10s.
const EnvPrefix = "BEN"

// Config controls how long each case in a suite is measured.
type Config struct {
	// Measurement settings
	Duration time.Duration `envconfig:"DURATION" desc:"sampling time per case"`
	Warmup   time.Duration `envconfig:"WARMUP" desc:"unmeasured run time before sampling"`

	// Sampling settings
	MinSamples    int           `envconfig:"MIN_SAMPLES" desc:"minimum samples, even past the duration"`
	MinSampleTime time.Duration `envconfig:"MIN_SAMPLE_TIME" desc:"smallest run time of one sample batch"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Duration:      5 * time.Second,
		Warmup:        1 * time.Second,
		MinSamples:    5,
		MinSampleTime: 50 * time.Millisecond,
	}
}

// LoadEnv overlays BEN_* environment variables onto cfg. Fields whose
// variable is unset keep their current value.
func LoadEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("failed to read benchmark config from environment: %w", err)
	}
	return nil
}

// Validate reports every invalid field, not only the first.
func (c Config) Validate() error {
	var errs []error

	if c.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive, got %s", c.Duration))
	}
	if c.Warmup < 0 {
		errs = append(errs, fmt.Errorf("warmup must not be negative, got %s", c.Warmup))
	}
	if c.MinSamples < 1 {
		errs = append(errs, fmt.Errorf("min samples must be at least 1, got %d", c.MinSamples))
	}
	if c.MinSampleTime <= 0 {
		errs = append(errs, fmt.Errorf("min sample time must be positive, got %s", c.MinSampleTime))
	}

	return errors.Join(errs...)
}
