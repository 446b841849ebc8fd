// Package cli holds the plumbing shared by the ben commands: environment
// settings, terminal styling, docs rendering and signal handling.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"

	"github.com/drish/ben/pkg/bench"
	"github.com/drish/ben/pkg/logging"
)

// Version is printed by -version.
const Version = "0.3.0"

// Env holds process-wide settings read from BEN_* variables.
type Env struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" desc:"log level: debug, info, warn or error"`
	Locale   string `envconfig:"LOCALE" default:"en" desc:"locale for the Ops/sec column"`
	NoBanner bool   `envconfig:"NO_BANNER" default:"false" desc:"skip the banner on terminals"`
}

// LoadEnv reads and validates Env.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(bench.EnvPrefix, &env); err != nil {
		return Env{}, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := env.Validate(); err != nil {
		return Env{}, err
	}
	return env, nil
}

// Validate checks the level and locale; all problems are reported together.
func (e Env) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(e.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%s_LOG_LEVEL: %w (want one of %v)", bench.EnvPrefix, err, logging.Levels))
	}
	if _, err := language.Parse(e.Locale); err != nil {
		errs = append(errs, fmt.Errorf("%s_LOCALE: %w", bench.EnvPrefix, err))
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level, info if invalid.
func (e Env) Level() slog.Level {
	level, _ := logging.ParseLevel(e.LogLevel)
	return level
}

// ShowBanner reports whether the banner should be printed: only on a
// terminal, and never when BEN_NO_BANNER is set.
func (e Env) ShowBanner(tty bool) bool {
	return tty && !e.NoBanner
}

// Language returns the parsed locale, English if invalid.
func (e Env) Language() language.Tag {
	tag, err := language.Parse(e.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
