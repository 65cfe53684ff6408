// Package config loads outcomecheck settings from the
// environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Output formats understood by the report writers.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Config controls a scenario run.
type Config struct {
	// Format selects the report format.
	Format string `env:"OUTCOMECHECK_FORMAT" envDefault:"text"`
	// Verbose enables debug logs and passing verdicts.
	Verbose bool `env:"OUTCOMECHECK_VERBOSE"`
	// FailFast stops after the first unexpected verdict.
	FailFast bool `env:"OUTCOMECHECK_FAIL_FAST"`
	// LogsDir, when set, receives run.log and verdicts.log.
	LogsDir string `env:"OUTCOMECHECK_LOGS_DIR"`
	// LogLevel is the minimum level written to LogsDir.
	LogLevel string `env:"OUTCOMECHECK_LOG_LEVEL" envDefault:"info"`
	// Color enables ANSI colors on the console.
	Color bool `env:"OUTCOMECHECK_COLOR" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables into
// target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration from the environment, validated.
// When EnvFileVar is set the named .env file is read first.
func Load() (Config, error) {
	if path := os.Getenv(EnvFileVar); path != "" {
		return LoadFile(path)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Formats lists the accepted report formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatMarkdown}
}

// Validate checks the configured values.
func (c Config) Validate() error {
	for _, f := range Formats() {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf(
		"invalid format %q: must be one of %v", c.Format, Formats(),
	)
}
