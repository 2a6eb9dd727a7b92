package config

import (
	"fmt"

	"github.com/kbukum/seqkit/logger"
)

// Settings contains every tunable seqkit exposes.
type Settings struct {
	Log   logger.Config `yaml:"log" mapstructure:"log"`
	Trace TraceSettings `yaml:"trace" mapstructure:"trace"`
}

// TraceSettings gates the pull-level instrumentation layer.
type TraceSettings struct {
	// Enabled turns trace.Stage wrapping on. Off, Stage is a no-op
	// pass-through.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Metrics turns the OpenTelemetry pull/yield counters on.
	Metrics bool `yaml:"metrics" mapstructure:"metrics"`
	// LogPulls emits a debug log line per pull. Expensive; meant for
	// debugging a single chain, not production.
	LogPulls bool `yaml:"log_pulls" mapstructure:"log_pulls"`
}

// ApplyDefaults applies default values to all settings.
func (s *Settings) ApplyDefaults() {
	s.Log.ApplyDefaults()
	if s.Trace.Enabled && !s.Trace.Metrics && !s.Trace.LogPulls {
		s.Trace.Metrics = true
	}
}

// Validate validates all settings.
func (s *Settings) Validate() error {
	if err := s.Log.Validate(); err != nil {
		return fmt.Errorf("settings.log: %w", err)
	}
	return nil
}
