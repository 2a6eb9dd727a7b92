package config

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeFS reports no files at all, so Load falls back to env + defaults.
type fakeFS struct{}

func (fakeFS) Exists(string) bool   { return false }
func (fakeFS) LoadEnv(string) error { return nil }

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load(WithFileSystem(fakeFS{}))
	if err != nil {
		t.Fatal(err)
	}
	if settings.Log.Level != "info" {
		t.Errorf("log level = %s, want info", settings.Log.Level)
	}
	if settings.Trace.Enabled {
		t.Error("trace enabled by default")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SEQKIT_LOG_LEVEL", "debug")
	t.Setenv("SEQKIT_TRACE_ENABLED", "true")

	settings, err := Load(WithFileSystem(fakeFS{}))
	if err != nil {
		t.Fatal(err)
	}
	if settings.Log.Level != "debug" {
		t.Errorf("log level = %s, want debug", settings.Log.Level)
	}
	if !settings.Trace.Enabled {
		t.Error("trace.enabled not picked up from env")
	}
	// Enabled without an explicit sink defaults to metrics.
	if !settings.Trace.Metrics {
		t.Error("trace.metrics default not applied")
	}
}

func TestLoad_InvalidLevelRejected(t *testing.T) {
	t.Setenv("SEQKIT_LOG_LEVEL", "loud")
	if _, err := Load(WithFileSystem(fakeFS{})); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seqkit.yml")
	content := "log:\n  level: warn\ntrace:\n  enabled: true\n  log_pulls: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatal(err)
	}
	if settings.Log.Level != "warn" {
		t.Errorf("log level = %s, want warn", settings.Log.Level)
	}
	if !settings.Trace.Enabled || !settings.Trace.LogPulls {
		t.Errorf("trace = %+v", settings.Trace)
	}
	// An explicit sink means the metrics default must not kick in.
	if settings.Trace.Metrics {
		t.Error("metrics default applied despite explicit log_pulls")
	}
}

func TestSettings_ApplyDefaults(t *testing.T) {
	s := Settings{}
	s.Trace.Enabled = true
	s.ApplyDefaults()
	if !s.Trace.Metrics {
		t.Error("enabled trace without sinks should default to metrics")
	}
}
