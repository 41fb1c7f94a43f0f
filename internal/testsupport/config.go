package testsupport

import (
	"path/filepath"
	"testing"

	"culler/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.CatalogPath = filepath.Join(base, "catalog.db")
	cfgVal.Probe.Enabled = false
	cfgVal.Scan.Workers = 1

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithWorkers overrides the scan worker count on the test config.
func WithWorkers(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.Workers = n
	}
}

// WithFingerprint toggles fingerprinting on the test config.
func WithFingerprint(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.Fingerprint = enabled
	}
}

// WithProbe toggles ffprobe usage on the test config.
func WithProbe(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Probe.Enabled = enabled
	}
}
