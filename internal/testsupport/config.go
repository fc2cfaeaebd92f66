package testsupport

import (
	"path/filepath"
	"testing"

	"redzebra/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	cfg *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DocumentsDir = filepath.Join(base, "documents")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{cfg: &cfgVal}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLogLevel overrides the logging level on the test config.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}

// WithZalgoMaxMarks overrides the zalgo mark limit on the test config.
func WithZalgoMaxMarks(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Decorate.ZalgoMaxMarks = n
	}
}

// WithFont sets the editor font family and size on the test config.
func WithFont(family int, size float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Editor.FontFamily = family
		b.cfg.Editor.FontSize = size
	}
}

// WriteConfig saves cfg to path, failing the test on error.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("write test config %s: %v", path, err)
	}
}
