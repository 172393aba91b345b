package threadpool

import (
	"errors"
	"testing"

	"github.com/ygrebnov/threadpool/metrics"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := defaultConfig()
	if cfg.OSThread {
		t.Fatalf("OSThread default = %v; want false", cfg.OSThread)
	}
	if _, ok := cfg.Metrics.(metrics.NoopProvider); !ok {
		t.Fatalf("Metrics default = %T; want metrics.NoopProvider", cfg.Metrics)
	}
	if err := validateConfig(&cfg); err != nil {
		t.Fatalf("validateConfig returned error for defaults: %v", err)
	}
}

func TestValidateConfig_NilMetrics(t *testing.T) {
	cfg := defaultConfig()
	cfg.Metrics = nil
	if err := validateConfig(&cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("validateConfig error = %v; want ErrInvalidConfig", err)
	}
}

func TestOptions_Apply(t *testing.T) {
	cfg := defaultConfig()
	p := metrics.NewBasicProvider()

	for _, opt := range []Option{WithOSThread(), WithMetrics(p)} {
		if err := opt(&cfg); err != nil {
			t.Fatalf("unexpected option error: %v", err)
		}
	}
	if !cfg.OSThread {
		t.Fatalf("WithOSThread did not set OSThread")
	}
	if cfg.Metrics != p {
		t.Fatalf("WithMetrics did not set the provider")
	}
}

func TestWithMetrics_Nil(t *testing.T) {
	cfg := defaultConfig()
	err := WithMetrics(nil)(&cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("WithMetrics(nil) error = %v; want ErrInvalidConfig", err)
	}
	if _, ok := cfg.Metrics.(metrics.NoopProvider); !ok {
		t.Fatalf("failed option must not modify config, got %T", cfg.Metrics)
	}
}

func TestBuild_WiresConfig(t *testing.T) {
	p, err := Build(3, nil, WithOSThread())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.d == nil || p.d.launch == nil || p.d.worker == nil {
		t.Fatalf("Build returned an incomplete pool: %+v", p.d)
	}
}

func TestWithMetrics_TypedNil(t *testing.T) {
	tests := []struct {
		name string
		p    metrics.Provider
	}{
		{"basic", (*metrics.BasicProvider)(nil)},
		{"prometheus", (*metrics.PrometheusProvider)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			if err := WithMetrics(tt.p)(&cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("WithMetrics(%T nil) error = %v; want ErrInvalidConfig", tt.p, err)
			}

			cfg.Metrics = tt.p
			if err := validateConfig(&cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("validateConfig with %T nil error = %v; want ErrInvalidConfig", tt.p, err)
			}
		})
	}
}
