package threadpool

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/threadpool/metrics"
)

// config holds ThreadPool configuration.
type config struct {
	// OSThread runs every job on a dedicated OS thread instead of a plain goroutine.
	// Default: false
	OSThread bool

	// Metrics receives dispatch instruments.
	// Default: metrics.NoopProvider
	Metrics metrics.Provider
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		OSThread: false,
		Metrics:  metrics.NewNoopProvider(),
	}
}

// validateConfig checks invariants that individual options cannot see on their own.
func validateConfig(cfg *config) error {
	if isNilProvider(cfg.Metrics) {
		return errorc.With(ErrInvalidConfig, errorc.String("", "metrics provider is nil"))
	}
	return nil
}

// Option configures a ThreadPool. Pass options to Build.
type Option func(*config) error

// WithOSThread makes each dispatched job run on its own OS thread.
// The thread is locked for the whole job and retired by the runtime once the job returns.
func WithOSThread() Option {
	return func(cfg *config) error { cfg.OSThread = true; return nil }
}

// WithMetrics records dispatch metrics through p.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if isNilProvider(p) {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}

// isNilProvider reports whether p is nil or wraps a nil pointer, map, func or similar.
func isNilProvider(p metrics.Provider) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
