package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// PrometheusProvider exports instruments as Prometheus collectors.
//
// Counters map to prometheus.Counter, up/down counters to prometheus.Gauge and
// histograms to prometheus.Histogram with default buckets. The instrument description
// becomes the help text and attributes become constant labels. The unit is advisory and
// is expected to already be part of the name.
//
// If a collector of the same type, name and help is already registered, for example by
// another provider on the same registry, it is reused. Any other registration failure,
// such as a name that is not valid UTF-8 or a name already taken by a collector of
// another type, leaves the instrument working but unexported, since Provider cannot
// return errors.
type PrometheusProvider struct {
	reg prometheus.Registerer

	mu         sync.Mutex
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// NewPrometheusProvider registers instruments on reg, or on prometheus.DefaultRegisterer if reg is nil.
func NewPrometheusProvider(reg prometheus.Registerer) *PrometheusProvider {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &PrometheusProvider{
		reg:        reg,
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}
}

func (p *PrometheusProvider) Counter(name string, opts ...InstrumentOption) Counter {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.counters[name]
	if !ok {
		cfg := applyOptions(opts)
		c = register(p.reg, prometheus.NewCounter(prometheus.CounterOpts{
			Name:        name,
			Help:        helpText(name, cfg),
			ConstLabels: cfg.Attributes,
		}), dto.MetricType_COUNTER)
		p.counters[name] = c
	}
	return promCounter{c: c}
}

func (p *PrometheusProvider) UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter {
	p.mu.Lock()
	defer p.mu.Unlock()
	g, ok := p.gauges[name]
	if !ok {
		cfg := applyOptions(opts)
		g = register(p.reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        name,
			Help:        helpText(name, cfg),
			ConstLabels: cfg.Attributes,
		}), dto.MetricType_GAUGE)
		p.gauges[name] = g
	}
	return promGauge{g: g}
}

func (p *PrometheusProvider) Histogram(name string, opts ...InstrumentOption) Histogram {
	p.mu.Lock()
	defer p.mu.Unlock()
	h, ok := p.histograms[name]
	if !ok {
		cfg := applyOptions(opts)
		h = register(p.reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        name,
			Help:        helpText(name, cfg),
			ConstLabels: cfg.Attributes,
			Buckets:     prometheus.DefBuckets,
		}), dto.MetricType_HISTOGRAM)
		p.histograms[name] = h
	}
	return promHistogram{h: h}
}

func helpText(name string, cfg InstrumentConfig) string {
	if cfg.Description == "" {
		return name
	}
	return cfg.Description
}

// register adds c to reg. When an equal collector of the same metric type is already
// registered, that one is returned instead. A gauge satisfies prometheus.Counter, so the
// interface assertion alone cannot tell them apart.
func register[C prometheus.Collector](reg prometheus.Registerer, c C, kind dto.MetricType) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok && metricType(existing) == kind {
			return existing
		}
	}
	return c
}

// metricType reports the type c writes, or UNTYPED if c is not a single metric.
func metricType(c prometheus.Collector) dto.MetricType {
	m, ok := c.(prometheus.Metric)
	if !ok {
		return dto.MetricType_UNTYPED
	}
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		return dto.MetricType_UNTYPED
	}
	switch {
	case out.Counter != nil:
		return dto.MetricType_COUNTER
	case out.Gauge != nil:
		return dto.MetricType_GAUGE
	case out.Histogram != nil:
		return dto.MetricType_HISTOGRAM
	default:
		return dto.MetricType_UNTYPED
	}
}

type promCounter struct{ c prometheus.Counter }

// Add ignores negative n; Prometheus counters only go up.
func (pc promCounter) Add(n int64) {
	if n < 0 {
		return
	}
	pc.c.Add(float64(n))
}

type promGauge struct{ g prometheus.Gauge }

func (pg promGauge) Add(n int64) { pg.g.Add(float64(n)) }

type promHistogram struct{ h prometheus.Histogram }

func (ph promHistogram) Record(v float64) { ph.h.Observe(v) }
