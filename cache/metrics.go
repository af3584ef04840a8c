package cache

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/model"
)

type metrics struct {
	requests  *prometheus.CounterVec
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
	entries   prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer, name string) (*metrics, error) {
	if !model.IsValidLegacyMetricName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMetricsName, name)
	}
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: name + "_requests_total",
				Help: "Cache lookups by result.",
			},
			[]string{"result"},
		),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: name + "_evictions_total",
			Help: "Entries evicted to make room.",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: name + "_entries",
			Help: "Entries currently cached.",
		}),
	}
	collectors := []prometheus.Collector{m.requests, m.evictions, m.entries}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			for _, done := range collectors[:i] {
				reg.Unregister(done)
			}
			return nil, fmt.Errorf("cache: register %q metrics: %w", name, err)
		}
	}
	m.hits = m.requests.WithLabelValues("hit")
	m.misses = m.requests.WithLabelValues("miss")

	return m, nil
}
