package cache

import "errors"

var (
	// ErrInvalidCapacity is returned for a negative capacity.
	ErrInvalidCapacity = errors.New("cache: capacity must be non-negative")

	// ErrInvalidMetricsName is returned by WithMetrics for a name that is not
	// a valid Prometheus metric name prefix.
	ErrInvalidMetricsName = errors.New("cache: invalid metrics name")
)
