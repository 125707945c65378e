package faceit

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records one observation per round trip. Pass it through
// ClientConfig.Metrics; a nil *Metrics records nothing.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the client collectors on reg, or on the default
// registerer when reg is nil. It panics if they are already registered there.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "faceit_client_requests_total",
				Help: "Total number of FACEIT API requests by route, method and status code",
			},
			[]string{"api", "method", "code"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "faceit_client_request_duration_seconds",
				Help:    "FACEIT API round trip latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"api", "method"},
		),
	}
}

func (m *Metrics) observe(api, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	m.requestsTotal.WithLabelValues(api, method, code).Inc()
	m.requestDuration.WithLabelValues(api, method).Observe(elapsed.Seconds())
}
