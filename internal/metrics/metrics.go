package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsTotal counts DeBank API requests by path and outcome.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "debank",
			Name:      "requests_total",
			Help:      "Total number of DeBank API requests by path and outcome.",
		},
		[]string{"path", "outcome"},
	)

	// RequestDuration tracks DeBank API latency by path.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "debank",
			Name:      "request_duration_seconds",
			Help:      "Latency of DeBank API requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)

// MustRegisterMetrics registers the collectors with the default registry.
func MustRegisterMetrics() {
	prometheus.MustRegister(RequestsTotal, RequestDuration)
}

// Observer records request outcomes. It satisfies debank.Observer.
type Observer struct{}

// NewObserver returns an Observer writing to the package collectors.
func NewObserver() *Observer {
	return &Observer{}
}

// ObserveRequest implements debank.Observer.
func (o *Observer) ObserveRequest(path string, status int, duration time.Duration, err error) {
	RequestsTotal.WithLabelValues(path, outcome(status, err)).Inc()
	RequestDuration.WithLabelValues(path).Observe(duration.Seconds())
}

// outcome is the status code, "transport_error" when no response arrived,
// or "malformed" for an unparseable 200.
func outcome(status int, err error) string {
	switch {
	case status == 0:
		return "transport_error"
	case status == 200 && err != nil:
		return "malformed"
	default:
		return strconv.Itoa(status)
	}
}
