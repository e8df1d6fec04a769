package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus collectors of the service.
type Metrics struct {
	ReqTotal           *prometheus.CounterVec
	ReqDur             *prometheus.HistogramVec
	InFlight           prometheus.Gauge
	FilterFallbacks    *prometheus.CounterVec
	BreakerState       *prometheus.GaugeVec
	BreakerTransitions *prometheus.CounterVec
}

// New registers and returns the collectors. A nil registerer uses the default one.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency distribution in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"method", "route"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		FilterFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_fallback_total",
			Help:      "Filtered values discarded in favour of the default value.",
		}, []string{"filter"}),
		BreakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "breaker_state",
			Help:      "Current breaker state: 0=closed,1=half-open,2=open",
		}, []string{"target"}),
		BreakerTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "breaker_transition_total",
			Help:      "Count of breaker state transitions",
		}, []string{"target", "from", "to"}),
	}
	m.ReqTotal = register(reg, m.ReqTotal)
	m.ReqDur = register(reg, m.ReqDur)
	m.InFlight = register(reg, m.InFlight)
	m.FilterFallbacks = register(reg, m.FilterFallbacks)
	m.BreakerState = register(reg, m.BreakerState)
	m.BreakerTransitions = register(reg, m.BreakerTransitions)
	return m
}

// ObserveFilterFallback counts a discarded filter value.
func (m *Metrics) ObserveFilterFallback(name string) {
	m.FilterFallbacks.WithLabelValues(name).Inc()
}

// ObserveBreakerChange records a circuit breaker state change.
func (m *Metrics) ObserveBreakerChange(target, from, to string, state int) {
	m.BreakerState.WithLabelValues(target).Set(float64(state))
	m.BreakerTransitions.WithLabelValues(target, from, to).Inc()
}

// register returns the already registered collector when one exists, so that
// New can be called more than once against the same registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
