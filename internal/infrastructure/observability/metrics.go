package observability

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics groups the collectors recorded by the HTTP middleware.
type HTTPMetrics struct {
	ReqTotal *prometheus.CounterVec
	ReqDur   *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

func NewHTTPMetrics(namespace string, reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &HTTPMetrics{
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency distribution in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"method", "route"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
	}
	m.ReqTotal = register(reg, m.ReqTotal)
	m.ReqDur = register(reg, m.ReqDur)
	m.InFlight = register(reg, m.InFlight)
	return m
}

// DomainMetrics counts quote workflow outcomes. A nil *DomainMetrics is valid
// and records nothing.
type DomainMetrics struct {
	Deliveries      *prometheus.CounterVec
	GateRejections  *prometheus.CounterVec
	Transitions     *prometheus.CounterVec
	Compensations   *prometheus.CounterVec
	OrphansSwept    prometheus.Counter
	DeliveryLatency prometheus.Histogram
}

func NewDomainMetrics(namespace string, reg prometheus.Registerer) *DomainMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &DomainMetrics{
		Deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Delivery confirmations by result.",
		}, []string{"result"}),
		GateRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_gate_rejections_total",
			Help:      "Unmet delivery gate conditions by reason.",
		}, []string{"reason"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_status_transitions_total",
			Help:      "Committed quote status changes.",
		}, []string{"from", "to"}),
		Compensations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evidence_compensation_deletes_total",
			Help:      "Deletes of uploaded evidence after a failed delivery commit.",
		}, []string{"result"}),
		OrphansSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evidence_orphans_swept_total",
			Help:      "Unreferenced evidence objects removed by the sweeper.",
		}),
		DeliveryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "delivery_duration_ms",
			Help:      "Time spent confirming a delivery in milliseconds.",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}),
	}
	m.Deliveries = register(reg, m.Deliveries)
	m.GateRejections = register(reg, m.GateRejections)
	m.Transitions = register(reg, m.Transitions)
	m.Compensations = register(reg, m.Compensations)
	m.OrphansSwept = register(reg, m.OrphansSwept)
	m.DeliveryLatency = register(reg, m.DeliveryLatency)
	return m
}

func (m *DomainMetrics) Delivery(result string, took time.Duration) {
	if m == nil {
		return
	}
	m.Deliveries.WithLabelValues(result).Inc()
	m.DeliveryLatency.Observe(DurationMillis(took))
}

func (m *DomainMetrics) GateRejected(reason string) {
	if m == nil {
		return
	}
	m.GateRejections.WithLabelValues(reason).Inc()
}

func (m *DomainMetrics) Transition(from, to string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(from, to).Inc()
}

func (m *DomainMetrics) Compensation(result string) {
	if m == nil {
		return
	}
	m.Compensations.WithLabelValues(result).Inc()
}

func (m *DomainMetrics) OrphanSwept() {
	if m == nil {
		return
	}
	m.OrphansSwept.Inc()
}

func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// register returns the already registered collector when c is a duplicate,
// so constructing metrics twice against one registry is harmless.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
