package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores Prometheus collectors used across the service.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPLatency     *prometheus.HistogramVec
	Transitions     *prometheus.CounterVec
	PhotosAccepted  *prometheus.CounterVec
	PhotosRejected  *prometheus.CounterVec
	SharesPublished *prometheus.CounterVec
	Payments        *prometheus.CounterVec
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = newMetrics(namespace)
		prometheus.MustRegister(metricsInstance.collectors()...)
	})
	return metricsInstance
}

func newMetrics(namespace string) *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution for HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Service order status changes by source, target and outcome.",
		}, []string{"from", "to", "outcome"}),
		PhotosAccepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_photos_accepted_total",
			Help:      "Photos attached to service orders.",
		}, []string{"bucket"}),
		PhotosRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_photos_rejected_total",
			Help:      "Photos dropped because the bucket was full.",
		}, []string{"bucket"}),
		SharesPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shares_published_total",
			Help:      "Public share snapshots published by kind and outcome.",
		}, []string{"kind", "outcome"}),
		Payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_total",
			Help:      "Payment attempts by outcome.",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.HTTPRequests,
		m.HTTPLatency,
		m.Transitions,
		m.PhotosAccepted,
		m.PhotosRejected,
		m.SharesPublished,
		m.Payments,
	}
}

func (m *Metrics) ObserveTransition(from, to, outcome string) {
	m.Transitions.WithLabelValues(from, to, outcome).Inc()
}

func (m *Metrics) ObservePhotos(bucket string, accepted, rejected int) {
	if accepted > 0 {
		m.PhotosAccepted.WithLabelValues(bucket).Add(float64(accepted))
	}
	if rejected > 0 {
		m.PhotosRejected.WithLabelValues(bucket).Add(float64(rejected))
	}
}

func (m *Metrics) ObservePublish(kind, outcome string) {
	m.SharesPublished.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) ObservePayment(outcome string) {
	m.Payments.WithLabelValues(outcome).Inc()
}

// GinMiddleware records request count and latency per matched route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPLatency.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
