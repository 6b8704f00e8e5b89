package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the label service's Prometheus collectors.
type Metrics struct {
	serviceName string
	registry    *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	Validations        *prometheus.CounterVec
	ValidationErrors   *prometheus.CounterVec
	LabelRequests      *prometheus.CounterVec
	CustomsDeclaration *prometheus.CounterVec
	UnresolvedWeight   prometheus.Counter
}

// New creates a Metrics instance with its own registry.
func New(serviceName, namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())

	m := &Metrics{
		serviceName: serviceName,
		registry:    registry,
	}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"service", "method", "path"},
	)

	m.Validations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "label_validations_total",
			Help:      "Label argument validations by kind and outcome",
		},
		[]string{"service", "kind", "outcome"},
	)

	m.ValidationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "label_validation_errors_total",
			Help:      "Validation error entries by code",
		},
		[]string{"service", "code"},
	)

	m.LabelRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "label_requests_total",
			Help:      "Label requests by outcome",
		},
		[]string{"service", "outcome"},
	)

	m.CustomsDeclaration = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customs_declarations_total",
			Help:      "Customs declarations built, by outcome",
		},
		[]string{"service", "outcome"},
	)

	m.UnresolvedWeight = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "customs_unresolved_weight_kg_total",
			Help:        "Declared weight that could not be placed on any customs line",
			ConstLabels: prometheus.Labels{"service": serviceName},
		},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.Validations,
		m.ValidationErrors,
		m.LabelRequests,
		m.CustomsDeclaration,
		m.UnresolvedWeight,
	)

	return m
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records an HTTP request. The Record methods are no-ops on a nil Metrics.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// RecordValidation counts one validation and each of its error codes.
func (m *Metrics) RecordValidation(kind string, codes []string) {
	if m == nil {
		return
	}
	outcome := "valid"
	if len(codes) > 0 {
		outcome = "invalid"
	}
	m.Validations.WithLabelValues(m.serviceName, kind, outcome).Inc()
	for _, code := range codes {
		m.ValidationErrors.WithLabelValues(m.serviceName, code).Inc()
	}
}

// RecordLabelRequest counts a label request outcome (accepted, duplicate, failed, ...).
func (m *Metrics) RecordLabelRequest(outcome string) {
	if m == nil {
		return
	}
	m.LabelRequests.WithLabelValues(m.serviceName, outcome).Inc()
}

// RecordCustoms counts a declaration and any weight left unresolved.
func (m *Metrics) RecordCustoms(unresolvedKG float64, err error) {
	if m == nil {
		return
	}
	switch {
	case err != nil:
		m.CustomsDeclaration.WithLabelValues(m.serviceName, "failed").Inc()
	case unresolvedKG != 0:
		m.CustomsDeclaration.WithLabelValues(m.serviceName, "unresolved").Inc()
		if unresolvedKG < 0 {
			unresolvedKG = -unresolvedKG
		}
		m.UnresolvedWeight.Add(unresolvedKG)
	default:
		m.CustomsDeclaration.WithLabelValues(m.serviceName, "ok").Inc()
	}
}

// Middleware records HTTP metrics for every route except /metrics.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		m.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

// Endpoint serves the registry through gin.
func (m *Metrics) Endpoint() gin.HandlerFunc {
	handler := m.Handler()
	return func(c *gin.Context) {
		handler.ServeHTTP(c.Writer, c.Request)
	}
}
