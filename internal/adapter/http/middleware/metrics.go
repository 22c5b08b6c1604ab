package middleware

import (
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestMetrics counts requests twice over: atomic counters feed the health
// report, the Prometheus vector feeds /metrics.
type RequestMetrics struct {
	total   atomic.Int64
	success atomic.Int64
	errors  atomic.Int64

	requestsTotal *prometheus.CounterVec
}

func NewRequestMetrics(registerer prometheus.Registerer) *RequestMetrics {
	return &RequestMetrics{
		requestsTotal: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskdesk_http_requests_total",
				Help: "Total number of HTTP requests handled, by method and status.",
			},
			[]string{"method", "status"},
		),
	}
}

func (m *RequestMetrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		m.total.Add(1)
		if status >= http.StatusOK && status < http.StatusBadRequest {
			m.success.Add(1)
		} else {
			m.errors.Add(1)
		}

		m.requestsTotal.WithLabelValues(c.Request.Method, strconv.Itoa(status)).Inc()
	}
}

func (m *RequestMetrics) Snapshot() (total, success, errors int64) {
	return m.total.Load(), m.success.Load(), m.errors.Load()
}
