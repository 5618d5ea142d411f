// metrics описывает prometheus-коллекторы comments-api.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "comments_api"

// Metrics — набор коллекторов HTTP-слоя и хранилища.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// New создаёт коллекторы и регистрирует их в reg.
// countFn питает gauge comments_stored; nil — gauge не регистрируется.
func New(reg prometheus.Registerer, countFn func() int) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(m.Requests, m.Duration)

	if countFn != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "comments_stored",
			Help:      "Current number of comments in the collection.",
		}, func() float64 { return float64(countFn()) }))
	}

	return m
}
