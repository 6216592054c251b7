package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	MovesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boxtrack_moves_total",
		Help: "Total number of committed box moves.",
	},
		[]string{"direction"},
	)

	ScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boxtrack_scans_total",
		Help: "Total number of box scans by the route they were sent to.",
	},
		[]string{"route"},
	)

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boxtrack_logins_total",
		Help: "Total number of login attempts.",
	},
		[]string{"result"},
	)

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "boxtrack_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "code"},
	)
)

// Move directions and scan routes.
const (
	Checkin  = "checkin"
	Checkout = "checkout"
)

// Handler serves the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRequest records one served request.
func ObserveRequest(method string, code int, elapsed time.Duration) {
	RequestDuration.WithLabelValues(method, strconv.Itoa(code)).Observe(elapsed.Seconds())
}
