package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa los collectors del API. Se registran en reg para que los
// tests puedan usar un registry propio.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RosterPeople        prometheus.Gauge
	RosterPets          prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "petkata_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "petkata_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		RosterPeople: f.NewGauge(prometheus.GaugeOpts{
			Name: "petkata_roster_people",
			Help: "Number of people loaded in the roster",
		}),
		RosterPets: f.NewGauge(prometheus.GaugeOpts{
			Name: "petkata_roster_pets",
			Help: "Number of pets loaded in the roster",
		}),
	}
}

func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) SetRoster(people, pets int) {
	m.RosterPeople.Set(float64(people))
	m.RosterPets.Set(float64(pets))
}
