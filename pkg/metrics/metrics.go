package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "contentcraft", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "contentcraft", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "contentcraft", Name: "http_requests_total", Help: "Total number of HTTP requests processed."},
		[]string{"method", "route", "status"},
	)
	PersistenceErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "contentcraft", Name: "persistence_errors_total", Help: "Storage faults by attempted operation."},
		[]string{"op"},
	)
	InquiriesReceived = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "contentcraft", Name: "contact_inquiries_received_total", Help: "Contact inquiries stored."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(PersistenceErrors)
	reg.MustRegister(InquiriesReceived)
}
