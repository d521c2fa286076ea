package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "butterflyapi", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "butterflyapi", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	DocumentSaves = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "butterflyapi", Name: "document_saves_total", Help: "Number of full document flushes to the backend."},
	)
	RecordsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "butterflyapi", Name: "records_created_total", Help: "Number of records appended by collection."},
		[]string{"collection"},
	)
	RatingsUpserted = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "butterflyapi", Name: "ratings_upserted_total", Help: "Number of rating upserts by outcome."},
		[]string{"outcome"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(DocumentSaves)
	reg.MustRegister(RecordsCreated)
	reg.MustRegister(RatingsUpserted)
}
