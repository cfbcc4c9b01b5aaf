package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BillsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bills_created_total",
			Help: "Total number of bills created by bill type",
		},
		[]string{"bill_type"},
	)

	PDFGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pdf_generated_total",
			Help: "Total number of PDF documents generated",
		},
	)
)
