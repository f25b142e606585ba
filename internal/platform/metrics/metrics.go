package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yield_http_requests_total",
			Help: "Total HTTP requests by method, route pattern and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "yield_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5},
		},
		[]string{"method", "route"},
	)

	ChatReplies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yield_chat_replies_total",
			Help: "Assistant replies appended to chat transcripts",
		},
		[]string{"provider"},
	)

	ChatRepliesCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yield_chat_replies_cancelled_total",
			Help: "Pending chat replies abandoned before resolving",
		},
	)

	RecognitionAnalyses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yield_recognition_analyses_total",
			Help: "Completed breed recognition analyses by animal",
		},
		[]string{"animal"},
	)

	UploadsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yield_uploads_rejected_total",
			Help: "Rejected image uploads by reason",
		},
		[]string{"reason"},
	)

	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yield_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		},
		[]string{"outcome"},
	)
)
