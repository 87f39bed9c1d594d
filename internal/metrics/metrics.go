// Package metrics holds Prometheus instruments for the submission
// pipelines.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_received_total",
			Help: "Form submissions received, by form.",
		},
		[]string{"form"})

	SubmissionsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_rejected_total",
			Help: "Submissions rejected by validation, by form.",
		},
		[]string{"form"})

	SubmissionsSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_saved_total",
			Help: "Submissions persisted to the database, by form.",
		},
		[]string{"form"})

	InsertDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "submission_insert_duration_seconds",
			Help:    "Latency of the single-row insert, by form.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"form"})

	EmailsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_emails_sent_total",
			Help: "Notification emails sent successfully.",
		})

	EmailFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_email_failures_total",
			Help: "Notification emails that failed to send (best-effort).",
		})
)

func init() {
	prometheus.MustRegister(
		SubmissionsReceived,
		SubmissionsRejected,
		SubmissionsSaved,
		InsertDuration,
		EmailsSent,
		EmailFailures,
	)
}
