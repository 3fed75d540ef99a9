// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_generations_total",
			Help: "Total number of gateway generation calls by outcome",
		},
		[]string{"zone", "outcome"},
	)

	ChatGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "chat_generation_duration_seconds",
			Help: "Duration of gateway generation calls in seconds",
		},
		[]string{"zone"},
	)

	ChatMessagesAppended = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_appended_total",
			Help: "Total number of messages appended to transcripts",
		},
		[]string{"role"},
	)

	StateWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_state_write_failures_total",
			Help: "Total number of failed persistence writes per state slice",
		},
		[]string{"slice"},
	)

	InterviewsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interviews_completed_total",
			Help: "Total number of completed fit interviews by top category",
		},
		[]string{"category"},
	)
)
