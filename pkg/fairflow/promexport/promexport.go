// Package promexport exposes workflow stage executions as Prometheus
// metrics.
package promexport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the metric instances for workflow stage executions.
type Registry struct {
	StagesStarted   *prometheus.CounterVec
	StagesCompleted *prometheus.CounterVec
	StagesFailed    *prometheus.CounterVec
	StageDuration   *prometheus.HistogramVec
	WorkflowsDone   prometheus.Counter
}

// NewRegistry creates a metrics registry backed by the given Prometheus
// registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		StagesStarted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fairflow",
				Subsystem: "workflow",
				Name:      "stages_started_total",
				Help:      "Total number of stage invocations started",
			},
			[]string{"stage_type", "engine"},
		),

		StagesCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fairflow",
				Subsystem: "workflow",
				Name:      "stages_completed_total",
				Help:      "Total number of stage invocations that succeeded",
			},
			[]string{"stage_type", "engine"},
		),

		StagesFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fairflow",
				Subsystem: "workflow",
				Name:      "stages_failed_total",
				Help:      "Total number of stage invocations that failed",
			},
			[]string{"stage_type", "engine"},
		),

		StageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "fairflow",
				Subsystem: "workflow",
				Name:      "stage_duration_seconds",
				Help:      "Stage execution duration",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"stage_type", "engine"},
		),

		WorkflowsDone: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "fairflow",
				Subsystem: "workflow",
				Name:      "runs_total",
				Help:      "Total number of workflow runs finished",
			},
		),
	}
}
