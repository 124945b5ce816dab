package measure

import "time"

// Measure aggregates metrics for every stage invocation of a workflow run.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric records the executions of one stage invocation.
type Metric interface {
	AddDuration(elapsed time.Duration, success bool)
	AVGDuration() time.Duration
	Count() int64
	Failures() int64
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
