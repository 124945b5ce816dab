package fairflow

import (
	"go.uber.org/zap"

	"github.com/fairflow/go-fairflow/pkg/fairflow/model"
)

// Option configures a workflow at construction.
type Option func(w *Workflow)

// WithLogger attaches a structured logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Workflow) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithOptions attaches lifecycle observers (measure, drawer, Prometheus
// export) to the workflow.
func WithOptions(opts ...model.WorkflowOption) Option {
	return func(w *Workflow) {
		w.opts = append(w.opts, opts...)
	}
}

// WithRunID overrides the generated run identifier, for reproducible runs.
func WithRunID(runID string) Option {
	return func(w *Workflow) {
		if runID != "" {
			w.runID = runID
		}
	}
}
