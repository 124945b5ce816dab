// Package engine defines the pure computational units pluggable into the
// pipeline, one interface per stage family, plus the alias registry the
// workflow resolves engines from at construction time.
//
// Engines know nothing about the control object, the envelope format or
// their pipeline position. Swapping an algorithm means registering a new
// implementation together with its default-parameter declaration; the
// wrapper contract and envelope shapes stay untouched.
package engine

import (
	"context"

	"github.com/fairflow/go-fairflow/pkg/fairflow/frame"
	"github.com/fairflow/go-fairflow/pkg/fairflow/output"
	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

// Output types a task can declare for its predictions.
const (
	OutputProbability = "probability"
	OutputRegression  = "regression"
)

// Engine is the part of the contract every engine shares: a unique alias
// and an enumerable declaration of its default hyperparameters. Engines
// without hyperparameters return an empty set, never nil.
type Engine interface {
	Alias() string
	Defaults() param.Params
}

// Model is a fitted-model handle returned by a Trainer.
type Model interface {
	// Predict scores every row of the dataset.
	Predict(data *frame.Dataset) ([]float64, error)
	// Kind names the model family, e.g. "linear".
	Kind() string
}

// Trainer fits a model to a dataset.
type Trainer interface {
	Engine
	Fit(ctx context.Context, formula *frame.Formula, data *frame.Dataset, params param.Params) (Model, error)
}

// EvalInput is the fixed-shape input of an evaluation engine. Groups maps
// a protected attribute name to its encoded values, aligned with
// Predictions; it is only populated for group-aware engines.
type EvalInput struct {
	Predictions []float64
	Actuals     []float64
	Groups      map[string][]float64
}

// Evaluator computes one or more named metrics.
type Evaluator interface {
	Engine
	Evaluate(ctx context.Context, in EvalInput, params param.Params) (map[string]float64, error)
}

// GroupAware marks evaluators that compute per-group fairness metrics. The
// wrapper validates group arity before invoking such an engine.
type GroupAware interface {
	RequiresBinaryGroups() bool
}

// Adjuster applies a post-hoc fairness correction to predictions.
type Adjuster interface {
	Engine
	Adjust(ctx context.Context, predictions, actuals []float64, outputType string, params param.Params) ([]float64, error)
}

// Renderer aggregates a workflow result collection into one report
// element. The collection is consumed read-only.
type Renderer interface {
	Engine
	Render(ctx context.Context, results output.Collection, params param.Params) (*output.ReportElement, error)
}

// Exporter writes a report to a file. It receives the base path without
// extension, appends its own format-specific extension and returns the
// final resolved path. Export is the one call in the system that blocks on
// I/O; it must honour context cancellation by abandoning the write.
type Exporter interface {
	Engine
	Formats() []string
	Export(ctx context.Context, report *output.Report, basePath string) (string, error)
}
