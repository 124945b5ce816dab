package fairflow

import (
	"context"

	"github.com/fairflow/go-fairflow/pkg/fairflow/engine"
	"github.com/fairflow/go-fairflow/pkg/fairflow/frame"
	"github.com/fairflow/go-fairflow/pkg/fairflow/output"
	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

type stubModel struct {
	predictions []float64
}

func (m *stubModel) Predict(data *frame.Dataset) ([]float64, error) {
	return append([]float64(nil), m.predictions...), nil
}

func (m *stubModel) Kind() string {
	return "stub"
}

type stubTrainer struct {
	defaults param.Params
	model    engine.Model
	err      error

	calls     int
	gotParams param.Params
	gotRows   int
}

func (t *stubTrainer) Alias() string {
	return "stubtrain"
}

func (t *stubTrainer) Defaults() param.Params {
	if t.defaults == nil {
		return param.Params{}
	}

	return t.defaults
}

func (t *stubTrainer) Fit(ctx context.Context, formula *frame.Formula, data *frame.Dataset, params param.Params) (engine.Model, error) {
	t.calls++
	t.gotParams = params
	t.gotRows = data.Len()

	if t.err != nil {
		return nil, t.err
	}

	return t.model, nil
}

type stubEvaluator struct {
	metrics map[string]float64
	err     error

	calls     int
	gotInput  engine.EvalInput
	gotParams param.Params
}

func (e *stubEvaluator) Alias() string {
	return "stubeval"
}

func (e *stubEvaluator) Defaults() param.Params {
	return param.Params{}
}

func (e *stubEvaluator) Evaluate(ctx context.Context, in engine.EvalInput, params param.Params) (map[string]float64, error) {
	e.calls++
	e.gotInput = in
	e.gotParams = params

	if e.err != nil {
		return nil, e.err
	}

	return e.metrics, nil
}

type stubGroupEvaluator struct {
	stubEvaluator
}

func (e *stubGroupEvaluator) RequiresBinaryGroups() bool {
	return true
}

type stubAdjuster struct {
	adjusted []float64
	err      error

	calls         int
	gotOutputType string
	gotParams     param.Params
}

func (a *stubAdjuster) Alias() string {
	return "stubadjust"
}

func (a *stubAdjuster) Defaults() param.Params {
	return param.Params{}
}

func (a *stubAdjuster) Adjust(ctx context.Context, predictions, actuals []float64, outputType string, params param.Params) ([]float64, error) {
	a.calls++
	a.gotOutputType = outputType
	a.gotParams = params

	if a.err != nil {
		return nil, a.err
	}

	return a.adjusted, nil
}

type stubRenderer struct {
	element *output.ReportElement
	err     error

	calls     int
	gotParams param.Params
}

func (r *stubRenderer) Alias() string {
	return "stubrender"
}

func (r *stubRenderer) Defaults() param.Params {
	return param.Params{}
}

func (r *stubRenderer) Render(ctx context.Context, results output.Collection, params param.Params) (*output.ReportElement, error) {
	r.calls++
	r.gotParams = params

	if r.err != nil {
		return nil, r.err
	}

	return r.element, nil
}

type stubExporter struct {
	formats []string
	path    string
	err     error

	calls int
}

func (e *stubExporter) Alias() string {
	return "stubexport"
}

func (e *stubExporter) Defaults() param.Params {
	return param.Params{}
}

func (e *stubExporter) Formats() []string {
	return e.formats
}

func (e *stubExporter) Export(ctx context.Context, report *output.Report, basePath string) (string, error) {
	e.calls++

	if e.err != nil {
		return "", e.err
	}

	return e.path, nil
}

func mustDataset(columns map[string][]float64) *frame.Dataset {
	data, err := frame.NewDataset(columns)
	if err != nil {
		panic(err)
	}

	return data
}
