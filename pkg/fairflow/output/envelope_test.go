package output

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

func keysOf(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	return decoded
}

func TestNewTrainOmitsAbsentOptionalFields(t *testing.T) {
	out := NewTrain("handle", "linear", "y ~ x", param.Params{"intercept": true}, time.Second, nil, nil)

	assert.Nil(t, out.Protected)
	assert.Nil(t, out.Specific)

	decoded := keysOf(t, out)
	assert.NotContains(t, decoded, "protected_attributes")
	assert.NotContains(t, decoded, "specific_output")
	assert.Contains(t, decoded, "model_type")
	assert.Contains(t, decoded, "formula")
	assert.Contains(t, decoded, "hyperparameters")
}

func TestNewTrainKeepsPresentOptionalFields(t *testing.T) {
	out := NewTrain("handle", "linear", "y ~ x", param.Params{}, time.Second,
		[]string{"gender"}, map[string]any{"rank": 2})

	assert.Equal(t, []string{"gender"}, out.Protected)
	assert.Equal(t, map[string]any{"rank": 2}, out.Specific)

	decoded := keysOf(t, out)
	assert.Contains(t, decoded, "protected_attributes")
	assert.Contains(t, decoded, "specific_output")
}

func TestNewTrainCopiesProtected(t *testing.T) {
	protected := []string{"gender"}
	out := NewTrain(nil, "linear", "y ~ x", nil, 0, protected, nil)

	protected[0] = "mutated"
	assert.Equal(t, []string{"gender"}, out.Protected)
}

func TestNewEvalOmitsAbsentOptionalFields(t *testing.T) {
	out := NewEval(map[string]float64{"mse": 0.5}, "mse",
		&EvalInput{Predictions: []float64{1}, Actuals: []float64{2}}, nil, nil, nil)

	decoded := keysOf(t, out)
	assert.NotContains(t, decoded, "protected_attributes")
	assert.NotContains(t, decoded, "params")
	assert.NotContains(t, decoded, "specific_output")
	assert.Contains(t, decoded, "metrics")
	assert.Contains(t, decoded, "eval_type")
	assert.Contains(t, decoded, "input_data")
}

func TestNewFairnessPost(t *testing.T) {
	out := NewFairnessPost([]float64{0.1, 0.9}, "residual", "probability", param.Params{"clip": true}, nil)

	assert.Equal(t, "residual", out.Method)
	assert.Equal(t, "probability", out.OutputType)
	assert.Equal(t, param.Params{"clip": true}, out.Params)

	decoded := keysOf(t, out)
	assert.Contains(t, decoded, "params")
	assert.NotContains(t, decoded, "specific_output")
}

func TestNewReportElement(t *testing.T) {
	out := NewReportElement("meanmse", "text", "mean mse: 0.25", []string{"txt", "xlsx"}, nil)

	assert.Equal(t, "meanmse", out.Alias)
	assert.Equal(t, []string{"txt", "xlsx"}, out.CompatibleFormats)
	assert.NotContains(t, keysOf(t, out), "specific_output")
}

func TestNewReport(t *testing.T) {
	el := NewReportElement("meanmse", "text", "mean mse: 0.25", []string{"txt"}, nil)

	withRun := NewReport("fairness report", []*ReportElement{el}, []string{"txt"}, "run-1", nil)
	assert.Equal(t, "run-1", withRun.RunID)
	assert.Contains(t, keysOf(t, withRun), "run_id")

	withoutRun := NewReport("fairness report", []*ReportElement{el}, []string{"txt"}, "", nil)
	assert.NotContains(t, keysOf(t, withoutRun), "run_id")
}

func TestNewPublish(t *testing.T) {
	out := NewPublish("export", "report", "xlsx", "/tmp/report.xlsx", nil)

	assert.True(t, out.Success)
	assert.Equal(t, "/tmp/report.xlsx", out.Path)
	assert.NotContains(t, keysOf(t, out), "specific_output")
}

func TestNewPublishFailure(t *testing.T) {
	out := NewPublishFailure("export", "report", "xlsx", param.Params{"sheet": "s"}, "format pdf not supported")

	assert.False(t, out.Success)
	assert.Empty(t, out.Path)
	assert.Equal(t, "format pdf not supported", out.Specific["error"])
	assert.Equal(t, param.Params{"sheet": "s"}, out.Params)
}

func TestCollectionSplits(t *testing.T) {
	coll := Collection{
		"split-2": {},
		"split-1": {},
		"split-3": {},
	}
	assert.Equal(t, []string{"split-1", "split-2", "split-3"}, coll.Splits())
}

func TestCollectionMetric(t *testing.T) {
	coll := Collection{
		"split-1": {Eval: &Eval{Metrics: map[string]float64{"mse": 0.2}}},
		"split-2": {Eval: &Eval{Metrics: map[string]float64{"mse": 0.4}}},
		"split-3": {Eval: &Eval{Metrics: map[string]float64{"mae": 0.1}}},
		"split-4": {},
		"split-5": nil,
	}

	got := coll.Metric("mse")
	assert.Equal(t, map[string]float64{"split-1": 0.2, "split-2": 0.4}, got)
	assert.Empty(t, coll.Metric("rmse"))
}
