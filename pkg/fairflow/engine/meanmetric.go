package engine

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/fairflow/go-fairflow/pkg/fairflow/output"
	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

// MeanMetric renders the mean of a named evaluation metric across all
// splits of a workflow result collection as a text report element.
type MeanMetric struct{}

// NewMeanMetric creates the mean metric renderer.
func NewMeanMetric() *MeanMetric {
	return &MeanMetric{}
}

func (e *MeanMetric) Alias() string {
	return "meanmetric"
}

func (e *MeanMetric) Defaults() param.Params {
	return param.Params{
		"metric": "mse",
		"digits": 4,
	}
}

func (e *MeanMetric) Render(ctx context.Context, results output.Collection, params param.Params) (*output.ReportElement, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "mean metric rendering cancelled")
	}

	metricName := params.String("metric", "mse")
	digits := params.Int("digits", 4)

	bySplit := results.Metric(metricName)
	if len(bySplit) == 0 {
		return nil, errors.Errorf("metric %q is present in no split", metricName)
	}

	values := make([]float64, 0, len(bySplit))
	for _, split := range results.Splits() {
		if v, ok := bySplit[split]; ok {
			values = append(values, v)
		}
	}
	mean := stat.Mean(values, nil)

	content := fmt.Sprintf("mean %s across %d splits: %s",
		metricName, len(values), strconv.FormatFloat(mean, 'f', digits, 64))

	return output.NewReportElement(
		e.Alias(),
		"text",
		content,
		[]string{"txt", "xlsx"},
		map[string]any{"metric": metricName, "mean": mean, "splits": len(values)},
	), nil
}

var _ Renderer = (*MeanMetric)(nil)
