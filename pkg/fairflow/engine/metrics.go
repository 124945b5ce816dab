package engine

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

var ErrNoObservations = errors.New("at least one observation is required")

// MSE computes the mean squared error between predictions and actuals.
type MSE struct{}

// NewMSE creates the mean squared error evaluator.
func NewMSE() *MSE {
	return &MSE{}
}

func (e *MSE) Alias() string {
	return "mse"
}

func (e *MSE) Defaults() param.Params {
	return param.Params{}
}

func (e *MSE) Evaluate(ctx context.Context, in EvalInput, params param.Params) (map[string]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "mse evaluation cancelled")
	}
	if len(in.Predictions) == 0 {
		return nil, ErrNoObservations
	}

	var sum float64
	for i, p := range in.Predictions {
		d := p - in.Actuals[i]
		sum += d * d
	}

	return map[string]float64{"mse": sum / float64(len(in.Predictions))}, nil
}

// Summary computes descriptive statistics of the predictions.
type Summary struct{}

// NewSummary creates the summary statistics evaluator.
func NewSummary() *Summary {
	return &Summary{}
}

func (e *Summary) Alias() string {
	return "summary"
}

func (e *Summary) Defaults() param.Params {
	return param.Params{}
}

func (e *Summary) Evaluate(ctx context.Context, in EvalInput, params param.Params) (map[string]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "summary evaluation cancelled")
	}
	if len(in.Predictions) == 0 {
		return nil, ErrNoObservations
	}

	sorted := append([]float64(nil), in.Predictions...)
	sort.Float64s(sorted)

	return map[string]float64{
		"mean":   stat.Mean(in.Predictions, nil),
		"stddev": stat.StdDev(in.Predictions, nil),
		"min":    floats.Min(sorted),
		"max":    floats.Max(sorted),
		"median": stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}, nil
}

// StatisticalParity computes the absolute difference of mean predictions
// between the two groups of a binary protected attribute. With several
// protected attributes the metric is emitted once per attribute as
// "spd_<attribute>", with a single one as plain "spd".
//
// The gap is only defined for binary-valued attributes; the stage wrapper
// validates arity before invoking the engine.
type StatisticalParity struct{}

// NewStatisticalParity creates the statistical parity evaluator.
func NewStatisticalParity() *StatisticalParity {
	return &StatisticalParity{}
}

func (e *StatisticalParity) Alias() string {
	return "statisticalparity"
}

func (e *StatisticalParity) Defaults() param.Params {
	return param.Params{}
}

func (e *StatisticalParity) RequiresBinaryGroups() bool {
	return true
}

func (e *StatisticalParity) Evaluate(ctx context.Context, in EvalInput, params param.Params) (map[string]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "statistical parity evaluation cancelled")
	}
	if len(in.Predictions) == 0 {
		return nil, ErrNoObservations
	}
	if len(in.Groups) == 0 {
		return nil, errors.New("at least one protected attribute is required")
	}

	metrics := make(map[string]float64, len(in.Groups))
	for name, groups := range in.Groups {
		gap, err := parityGap(in.Predictions, groups)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %q", name)
		}

		key := "spd"
		if len(in.Groups) > 1 {
			key = "spd_" + name
		}
		metrics[key] = gap
	}

	return metrics, nil
}

func parityGap(predictions, groups []float64) (float64, error) {
	if len(groups) != len(predictions) {
		return 0, errors.Errorf("attribute has %d values, expected %d", len(groups), len(predictions))
	}

	sums := make(map[float64]float64, 2)
	counts := make(map[float64]float64, 2)
	for i, g := range groups {
		sums[g] += predictions[i]
		counts[g]++
	}
	if len(counts) != 2 {
		return 0, errors.Errorf("attribute has %d distinct values, expected 2", len(counts))
	}

	means := make([]float64, 0, 2)
	for g, sum := range sums {
		means = append(means, sum/counts[g])
	}

	gap := means[0] - means[1]
	if gap < 0 {
		gap = -gap
	}

	return gap, nil
}

var (
	_ Evaluator  = (*MSE)(nil)
	_ Evaluator  = (*Summary)(nil)
	_ Evaluator  = (*StatisticalParity)(nil)
	_ GroupAware = (*StatisticalParity)(nil)
)
