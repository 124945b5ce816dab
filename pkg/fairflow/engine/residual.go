package engine

import (
	"context"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

// ResidualAdjuster shifts every prediction by the mean residual
// (actual - prediction). For probabilistic output types the adjusted
// predictions are clipped to [0, 1].
type ResidualAdjuster struct{}

// NewResidualAdjuster creates the residual mean adjuster.
func NewResidualAdjuster() *ResidualAdjuster {
	return &ResidualAdjuster{}
}

func (e *ResidualAdjuster) Alias() string {
	return "residual"
}

func (e *ResidualAdjuster) Defaults() param.Params {
	return param.Params{}
}

func (e *ResidualAdjuster) Adjust(ctx context.Context, predictions, actuals []float64, outputType string, params param.Params) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "residual adjustment cancelled")
	}
	if len(predictions) == 0 {
		return nil, ErrNoObservations
	}

	residuals := make([]float64, len(predictions))
	for i, p := range predictions {
		residuals[i] = actuals[i] - p
	}
	shift := stat.Mean(residuals, nil)

	adjusted := make([]float64, len(predictions))
	for i, p := range predictions {
		v := p + shift
		if outputType == OutputProbability {
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
		}
		adjusted[i] = v
	}

	return adjusted, nil
}

var _ Adjuster = (*ResidualAdjuster)(nil)
