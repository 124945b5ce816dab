package engine

import (
	"context"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/fairflow/go-fairflow/pkg/fairflow/frame"
	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

// LeastSquares fits an ordinary least squares linear model via QR
// factorisation.
type LeastSquares struct{}

// NewLeastSquares creates the least squares trainer.
func NewLeastSquares() *LeastSquares {
	return &LeastSquares{}
}

func (e *LeastSquares) Alias() string {
	return "leastsquares"
}

func (e *LeastSquares) Defaults() param.Params {
	return param.Params{"intercept": true}
}

// Fit solves min ||X·beta - y|| over the formula's terms.
func (e *LeastSquares) Fit(ctx context.Context, formula *frame.Formula, data *frame.Dataset, params param.Params) (Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "least squares fit cancelled")
	}

	intercept := params.Bool("intercept", true)

	response, err := data.Column(formula.Response)
	if err != nil {
		return nil, errors.Wrapf(err, "response %q", formula.Response)
	}

	rows := data.Len()
	cols := len(formula.Terms)
	if intercept {
		cols++
	}
	if rows < cols {
		return nil, errors.Errorf("need at least %d rows to fit %d coefficients, got %d", cols, cols, rows)
	}

	design := mat.NewDense(rows, cols, nil)
	offset := 0
	if intercept {
		for i := 0; i < rows; i++ {
			design.Set(i, 0, 1)
		}
		offset = 1
	}
	for j, term := range formula.Terms {
		values, err := data.Column(term)
		if err != nil {
			return nil, errors.Wrapf(err, "term %q", term)
		}
		for i, v := range values {
			design.Set(i, offset+j, v)
		}
	}

	var qr mat.QR
	qr.Factorize(design)

	beta := mat.NewVecDense(cols, nil)
	if err := qr.SolveVecTo(beta, false, mat.NewVecDense(rows, response)); err != nil {
		return nil, errors.Wrap(err, "unable to solve least squares system")
	}

	model := &LinearModel{
		Response: formula.Response,
		Terms:    append([]string(nil), formula.Terms...),
	}
	if intercept {
		model.Intercept = beta.AtVec(0)
	}
	model.Coefficients = make([]float64, len(formula.Terms))
	for j := range formula.Terms {
		model.Coefficients[j] = beta.AtVec(offset + j)
	}

	return model, nil
}

// LinearModel is a fitted linear model.
type LinearModel struct {
	Response     string    `json:"response"`
	Terms        []string  `json:"terms"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

func (m *LinearModel) Kind() string {
	return "linear"
}

// Predict scores every row of the dataset with the fitted coefficients.
func (m *LinearModel) Predict(data *frame.Dataset) ([]float64, error) {
	predictions := make([]float64, data.Len())
	for i := range predictions {
		predictions[i] = m.Intercept
	}

	for j, term := range m.Terms {
		values, err := data.Column(term)
		if err != nil {
			return nil, errors.Wrapf(err, "term %q", term)
		}
		for i, v := range values {
			predictions[i] += m.Coefficients[j] * v
		}
	}

	return predictions, nil
}

var (
	_ Trainer = (*LeastSquares)(nil)
	_ Model   = (*LinearModel)(nil)
)
