package fairflow

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairflow/go-fairflow/pkg/fairflow/engine"
	"github.com/fairflow/go-fairflow/pkg/fairflow/frame"
	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

func TestRunTrain(t *testing.T) {
	trainer := &stubTrainer{
		defaults: param.Params{"alpha": 0.5, "iterations": 100},
		model:    &stubModel{predictions: []float64{1, 2}},
	}

	ctl := &Control{Train: &TrainConfig{
		Engine:    "stubtrain",
		Formula:   "y ~ x1 + x2",
		Protected: []string{"gender"},
		Data: &frame.TrainingData{
			Original: mustDataset(map[string][]float64{
				"y":  {1, 2, 3},
				"x1": {1, 2, 3},
				"x2": {0, 1, 0},
			}),
		},
		Params: map[string]param.Params{
			"stubtrain": {"alpha": 0.9},
		},
	}}

	out, err := RunTrain(context.Background(), ctl, trainer)
	require.NoError(t, err)

	assert.Equal(t, 1, trainer.calls)
	assert.Equal(t, 3, trainer.gotRows)

	// user override wins, untouched defaults survive
	assert.Equal(t, param.Params{"alpha": 0.9, "iterations": 100}, trainer.gotParams)

	assert.Equal(t, "stub", out.ModelType)
	assert.Equal(t, "y ~ x1 + x2", out.Formula)
	assert.Equal(t, []string{"gender"}, out.Protected)
	assert.Equal(t, trainer.gotParams, out.Hyperparameters)
	assert.NotNil(t, out.Model)
}

func TestRunTrainIdempotentModuloDuration(t *testing.T) {
	ctl := &Control{Train: &TrainConfig{
		Engine:  "leastsquares",
		Formula: "y ~ x",
		Data: &frame.TrainingData{
			Original: mustDataset(map[string][]float64{
				"x": {0, 1, 2, 3},
				"y": {1, 3, 5, 7},
			}),
		},
	}}

	first, err := RunTrain(context.Background(), ctl, engine.NewLeastSquares())
	require.NoError(t, err)

	second, err := RunTrain(context.Background(), ctl, engine.NewLeastSquares())
	require.NoError(t, err)

	// equal modulo the wall-clock duration
	first.Duration = 0
	second.Duration = 0
	assert.Equal(t, first, second)
}

func TestRunTrainMissingInputs(t *testing.T) {
	data := &frame.TrainingData{Original: mustDataset(map[string][]float64{"y": {1}, "x": {1}})}

	testCases := map[string]struct {
		ctl           *Control
		expectedField string
	}{
		"nil control": {
			ctl:           nil,
			expectedField: "train",
		},
		"nil train config": {
			ctl:           &Control{},
			expectedField: "train",
		},
		"missing formula": {
			ctl:           &Control{Train: &TrainConfig{Engine: "stubtrain", Data: data}},
			expectedField: "formula",
		},
		"missing data": {
			ctl:           &Control{Train: &TrainConfig{Engine: "stubtrain", Formula: "y ~ x"}},
			expectedField: "data",
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			trainer := &stubTrainer{model: &stubModel{}}

			_, err := RunTrain(context.Background(), tc.ctl, trainer)

			var missing *MissingInputError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.expectedField, missing.Field)

			// invalid inputs never reach the engine
			assert.Zero(t, trainer.calls)
		})
	}
}

func TestRunTrainMalformedFormula(t *testing.T) {
	trainer := &stubTrainer{model: &stubModel{}}
	ctl := &Control{Train: &TrainConfig{
		Engine:  "stubtrain",
		Formula: "y x",
		Data:    &frame.TrainingData{Original: mustDataset(map[string][]float64{"y": {1}, "x": {1}})},
	}}

	_, err := RunTrain(context.Background(), ctl, trainer)

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{"formula"}, invalid.Fields)
	assert.Zero(t, trainer.calls)
}

func TestRunTrainNormalizedVariant(t *testing.T) {
	trainer := &stubTrainer{model: &stubModel{}}
	ctl := &Control{Train: &TrainConfig{
		Engine:        "stubtrain",
		Formula:       "y ~ x",
		UseNormalized: true,
		Data: &frame.TrainingData{
			Original:   mustDataset(map[string][]float64{"y": {1, 2, 3}, "x": {1, 2, 3}}),
			Normalized: mustDataset(map[string][]float64{"y": {0, 0.5}, "x": {0, 0.5}}),
		},
	}}

	_, err := RunTrain(context.Background(), ctl, trainer)
	require.NoError(t, err)

	assert.Equal(t, 2, trainer.gotRows)
}

func TestRunTrainEngineFailure(t *testing.T) {
	cause := errors.New("singular matrix")
	trainer := &stubTrainer{err: cause}
	ctl := &Control{Train: &TrainConfig{
		Engine:  "stubtrain",
		Formula: "y ~ x",
		Data:    &frame.TrainingData{Original: mustDataset(map[string][]float64{"y": {1}, "x": {1}})},
	}}

	_, err := RunTrain(context.Background(), ctl, trainer)

	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, "stubtrain", engErr.Engine)
	assert.ErrorIs(t, err, cause)
}
