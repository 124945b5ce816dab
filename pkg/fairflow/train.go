package fairflow

import (
	"context"
	"time"

	"github.com/fairflow/go-fairflow/pkg/fairflow/engine"
	"github.com/fairflow/go-fairflow/pkg/fairflow/frame"
	"github.com/fairflow/go-fairflow/pkg/fairflow/output"
	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

// RunTrain adapts a train engine to the uniform stage contract: it
// validates the control sub-record, resolves hyperparameters and the data
// variant, times the fit and packages the fitted model into a training
// envelope.
func RunTrain(ctx context.Context, ctl *Control, eng engine.Trainer) (*output.Train, error) {
	if ctl == nil || ctl.Train == nil {
		return nil, &MissingInputError{Stage: "train", Field: "train"}
	}

	cfg := ctl.Train
	if cfg.Formula == "" {
		return nil, &MissingInputError{Stage: "train", Field: "formula"}
	}
	if cfg.Data == nil {
		return nil, &MissingInputError{Stage: "train", Field: "data"}
	}

	formula, err := frame.ParseFormula(cfg.Formula)
	if err != nil {
		return nil, &ValidationError{Stage: "train", Fields: []string{"formula"}, Reason: err.Error()}
	}

	data, err := SelectTrainingData(cfg.UseNormalized, cfg.Data)
	if err != nil {
		return nil, err
	}

	resolved := param.Merge(cfg.Params[eng.Alias()], eng.Defaults())

	start := time.Now()
	model, err := eng.Fit(ctx, formula, data, resolved)
	if err != nil {
		return nil, &EngineError{Stage: "train", Engine: eng.Alias(), Err: err}
	}

	return output.NewTrain(model, model.Kind(), cfg.Formula, resolved, time.Since(start), cfg.Protected, nil), nil
}
