package fairflow

import (
	"context"
	"fmt"

	"github.com/fairflow/go-fairflow/pkg/fairflow/engine"
	"github.com/fairflow/go-fairflow/pkg/fairflow/output"
	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

// RunFairnessPost adapts a post-processing fairness engine to the uniform
// stage contract. The adjusted predictions are packaged together with the
// method alias and the task's output type.
func RunFairnessPost(ctx context.Context, ctl *Control, eng engine.Adjuster) (*output.FairnessPost, error) {
	if ctl == nil || ctl.FairnessPost == nil {
		return nil, &MissingInputError{Stage: "fairness_post", Field: "fairness_post"}
	}

	cfg := ctl.FairnessPost
	if len(cfg.Predictions) == 0 {
		return nil, &MissingInputError{Stage: "fairness_post", Field: "predictions"}
	}
	if len(cfg.Actuals) == 0 {
		return nil, &MissingInputError{Stage: "fairness_post", Field: "actuals"}
	}
	if len(cfg.Predictions) != len(cfg.Actuals) {
		return nil, &ValidationError{
			Stage:  "fairness_post",
			Fields: []string{"predictions", "actuals"},
			Reason: fmt.Sprintf("length mismatch: %d predictions vs %d actuals", len(cfg.Predictions), len(cfg.Actuals)),
		}
	}

	outputType := cfg.OutputType
	if outputType == "" {
		outputType = engine.OutputRegression
	}

	resolved := param.Merge(cfg.Params[eng.Alias()], eng.Defaults())

	adjusted, err := eng.Adjust(ctx, cfg.Predictions, cfg.Actuals, outputType, resolved)
	if err != nil {
		return nil, &EngineError{Stage: "fairness_post", Engine: eng.Alias(), Err: err}
	}

	return output.NewFairnessPost(adjusted, eng.Alias(), outputType, resolved, nil), nil
}
