package fairflow

import (
	"context"
	"fmt"

	"github.com/fairflow/go-fairflow/pkg/fairflow/engine"
	"github.com/fairflow/go-fairflow/pkg/fairflow/output"
	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

// RunEval adapts an evaluation engine to the uniform stage contract. For
// group-aware engines the wrapper extracts the protected attribute columns
// and validates that each holds exactly two distinct values BEFORE the
// engine runs.
func RunEval(ctx context.Context, ctl *Control, eng engine.Evaluator) (*output.Eval, error) {
	if ctl == nil || ctl.Eval == nil {
		return nil, &MissingInputError{Stage: "eval", Field: "eval"}
	}

	cfg := ctl.Eval
	if len(cfg.Predictions) == 0 {
		return nil, &MissingInputError{Stage: "eval", Field: "predictions"}
	}
	if len(cfg.Actuals) == 0 {
		return nil, &MissingInputError{Stage: "eval", Field: "actuals"}
	}
	if len(cfg.Predictions) != len(cfg.Actuals) {
		return nil, &ValidationError{
			Stage:  "eval",
			Fields: []string{"predictions", "actuals"},
			Reason: fmt.Sprintf("length mismatch: %d predictions vs %d actuals", len(cfg.Predictions), len(cfg.Actuals)),
		}
	}

	in := engine.EvalInput{
		Predictions: cfg.Predictions,
		Actuals:     cfg.Actuals,
	}

	if aware, ok := eng.(engine.GroupAware); ok && aware.RequiresBinaryGroups() {
		groups, err := extractBinaryGroups(cfg)
		if err != nil {
			return nil, err
		}
		in.Groups = groups
	}

	resolved := param.Merge(cfg.Params[eng.Alias()], eng.Defaults())

	metrics, err := eng.Evaluate(ctx, in, resolved)
	if err != nil {
		return nil, &EngineError{Stage: "eval", Engine: eng.Alias(), Err: err}
	}

	evalType := cfg.EvalType
	if evalType == "" {
		evalType = eng.Alias()
	}

	echo := &output.EvalInput{Predictions: cfg.Predictions, Actuals: cfg.Actuals}

	return output.NewEval(metrics, evalType, echo, cfg.Protected, resolved, nil), nil
}

// extractBinaryGroups pulls the protected attribute columns out of the
// eval dataset and rejects any attribute with other than two distinct
// values.
func extractBinaryGroups(cfg *EvalConfig) (map[string][]float64, error) {
	if len(cfg.Protected) == 0 {
		return nil, &MissingInputError{Stage: "eval", Field: "protected_attributes"}
	}
	if cfg.Data == nil {
		return nil, &MissingInputError{Stage: "eval", Field: "data"}
	}

	groups := make(map[string][]float64, len(cfg.Protected))
	var offending []string

	for _, name := range cfg.Protected {
		if !cfg.Data.HasColumn(name) {
			return nil, &MissingInputError{Stage: "eval", Field: name}
		}

		distinct, err := cfg.Data.DistinctValues(name)
		if err != nil {
			return nil, &ValidationError{Stage: "eval", Fields: []string{name}, Reason: err.Error()}
		}
		if len(distinct) != 2 {
			offending = append(offending, name)
			continue
		}

		column, err := cfg.Data.Column(name)
		if err != nil {
			return nil, &ValidationError{Stage: "eval", Fields: []string{name}, Reason: err.Error()}
		}
		groups[name] = column
	}

	if len(offending) > 0 {
		return nil, &ValidationError{
			Stage:  "eval",
			Fields: offending,
			Reason: "protected attributes must hold exactly two distinct values",
		}
	}

	return groups, nil
}
