package fairflow

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fairflow/go-fairflow/pkg/fairflow/engine"
	"github.com/fairflow/go-fairflow/pkg/fairflow/model"
	"github.com/fairflow/go-fairflow/pkg/fairflow/output"
)

var (
	ErrRegistryMustBeSet = errors.New("registry must be set")
	ErrControlMustBeSet  = errors.New("control must be set")
)

// Workflow threads control objects through the stage wrappers: per split
// train -> eval -> fairness post, then, over the finalized result
// collection, report elements -> report -> publish. Engine aliases are
// resolved against the registry before any stage executes.
//
// The workflow itself holds no mutable state between invocations; splits
// are independent and run concurrently.
type Workflow struct {
	registry  *engine.Registry
	logger    *zap.Logger
	opts      []model.WorkflowOption
	runID     string
	startTime time.Time
}

// New creates a workflow around an engine registry.
func New(registry *engine.Registry, opts ...Option) (*Workflow, error) {
	if registry == nil {
		return nil, ErrRegistryMustBeSet
	}

	w := &Workflow{
		registry:  registry,
		logger:    zap.NewNop(),
		runID:     uuid.NewString(),
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, o := range w.opts {
		if err := o.New(); err != nil {
			return nil, errors.Wrap(err, "unable to apply workflow option")
		}
	}

	return w, nil
}

// RunID returns the identifier minted for this workflow run.
func (w *Workflow) RunID() string {
	return w.runID
}

// Run executes every split concurrently and returns the finalized result
// collection once all splits completed. The join is the only barrier: the
// collection is never observed half-assembled.
func (w *Workflow) Run(ctx context.Context, splits map[string]*Control) (output.Collection, error) {
	grp, dCtx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	collection := make(output.Collection, len(splits))

	for name, ctl := range splits {
		name, ctl := name, ctl
		grp.Go(func() error {
			res, err := w.RunSplit(dCtx, name, ctl)
			if err != nil {
				return errors.Wrapf(err, "split %s", name)
			}

			mu.Lock()
			collection[name] = res
			mu.Unlock()

			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return collection, nil
}

// RunSplit executes the per-split stages configured in the control object,
// in order: train, eval, fairness post. Stages left nil are skipped.
// Evaluation predictions absent from the control are derived from the
// freshly trained model where possible, through a stage-scoped view; the
// control object itself is never mutated.
func (w *Workflow) RunSplit(ctx context.Context, split string, ctl *Control) (*output.SplitResult, error) {
	if ctl == nil {
		return nil, ErrControlMustBeSet
	}

	// Aliases are resolved for every configured stage before the first
	// one executes, so a typo cannot waste a training run.
	var (
		trainer   engine.Trainer
		evaluator engine.Evaluator
		adjuster  engine.Adjuster
		err       error
	)
	if ctl.Train != nil {
		if trainer, err = w.registry.Trainer(ctl.Train.Engine); err != nil {
			return nil, err
		}
	}
	if ctl.Eval != nil {
		if evaluator, err = w.registry.Evaluator(ctl.Eval.Engine); err != nil {
			return nil, err
		}
	}
	if ctl.FairnessPost != nil {
		if adjuster, err = w.registry.Adjuster(ctl.FairnessPost.Engine); err != nil {
			return nil, err
		}
	}

	res := &output.SplitResult{}
	parent := model.StartStage

	if ctl.Train != nil {
		stage := &model.StageInfo{Type: model.TrainStageType, Split: split, Engine: trainer.Alias()}
		err = w.runStage(parent, stage, func() error {
			out, err := RunTrain(ctx, ctl, trainer)
			res.Train = out

			return err
		})
		if err != nil {
			return nil, err
		}
		parent = stage
	}

	if ctl.Eval != nil {
		view, err := w.evalView(ctl, res.Train)
		if err != nil {
			return nil, err
		}

		stage := &model.StageInfo{Type: model.EvalStageType, Split: split, Engine: evaluator.Alias()}
		err = w.runStage(parent, stage, func() error {
			out, err := RunEval(ctx, view, evaluator)
			res.Eval = out

			return err
		})
		if err != nil {
			return nil, err
		}
		parent = stage
	}

	if ctl.FairnessPost != nil {
		view := w.fairnessView(ctl, res.Eval)

		stage := &model.StageInfo{Type: model.FairnessPostStageType, Split: split, Engine: adjuster.Alias()}
		err = w.runStage(parent, stage, func() error {
			out, err := RunFairnessPost(ctx, view, adjuster)
			res.FairnessPost = out

			return err
		})
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

// RunReporting renders the configured report elements over the finalized
// collection, assembles the report and publishes it. A publish failure
// envelope (success=false) does not make the workflow fail.
func (w *Workflow) RunReporting(ctx context.Context, ctl *Control, results output.Collection) (*output.Report, *output.Publish, error) {
	if ctl == nil {
		return nil, nil, ErrControlMustBeSet
	}
	if ctl.ReportElement == nil {
		return nil, nil, &MissingInputError{Stage: "reportelement", Field: "reportelement"}
	}

	renderers := make([]engine.Renderer, 0, len(ctl.ReportElement.Engines))
	for _, alias := range ctl.ReportElement.Engines {
		renderer, err := w.registry.Renderer(alias)
		if err != nil {
			return nil, nil, err
		}
		renderers = append(renderers, renderer)
	}

	var exporter engine.Exporter
	if ctl.Publish != nil {
		var err error
		if exporter, err = w.registry.Exporter(ctl.Publish.Engine); err != nil {
			return nil, nil, err
		}
	}

	parent := model.StartStage
	elements := make([]*output.ReportElement, 0, len(renderers))

	for _, renderer := range renderers {
		renderer := renderer
		stage := &model.StageInfo{Type: model.ReportElementStageType, Engine: renderer.Alias()}
		err := w.runStage(parent, stage, func() error {
			element, err := RunReportElement(ctx, ctl, renderer, results)
			if err != nil {
				return err
			}
			elements = append(elements, element)

			return nil
		})
		if err != nil {
			return nil, nil, err
		}
		parent = stage
	}

	var report *output.Report
	reportStage := &model.StageInfo{Type: model.ReportStageType}
	err := w.runStage(parent, reportStage, func() error {
		var err error
		report, err = RunReport(ctx, ctl, w.runID, elements)

		return err
	})
	if err != nil {
		return nil, nil, err
	}

	if ctl.Publish == nil {
		return report, nil, nil
	}

	var published *output.Publish
	publishStage := &model.StageInfo{Type: model.PublishStageType, Engine: exporter.Alias()}
	err = w.runStage(reportStage, publishStage, func() error {
		var err error
		published, err = RunPublish(ctx, ctl, exporter, report)

		return err
	})
	if err != nil {
		return report, nil, err
	}

	return report, published, nil
}

// Finish closes the workflow run and flushes every option (the drawer
// writes its file here).
func (w *Workflow) Finish() error {
	for _, o := range w.opts {
		if err := o.Finish(); err != nil {
			return errors.Wrap(err, "unable to finish workflow option")
		}
	}

	w.logger.Info("workflow finished",
		zap.String("run_id", w.runID),
		zap.Duration("elapsed", time.Since(w.startTime)),
	)

	return nil
}

func (w *Workflow) runStage(parent, stage *model.StageInfo, fn func() error) error {
	for _, o := range w.opts {
		if err := o.PrepareStage(parent, stage); err != nil {
			return errors.Wrap(err, "unable to prepare stage")
		}
	}

	w.logger.Debug("stage starting",
		zap.String("run_id", w.runID),
		zap.String("stage", stage.Name()),
		zap.String("engine", stage.Engine),
	)

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	for _, o := range w.opts {
		if optErr := o.OnStageDone(parent, stage, elapsed, err == nil); optErr != nil {
			return errors.Wrap(optErr, "unable to record stage completion")
		}
	}

	if err != nil {
		w.logger.Error("stage failed",
			zap.String("run_id", w.runID),
			zap.String("stage", stage.Name()),
			zap.String("engine", stage.Engine),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)

		return err
	}

	w.logger.Info("stage finished",
		zap.String("run_id", w.runID),
		zap.String("stage", stage.Name()),
		zap.String("engine", stage.Engine),
		zap.Duration("elapsed", elapsed),
	)

	return nil
}

// evalView derives the stage-scoped control view for evaluation. When the
// control carries no predictions but a model was just trained and the eval
// dataset is present, predictions are computed from that model.
func (w *Workflow) evalView(ctl *Control, trained *output.Train) (*Control, error) {
	cfg := ctl.Eval
	if len(cfg.Predictions) > 0 || trained == nil || cfg.Data == nil {
		return ctl, nil
	}

	mdl, ok := trained.Model.(engine.Model)
	if !ok {
		return ctl, nil
	}

	predictions, err := mdl.Predict(cfg.Data)
	if err != nil {
		return nil, &EngineError{Stage: "eval", Engine: trained.ModelType, Err: err}
	}

	derived := *cfg
	derived.Predictions = predictions

	view := *ctl
	view.Eval = &derived

	return &view, nil
}

// fairnessView derives the stage-scoped control view for the fairness
// post-processing stage, reusing the evaluation echo when the control
// carries no predictions of its own.
func (w *Workflow) fairnessView(ctl *Control, evaluated *output.Eval) *Control {
	cfg := ctl.FairnessPost
	if len(cfg.Predictions) > 0 || evaluated == nil || evaluated.InputData == nil {
		return ctl
	}

	derived := *cfg
	derived.Predictions = evaluated.InputData.Predictions
	if len(derived.Actuals) == 0 {
		derived.Actuals = evaluated.InputData.Actuals
	}

	view := *ctl
	view.FairnessPost = &derived

	return &view
}
