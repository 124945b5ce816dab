package measure

import (
	"time"

	"github.com/fairflow/go-fairflow/pkg/fairflow/model"
)

type workflowMeasure struct {
	Measure
	startTime time.Time
}

func (wm *workflowMeasure) New() error {
	wm.AddMetric(model.StartStage.Name())
	wm.AddMetric(model.EndStage.Name())

	return nil
}

func (wm *workflowMeasure) PrepareStage(parent, stage *model.StageInfo) error {
	wm.AddMetric(stage.Name())

	return nil
}

func (wm *workflowMeasure) OnStageDone(parent, stage *model.StageInfo, elapsed time.Duration, success bool) error {
	wm.GetMetric(stage.Name()).AddDuration(elapsed, success)

	return nil
}

func (wm *workflowMeasure) Finish() error {
	wm.GetMetric(model.EndStage.Name()).SetTotalDuration(time.Since(wm.startTime))

	return nil
}

// WorkflowMeasure wraps a Measure into a workflow option recording every
// stage invocation.
func WorkflowMeasure(measure Measure) model.WorkflowOption {
	return &workflowMeasure{measure, time.Now()}
}
