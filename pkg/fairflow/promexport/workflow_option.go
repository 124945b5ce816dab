package promexport

import (
	"time"

	"github.com/fairflow/go-fairflow/pkg/fairflow/model"
)

type workflowExport struct {
	registry *Registry
}

func (we *workflowExport) New() error {
	return nil
}

func (we *workflowExport) PrepareStage(parent, stage *model.StageInfo) error {
	we.registry.StagesStarted.WithLabelValues(string(stage.Type), stage.Engine).Inc()

	return nil
}

func (we *workflowExport) OnStageDone(parent, stage *model.StageInfo, elapsed time.Duration, success bool) error {
	labels := []string{string(stage.Type), stage.Engine}

	we.registry.StageDuration.WithLabelValues(labels...).Observe(elapsed.Seconds())

	if success {
		we.registry.StagesCompleted.WithLabelValues(labels...).Inc()
	} else {
		we.registry.StagesFailed.WithLabelValues(labels...).Inc()
	}

	return nil
}

func (we *workflowExport) Finish() error {
	we.registry.WorkflowsDone.Inc()

	return nil
}

// WorkflowExport wraps a metrics registry into a workflow option counting
// and timing every stage invocation.
func WorkflowExport(registry *Registry) model.WorkflowOption {
	return &workflowExport{registry: registry}
}
