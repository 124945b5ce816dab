package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/fairflow/go-fairflow/pkg/fairflow/measure"
	"github.com/fairflow/go-fairflow/pkg/fairflow/model"
)

type workflowDrawer struct {
	Drawer
	measure   measure.Measure
	startTime time.Time
}

func (wd *workflowDrawer) New() error {
	err := wd.AddStage(model.StartStage.Name())
	if err != nil {
		return errors.Wrap(err, "unable to add start stage")
	}

	err = wd.AddStage(model.EndStage.Name())
	if err != nil {
		return errors.Wrap(err, "unable to add end stage")
	}

	return nil
}

func (wd *workflowDrawer) PrepareStage(parent, stage *model.StageInfo) error {
	err := wd.AddStage(stage.Name())
	if err != nil {
		return errors.Wrapf(err, "unable to add stage %s", stage.Name())
	}

	err = wd.AddLink(parent.Name(), stage.Name())
	if err != nil {
		return errors.Wrapf(err, "unable to link %s to %s", parent.Name(), stage.Name())
	}

	return nil
}

func (wd *workflowDrawer) OnStageDone(parent, stage *model.StageInfo, elapsed time.Duration, success bool) error {
	return nil
}

func (wd *workflowDrawer) Finish() error {
	err := wd.SetTotalTime(model.EndStage.Name(), wd.startTime)
	if err != nil {
		return errors.Wrap(err, "unable to set total time")
	}

	if wd.measure != nil {
		err = wd.AddMeasure(wd.measure)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err = wd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw the workflow")
	}

	return nil
}

// WorkflowDrawer wraps a Drawer into a workflow option rendering the stage
// graph when the workflow finishes.
func WorkflowDrawer(drawer Drawer) model.WorkflowOption {
	return &workflowDrawer{drawer, nil, time.Now()}
}

// WorkflowDrawerWithMeasure is WorkflowDrawer with stage timing annotations
// taken from measure.
func WorkflowDrawerWithMeasure(drawer Drawer, measure measure.Measure) model.WorkflowOption {
	return &workflowDrawer{drawer, measure, time.Now()}
}
