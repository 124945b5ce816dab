package drawer

import (
	"time"

	"github.com/fairflow/go-fairflow/pkg/fairflow/measure"
)

// Drawer renders the executed stage graph of a workflow run.
type Drawer interface {
	// AddStage adds a stage to the graph.
	AddStage(stageName string) error
	// AddLink adds a link between a parent stage and its child.
	AddLink(parentStageName, childStageName string) error
	// SetTotalTime annotates the stage with the elapsed time since
	// startTime.
	SetTotalTime(stageName string, startTime time.Time) error
	// AddMeasure annotates the graph with recorded stage metrics.
	AddMeasure(measure measure.Measure) error
	// Draw writes the graph to its destination.
	Draw() error
}
