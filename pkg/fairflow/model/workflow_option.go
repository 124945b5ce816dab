package model

import "time"

// WorkflowOption is the lifecycle hook surface a workflow observer
// implements. The workflow calls New once at construction, brackets every
// stage invocation with PrepareStage and OnStageDone, and calls Finish when
// the run is closed.
type WorkflowOption interface {
	// New initialises the option.
	New() error

	// PrepareStage runs before a stage is invoked. parent is the stage
	// whose output feeds this one (StartStage for the first stage of a
	// split).
	PrepareStage(parent, stage *StageInfo) error

	// OnStageDone runs after a stage invocation returns, successful or
	// not.
	OnStageDone(parent, stage *StageInfo, elapsed time.Duration, success bool) error

	// Finish runs after the workflow is finished.
	Finish() error
}
