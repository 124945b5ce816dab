// Package model holds the stage metadata and the workflow option protocol
// shared by the core package and its pluggable observers (measure, drawer,
// Prometheus export).
package model

// StageType identifies a pipeline stage family.
type StageType string

const (
	TrainStageType         StageType = "train"
	EvalStageType          StageType = "eval"
	FairnessPostStageType  StageType = "fairness_post"
	ReportElementStageType StageType = "reportelement"
	ReportStageType        StageType = "report"
	PublishStageType       StageType = "publish"
)

// StageInfo describes one stage invocation: its family, the split it runs
// for (empty for aggregation stages) and the engine alias serving it.
type StageInfo struct {
	Type   StageType
	Split  string
	Engine string
}

// Name renders a stable, human-readable identifier for the invocation,
// unique within one workflow run. Split stages are keyed by their split,
// aggregation stages by their engine alias, so the same stage family can
// appear several times in the executed graph.
func (s *StageInfo) Name() string {
	name := string(s.Type)
	if s.Split != "" {
		return s.Split + "/" + name
	}
	if s.Engine != "" {
		return name + "/" + s.Engine
	}

	return name
}

// Boundary vertices of the executed stage graph.
var (
	StartStage = &StageInfo{Type: "start"}
	EndStage   = &StageInfo{Type: "end"}
)
