// Package output defines the canonical result envelopes produced by every
// pipeline stage family, the pure builders that assemble them, and the
// per-split result collection consumed by reporting stages.
//
// Builders never validate and never compute; validation belongs to the
// stage wrappers. Optional fields are absent (nil, omitted on
// serialisation), never present with a null placeholder, so consumers test
// presence instead of null-checking every field.
package output

import (
	"time"

	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

// Train is the canonical envelope of a training stage.
type Train struct {
	// Model is the raw fitted-model handle returned by the train engine.
	Model           any          `json:"model,omitempty" yaml:"model,omitempty"`
	ModelType       string       `json:"model_type" yaml:"model_type"`
	Formula         string       `json:"formula" yaml:"formula"`
	Hyperparameters param.Params `json:"hyperparameters" yaml:"hyperparameters"`
	Duration        time.Duration `json:"duration" yaml:"duration"`

	Protected []string       `json:"protected_attributes,omitempty" yaml:"protected_attributes,omitempty"`
	Specific  map[string]any `json:"specific_output,omitempty" yaml:"specific_output,omitempty"`
}

// NewTrain assembles a training envelope.
func NewTrain(model any, modelType, formula string, hyper param.Params, duration time.Duration, protected []string, specific map[string]any) *Train {
	out := &Train{
		Model:           model,
		ModelType:       modelType,
		Formula:         formula,
		Hyperparameters: hyper,
		Duration:        duration,
	}
	if len(protected) > 0 {
		out.Protected = append([]string(nil), protected...)
	}
	if len(specific) > 0 {
		out.Specific = specific
	}

	return out
}

// EvalInput echoes the data an evaluation ran on.
type EvalInput struct {
	Predictions []float64 `json:"predictions" yaml:"predictions"`
	Actuals     []float64 `json:"actuals" yaml:"actuals"`
}

// Eval is the canonical envelope of an evaluation stage.
type Eval struct {
	Metrics   map[string]float64 `json:"metrics" yaml:"metrics"`
	EvalType  string             `json:"eval_type" yaml:"eval_type"`
	InputData *EvalInput         `json:"input_data" yaml:"input_data"`

	Protected []string       `json:"protected_attributes,omitempty" yaml:"protected_attributes,omitempty"`
	Params    param.Params   `json:"params,omitempty" yaml:"params,omitempty"`
	Specific  map[string]any `json:"specific_output,omitempty" yaml:"specific_output,omitempty"`
}

// NewEval assembles an evaluation envelope.
func NewEval(metrics map[string]float64, evalType string, input *EvalInput, protected []string, params param.Params, specific map[string]any) *Eval {
	out := &Eval{
		Metrics:   metrics,
		EvalType:  evalType,
		InputData: input,
	}
	if len(protected) > 0 {
		out.Protected = append([]string(nil), protected...)
	}
	if len(params) > 0 {
		out.Params = params
	}
	if len(specific) > 0 {
		out.Specific = specific
	}

	return out
}

// FairnessPost is the canonical envelope of a post-processing fairness
// correction stage.
type FairnessPost struct {
	Predictions []float64 `json:"predictions" yaml:"predictions"`
	Method      string    `json:"method" yaml:"method"`
	OutputType  string    `json:"output_type" yaml:"output_type"`

	Params   param.Params   `json:"params,omitempty" yaml:"params,omitempty"`
	Specific map[string]any `json:"specific_output,omitempty" yaml:"specific_output,omitempty"`
}

// NewFairnessPost assembles a fairness post-processing envelope.
func NewFairnessPost(predictions []float64, method, outputType string, params param.Params, specific map[string]any) *FairnessPost {
	out := &FairnessPost{
		Predictions: predictions,
		Method:      method,
		OutputType:  outputType,
	}
	if len(params) > 0 {
		out.Params = params
	}
	if len(specific) > 0 {
		out.Specific = specific
	}

	return out
}

// ReportElement is the canonical envelope of a single rendered report
// section.
type ReportElement struct {
	Alias             string   `json:"alias" yaml:"alias"`
	ElementType       string   `json:"element_type" yaml:"element_type"`
	Content           string   `json:"content" yaml:"content"`
	CompatibleFormats []string `json:"compatible_formats" yaml:"compatible_formats"`

	Specific map[string]any `json:"specific_output,omitempty" yaml:"specific_output,omitempty"`
}

// NewReportElement assembles a report element envelope.
func NewReportElement(alias, elementType, content string, compatibleFormats []string, specific map[string]any) *ReportElement {
	out := &ReportElement{
		Alias:             alias,
		ElementType:       elementType,
		Content:           content,
		CompatibleFormats: compatibleFormats,
	}
	if len(specific) > 0 {
		out.Specific = specific
	}

	return out
}

// Report is the canonical envelope of an assembled report. Its compatible
// formats are the intersection of its elements' formats.
type Report struct {
	Title             string           `json:"title" yaml:"title"`
	Elements          []*ReportElement `json:"elements" yaml:"elements"`
	CompatibleFormats []string         `json:"compatible_formats" yaml:"compatible_formats"`

	RunID    string         `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Specific map[string]any `json:"specific_output,omitempty" yaml:"specific_output,omitempty"`
}

// NewReport assembles a report envelope.
func NewReport(title string, elements []*ReportElement, compatibleFormats []string, runID string, specific map[string]any) *Report {
	out := &Report{
		Title:             title,
		Elements:          elements,
		CompatibleFormats: compatibleFormats,
	}
	if runID != "" {
		out.RunID = runID
	}
	if len(specific) > 0 {
		out.Specific = specific
	}

	return out
}

// Publish is the canonical envelope of a publishing stage. A failed export
// still yields a Publish record, with Success false and the error message
// under Specific["error"].
type Publish struct {
	Alias   string `json:"alias" yaml:"alias"`
	Type    string `json:"type" yaml:"type"`
	Engine  string `json:"engine" yaml:"engine"`
	Path    string `json:"path" yaml:"path"`
	Success bool   `json:"success" yaml:"success"`

	Params   param.Params   `json:"params,omitempty" yaml:"params,omitempty"`
	Specific map[string]any `json:"specific_output,omitempty" yaml:"specific_output,omitempty"`
}

// NewPublish assembles a publish envelope for a successful export.
func NewPublish(alias, objectType, engineAlias, path string, params param.Params) *Publish {
	out := &Publish{
		Alias:   alias,
		Type:    objectType,
		Engine:  engineAlias,
		Path:    path,
		Success: true,
	}
	if len(params) > 0 {
		out.Params = params
	}

	return out
}

// NewPublishFailure assembles a publish envelope for a failed export.
func NewPublishFailure(alias, objectType, engineAlias string, params param.Params, reason string) *Publish {
	out := &Publish{
		Alias:    alias,
		Type:     objectType,
		Engine:   engineAlias,
		Success:  false,
		Specific: map[string]any{"error": reason},
	}
	if len(params) > 0 {
		out.Params = params
	}

	return out
}
