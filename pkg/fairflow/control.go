package fairflow

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/fairflow/go-fairflow/pkg/fairflow/frame"
	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

// Control is the full, stage-keyed configuration record of one workflow
// run. Stages left nil are not executed. A Control is read-only within a
// stage invocation: wrappers derive stage-scoped views, they never mutate
// it.
type Control struct {
	Train         *TrainConfig         `yaml:"train,omitempty"`
	Eval          *EvalConfig          `yaml:"eval,omitempty"`
	FairnessPost  *FairnessPostConfig  `yaml:"fairness_post,omitempty"`
	ReportElement *ReportElementConfig `yaml:"reportelement,omitempty"`
	Report        *ReportConfig        `yaml:"report,omitempty"`
	Publish       *PublishConfig       `yaml:"publish,omitempty"`
}

// TrainConfig configures the training stage. Datasets are attached
// programmatically, not from YAML.
type TrainConfig struct {
	Engine        string   `yaml:"engine"`
	Formula       string   `yaml:"formula"`
	UseNormalized bool     `yaml:"use_normalized"`
	Protected     []string `yaml:"protected_attributes,omitempty"`

	Data *frame.TrainingData `yaml:"-"`

	// Params holds per-engine hyperparameter overrides, keyed by engine
	// alias.
	Params map[string]param.Params `yaml:"params,omitempty"`
}

// EvalConfig configures the evaluation stage. Data carries the columns of
// the protected attributes for group-aware evaluators.
type EvalConfig struct {
	Engine    string   `yaml:"engine"`
	EvalType  string   `yaml:"eval_type,omitempty"`
	Protected []string `yaml:"protected_attributes,omitempty"`

	Predictions []float64      `yaml:"-"`
	Actuals     []float64      `yaml:"-"`
	Data        *frame.Dataset `yaml:"-"`

	Params map[string]param.Params `yaml:"params,omitempty"`
}

// FairnessPostConfig configures the post-processing fairness correction
// stage.
type FairnessPostConfig struct {
	Engine     string `yaml:"engine"`
	OutputType string `yaml:"output_type"`

	Predictions []float64 `yaml:"-"`
	Actuals     []float64 `yaml:"-"`

	Params map[string]param.Params `yaml:"params,omitempty"`
}

// ReportElementConfig configures the report element stage: one element is
// rendered per listed engine alias.
type ReportElementConfig struct {
	Engines []string                `yaml:"engines"`
	Params  map[string]param.Params `yaml:"params,omitempty"`
}

// ReportConfig configures the report assembly stage.
type ReportConfig struct {
	Title string `yaml:"title"`
}

// PublishConfig configures the publishing stage. Path is the base file
// path without extension; the exporter appends its own.
type PublishConfig struct {
	Alias  string `yaml:"alias"`
	Engine string `yaml:"engine"`
	Format string `yaml:"format"`
	Path   string `yaml:"path"`

	Params map[string]param.Params `yaml:"params,omitempty"`
}

// LoadControl reads the scalar portion of a control object from a YAML
// file. Datasets, predictions and actuals are attached by the caller
// afterwards.
func LoadControl(path string) (*Control, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read control file %s", path)
	}

	ctl := &Control{}
	if err := yaml.Unmarshal(raw, ctl); err != nil {
		return nil, errors.Wrapf(err, "unable to parse control file %s", path)
	}

	return ctl, nil
}
