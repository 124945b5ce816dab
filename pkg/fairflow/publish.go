package fairflow

import (
	"context"
	"fmt"

	"github.com/fairflow/go-fairflow/pkg/fairflow/engine"
	"github.com/fairflow/go-fairflow/pkg/fairflow/output"
	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

// RunPublish adapts a publishing engine to the uniform stage contract.
//
// Publishing is the one stage with a documented partial-failure policy: an
// incompatible format or a failing export never aborts the pipeline.
// Instead the wrapper returns a success=false envelope carrying the error
// message under specific_output.error, mirroring a normal result. Missing
// required inputs remain fatal, like in every other stage.
func RunPublish(ctx context.Context, ctl *Control, eng engine.Exporter, report *output.Report) (*output.Publish, error) {
	if ctl == nil || ctl.Publish == nil {
		return nil, &MissingInputError{Stage: "publish", Field: "publish"}
	}

	cfg := ctl.Publish
	if cfg.Path == "" {
		return nil, &MissingInputError{Stage: "publish", Field: "path"}
	}
	if cfg.Format == "" {
		return nil, &MissingInputError{Stage: "publish", Field: "format"}
	}
	if report == nil {
		return nil, &MissingInputError{Stage: "publish", Field: "report"}
	}

	alias := cfg.Alias
	if alias == "" {
		alias = eng.Alias()
	}

	resolved := param.Merge(cfg.Params[eng.Alias()], eng.Defaults())

	// Compatibility is checked before any write is attempted.
	if !containsFormat(report.CompatibleFormats, cfg.Format) {
		reason := (&ConfigurationError{
			Stage:  "publish",
			Reason: fmt.Sprintf("report does not support format %q (compatible: %v)", cfg.Format, report.CompatibleFormats),
		}).Error()

		return output.NewPublishFailure(alias, "report", eng.Alias(), resolved, reason), nil
	}
	if !containsFormat(eng.Formats(), cfg.Format) {
		reason := (&ConfigurationError{
			Stage:  "publish",
			Reason: fmt.Sprintf("engine %q does not produce format %q (produces: %v)", eng.Alias(), cfg.Format, eng.Formats()),
		}).Error()

		return output.NewPublishFailure(alias, "report", eng.Alias(), resolved, reason), nil
	}

	path, err := eng.Export(ctx, report, cfg.Path)
	if err != nil {
		engErr := &EngineError{Stage: "publish", Engine: eng.Alias(), Err: err}

		return output.NewPublishFailure(alias, "report", eng.Alias(), resolved, engErr.Error()), nil
	}

	return output.NewPublish(alias, "report", eng.Alias(), path, resolved), nil
}

func containsFormat(formats []string, format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}

	return false
}
