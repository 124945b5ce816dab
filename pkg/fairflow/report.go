package fairflow

import (
	"context"

	"github.com/fairflow/go-fairflow/pkg/fairflow/engine"
	"github.com/fairflow/go-fairflow/pkg/fairflow/output"
	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

// RunReportElement adapts a report element engine to the uniform stage
// contract. The result collection is handed to the engine read-only; the
// wrapper only resolves parameters and wraps failures.
func RunReportElement(ctx context.Context, ctl *Control, eng engine.Renderer, results output.Collection) (*output.ReportElement, error) {
	if ctl == nil || ctl.ReportElement == nil {
		return nil, &MissingInputError{Stage: "reportelement", Field: "reportelement"}
	}
	if len(results) == 0 {
		return nil, &MissingInputError{Stage: "reportelement", Field: "results"}
	}

	resolved := param.Merge(ctl.ReportElement.Params[eng.Alias()], eng.Defaults())

	element, err := eng.Render(ctx, results, resolved)
	if err != nil {
		return nil, &EngineError{Stage: "reportelement", Engine: eng.Alias(), Err: err}
	}

	return element, nil
}

// RunReport assembles rendered elements into a report envelope. The
// report's compatible formats are the intersection of its elements'
// formats, so publishing can check compatibility without inspecting
// individual elements.
func RunReport(ctx context.Context, ctl *Control, runID string, elements []*output.ReportElement) (*output.Report, error) {
	if ctl == nil || ctl.Report == nil {
		return nil, &MissingInputError{Stage: "report", Field: "report"}
	}
	if ctl.Report.Title == "" {
		return nil, &MissingInputError{Stage: "report", Field: "title"}
	}
	if len(elements) == 0 {
		return nil, &MissingInputError{Stage: "report", Field: "elements"}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return output.NewReport(ctl.Report.Title, elements, intersectFormats(elements), runID, nil), nil
}

func intersectFormats(elements []*output.ReportElement) []string {
	counts := make(map[string]int)
	var order []string

	for _, element := range elements {
		// Duplicate formats on one element must count once, or they would
		// inflate the tally past the element count.
		seen := make(map[string]struct{}, len(element.CompatibleFormats))
		for _, format := range element.CompatibleFormats {
			if _, ok := seen[format]; ok {
				continue
			}
			seen[format] = struct{}{}

			if counts[format] == 0 {
				order = append(order, format)
			}
			counts[format]++
		}
	}

	var shared []string
	for _, format := range order {
		if counts[format] == len(elements) {
			shared = append(shared, format)
		}
	}

	return shared
}
