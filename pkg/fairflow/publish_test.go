package fairflow

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairflow/go-fairflow/pkg/fairflow/output"
)

func textReport(formats ...string) *output.Report {
	element := output.NewReportElement("meanmetric", "text", "content", formats, nil)

	return output.NewReport("title", []*output.ReportElement{element}, formats, "run-1", nil)
}

func TestRunPublish(t *testing.T) {
	exporter := &stubExporter{formats: []string{"txt"}, path: "out/report.txt"}
	ctl := &Control{Publish: &PublishConfig{
		Alias:  "final-report",
		Engine: "stubexport",
		Format: "txt",
		Path:   "out/report",
	}}

	out, err := RunPublish(context.Background(), ctl, exporter, textReport("txt"))
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "final-report", out.Alias)
	assert.Equal(t, "report", out.Type)
	assert.Equal(t, "stubexport", out.Engine)
	assert.Equal(t, "out/report.txt", out.Path)
	assert.Equal(t, 1, exporter.calls)
}

func TestRunPublishAliasDefaultsToEngine(t *testing.T) {
	exporter := &stubExporter{formats: []string{"txt"}, path: "out/report.txt"}
	ctl := &Control{Publish: &PublishConfig{Engine: "stubexport", Format: "txt", Path: "out/report"}}

	out, err := RunPublish(context.Background(), ctl, exporter, textReport("txt"))
	require.NoError(t, err)
	assert.Equal(t, "stubexport", out.Alias)
}

func TestRunPublishIncompatibleReportFormat(t *testing.T) {
	exporter := &stubExporter{formats: []string{"xlsx"}}
	ctl := &Control{Publish: &PublishConfig{Engine: "stubexport", Format: "xlsx", Path: "out/report"}}

	// the report only supports txt
	out, err := RunPublish(context.Background(), ctl, exporter, textReport("txt"))
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.Empty(t, out.Path)
	assert.Contains(t, out.Specific["error"], `does not support format "xlsx"`)

	// no write is attempted
	assert.Zero(t, exporter.calls)
}

func TestRunPublishIncompatibleEngineFormat(t *testing.T) {
	exporter := &stubExporter{formats: []string{"xlsx"}}
	ctl := &Control{Publish: &PublishConfig{Engine: "stubexport", Format: "txt", Path: "out/report"}}

	out, err := RunPublish(context.Background(), ctl, exporter, textReport("txt"))
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.Contains(t, out.Specific["error"], `does not produce format "txt"`)
	assert.Zero(t, exporter.calls)
}

func TestRunPublishExportFailure(t *testing.T) {
	exporter := &stubExporter{formats: []string{"txt"}, err: errors.New("disk full")}
	ctl := &Control{Publish: &PublishConfig{Engine: "stubexport", Format: "txt", Path: "out/report"}}

	out, err := RunPublish(context.Background(), ctl, exporter, textReport("txt"))
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.Contains(t, out.Specific["error"], "disk full")
}

func TestRunPublishMissingInputs(t *testing.T) {
	report := textReport("txt")

	testCases := map[string]struct {
		ctl           *Control
		report        *output.Report
		expectedField string
	}{
		"nil publish config": {
			ctl:           &Control{},
			report:        report,
			expectedField: "publish",
		},
		"missing path": {
			ctl:           &Control{Publish: &PublishConfig{Engine: "stubexport", Format: "txt"}},
			report:        report,
			expectedField: "path",
		},
		"missing format": {
			ctl:           &Control{Publish: &PublishConfig{Engine: "stubexport", Path: "out/report"}},
			report:        report,
			expectedField: "format",
		},
		"missing report": {
			ctl:           &Control{Publish: &PublishConfig{Engine: "stubexport", Format: "txt", Path: "out/report"}},
			expectedField: "report",
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			exporter := &stubExporter{formats: []string{"txt"}}

			_, err := RunPublish(context.Background(), tc.ctl, exporter, tc.report)

			var missing *MissingInputError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.expectedField, missing.Field)
			assert.Zero(t, exporter.calls)
		})
	}
}
