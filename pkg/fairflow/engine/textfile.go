package engine

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/fairflow/go-fairflow/pkg/fairflow/output"
	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

// TextFileExporter writes a report as a plain text file, one block per
// report element.
type TextFileExporter struct{}

// NewTextFileExporter creates the plain text exporter.
func NewTextFileExporter() *TextFileExporter {
	return &TextFileExporter{}
}

func (e *TextFileExporter) Alias() string {
	return "textfile"
}

func (e *TextFileExporter) Defaults() param.Params {
	return param.Params{}
}

func (e *TextFileExporter) Formats() []string {
	return []string{"txt"}
}

func (e *TextFileExporter) Export(ctx context.Context, report *output.Report, basePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "text export cancelled")
	}

	var b strings.Builder
	b.WriteString(report.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(report.Title)))
	b.WriteString("\n")

	for _, element := range report.Elements {
		b.WriteString("\n## ")
		b.WriteString(element.Alias)
		b.WriteString("\n")

		switch element.ElementType {
		case "text":
			b.WriteString(element.Content)
		default:
			fmt.Fprintf(&b, "element type %q is not supported by the text exporter", element.ElementType)
		}
		b.WriteString("\n")
	}

	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "text export cancelled")
	}

	path := basePath + ".txt"
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", errors.Wrapf(err, "unable to write report %s", path)
	}

	return path, nil
}

var _ Exporter = (*TextFileExporter)(nil)
