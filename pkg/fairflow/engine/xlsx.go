package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/fairflow/go-fairflow/pkg/fairflow/output"
	"github.com/fairflow/go-fairflow/pkg/fairflow/param"
)

// XLSXExporter writes a report as a spreadsheet, one sheet per report
// element. Element types it cannot lay out degrade to a placeholder row
// instead of failing the whole export.
type XLSXExporter struct{}

// NewXLSXExporter creates the spreadsheet exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) Alias() string {
	return "xlsx"
}

func (e *XLSXExporter) Defaults() param.Params {
	return param.Params{}
}

func (e *XLSXExporter) Formats() []string {
	return []string{"xlsx"}
}

func (e *XLSXExporter) Export(ctx context.Context, report *output.Report, basePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "spreadsheet export cancelled")
	}

	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	used := make(map[string]struct{}, len(report.Elements))
	for i, element := range report.Elements {
		sheet := sheetName(element.Alias, i, used)
		if i == 0 {
			if err := file.SetSheetName(file.GetSheetName(0), sheet); err != nil {
				return "", errors.Wrapf(err, "unable to rename sheet for element %q", element.Alias)
			}
		} else {
			if _, err := file.NewSheet(sheet); err != nil {
				return "", errors.Wrapf(err, "unable to add sheet for element %q", element.Alias)
			}
		}

		if err := writeElement(file, sheet, element); err != nil {
			return "", errors.Wrapf(err, "unable to write element %q", element.Alias)
		}
	}

	// The write is the one cancellable boundary: abandon it when the
	// context ended while sheets were assembled in memory.
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "spreadsheet export cancelled")
	}

	path := basePath + ".xlsx"
	if err := file.SaveAs(path); err != nil {
		return "", errors.Wrapf(err, "unable to save spreadsheet %s", path)
	}

	return path, nil
}

func writeElement(file *excelize.File, sheet string, element *output.ReportElement) error {
	switch element.ElementType {
	case "text":
		return file.SetCellValue(sheet, "A1", element.Content)
	default:
		placeholder := fmt.Sprintf("element type %q is not supported by the xlsx exporter", element.ElementType)

		return file.SetCellValue(sheet, "A1", placeholder)
	}
}

const maxSheetNameRunes = 31

// sheetName derives a valid spreadsheet sheet name from an element alias.
// Sheet names are capped at 31 characters, may not contain :\/?*[]
// characters and must be unique within the workbook; a name a previous
// element already claimed is disambiguated with the element index.
func sheetName(alias string, index int, used map[string]struct{}) string {
	if alias == "" {
		alias = fmt.Sprintf("element-%d", index+1)
	}

	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		default:
			return r
		}
	}, alias)

	name := truncateRunes(sanitized, maxSheetNameRunes)
	if _, ok := used[name]; ok {
		suffix := fmt.Sprintf("-%d", index+1)
		name = truncateRunes(sanitized, maxSheetNameRunes-len(suffix)) + suffix
	}
	used[name] = struct{}{}

	return name
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}

var _ Exporter = (*XLSXExporter)(nil)
