package report

import (
	"log/slog"

	"github.com/sartorproj/goenergy/analysis"
	"github.com/sartorproj/goenergy/timeseries"
	"github.com/xuri/excelize/v2"
)

// Header is the first row of every worksheet.
var Header = []string{"country", "year", "value", "kind"}

// WriteXLSX saves projections to an Excel workbook at path, one worksheet
// per variable in order of first appearance.
func WriteXLSX(path string, prs []analysis.Projection) error {
	if len(prs) == 0 {
		return EmptyReportError(path)
	}

	f := excelize.NewFile()
	defer f.Close()

	rows := make(map[string]int)
	for _, pr := range prs {
		sheet := string(pr.Variable)
		if _, ok := rows[sheet]; !ok {
			if err := addSheet(f, sheet, len(rows) == 0); err != nil {
				return ReportError(path, err)
			}
			rows[sheet] = 1
		}
		next, err := writeSeries(f, sheet, rows[sheet]+1, pr.Country, pr.History, KindHistory)
		if err != nil {
			return ReportError(path, err)
		}
		next, err = writeSeries(f, sheet, next, pr.Country, pr.Predicted, KindPredicted)
		if err != nil {
			return ReportError(path, err)
		}
		rows[sheet] = next - 1
	}

	if err := f.SaveAs(path); err != nil {
		return ReportError(path, err)
	}
	slog.Info("Workbook saved", "path", path, "sheets", len(rows))
	return nil
}

// addSheet creates a sheet with the header row. The first sheet replaces
// the default one of a new workbook.
func addSheet(f *excelize.File, name string, first bool) error {
	if first {
		if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
			return err
		}
	} else if _, err := f.NewSheet(name); err != nil {
		return err
	}

	for i, h := range Header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	return f.SetColWidth(name, "A", "D", 18)
}

// writeSeries writes s starting at row and returns the next free row.
func writeSeries(
	f *excelize.File,
	sheet string,
	row int,
	country string,
	s *timeseries.Series,
	kind string,
) (int, error) {
	if s == nil {
		return row, nil
	}
	for i, v := range s.Values {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return row, err
		}
		vals := []any{country, s.Years[i], v, kind}
		if err = f.SetSheetRow(sheet, cell, &vals); err != nil {
			return row, err
		}
		row++
	}
	return row, nil
}
