// Package report renders back-office reports as spreadsheets.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
)

const commissionSheet = "Comisiones"

var commissionHeadings = []string{"EmpId", "Empleado", "Cargo", "Tipo", "Porcentaje", "Total ventas", "Comisión"}

// CommissionWorkbook lays out one row per employee under a title row naming
// the date range, followed by a totals row.
func CommissionWorkbook(rows []repository.CommissionSummary, from, to string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", commissionSheet); err != nil {
		return nil, err
	}

	if err := f.SetCellValue(commissionSheet, "A1", fmt.Sprintf("Comisiones del %s al %s", from, to)); err != nil {
		return nil, err
	}
	for i, h := range commissionHeadings {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(commissionSheet, cell, h); err != nil {
			return nil, err
		}
	}

	sales, owed := decimal.Zero, decimal.Zero
	for i, r := range rows {
		row := i + 4
		values := []interface{}{
			r.EmployeeID,
			r.Employee,
			deref(r.Position),
			deref(r.EmployeeType),
			r.Percentage.InexactFloat64(),
			r.TotalSales.InexactFloat64(),
			r.Commission.InexactFloat64(),
		}
		start, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(commissionSheet, start, &values); err != nil {
			return nil, err
		}
		sales = sales.Add(r.TotalSales)
		owed = owed.Add(r.Commission)
	}

	totalRow := len(rows) + 4
	totals := []interface{}{"", "Total", "", "", "", sales.InexactFloat64(), owed.InexactFloat64()}
	start, _ := excelize.CoordinatesToCellName(1, totalRow)
	if err := f.SetSheetRow(commissionSheet, start, &totals); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteCommissions renders the workbook straight to w.
func WriteCommissions(w io.Writer, rows []repository.CommissionSummary, from, to string) error {
	f, err := CommissionWorkbook(rows, from, to)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
