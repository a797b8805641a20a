package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"warebill/internal/domain/billing"
)

const excelSheet = "Billing Report"

// RenderExcel writes the report as an xlsx workbook with a single sheet.
// The grand total is written as a numeric cell so spreadsheet formulas
// can reference it directly.
func RenderExcel(data *billing.ReportData, _ time.Time) (*billing.Output, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	writeRow := func(rowNum int, values []any) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		return f.SetSheetRow(excelSheet, cell, &values)
	}

	if err := writeRow(1, []any{tableHeader[0], tableHeader[1], tableHeader[2]}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	rowNum := 2
	for _, row := range flattenRows(data) {
		if err := writeRow(rowNum, []any{row.OrderID, row.ServiceName, row.Amount}); err != nil {
			return nil, fmt.Errorf("write row %d: %w", rowNum, err)
		}
		rowNum++
	}

	total, err := totalAsFloat(data)
	if err != nil {
		return nil, err
	}
	if err := writeRow(rowNum, []any{"Total", "", total}); err != nil {
		return nil, fmt.Errorf("write total: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return &billing.Output{
		Format:      billing.FormatExcel,
		FileContent: buf.Bytes(),
		ContentType: excelContentType,
		Filename:    "billing_report.xlsx",
	}, nil
}

func totalAsFloat(data *billing.ReportData) (float64, error) {
	d, err := decimalTotal(data)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}
