// Package export renders calculated billing report data into its output
// formats. Each renderer receives the report data read-only and produces
// a billing.Output; the tabular formats share one layout: a header row,
// one row per order service charge in input order, and a trailing total.
package export

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"warebill/internal/domain/billing"
)

var tableHeader = []string{"Order ID", "Service Name", "Amount"}

const (
	csvContentType   = "text/csv"
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType   = "application/pdf"
)

// DefaultRenderers builds the format dispatch table used by the report service.
func DefaultRenderers() map[billing.Format]billing.Renderer {
	return map[billing.Format]billing.Renderer{
		billing.FormatPreview: RenderPreview,
		billing.FormatCSV:     RenderCSV,
		billing.FormatExcel:   RenderExcel,
		billing.FormatPDF:     RenderPDF,
	}
}

// tableRow is one line of the shared tabular layout.
type tableRow struct {
	OrderID     string
	ServiceName string
	Amount      string
}

// flattenRows expands orders into charge rows, preserving input order.
// Amounts are reformatted to two decimal places; validation accepts any
// decimal precision, the rendered documents do not.
func flattenRows(data *billing.ReportData) []tableRow {
	var rows []tableRow
	for _, order := range data.Orders {
		for _, svc := range order.Services {
			rows = append(rows, tableRow{
				OrderID:     order.OrderID,
				ServiceName: svc.ServiceName,
				Amount:      formatAmount(svc.Amount),
			})
		}
	}
	return rows
}

// formatAmount renders an amount with two decimal places, falling back
// to the raw string when it does not parse.
func formatAmount(s string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.StringFixed(2)
}

// decimalTotal parses the report grand total.
// The data has passed validation, so the amount is known to parse.
func decimalTotal(data *billing.ReportData) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(data.TotalAmount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse report total: %w", err)
	}
	return d, nil
}

// grandTotal reformats the report total to two decimal places.
func grandTotal(data *billing.ReportData) string {
	d, err := decimalTotal(data)
	if err != nil {
		return data.TotalAmount
	}
	return d.StringFixed(2)
}

func generatedStamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
