// Package billing provides the billing report pipeline: rate assignments,
// charge calculation, report validation, size limiting, caching, persistence,
// and rendering into preview/excel/pdf/csv outputs.
package billing

import (
	"warebill/internal/core/apperror"
)

// Format identifies a report output format.
type Format string

const (
	FormatPreview Format = "preview"
	FormatExcel   Format = "excel"
	FormatPDF     Format = "pdf"
	FormatCSV     Format = "csv"
)

// ParseFormat validates a raw format string.
// Unknown formats are a caller error, reported before any side effects.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPreview, FormatExcel, FormatPDF, FormatCSV:
		return Format(s), nil
	}
	return "", apperror.NewUnsupportedFormat(s)
}

// ServiceCharge is one billed service on one order.
// Amounts are decimal strings with two fractional digits.
type ServiceCharge struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	Amount      string `json:"amount"`
}

// OrderCharge aggregates the service charges of a single order.
type OrderCharge struct {
	OrderID     string          `json:"order_id"`
	Services    []ServiceCharge `json:"services"`
	TotalAmount string          `json:"total_amount"`
}

// ReportData is the calculated billing report payload.
// TotalAmount must equal the decimal-exact sum of all order totals.
type ReportData struct {
	Orders      []OrderCharge `json:"orders"`
	TotalAmount string        `json:"total_amount"`
}

// Metadata describes when and over how many orders a preview was built.
type Metadata struct {
	GeneratedAt string `json:"generated_at"`
	RecordCount int    `json:"record_count"`
}

// PreviewData is the on-screen rendering of a report: the raw orders plus
// per-service totals aggregated across all orders.
type PreviewData struct {
	Orders        []OrderCharge     `json:"orders"`
	ServiceTotals map[string]string `json:"service_totals"`
	TotalAmount   string            `json:"total_amount"`
	Metadata      Metadata          `json:"metadata"`
}

// Output is the rendered result of a billing report. Exactly one of
// Preview or FileContent is populated, depending on the format.
type Output struct {
	Format       Format
	CustomerName string

	// Preview is set for FormatPreview
	Preview *PreviewData

	// File fields are set for excel/pdf/csv
	FileContent []byte
	ContentType string
	Filename    string
}
