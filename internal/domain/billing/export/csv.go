package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"warebill/internal/domain/billing"
)

// RenderCSV writes the report as a comma-separated file.
func RenderCSV(data *billing.ReportData, _ time.Time) (*billing.Output, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(tableHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range flattenRows(data) {
		if err := w.Write([]string{row.OrderID, row.ServiceName, row.Amount}); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := w.Write([]string{"Total", "", grandTotal(data)}); err != nil {
		return nil, fmt.Errorf("write csv total: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return &billing.Output{
		Format:      billing.FormatCSV,
		FileContent: buf.Bytes(),
		ContentType: csvContentType,
		Filename:    "billing_report.csv",
	}, nil
}
