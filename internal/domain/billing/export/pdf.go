package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"warebill/internal/domain/billing"
)

var pdfColWidths = [3]float64{60, 70, 40}

// RenderPDF writes the report as a single-table PDF document.
func RenderPDF(data *billing.ReportData, generatedAt time.Time) (*billing.Output, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Billing Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, "Generated at "+generatedStamp(generatedAt))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	for i, h := range tableHeader {
		pdf.CellFormat(pdfColWidths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range flattenRows(data) {
		pdf.CellFormat(pdfColWidths[0], 6, row.OrderID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfColWidths[1], 6, row.ServiceName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfColWidths[2], 6, row.Amount, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(pdfColWidths[0], 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(pdfColWidths[1], 7, "", "1", 0, "L", false, 0, "")
	pdf.CellFormat(pdfColWidths[2], 7, grandTotal(data), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return &billing.Output{
		Format:      billing.FormatPDF,
		FileContent: buf.Bytes(),
		ContentType: pdfContentType,
		Filename:    "billing_report.pdf",
	}, nil
}
