package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"warebill/internal/domain/billing"
)

var testGeneratedAt = time.Date(2023, 2, 1, 12, 0, 0, 0, time.UTC)

func sampleData() *billing.ReportData {
	return &billing.ReportData{
		Orders: []billing.OrderCharge{
			{
				OrderID: "ORD-001",
				Services: []billing.ServiceCharge{
					{ServiceID: "s1", ServiceName: "Shipping", Amount: "10.50"},
				},
				TotalAmount: "10.50",
			},
		},
		TotalAmount: "10.50",
	}
}

func multiOrderData() *billing.ReportData {
	return &billing.ReportData{
		Orders: []billing.OrderCharge{
			{
				OrderID: "ORD-001",
				Services: []billing.ServiceCharge{
					{ServiceID: "s1", ServiceName: "Shipping", Amount: "10.50"},
					{ServiceID: "s2", ServiceName: "Handling", Amount: "4.50"},
				},
				TotalAmount: "15.00",
			},
			{
				OrderID: "ORD-002",
				Services: []billing.ServiceCharge{
					{ServiceID: "s1", ServiceName: "Shipping", Amount: "12.00"},
				},
				TotalAmount: "12.00",
			},
		},
		TotalAmount: "27.00",
	}
}

func TestRenderCSV_ExactOutput(t *testing.T) {
	out, err := RenderCSV(sampleData(), testGeneratedAt)
	require.NoError(t, err)

	assert.Equal(t, billing.FormatCSV, out.Format)
	assert.Equal(t, "text/csv", out.ContentType)
	assert.Equal(t, "billing_report.csv", out.Filename)

	records, err := csv.NewReader(bytes.NewReader(out.FileContent)).ReadAll()
	require.NoError(t, err)

	want := [][]string{
		{"Order ID", "Service Name", "Amount"},
		{"ORD-001", "Shipping", "10.50"},
		{"Total", "", "10.50"},
	}
	assert.Equal(t, want, records)
}

func TestRenderCSV_EmptyReport(t *testing.T) {
	out, err := RenderCSV(&billing.ReportData{TotalAmount: "0.00"}, testGeneratedAt)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out.FileContent)).ReadAll()
	require.NoError(t, err)

	want := [][]string{
		{"Order ID", "Service Name", "Amount"},
		{"Total", "", "0.00"},
	}
	assert.Equal(t, want, records)
}

func TestRenderCSV_RowOrderFollowsInput(t *testing.T) {
	out, err := RenderCSV(multiOrderData(), testGeneratedAt)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out.FileContent)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)

	assert.Equal(t, []string{"ORD-001", "Shipping", "10.50"}, records[1])
	assert.Equal(t, []string{"ORD-001", "Handling", "4.50"}, records[2])
	assert.Equal(t, []string{"ORD-002", "Shipping", "12.00"}, records[3])
	assert.Equal(t, []string{"Total", "", "27.00"}, records[4])
}

func TestRenderCSV_NormalizesAmountPrecision(t *testing.T) {
	// Validation is decimal-exact, so "10.5" is legal input; documents
	// must still render it with two decimal places.
	data := &billing.ReportData{
		Orders: []billing.OrderCharge{
			{
				OrderID: "ORD-001",
				Services: []billing.ServiceCharge{
					{ServiceID: "s1", ServiceName: "Shipping", Amount: "10.5"},
				},
				TotalAmount: "10.5",
			},
		},
		TotalAmount: "10.5",
	}

	out, err := RenderCSV(data, testGeneratedAt)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out.FileContent)).ReadAll()
	require.NoError(t, err)

	want := [][]string{
		{"Order ID", "Service Name", "Amount"},
		{"ORD-001", "Shipping", "10.50"},
		{"Total", "", "10.50"},
	}
	assert.Equal(t, want, records)
}

func TestRenderPreview_ServiceTotals(t *testing.T) {
	out, err := RenderPreview(multiOrderData(), testGeneratedAt)
	require.NoError(t, err)

	require.NotNil(t, out.Preview)
	assert.Equal(t, billing.FormatPreview, out.Format)
	assert.Nil(t, out.FileContent)

	p := out.Preview
	assert.Equal(t, "27.00", p.TotalAmount)
	assert.Equal(t, map[string]string{
		"Shipping": "22.50",
		"Handling": "4.50",
	}, p.ServiceTotals)
	assert.Equal(t, 2, p.Metadata.RecordCount)
	assert.Equal(t, "2023-02-01T12:00:00Z", p.Metadata.GeneratedAt)
}

func TestRenderPreview_JSONFieldNames(t *testing.T) {
	out, err := RenderPreview(sampleData(), testGeneratedAt)
	require.NoError(t, err)

	raw, err := json.Marshal(out.Preview)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "orders")
	assert.Contains(t, decoded, "service_totals")
	assert.Contains(t, decoded, "total_amount")
	assert.Contains(t, decoded, "metadata")
}

func TestRenderExcel_WorkbookContents(t *testing.T) {
	out, err := RenderExcel(sampleData(), testGeneratedAt)
	require.NoError(t, err)

	assert.Equal(t, billing.FormatExcel, out.Format)
	assert.Equal(t, "billing_report.xlsx", out.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(out.FileContent))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Billing Report"
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	assert.Equal(t, []string{"Order ID", "Service Name", "Amount"}, rows[0])
	assert.Equal(t, []string{"ORD-001", "Shipping", "10.50"}, rows[1])

	// The trailing total is numeric so spreadsheets can sum over it.
	last := rows[len(rows)-1]
	require.Len(t, last, 3)
	assert.Equal(t, "Total", last[0])
	assert.Equal(t, "10.5", last[2])
}

func TestRenderPDF_ProducesDocument(t *testing.T) {
	out, err := RenderPDF(sampleData(), testGeneratedAt)
	require.NoError(t, err)

	assert.Equal(t, billing.FormatPDF, out.Format)
	assert.Equal(t, "application/pdf", out.ContentType)
	assert.Equal(t, "billing_report.pdf", out.Filename)
	assert.True(t, bytes.HasPrefix(out.FileContent, []byte("%PDF")))
}

func TestRenderers_DoNotMutateInput(t *testing.T) {
	for format, render := range DefaultRenderers() {
		data := multiOrderData()
		want := multiOrderData()

		_, err := render(data, testGeneratedAt)
		require.NoError(t, err, string(format))
		assert.Equal(t, want, data, string(format))
	}
}

func TestDefaultRenderers_CoversAllFormats(t *testing.T) {
	renderers := DefaultRenderers()
	for _, format := range []billing.Format{
		billing.FormatPreview,
		billing.FormatCSV,
		billing.FormatExcel,
		billing.FormatPDF,
	} {
		assert.Contains(t, renderers, format)
	}
}
