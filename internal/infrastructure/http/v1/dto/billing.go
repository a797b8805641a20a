package dto

import (
	"time"

	"warebill/internal/core/types"
	"warebill/internal/domain/billing"
)

// --- Report generation ---

// GenerateReportRequest is the request body for generating a billing report.
// Dates use the YYYY-MM-DD wire format.
type GenerateReportRequest struct {
	Customer     string `json:"customer" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	OutputFormat string `json:"output_format"`
}

// PreviewBody is the data section of the preview envelope.
type PreviewBody struct {
	CustomerName  string               `json:"customer_name"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	PreviewData   *billing.PreviewData `json:"preview_data"`
	TotalAmount   string               `json:"total_amount"`
	ServiceTotals map[string]string    `json:"service_totals"`
	GeneratedAt   string               `json:"generated_at"`
}

// PreviewEnvelope is the response body for preview reports.
type PreviewEnvelope struct {
	Success bool        `json:"success"`
	Data    PreviewBody `json:"data"`
}

// NewPreviewEnvelope builds the preview response from a rendered output.
// Totals are duplicated at the top level for list views that do not
// drill into the preview data.
func NewPreviewEnvelope(out *billing.Output, startDate, endDate string) PreviewEnvelope {
	preview := out.Preview
	return PreviewEnvelope{
		Success: true,
		Data: PreviewBody{
			CustomerName:  out.CustomerName,
			StartDate:     startDate,
			EndDate:       endDate,
			PreviewData:   preview,
			TotalAmount:   preview.TotalAmount,
			ServiceTotals: preview.ServiceTotals,
			GeneratedAt:   preview.Metadata.GeneratedAt,
		},
	}
}

// --- Persisted reports ---

// ReportResponse is the response body for a stored billing report.
type ReportResponse struct {
	DocumentResponse
	CustomerID  string      `json:"customerId"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	TotalAmount string      `json:"totalAmount"`
	Format      string      `json:"format"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Data        any         `json:"data,omitempty"`
}

// FromReport converts a stored report to a response DTO.
// includeData controls whether the full charge breakdown is attached.
func FromReport(r *billing.BillingReport, includeData bool) (ReportResponse, error) {
	resp := ReportResponse{
		DocumentResponse: FromDocument(r.Document),
		CustomerID:       r.CustomerID.String(),
		StartDate:        r.StartDate.Format("2006-01-02"),
		EndDate:          r.EndDate.Format("2006-01-02"),
		TotalAmount:      types.FormatAmount(r.TotalAmount),
		Format:           string(r.Format),
		GeneratedAt:      r.GeneratedAt,
	}

	if includeData {
		data, err := r.GetData()
		if err != nil {
			return resp, err
		}
		resp.Data = data
	}

	return resp, nil
}

// --- Rate assignments ---

// AssignServiceRequest assigns a billable service to a customer.
type AssignServiceRequest struct {
	ServiceTypeID string      `json:"serviceTypeId" binding:"required"`
	Rate          types.Money `json:"rate"`
}

// UpdateRateRequest changes an assignment's rate.
type UpdateRateRequest struct {
	Rate types.Money `json:"rate"`
}

// AssignmentResponse is the response body for a rate assignment.
type AssignmentResponse struct {
	ID            string      `json:"id"`
	CustomerID    string      `json:"customerId"`
	ServiceTypeID string      `json:"serviceTypeId"`
	Rate          types.Money `json:"rate"`
	Active        bool        `json:"active"`
	Version       int         `json:"version"`
}

// FromAssignment converts a rate assignment to a response DTO.
func FromAssignment(cs *billing.CustomerService) AssignmentResponse {
	return AssignmentResponse{
		ID:            cs.ID.String(),
		CustomerID:    cs.CustomerID.String(),
		ServiceTypeID: cs.ServiceTypeID.String(),
		Rate:          cs.Rate,
		Active:        cs.Active,
		Version:       cs.Version,
	}
}
