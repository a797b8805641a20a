package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"warebill/internal/core/apperror"
	"warebill/internal/core/entity"
	"warebill/internal/core/id"
	"warebill/internal/core/types"
)

// BillingReport is a persisted billing report run. The full charge
// breakdown is stored as a JSONB document alongside the summary columns.
type BillingReport struct {
	entity.Document
	entity.CustomerAware

	StartDate   time.Time   `db:"start_date" json:"startDate"`
	EndDate     time.Time   `db:"end_date" json:"endDate"`
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`
	GeneratedAt time.Time   `db:"generated_at" json:"generatedAt"`
	Format      Format      `db:"format" json:"format"`

	// DataJSON holds the serialized ReportData (jsonb column)
	DataJSON []byte `db:"data" json:"-"`
}

// NewBillingReport creates a report document for the given customer and period.
func NewBillingReport(customerID id.ID, start, end time.Time, format Format) *BillingReport {
	return &BillingReport{
		Document:      entity.NewDocument(),
		CustomerAware: entity.CustomerAware{CustomerID: customerID},
		StartDate:     start,
		EndDate:       end,
		Format:        format,
		GeneratedAt:   time.Now().UTC(),
	}
}

// SetData serializes the charge breakdown into the jsonb payload.
func (r *BillingReport) SetData(data *ReportData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("serialize report data: %w", err)
	}
	r.DataJSON = raw
	return nil
}

// GetData deserializes the stored charge breakdown.
func (r *BillingReport) GetData() (*ReportData, error) {
	if len(r.DataJSON) == 0 {
		return nil, nil
	}
	var data ReportData
	if err := json.Unmarshal(r.DataJSON, &data); err != nil {
		return nil, fmt.Errorf("deserialize report data: %w", err)
	}
	return &data, nil
}

// Validate implements entity.Validatable.
func (r *BillingReport) Validate(ctx context.Context) error {
	if err := r.Document.Validate(ctx); err != nil {
		return err
	}
	if err := r.CustomerAware.ValidateCustomer(ctx); err != nil {
		return err
	}

	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return apperror.NewValidation("report period is required").
			WithDetail("field", "startDate")
	}
	if r.EndDate.Before(r.StartDate) {
		return apperror.NewValidation("end date must not be before start date").
			WithDetail("startDate", r.StartDate.Format("2006-01-02")).
			WithDetail("endDate", r.EndDate.Format("2006-01-02"))
	}
	if r.TotalAmount.IsNegative() {
		return apperror.NewValidation("total amount cannot be negative").
			WithDetail("field", "totalAmount")
	}

	return nil
}

// ReportListFilter narrows report listings.
type ReportListFilter struct {
	CustomerID *id.ID
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
	Offset     int
}

// ReportRepository defines persistence for billing reports.
type ReportRepository interface {
	Create(ctx context.Context, report *BillingReport) error
	GetByID(ctx context.Context, reportID id.ID) (*BillingReport, error)
	Delete(ctx context.Context, reportID id.ID) error
	List(ctx context.Context, f ReportListFilter) ([]*BillingReport, error)
}
