package shipment

import (
	"context"
	"time"

	"warebill/internal/core/id"
	"warebill/internal/domain"
)

// Repository defines operations for shipment documents.
type Repository interface {
	Create(ctx context.Context, doc *Shipment) error
	GetByID(ctx context.Context, docID id.ID) (*Shipment, error)
	GetByNumber(ctx context.Context, number string) (*Shipment, error)
	Update(ctx context.Context, doc *Shipment) error
	Delete(ctx context.Context, docID id.ID) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Shipment], error)
}

// ListFilter for filtering shipments.
type ListFilter struct {
	domain.ListFilter

	OrderID  *id.ID
	Carrier  *string
	DateFrom *time.Time
	DateTo   *time.Time
}
