package order

import (
	"context"
	"time"

	"warebill/internal/core/id"
	"warebill/internal/domain"
)

// Repository defines operations for order documents.
type Repository interface {
	Create(ctx context.Context, doc *Order) error
	GetByID(ctx context.Context, docID id.ID) (*Order, error)
	GetByNumber(ctx context.Context, number string) (*Order, error)
	Update(ctx context.Context, doc *Order) error
	Delete(ctx context.Context, docID id.ID) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Order], error)
	GetForUpdate(ctx context.Context, docID id.ID) (*Order, error)
}

// ListFilter for filtering orders.
type ListFilter struct {
	domain.ListFilter

	CustomerID *id.ID
	Status     *Status
	DateFrom   *time.Time
	DateTo     *time.Time
}
