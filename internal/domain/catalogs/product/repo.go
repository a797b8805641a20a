package product

import (
	"context"

	"warebill/internal/core/id"
	"warebill/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// FindBySKU retrieves product by SKU.
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// GetForUpdate retrieves product with row lock (for transactional updates).
	GetForUpdate(ctx context.Context, id id.ID) (*Product, error)
}
