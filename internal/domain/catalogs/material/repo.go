package material

import (
	"warebill/internal/domain"
)

// Repository defines the interface for Material persistence.
type Repository interface {
	domain.CatalogRepository[*Material]
}
