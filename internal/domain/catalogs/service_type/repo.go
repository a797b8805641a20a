package service_type

import (
	"warebill/internal/domain"
)

// Repository defines the interface for ServiceType persistence.
type Repository interface {
	domain.CatalogRepository[*ServiceType]
}
