// Package service_type provides the ServiceType catalog.
// Service types are the billable warehouse services (storage, picking,
// shipping) that customer rate assignments and billing reports refer to.
package service_type

import (
	"context"

	"warebill/internal/core/apperror"
	"warebill/internal/core/entity"
	"warebill/internal/core/types"
)

// RateBasis defines how a service charge is computed for an order.
type RateBasis string

const (
	// BasisFlat charges the rate once per order.
	BasisFlat RateBasis = "flat"

	// BasisPerOrder charges the rate once per order (alias kept for
	// imported rate cards that distinguish flat fees from order fees).
	BasisPerOrder RateBasis = "per_order"

	// BasisPerUnit charges the rate per ordered unit.
	BasisPerUnit RateBasis = "per_unit"
)

// ServiceType represents a billable warehouse service.
type ServiceType struct {
	entity.Catalog

	// Basis defines how the charge is computed
	Basis RateBasis `db:"basis" json:"basis"`

	// DefaultRate is used when a customer has no specific rate assigned
	DefaultRate types.Money `db:"default_rate" json:"defaultRate"`

	// Active indicates whether the service can be billed
	Active bool `db:"active" json:"active"`
}

// NewServiceType creates a new ServiceType with required fields.
func NewServiceType(code, name string, basis RateBasis) *ServiceType {
	return &ServiceType{
		Catalog: entity.NewCatalog(code, name),
		Basis:   basis,
		Active:  true,
	}
}

// Validate implements entity.Validatable interface.
func (s *ServiceType) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidBasis(s.Basis) {
		return apperror.NewValidation("invalid rate basis").
			WithDetail("field", "basis").
			WithDetail("value", string(s.Basis))
	}

	if s.DefaultRate.IsNegative() {
		return apperror.NewValidation("default rate cannot be negative").
			WithDetail("field", "defaultRate")
	}

	return nil
}

func isValidBasis(b RateBasis) bool {
	switch b {
	case BasisFlat, BasisPerOrder, BasisPerUnit:
		return true
	}
	return false
}
