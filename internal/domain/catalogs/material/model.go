// Package material provides the packaging Material catalog.
// Materials (boxes, pallets, fillers) are consumed when orders ship.
package material

import (
	"context"

	"warebill/internal/core/apperror"
	"warebill/internal/core/entity"
	"warebill/internal/core/types"
)

// Material represents a packaging material consumed during fulfillment.
type Material struct {
	entity.Catalog

	// UnitCost is the cost of one unit of the material
	UnitCost types.Money `db:"unit_cost" json:"unitCost"`

	// Unit is the unit of measure (pcs, m, kg)
	Unit string `db:"unit" json:"unit"`

	// Active indicates whether the material can be used on new shipments
	Active bool `db:"active" json:"active"`
}

// NewMaterial creates a new Material with required fields.
func NewMaterial(code, name, unit string) *Material {
	return &Material{
		Catalog: entity.NewCatalog(code, name),
		Unit:    unit,
		Active:  true,
	}
}

// Validate implements entity.Validatable interface.
func (m *Material) Validate(ctx context.Context) error {
	if err := m.Catalog.Validate(ctx); err != nil {
		return err
	}

	if m.Unit == "" {
		return apperror.NewValidation("unit is required").
			WithDetail("field", "unit")
	}

	if m.UnitCost.IsNegative() {
		return apperror.NewValidation("unit cost cannot be negative").
			WithDetail("field", "unitCost")
	}

	return nil
}
