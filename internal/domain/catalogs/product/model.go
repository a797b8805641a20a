// Package product provides the Product catalog.
// Products are the stored goods that appear on order lines.
package product

import (
	"context"

	"warebill/internal/core/apperror"
	"warebill/internal/core/entity"
	"warebill/internal/core/types"
)

// Product represents a stored good handled by the warehouse.
type Product struct {
	entity.Catalog

	// SKU is the stock keeping unit (unique within database)
	SKU string `db:"sku" json:"sku"`

	// UnitPrice is the default sale price per unit
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`

	// WeightKg is the unit weight in kilograms (used for shipping)
	WeightKg float64 `db:"weight_kg" json:"weightKg"`

	// Active indicates whether the product can appear on new orders
	Active bool `db:"active" json:"active"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name, sku string) *Product {
	return &Product{
		Catalog: entity.NewCatalog(code, name),
		SKU:     sku,
		Active:  true,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.SKU == "" {
		return apperror.NewValidation("sku is required").
			WithDetail("field", "sku")
	}

	if p.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}

	if p.WeightKg < 0 {
		return apperror.NewValidation("weight cannot be negative").
			WithDetail("field", "weightKg")
	}

	return nil
}
