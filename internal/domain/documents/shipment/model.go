// Package shipment provides the Shipment document.
// Shipments record the physical dispatch of a confirmed order.
package shipment

import (
	"context"
	"time"

	"warebill/internal/core/apperror"
	"warebill/internal/core/entity"
	"warebill/internal/core/id"
)

// Shipment represents the dispatch of an order to its destination.
type Shipment struct {
	entity.Document

	// OrderID is the shipped order
	OrderID id.ID `db:"order_id" json:"orderId"`

	// Carrier is the shipping company name
	Carrier string `db:"carrier" json:"carrier"`

	// TrackingNumber is the carrier tracking reference
	TrackingNumber *string `db:"tracking_number" json:"trackingNumber,omitempty"`

	// MaterialID is the packaging material used (optional)
	MaterialID *id.ID `db:"material_id" json:"materialId,omitempty"`

	// WeightKg is the total shipped weight in kilograms
	WeightKg float64 `db:"weight_kg" json:"weightKg"`

	// ShippedAt is when the parcel left the warehouse
	ShippedAt time.Time `db:"shipped_at" json:"shippedAt"`
}

// NewShipment creates a new shipment document.
func NewShipment(orderID id.ID, carrier string) *Shipment {
	return &Shipment{
		Document:  entity.NewDocument(),
		OrderID:   orderID,
		Carrier:   carrier,
		ShippedAt: time.Now().UTC(),
	}
}

// Validate implements entity.Validatable.
func (s *Shipment) Validate(ctx context.Context) error {
	if err := s.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(s.OrderID) {
		return apperror.NewValidation("order is required").
			WithDetail("field", "orderId")
	}

	if s.Carrier == "" {
		return apperror.NewValidation("carrier is required").
			WithDetail("field", "carrier")
	}

	if s.WeightKg < 0 {
		return apperror.NewValidation("weight cannot be negative").
			WithDetail("field", "weightKg")
	}

	if s.ShippedAt.IsZero() {
		return apperror.NewValidation("shipped date is required").
			WithDetail("field", "shippedAt")
	}

	return nil
}
