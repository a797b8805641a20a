package dto

import (
	"time"

	"warebill/internal/core/id"
	"warebill/internal/domain/documents/shipment"
)

// CreateShipmentRequest is the request body for creating a shipment.
type CreateShipmentRequest struct {
	OrderID        string     `json:"orderId" binding:"required"`
	Carrier        string     `json:"carrier" binding:"required"`
	TrackingNumber *string    `json:"trackingNumber"`
	MaterialID     *string    `json:"materialId"`
	WeightKg       float64    `json:"weightKg"`
	ShippedAt      *time.Time `json:"shippedAt"`
	Comment        string     `json:"comment"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateShipmentRequest) ToEntity() *shipment.Shipment {
	orderID, _ := id.Parse(r.OrderID)
	doc := shipment.NewShipment(orderID, r.Carrier)
	doc.TrackingNumber = r.TrackingNumber
	doc.WeightKg = r.WeightKg
	doc.Comment = r.Comment

	doc.MaterialID = id.ParseOptional(r.MaterialID)
	if r.ShippedAt != nil {
		doc.ShippedAt = *r.ShippedAt
		doc.Date = *r.ShippedAt
	}

	return doc
}

// ShipmentResponse is the response body for a shipment.
type ShipmentResponse struct {
	DocumentResponse
	OrderID        string    `json:"orderId"`
	Carrier        string    `json:"carrier"`
	TrackingNumber *string   `json:"trackingNumber,omitempty"`
	MaterialID     *string   `json:"materialId,omitempty"`
	WeightKg       float64   `json:"weightKg"`
	ShippedAt      time.Time `json:"shippedAt"`
}

// FromShipment converts domain entity to response DTO.
func FromShipment(doc *shipment.Shipment) ShipmentResponse {
	resp := ShipmentResponse{
		DocumentResponse: FromDocument(doc.Document),
		OrderID:          doc.OrderID.String(),
		Carrier:          doc.Carrier,
		TrackingNumber:   doc.TrackingNumber,
		WeightKg:         doc.WeightKg,
		ShippedAt:        doc.ShippedAt,
	}
	if doc.MaterialID != nil {
		s := doc.MaterialID.String()
		resp.MaterialID = &s
	}
	return resp
}
