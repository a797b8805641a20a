package dto

import (
	"time"

	"github.com/samber/lo"

	"warebill/internal/core/id"
	"warebill/internal/core/types"
	"warebill/internal/domain/documents/order"
)

// --- Request DTOs ---

// OrderLineRequest is one line of an order request.
type OrderLineRequest struct {
	ProductID string         `json:"productId" binding:"required"`
	Quantity  types.Quantity `json:"quantity" binding:"required"`
	UnitPrice types.Money    `json:"unitPrice"`
}

// CreateOrderRequest is the request body for creating an order.
type CreateOrderRequest struct {
	CustomerID string             `json:"customerId" binding:"required"`
	Date       *time.Time         `json:"date"`
	Comment    string             `json:"comment"`
	Lines      []OrderLineRequest `json:"lines" binding:"required,min=1"`
}

// ToEntity converts DTO to domain entity.
// Unparseable IDs become nil and are rejected by entity validation.
func (r *CreateOrderRequest) ToEntity() *order.Order {
	customerID, _ := id.Parse(r.CustomerID)
	doc := order.NewOrder(customerID)
	if r.Date != nil {
		doc.Date = *r.Date
	}
	doc.Comment = r.Comment

	for _, line := range r.Lines {
		productID, _ := id.Parse(line.ProductID)
		doc.AddLine(productID, line.Quantity, line.UnitPrice)
	}

	return doc
}

// UpdateOrderRequest is the request body for updating a draft order.
type UpdateOrderRequest struct {
	Date    *time.Time         `json:"date"`
	Comment string             `json:"comment"`
	Lines   []OrderLineRequest `json:"lines" binding:"required,min=1"`
	Version int                `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateOrderRequest) ApplyTo(doc *order.Order) {
	if r.Date != nil {
		doc.Date = *r.Date
	}
	doc.Comment = r.Comment
	doc.Version = r.Version

	doc.Lines = doc.Lines[:0]
	for _, line := range r.Lines {
		productID, _ := id.Parse(line.ProductID)
		doc.AddLine(productID, line.Quantity, line.UnitPrice)
	}
}

// UpdateOrderStatusRequest moves an order through its lifecycle.
type UpdateOrderStatusRequest struct {
	Status order.Status `json:"status" binding:"required"`
}

// --- Response DTOs ---

// OrderLineResponse is one line of an order response.
type OrderLineResponse struct {
	LineID    string         `json:"lineId"`
	LineNo    int            `json:"lineNo"`
	ProductID string         `json:"productId"`
	Quantity  types.Quantity `json:"quantity"`
	UnitPrice types.Money    `json:"unitPrice"`
	Amount    types.Money    `json:"amount"`
}

// OrderResponse is the response body for an order.
type OrderResponse struct {
	DocumentResponse
	CustomerID    string              `json:"customerId"`
	Status        order.Status        `json:"status"`
	TotalQuantity types.Quantity      `json:"totalQuantity"`
	TotalAmount   types.Money         `json:"totalAmount"`
	Lines         []OrderLineResponse `json:"lines,omitempty"`
}

// FromOrder converts domain entity to response DTO.
func FromOrder(doc *order.Order) OrderResponse {
	lines := lo.Map(doc.Lines, func(line order.Line, _ int) OrderLineResponse {
		return OrderLineResponse{
			LineID:    line.LineID.String(),
			LineNo:    line.LineNo,
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Amount:    line.Amount,
		}
	})

	return OrderResponse{
		DocumentResponse: FromDocument(doc.Document),
		CustomerID:       doc.CustomerID.String(),
		Status:           doc.Status,
		TotalQuantity:    doc.TotalQuantity,
		TotalAmount:      doc.TotalAmount,
		Lines:            lines,
	}
}
