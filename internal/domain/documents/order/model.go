// Package order provides the customer Order document.
package order

import (
	"context"

	"warebill/internal/core/apperror"
	"warebill/internal/core/entity"
	"warebill/internal/core/id"
	"warebill/internal/core/types"
)

// Status represents the order lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusCancelled Status = "cancelled"
)

// legalTransitions defines the allowed status changes.
var legalTransitions = map[Status][]Status{
	StatusDraft:     {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {},
	StatusCancelled: {},
}

// Order represents a customer order fulfilled by the warehouse.
type Order struct {
	entity.Document

	// Customer reference trait
	entity.CustomerAware

	// Status is the lifecycle state
	Status Status `db:"status" json:"status"`

	// Totals (calculated from lines)
	TotalQuantity types.Quantity `db:"total_quantity" json:"totalQuantity"`
	TotalAmount   types.Money    `db:"total_amount" json:"totalAmount"`

	// Table part: ordered goods
	Lines []Line `db:"-" json:"lines"`
}

// Line represents an order line.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID id.ID          `db:"product_id" json:"productId"`
	Quantity  types.Quantity `db:"quantity" json:"quantity"`
	UnitPrice types.Money    `db:"unit_price" json:"unitPrice"`
	Amount    types.Money    `db:"amount" json:"amount"`
}

// NewOrder creates a new order document in draft state.
func NewOrder(customerID id.ID) *Order {
	return &Order{
		Document:      entity.NewDocument(),
		CustomerAware: entity.CustomerAware{CustomerID: customerID},
		Status:        StatusDraft,
		Lines:         make([]Line, 0),
	}
}

// AddLine adds a line to the order and recalculates totals.
func (o *Order) AddLine(productID id.ID, quantity types.Quantity, unitPrice types.Money) {
	lineNo := len(o.Lines) + 1

	amount := unitPrice.Mul(quantity.Decimal())

	line := Line{
		LineID:    id.New(),
		LineNo:    lineNo,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Amount:    amount,
	}

	o.Lines = append(o.Lines, line)
	o.recalculateTotals()
}

func (o *Order) recalculateTotals() {
	o.TotalQuantity = types.Quantity(0)
	o.TotalAmount = types.Zero()

	for _, line := range o.Lines {
		o.TotalQuantity += line.Quantity
		o.TotalAmount = o.TotalAmount.Add(line.Amount)
	}
}

// CanModify checks if the order can still be edited.
// Only draft orders are editable.
func (o *Order) CanModify() error {
	if o.Status != StatusDraft {
		return apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"Only draft orders can be modified",
		).WithDetail("order_id", o.ID.String()).WithDetail("status", string(o.Status))
	}
	return nil
}

// CanTransitionTo checks whether a status change is legal.
func (o *Order) CanTransitionTo(target Status) error {
	for _, allowed := range legalTransitions[o.Status] {
		if allowed == target {
			return nil
		}
	}
	return apperror.NewBusinessRule(
		apperror.CodeBusinessRule,
		"Illegal order status transition",
	).WithDetail("from", string(o.Status)).WithDetail("to", string(target))
}

// Validate implements entity.Validatable.
func (o *Order) Validate(ctx context.Context) error {
	if err := o.Document.Validate(ctx); err != nil {
		return err
	}

	if err := o.CustomerAware.ValidateCustomer(ctx); err != nil {
		return err
	}

	if !isValidStatus(o.Status) {
		return apperror.NewValidation("invalid order status").
			WithDetail("field", "status").
			WithDetail("value", string(o.Status))
	}

	if len(o.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range o.Lines {
		if id.IsNil(line.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.UnitPrice.IsNegative() {
			return apperror.NewValidation("unit price cannot be negative").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusConfirmed, StatusShipped, StatusCancelled:
		return true
	}
	return false
}
