package entity

import (
	"context"

	"warebill/internal/core/apperror"
	"warebill/internal/core/id"
)

// CustomerAware is a trait for entities that belong to a customer.
// Used for composition in models like Order, CustomerService, BillingReport.
type CustomerAware struct {
	// CustomerID is the owning customer for this entity
	CustomerID id.ID `db:"customer_id" json:"customerId"`
}

// ValidateCustomer ensures a customer is set.
func (c *CustomerAware) ValidateCustomer(ctx context.Context) error {
	if id.IsNil(c.CustomerID) {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}
	return nil
}

// GetCustomerID returns the customer ID (useful for interfaces).
func (c *CustomerAware) GetCustomerID() id.ID {
	return c.CustomerID
}

// ICustomerAware is an interface for any entity that has a customer.
type ICustomerAware interface {
	GetCustomerID() id.ID
	ValidateCustomer(ctx context.Context) error
}
