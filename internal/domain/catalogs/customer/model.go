// Package customer provides the Customer catalog.
// Customers are the warehouse clients whose orders are fulfilled and billed.
package customer

import (
	"context"
	"regexp"

	"warebill/internal/core/apperror"
	"warebill/internal/core/entity"
)

// Pre-compiled regex patterns for validation (performance optimization)
var (
	emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRE = regexp.MustCompile(`^\+?[0-9\s\-()]{5,20}$`)
)

// Customer represents a warehouse client (3PL account).
type Customer struct {
	entity.Catalog

	// ContactName is the primary contact person
	ContactName *string `db:"contact_name" json:"contactName,omitempty"`

	// Email is the primary billing contact email
	Email *string `db:"email" json:"email,omitempty"`

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// BillingAddress is where invoices are sent
	BillingAddress *string `db:"billing_address" json:"billingAddress,omitempty"`

	// TaxID is the customer's tax identification number
	TaxID *string `db:"tax_id" json:"taxId,omitempty"`

	// Active indicates whether new orders and reports are accepted
	Active bool `db:"active" json:"active"`
}

// NewCustomer creates a new Customer with required fields.
func NewCustomer(code, name string) *Customer {
	return &Customer{
		Catalog: entity.NewCatalog(code, name),
		Active:  true,
	}
}

// Validate implements entity.Validatable interface.
func (c *Customer) Validate(ctx context.Context) error {
	// Base catalog validation
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	// Email validation (if provided)
	if c.Email != nil && *c.Email != "" && !emailRE.MatchString(*c.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	// Phone validation (if provided)
	if c.Phone != nil && *c.Phone != "" && !phoneRE.MatchString(*c.Phone) {
		return apperror.NewValidation("invalid phone format").
			WithDetail("field", "phone")
	}

	return nil
}
