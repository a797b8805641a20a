package billing

import (
	"context"

	"warebill/internal/core/apperror"
	"warebill/internal/core/entity"
	"warebill/internal/core/id"
	"warebill/internal/core/types"
)

// CustomerService assigns a billable service to a customer at a rate.
// Only active assignments participate in billing report calculation.
type CustomerService struct {
	entity.BaseEntity
	entity.CustomerAware

	// ServiceTypeID references the billable service
	ServiceTypeID id.ID `db:"service_type_id" json:"serviceTypeId"`

	// Rate overrides the service type's default rate for this customer
	Rate types.Money `db:"rate" json:"rate"`

	// Active indicates whether the assignment is currently billed
	Active bool `db:"active" json:"active"`
}

// NewCustomerService creates an active rate assignment.
func NewCustomerService(customerID, serviceTypeID id.ID, rate types.Money) *CustomerService {
	return &CustomerService{
		BaseEntity:    entity.NewBaseEntity(),
		CustomerAware: entity.CustomerAware{CustomerID: customerID},
		ServiceTypeID: serviceTypeID,
		Rate:          rate,
		Active:        true,
	}
}

// Validate implements entity.Validatable.
func (cs *CustomerService) Validate(ctx context.Context) error {
	if err := cs.CustomerAware.ValidateCustomer(ctx); err != nil {
		return err
	}

	if id.IsNil(cs.ServiceTypeID) {
		return apperror.NewValidation("service type is required").
			WithDetail("field", "serviceTypeId")
	}

	if cs.Rate.IsNegative() {
		return apperror.NewValidation("rate cannot be negative").
			WithDetail("field", "rate")
	}

	return nil
}

// CustomerServiceRepository defines persistence for rate assignments.
type CustomerServiceRepository interface {
	Create(ctx context.Context, cs *CustomerService) error
	GetByID(ctx context.Context, csID id.ID) (*CustomerService, error)
	Update(ctx context.Context, cs *CustomerService) error
	ListByCustomer(ctx context.Context, customerID id.ID, activeOnly bool) ([]*CustomerService, error)
	FindByCustomerAndService(ctx context.Context, customerID, serviceTypeID id.ID) (*CustomerService, error)
}
