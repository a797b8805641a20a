package billing

import (
	"context"

	"warebill/internal/core/apperror"
	"warebill/internal/core/id"
	"warebill/internal/core/tx"
	"warebill/internal/core/types"
	"warebill/pkg/logger"
)

// AssignmentService manages customer rate assignments.
type AssignmentService struct {
	repo      CustomerServiceRepository
	txManager tx.Manager
}

// NewAssignmentService creates a rate assignment service.
func NewAssignmentService(repo CustomerServiceRepository, txManager tx.Manager) *AssignmentService {
	return &AssignmentService{repo: repo, txManager: txManager}
}

// Assign creates an active rate assignment. A customer can hold at most
// one assignment per service type.
func (s *AssignmentService) Assign(ctx context.Context, customerID, serviceTypeID id.ID, rate types.Money) (*CustomerService, error) {
	cs := NewCustomerService(customerID, serviceTypeID, rate)
	if err := cs.Validate(ctx); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindByCustomerAndService(ctx, customerID, serviceTypeID)
		if err != nil && !apperror.IsNotFound(err) {
			return err
		}
		if existing != nil {
			return apperror.NewConflict("service is already assigned to this customer").
				WithDetail("serviceTypeId", serviceTypeID.String())
		}
		return s.repo.Create(ctx, cs)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "service assigned to customer",
		"customer_id", customerID, "service_type_id", serviceTypeID)
	return cs, nil
}

// UpdateRate changes the rate of an existing assignment.
func (s *AssignmentService) UpdateRate(ctx context.Context, csID id.ID, rate types.Money) error {
	if rate.IsNegative() {
		return apperror.NewValidation("rate cannot be negative").
			WithDetail("field", "rate")
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		cs, err := s.repo.GetByID(ctx, csID)
		if err != nil {
			return err
		}
		cs.Rate = rate
		return s.repo.Update(ctx, cs)
	})
}

// Deactivate removes an assignment from billing without deleting its history.
func (s *AssignmentService) Deactivate(ctx context.Context, csID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		cs, err := s.repo.GetByID(ctx, csID)
		if err != nil {
			return err
		}
		if !cs.Active {
			return nil
		}
		cs.Active = false
		return s.repo.Update(ctx, cs)
	})
}

// ListForCustomer returns a customer's assignments, optionally active only.
func (s *AssignmentService) ListForCustomer(ctx context.Context, customerID id.ID, activeOnly bool) ([]*CustomerService, error) {
	return s.repo.ListByCustomer(ctx, customerID, activeOnly)
}
