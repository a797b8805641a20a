package customer

import (
	"context"
	"fmt"
	"time"

	"warebill/internal/core/apperror"
	"warebill/internal/core/id"
	"warebill/internal/core/tx"
	"warebill/internal/domain"
	"warebill/pkg/numerator"
)

// Service provides business logic for Customer catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Customer] // Embedded for delegation
	repo                              Repository
	numerator                         *numerator.Service
}

// NewService creates a new Customer service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	num *numerator.Service,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Customer]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  num,
		EntityName: "customer",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      num,
	}

	// Register hooks for entity-specific logic
	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

// prepareForCreate handles code generation and uniqueness checks before create.
func (s *Service) prepareForCreate(ctx context.Context, c *Customer) error {
	// Generate code if not provided
	if c.Code == "" {
		cfg := numerator.DefaultConfig("CUS")
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		c.Code = code
	}

	// Check email uniqueness
	if c.Email != nil && *c.Email != "" {
		exists, err := s.checkEmailExists(ctx, *c.Email, c.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflict("customer with this email already exists").
				WithDetail("email", c.Email)
		}
	}

	return nil
}

// prepareForUpdate handles uniqueness checks before update.
func (s *Service) prepareForUpdate(ctx context.Context, c *Customer) error {
	if c.Email != nil && *c.Email != "" {
		exists, err := s.checkEmailExists(ctx, *c.Email, c.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflict("customer with this email already exists").
				WithDetail("email", c.Email)
		}
	}

	return nil
}

// --- Entity-specific methods (not in base CatalogService) ---

// FindByEmail retrieves customer by billing email.
func (s *Service) FindByEmail(ctx context.Context, email string) (*Customer, error) {
	return s.repo.FindByEmail(ctx, email)
}

// checkEmailExists checks if email is already used by another customer.
func (s *Service) checkEmailExists(ctx context.Context, email string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Not found is OK; other errors must be propagated (DB errors, timeouts, etc.).
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	// If found and it's a different record
	return existing.ID != excludeID, nil
}
