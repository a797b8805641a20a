package order

import (
	"context"
	"fmt"
	"time"

	"warebill/internal/core/id"
	"warebill/internal/core/tx"
	"warebill/internal/domain"
	"warebill/pkg/logger"
	"warebill/pkg/numerator"
)

// Service provides business operations for order documents.
type Service struct {
	repo      Repository
	numerator *numerator.Service
	txManager tx.Manager
}

// NewService creates a new order service.
func NewService(
	repo Repository,
	num *numerator.Service,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		numerator: num,
		txManager: txManager,
	}
}

// Create creates a new order document.
func (s *Service) Create(ctx context.Context, doc *Order) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		cfg := numerator.DefaultConfig("ORD")
		number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: NumeratorStrategy}, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	logger.Info(ctx, "order created", "id", doc.ID, "number", doc.Number)
	return nil
}

// GetByID retrieves an order with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Order, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// Update updates an order document. Only draft orders can be edited.
func (s *Service) Update(ctx context.Context, doc *Order) error {
	current, err := s.repo.GetByID(ctx, doc.ID)
	if err != nil {
		return err
	}

	if err := current.CanModify(); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
}

// UpdateStatus moves the order through its lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, docID id.ID, target Status) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		doc, err := s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}

		if err := doc.CanTransitionTo(target); err != nil {
			return err
		}

		doc.Status = target
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		logger.Info(ctx, "order status changed", "id", doc.ID, "status", string(target))
		return nil
	})
}

// Delete soft-deletes an order. Shipped orders cannot be deleted.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if doc.Status == StatusShipped {
		return doc.CanModify()
	}

	return s.repo.Delete(ctx, docID)
}

// List retrieves orders with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Order], error) {
	return s.repo.List(ctx, filter)
}
