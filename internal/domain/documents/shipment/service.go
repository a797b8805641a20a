package shipment

import (
	"context"
	"fmt"
	"time"

	"warebill/internal/core/apperror"
	"warebill/internal/core/id"
	"warebill/internal/core/tx"
	"warebill/internal/domain"
	"warebill/internal/domain/documents/order"
	"warebill/pkg/logger"
	"warebill/pkg/numerator"
)

// Service provides business operations for shipment documents.
type Service struct {
	repo      Repository
	orders    order.Repository
	numerator *numerator.Service
	txManager tx.Manager
}

// NewService creates a new shipment service.
func NewService(
	repo Repository,
	orders order.Repository,
	num *numerator.Service,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		orders:    orders,
		numerator: num,
		txManager: txManager,
	}
}

// Create creates a new shipment for an existing order.
// The referenced order must exist and must not be cancelled.
func (s *Service) Create(ctx context.Context, doc *Shipment) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	ord, err := s.orders.GetByID(ctx, doc.OrderID)
	if err != nil {
		return err
	}
	if ord.Status == order.StatusCancelled {
		return apperror.NewBusinessRule(
			apperror.CodeBusinessRule,
			"Cannot ship a cancelled order",
		).WithDetail("order_id", doc.OrderID.String())
	}

	if doc.Number == "" {
		cfg := numerator.DefaultConfig("SHP")
		number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: numerator.StrategyCached}, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "shipment created", "id", doc.ID, "number", doc.Number, "order_id", doc.OrderID)
	return nil
}

// GetByID retrieves a shipment.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Shipment, error) {
	return s.repo.GetByID(ctx, docID)
}

// Delete soft-deletes a shipment.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	if _, err := s.repo.GetByID(ctx, docID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, docID)
}

// List retrieves shipments with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Shipment], error) {
	return s.repo.List(ctx, filter)
}
