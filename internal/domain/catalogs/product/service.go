package product

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

// Service provides business logic for Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Product service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	num *numerator.Service,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  num,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

// prepareForCreate handles code generation and SKU uniqueness before create.
func (s *Service) prepareForCreate(ctx context.Context, p *Product) error {
	if p.Code == "" {
		cfg := numerator.DefaultConfig("PRD")
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		p.Code = code
	}

	exists, err := s.checkSKUExists(ctx, p.SKU, p.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("product", "sku", p.SKU)
	}

	return nil
}

// prepareForUpdate handles SKU uniqueness before update.
func (s *Service) prepareForUpdate(ctx context.Context, p *Product) error {
	exists, err := s.checkSKUExists(ctx, p.SKU, p.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("product", "sku", p.SKU)
	}

	return nil
}

// FindBySKU retrieves product by SKU.
func (s *Service) FindBySKU(ctx context.Context, sku string) (*Product, error) {
	return s.repo.FindBySKU(ctx, sku)
}

// checkSKUExists checks if SKU is already used by another product.
func (s *Service) checkSKUExists(ctx context.Context, sku string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindBySKU(ctx, sku)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
