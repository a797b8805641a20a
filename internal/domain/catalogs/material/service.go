package material

import (
	"context"
	"fmt"
	"time"

	"warebill/internal/core/tx"
	"warebill/internal/domain"
	"warebill/pkg/numerator"
)

// Service provides business logic for Material catalog.
type Service struct {
	*domain.CatalogService[*Material]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Material service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	num *numerator.Service,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Material]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  num,
		EntityName: "material",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate generates a code if not provided.
func (s *Service) prepareForCreate(ctx context.Context, m *Material) error {
	if m.Code == "" {
		cfg := numerator.DefaultConfig("MAT")
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		m.Code = code
	}
	return nil
}
