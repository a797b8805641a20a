package service_type

import (
	"context"
	"fmt"
	"time"

	"warebill/internal/core/tx"
	"warebill/internal/domain"
	"warebill/pkg/numerator"
)

// Service provides business logic for ServiceType catalog.
type Service struct {
	*domain.CatalogService[*ServiceType]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new ServiceType service.
func NewService(
	repo Repository,
	txManager tx.Manager,
	num *numerator.Service,
) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*ServiceType]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  num,
		EntityName: "service_type",
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
func (s *Service) prepareForCreate(ctx context.Context, st *ServiceType) error {
	if st.Code == "" {
		cfg := numerator.DefaultConfig("SVC")
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		st.Code = code
	}
	return nil
}
