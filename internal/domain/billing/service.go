package billing

import (
	"context"
	"fmt"
	"time"

	"warebill/internal/core/apperror"
	appctx "warebill/internal/core/context"
	"warebill/internal/core/id"
	"warebill/internal/core/tx"
	"warebill/internal/core/types"
	"warebill/internal/domain/catalogs/customer"
	"warebill/pkg/logger"
	"warebill/pkg/numerator"
)

// Renderer turns calculated report data into an Output for one format.
// Renderers must not mutate the data they receive.
type Renderer func(data *ReportData, generatedAt time.Time) (*Output, error)

// GenerateRequest describes one billing report run.
type GenerateRequest struct {
	CustomerID id.ID
	StartDate  time.Time
	EndDate    time.Time
	Format     Format
}

// CustomerLookup is the slice of the customer repository the pipeline
// actually needs.
type CustomerLookup interface {
	GetByID(ctx context.Context, customerID id.ID) (*customer.Customer, error)
}

// ReportService orchestrates the billing report pipeline:
// calculate, validate, size-check, persist, render, cache.
type ReportService struct {
	calculator Calculator
	validator  *Validator
	estimator  *SizeEstimator
	cache      *ReportCache
	renderers  map[Format]Renderer
	customers  CustomerLookup
	reports    ReportRepository
	numerator  *numerator.Service
	txManager  tx.Manager
}

// NewReportService wires the billing pipeline.
func NewReportService(
	calculator Calculator,
	validator *Validator,
	estimator *SizeEstimator,
	cache *ReportCache,
	renderers map[Format]Renderer,
	customers CustomerLookup,
	reports ReportRepository,
	num *numerator.Service,
	txManager tx.Manager,
) *ReportService {
	return &ReportService{
		calculator: calculator,
		validator:  validator,
		estimator:  estimator,
		cache:      cache,
		renderers:  renderers,
		customers:  customers,
		reports:    reports,
		numerator:  num,
		txManager:  txManager,
	}
}

// Generate runs the billing report pipeline for one customer and period.
//
// The format is resolved before any other work, so an unsupported format
// never reaches the calculator or the database. Previews are served from
// cache when available. Reports are persisted only when the request
// carries an authenticated actor; anonymous runs still produce output.
func (s *ReportService) Generate(ctx context.Context, req GenerateRequest) (*Output, error) {
	renderer, ok := s.renderers[req.Format]
	if !ok {
		return nil, apperror.NewUnsupportedFormat(string(req.Format))
	}

	cust, err := s.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	startStr := req.StartDate.Format("2006-01-02")
	endStr := req.EndDate.Format("2006-01-02")
	cacheKey := CacheKey(req.CustomerID.String(), startStr, endStr, req.Format)

	if req.Format == FormatPreview {
		if cached, ok := s.cache.GetPreview(cacheKey); ok {
			logger.Debug(ctx, "billing report served from cache", "key", cacheKey)
			return &Output{
				Format:       FormatPreview,
				CustomerName: cust.Name,
				Preview:      cached,
			}, nil
		}
	}

	data, err := s.calculator.Calculate(ctx, req.CustomerID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("calculate report: %w", err)
	}

	if err := s.validator.Validate(ctx, data); err != nil {
		return nil, err
	}

	if req.Format != FormatPreview {
		if err := s.estimator.Check(data); err != nil {
			return nil, err
		}
	}

	generatedAt := time.Now().UTC()

	if user := appctx.GetUser(ctx); user != nil {
		if err := s.persist(ctx, req, data, generatedAt); err != nil {
			return nil, err
		}
	} else {
		logger.Debug(ctx, "anonymous report run, skipping persistence",
			"customer_id", req.CustomerID)
	}

	out, err := renderer(data, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	out.CustomerName = cust.Name

	if req.Format == FormatPreview && out.Preview != nil {
		s.cache.SetPreview(cacheKey, out.Preview)
	}

	logger.Info(ctx, "billing report generated",
		"customer_id", req.CustomerID,
		"format", string(req.Format),
		"orders", len(data.Orders),
		"total", data.TotalAmount)

	return out, nil
}

// persist stores the report run inside its own transaction. Failures here
// abort the run; nothing is rendered from a report that could not be saved.
func (s *ReportService) persist(ctx context.Context, req GenerateRequest, data *ReportData, generatedAt time.Time) error {
	report := NewBillingReport(req.CustomerID, req.StartDate, req.EndDate, req.Format)
	report.Date = generatedAt
	report.GeneratedAt = generatedAt

	total, err := types.ParseAmount(data.TotalAmount)
	if err != nil {
		return fmt.Errorf("parse report total: %w", err)
	}
	report.TotalAmount = total

	if err := report.SetData(data); err != nil {
		return err
	}

	cfg := numerator.DefaultConfig("RPT")
	number, err := s.numerator.GetNextNumber(ctx, cfg, nil, generatedAt)
	if err != nil {
		return fmt.Errorf("generate number: %w", err)
	}
	report.Number = number

	if err := report.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.reports.Create(ctx, report); err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a persisted report.
func (s *ReportService) GetByID(ctx context.Context, reportID id.ID) (*BillingReport, error) {
	return s.reports.GetByID(ctx, reportID)
}

// Delete soft-deletes a persisted report.
func (s *ReportService) Delete(ctx context.Context, reportID id.ID) error {
	return s.reports.Delete(ctx, reportID)
}

// List retrieves persisted reports with filtering.
func (s *ReportService) List(ctx context.Context, f ReportListFilter) ([]*BillingReport, error) {
	return s.reports.List(ctx, f)
}
