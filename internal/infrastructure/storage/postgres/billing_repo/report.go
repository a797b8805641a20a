// Package billing_repo provides PostgreSQL implementations for the billing
// pipeline: report persistence, rate assignments, and charge calculation.
package billing_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"warebill/internal/core/apperror"
	"warebill/internal/core/id"
	"warebill/internal/domain/billing"
	"warebill/internal/infrastructure/storage/postgres"
)

const reportsTable = "billing_reports"

// ReportRepo implements billing.ReportRepository.
type ReportRepo struct {
	txm  *postgres.TxManager
	cols []string
}

// NewReportRepo creates a new billing report repository.
func NewReportRepo(txm *postgres.TxManager) *ReportRepo {
	return &ReportRepo{
		txm:  txm,
		cols: postgres.ExtractDBColumns[billing.BillingReport](),
	}
}

func (r *ReportRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *ReportRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().Select(r.cols...).From(reportsTable)
}

// Create inserts a report row, including the jsonb charge breakdown.
func (r *ReportRepo) Create(ctx context.Context, report *billing.BillingReport) error {
	data := postgres.StructToMap(report)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	filtered := make(map[string]any, len(r.cols))
	for _, col := range r.cols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().
		Insert(reportsTable).
		SetMap(filtered).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", reportsTable, err)
	}

	return nil
}

// GetByID retrieves a report by ID.
func (r *ReportRepo) GetByID(ctx context.Context, reportID id.ID) (*billing.BillingReport, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"id": reportID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var report billing.BillingReport
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &report, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("billing report", reportID.String())
		}
		return nil, fmt.Errorf("get by id: %w", err)
	}

	return &report, nil
}

// Delete soft-deletes a report.
func (r *ReportRepo) Delete(ctx context.Context, reportID id.ID) error {
	sql, args, err := r.builder().
		Update(reportsTable).
		Set("deletion_mark", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": reportID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", reportsTable, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("billing report", reportID.String())
	}

	return nil
}

// List retrieves reports, newest first.
func (r *ReportRepo) List(ctx context.Context, f billing.ReportListFilter) ([]*billing.BillingReport, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("generated_at DESC")

	if f.CustomerID != nil {
		q = q.Where(squirrel.Eq{"customer_id": *f.CustomerID})
	}
	if f.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"start_date": *f.DateFrom})
	}
	if f.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"end_date": *f.DateTo})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var reports []*billing.BillingReport
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &reports, sql, args...); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}

	return reports, nil
}
