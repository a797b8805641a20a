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

const customerServicesTable = "billing_customer_services"

// CustomerServiceRepo implements billing.CustomerServiceRepository.
type CustomerServiceRepo struct {
	txm  *postgres.TxManager
	cols []string
}

// NewCustomerServiceRepo creates a new rate assignment repository.
func NewCustomerServiceRepo(txm *postgres.TxManager) *CustomerServiceRepo {
	return &CustomerServiceRepo{
		txm:  txm,
		cols: postgres.ExtractDBColumns[billing.CustomerService](),
	}
}

func (r *CustomerServiceRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *CustomerServiceRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().Select(r.cols...).From(customerServicesTable)
}

// Create inserts a rate assignment.
func (r *CustomerServiceRepo) Create(ctx context.Context, cs *billing.CustomerService) error {
	data := postgres.StructToMap(cs)
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
		Insert(customerServicesTable).
		SetMap(filtered).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", customerServicesTable, err)
	}

	return nil
}

// GetByID retrieves an assignment by ID.
func (r *CustomerServiceRepo) GetByID(ctx context.Context, csID id.ID) (*billing.CustomerService, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"id": csID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var cs billing.CustomerService
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &cs, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("customer service", csID.String())
		}
		return nil, fmt.Errorf("get by id: %w", err)
	}

	return &cs, nil
}

// Update modifies an assignment with optimistic locking.
func (r *CustomerServiceRepo) Update(ctx context.Context, cs *billing.CustomerService) error {
	data := postgres.StructToMap(cs)

	version, ok := data["version"].(int)
	if !ok {
		return fmt.Errorf("entity has no 'version' field or it is not an int")
	}

	filtered := make(map[string]any, len(r.cols))
	for _, col := range r.cols {
		if col == "id" || col == "version" {
			continue
		}
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().
		Update(customerServicesTable).
		SetMap(filtered).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": cs.ID}).
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", customerServicesTable, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification(customerServicesTable, cs.ID)
	}

	return nil
}

// ListByCustomer returns a customer's assignments.
func (r *CustomerServiceRepo) ListByCustomer(ctx context.Context, customerID id.ID, activeOnly bool) ([]*billing.CustomerService, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.Eq{"deletion_mark": false})

	if activeOnly {
		q = q.Where(squirrel.Eq{"active": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*billing.CustomerService
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list by customer: %w", err)
	}

	return items, nil
}

// FindByCustomerAndService returns the assignment of one service to one customer.
func (r *CustomerServiceRepo) FindByCustomerAndService(ctx context.Context, customerID, serviceTypeID id.ID) (*billing.CustomerService, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.Eq{"service_type_id": serviceTypeID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var cs billing.CustomerService
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &cs, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("customer service", serviceTypeID.String())
		}
		return nil, fmt.Errorf("find by customer and service: %w", err)
	}

	return &cs, nil
}
