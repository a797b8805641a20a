package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"warebill/internal/core/apperror"
	"warebill/internal/domain/catalogs/customer"
	"warebill/internal/infrastructure/storage/postgres"
)

const customerTable = "cat_customers"

// CustomerRepo implements customer.Repository.
type CustomerRepo struct {
	*BaseCatalogRepo[*customer.Customer]
}

// NewCustomerRepo creates a new customer repository.
func NewCustomerRepo(txm *postgres.TxManager) *CustomerRepo {
	return &CustomerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*customer.Customer](
			txm,
			customerTable,
			postgres.ExtractDBColumns[customer.Customer](),
			func() *customer.Customer { return &customer.Customer{} },
		),
	}
}

// FindByEmail retrieves customer by billing email.
func (r *CustomerRepo) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"email": email}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	c, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("customer", email)
		}
		return nil, err
	}
	return c, nil
}
