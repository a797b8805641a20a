package billing

import (
	"context"
	"time"

	"warebill/internal/core/id"
)

// Calculator computes the billing charges for a customer over a date range.
// The PostgreSQL implementation lives in infrastructure/storage/postgres.
//
// Contract:
//   - every order of the customer dated within [start, end] that has at
//     least one active rate assignment produces one OrderCharge, in order
//     date order
//   - flat and per_order rates charge once per order; per_unit rates
//     charge rate multiplied by the order's total quantity
//   - all amounts are decimal strings with two fractional digits
//   - the returned totals are decimal-exact sums of their parts
type Calculator interface {
	Calculate(ctx context.Context, customerID id.ID, start, end time.Time) (*ReportData, error)
}
