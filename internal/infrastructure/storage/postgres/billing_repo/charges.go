package billing_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"warebill/internal/core/id"
	"warebill/internal/core/types"
	"warebill/internal/domain/billing"
	"warebill/internal/domain/catalogs/service_type"
	"warebill/internal/domain/documents/order"
	"warebill/internal/infrastructure/storage/postgres"
)

// ChargeCalculator implements billing.Calculator against the orders and
// rate assignment tables. One query fetches every (order, assignment)
// pair for the period; amounts are computed in Go with exact decimals.
type ChargeCalculator struct {
	txm *postgres.TxManager
}

// NewChargeCalculator creates a SQL-backed charge calculator.
func NewChargeCalculator(txm *postgres.TxManager) *ChargeCalculator {
	return &ChargeCalculator{txm: txm}
}

// chargeRow is one billable (order, service) pair.
type chargeRow struct {
	OrderID       id.ID          `db:"order_id"`
	OrderNumber   string         `db:"order_number"`
	TotalQuantity types.Quantity `db:"total_quantity"`
	ServiceID     id.ID          `db:"service_id"`
	ServiceName   string         `db:"service_name"`
	Rate          types.Money    `db:"rate"`
	Basis         string         `db:"basis"`
}

// Calculate builds the report data for one customer and period.
//
// Billable orders are confirmed or shipped documents dated inside the
// period. Orders without any active service assignment are omitted.
// Flat and per-order services charge their rate once per order;
// per-unit services multiply the rate by the order's total quantity.
func (c *ChargeCalculator) Calculate(ctx context.Context, customerID id.ID, start, end time.Time) (*billing.ReportData, error) {
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(
			"o.id AS order_id",
			"o.number AS order_number",
			"o.total_quantity",
			"st.id AS service_id",
			"st.name AS service_name",
			"cs.rate",
			"st.basis",
		).
		From("doc_orders o").
		Join("billing_customer_services cs ON cs.customer_id = o.customer_id AND cs.active AND cs.deletion_mark = false").
		Join("cat_service_types st ON st.id = cs.service_type_id AND st.deletion_mark = false").
		Where(squirrel.Eq{"o.customer_id": customerID}).
		Where(squirrel.Eq{"o.deletion_mark": false}).
		Where(squirrel.Eq{"o.status": []order.Status{order.StatusConfirmed, order.StatusShipped}}).
		Where(squirrel.GtOrEq{"o.date": start}).
		Where(squirrel.LtOrEq{"o.date": end}).
		OrderBy("o.date", "o.number", "st.name")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build charges query: %w", err)
	}

	var rows []chargeRow
	err = c.txm.ReadOnly(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, c.txm.GetQuerier(ctx), &rows, sql, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("query charges: %w", err)
	}

	return buildReportData(rows), nil
}

// buildReportData groups charge rows by order, preserving query order.
func buildReportData(rows []chargeRow) *billing.ReportData {
	data := &billing.ReportData{Orders: []billing.OrderCharge{}}

	grandTotal := decimal.Zero
	var current *billing.OrderCharge
	var currentTotal decimal.Decimal
	var currentID id.ID

	flush := func() {
		if current == nil {
			return
		}
		current.TotalAmount = currentTotal.StringFixed(2)
		data.Orders = append(data.Orders, *current)
		grandTotal = grandTotal.Add(currentTotal)
		current = nil
	}

	for _, row := range rows {
		if current == nil || row.OrderID != currentID {
			flush()
			currentID = row.OrderID
			current = &billing.OrderCharge{
				OrderID:  row.OrderNumber,
				Services: []billing.ServiceCharge{},
			}
			currentTotal = decimal.Zero
		}

		amount := chargeAmount(row)
		current.Services = append(current.Services, billing.ServiceCharge{
			ServiceID:   row.ServiceID.String(),
			ServiceName: row.ServiceName,
			Amount:      amount.StringFixed(2),
		})
		currentTotal = currentTotal.Add(amount.Round(2))
	}
	flush()

	data.TotalAmount = grandTotal.StringFixed(2)
	return data
}

// chargeAmount computes one service charge, rounded to cents.
func chargeAmount(row chargeRow) decimal.Decimal {
	if row.Basis == string(service_type.BasisPerUnit) {
		return row.Rate.Mul(row.TotalQuantity.Decimal()).Round(2)
	}
	return row.Rate.Round(2)
}
