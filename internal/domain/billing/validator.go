package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"warebill/internal/core/apperror"
	"warebill/internal/core/types"
)

func newIntegrityErr(msg string, details map[string]any) *apperror.AppError {
	e := apperror.NewReportIntegrity(msg)
	for k, val := range details {
		e = e.WithDetail(k, val)
	}
	return e
}

// Validator checks internal consistency of calculated report data before it
// is persisted or rendered. All failures are data-integrity errors: they
// indicate a calculator bug or corrupted input, not a caller mistake.
type Validator struct{}

// NewValidator creates a report data validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks shape, amount formats, and sum consistency.
// Amount comparison is decimal-exact: "10.50" equals "10.5".
func (v *Validator) Validate(ctx context.Context, data *ReportData) error {
	if data == nil {
		return newIntegrityErr("report data is missing", nil)
	}

	grandTotal, err := types.ParseAmount(data.TotalAmount)
	if err != nil {
		return newIntegrityErr("report total amount is not a valid decimal", map[string]any{
			"total_amount": data.TotalAmount,
		})
	}
	if grandTotal.IsNegative() {
		return newIntegrityErr("report total amount is negative", map[string]any{
			"total_amount": data.TotalAmount,
		})
	}

	ordersSum := decimal.Zero
	for i, order := range data.Orders {
		if order.OrderID == "" {
			return newIntegrityErr("order is missing order_id", map[string]any{
				"index": i,
			})
		}

		orderTotal, err := types.ParseAmount(order.TotalAmount)
		if err != nil {
			return newIntegrityErr("order total amount is not a valid decimal", map[string]any{
				"order_id":     order.OrderID,
				"total_amount": order.TotalAmount,
			})
		}
		if orderTotal.IsNegative() {
			return newIntegrityErr("order total amount is negative", map[string]any{
				"order_id": order.OrderID,
			})
		}

		servicesSum := decimal.Zero
		for _, svc := range order.Services {
			if svc.ServiceID == "" {
				return newIntegrityErr("service charge is missing service_id", map[string]any{
					"order_id":     order.OrderID,
					"service_name": svc.ServiceName,
				})
			}
			if svc.ServiceName == "" {
				return newIntegrityErr("service charge is missing service_name", map[string]any{
					"order_id": order.OrderID,
				})
			}

			amount, err := types.ParseAmount(svc.Amount)
			if err != nil {
				return newIntegrityErr("service amount is not a valid decimal", map[string]any{
					"order_id":     order.OrderID,
					"service_name": svc.ServiceName,
					"amount":       svc.Amount,
				})
			}
			if amount.IsNegative() {
				return newIntegrityErr("service amount is negative", map[string]any{
					"order_id":     order.OrderID,
					"service_name": svc.ServiceName,
				})
			}
			servicesSum = servicesSum.Add(amount)
		}

		if !orderTotal.Equal(servicesSum) {
			return newIntegrityErr("order total does not match sum of service amounts", map[string]any{
				"order_id": order.OrderID,
				"expected": servicesSum.String(),
				"actual":   orderTotal.String(),
			})
		}

		ordersSum = ordersSum.Add(orderTotal)
	}

	if !grandTotal.Equal(ordersSum) {
		return newIntegrityErr("report total does not match sum of order totals", map[string]any{
			"expected": ordersSum.String(),
			"actual":   grandTotal.String(),
		})
	}

	return nil
}
