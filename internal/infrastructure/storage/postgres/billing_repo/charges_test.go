package billing_repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warebill/internal/core/id"
	"warebill/internal/core/types"
	"warebill/internal/domain/billing"
	"warebill/internal/domain/catalogs/service_type"
)

func TestBuildReportData_GroupsRowsByOrder(t *testing.T) {
	order1 := id.New()
	order2 := id.New()
	shipping := id.New()
	handling := id.New()

	rows := []chargeRow{
		{
			OrderID: order1, OrderNumber: "ORD-2023-00001", TotalQuantity: types.Quantity(100000),
			ServiceID: handling, ServiceName: "Handling", Rate: types.MustMoney("4.50"), Basis: "per_order",
		},
		{
			OrderID: order1, OrderNumber: "ORD-2023-00001", TotalQuantity: types.Quantity(100000),
			ServiceID: shipping, ServiceName: "Pick and Pack", Rate: types.MustMoney("0.35"), Basis: "per_unit",
		},
		{
			OrderID: order2, OrderNumber: "ORD-2023-00002", TotalQuantity: types.Quantity(20000),
			ServiceID: handling, ServiceName: "Handling", Rate: types.MustMoney("4.50"), Basis: "per_order",
		},
	}

	data := buildReportData(rows)
	require.Len(t, data.Orders, 2)

	first := data.Orders[0]
	assert.Equal(t, "ORD-2023-00001", first.OrderID)
	require.Len(t, first.Services, 2)
	assert.Equal(t, "4.50", first.Services[0].Amount)
	// per_unit: 0.35 * 10 units
	assert.Equal(t, "3.50", first.Services[1].Amount)
	assert.Equal(t, "8.00", first.TotalAmount)

	second := data.Orders[1]
	assert.Equal(t, "ORD-2023-00002", second.OrderID)
	assert.Equal(t, "4.50", second.TotalAmount)

	assert.Equal(t, "12.50", data.TotalAmount)
}

func TestBuildReportData_EmptyInput(t *testing.T) {
	data := buildReportData(nil)
	assert.Empty(t, data.Orders)
	assert.Equal(t, "0.00", data.TotalAmount)
}

func TestBuildReportData_PassesValidation(t *testing.T) {
	// The calculator's rounding contract must line up with what the
	// report validator accepts: order totals are sums of rounded
	// service amounts, the grand total is the sum of order totals.
	orderID := id.New()
	rows := []chargeRow{
		{
			OrderID: orderID, OrderNumber: "ORD-2023-00001", TotalQuantity: types.Quantity(33333), // 3.3333 units
			ServiceID: id.New(), ServiceName: "Pick and Pack", Rate: types.MustMoney("0.07"), Basis: "per_unit",
		},
		{
			OrderID: orderID, OrderNumber: "ORD-2023-00001", TotalQuantity: types.Quantity(33333),
			ServiceID: id.New(), ServiceName: "Storage", Rate: types.MustMoney("2.999"), Basis: "flat",
		},
	}

	data := buildReportData(rows)
	require.NoError(t, billing.NewValidator().Validate(context.Background(), data))
}

func TestChargeAmount_Basis(t *testing.T) {
	row := chargeRow{
		TotalQuantity: types.Quantity(50000), // 5 units
		Rate:          types.MustMoney("2.00"),
	}

	row.Basis = string(service_type.BasisFlat)
	assert.Equal(t, "2.00", chargeAmount(row).StringFixed(2))

	row.Basis = string(service_type.BasisPerOrder)
	assert.Equal(t, "2.00", chargeAmount(row).StringFixed(2))

	row.Basis = string(service_type.BasisPerUnit)
	assert.Equal(t, "10.00", chargeAmount(row).StringFixed(2))
}
