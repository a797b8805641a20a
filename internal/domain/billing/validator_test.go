package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warebill/internal/core/apperror"
)

func validReportData() *ReportData {
	return &ReportData{
		Orders: []OrderCharge{
			{
				OrderID: "ORD-2026-00001",
				Services: []ServiceCharge{
					{ServiceID: "s1", ServiceName: "Shipping", Amount: "10.50"},
					{ServiceID: "s2", ServiceName: "Handling", Amount: "4.50"},
				},
				TotalAmount: "15.00",
			},
			{
				OrderID: "ORD-2026-00002",
				Services: []ServiceCharge{
					{ServiceID: "s1", ServiceName: "Shipping", Amount: "10.50"},
				},
				TotalAmount: "10.50",
			},
		},
		TotalAmount: "25.50",
	}
}

func TestValidator_AcceptsConsistentData(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Validate(context.Background(), validReportData()))
}

func TestValidator_AcceptsEmptyReport(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Validate(context.Background(), &ReportData{TotalAmount: "0.00"}))
}

func TestValidator_DecimalExactComparison(t *testing.T) {
	// "10.5" and "10.50" are the same amount.
	v := NewValidator()
	data := &ReportData{
		Orders: []OrderCharge{
			{
				OrderID:     "ORD-2026-00001",
				Services:    []ServiceCharge{{ServiceID: "s1", ServiceName: "Shipping", Amount: "10.5"}},
				TotalAmount: "10.50",
			},
		},
		TotalAmount: "10.5",
	}
	require.NoError(t, v.Validate(context.Background(), data))
}

func TestValidator_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *ReportData)
	}{
		{"missing order id", func(d *ReportData) { d.Orders[0].OrderID = "" }},
		{"missing service id", func(d *ReportData) { d.Orders[0].Services[0].ServiceID = "" }},
		{"missing service name", func(d *ReportData) { d.Orders[0].Services[0].ServiceName = "" }},
		{"malformed amount", func(d *ReportData) { d.Orders[0].Services[0].Amount = "abc" }},
		{"negative amount", func(d *ReportData) { d.Orders[0].Services[0].Amount = "-1.00" }},
		{"order total mismatch", func(d *ReportData) { d.Orders[0].TotalAmount = "99.00" }},
		{"grand total mismatch", func(d *ReportData) { d.TotalAmount = "99.00" }},
		{"malformed grand total", func(d *ReportData) { d.TotalAmount = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validReportData()
			tt.mutate(data)

			err := NewValidator().Validate(context.Background(), data)
			require.Error(t, err)

			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeReportIntegrity, appErr.Code)
		})
	}
}

func TestValidator_NilData(t *testing.T) {
	err := NewValidator().Validate(context.Background(), nil)
	require.Error(t, err)
}
