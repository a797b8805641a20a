package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warebill/internal/core/id"
	"warebill/internal/core/types"
)

func validOrder() *Order {
	o := NewOrder(id.New())
	o.Date = time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	o.AddLine(id.New(), types.Quantity(50000), types.MustMoney("2.80"))
	return o
}

func TestNewOrder_StartsAsDraft(t *testing.T) {
	o := NewOrder(id.New())
	assert.Equal(t, StatusDraft, o.Status)
	assert.Empty(t, o.Lines)
}

func TestAddLine_RecalculatesTotals(t *testing.T) {
	o := NewOrder(id.New())

	// 5 units at 2.80 and 2.5 units at 4.00
	o.AddLine(id.New(), types.Quantity(50000), types.MustMoney("2.80"))
	o.AddLine(id.New(), types.Quantity(25000), types.MustMoney("4.00"))

	require.Len(t, o.Lines, 2)
	assert.Equal(t, 1, o.Lines[0].LineNo)
	assert.Equal(t, 2, o.Lines[1].LineNo)

	assert.Equal(t, types.Quantity(75000), o.TotalQuantity)
	assert.Equal(t, "24.00", types.FormatAmount(o.TotalAmount))
	assert.Equal(t, "14.00", types.FormatAmount(o.Lines[0].Amount))
	assert.Equal(t, "10.00", types.FormatAmount(o.Lines[1].Amount))
}

func TestCanModify_OnlyDraft(t *testing.T) {
	o := validOrder()
	require.NoError(t, o.CanModify())

	for _, status := range []Status{StatusConfirmed, StatusShipped, StatusCancelled} {
		o.Status = status
		assert.Error(t, o.CanModify(), string(status))
	}
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusConfirmed, true},
		{StatusDraft, StatusCancelled, true},
		{StatusDraft, StatusShipped, false},
		{StatusConfirmed, StatusShipped, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusDraft, false},
		{StatusShipped, StatusCancelled, false},
		{StatusShipped, StatusDraft, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		o := validOrder()
		o.Status = tt.from

		err := o.CanTransitionTo(tt.to)
		if tt.allowed {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		} else {
			assert.Error(t, err, "%s -> %s", tt.from, tt.to)
		}
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid order passes", func(t *testing.T) {
		require.NoError(t, validOrder().Validate(ctx))
	})

	t.Run("customer required", func(t *testing.T) {
		o := validOrder()
		o.CustomerID = id.Nil()
		assert.Error(t, o.Validate(ctx))
	})

	t.Run("lines required", func(t *testing.T) {
		o := NewOrder(id.New())
		o.Date = time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
		assert.Error(t, o.Validate(ctx))
	})

	t.Run("positive quantity required", func(t *testing.T) {
		o := validOrder()
		o.Lines[0].Quantity = 0
		assert.Error(t, o.Validate(ctx))
	})

	t.Run("negative price rejected", func(t *testing.T) {
		o := validOrder()
		o.Lines[0].UnitPrice = types.MustMoney("-1.00")
		assert.Error(t, o.Validate(ctx))
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		o := validOrder()
		o.Status = Status("archived")
		assert.Error(t, o.Validate(ctx))
	})
}
