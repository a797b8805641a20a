package service_type

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warebill/internal/core/types"
)

func TestServiceType_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid basis values", func(t *testing.T) {
		for _, basis := range []RateBasis{BasisFlat, BasisPerOrder, BasisPerUnit} {
			st := NewServiceType("SVC-00001", "Pick and Pack", basis)
			st.DefaultRate = types.MustMoney("0.35")
			require.NoError(t, st.Validate(ctx), string(basis))
		}
	})

	t.Run("unknown basis rejected", func(t *testing.T) {
		st := NewServiceType("SVC-00001", "Pick and Pack", RateBasis("hourly"))
		assert.Error(t, st.Validate(ctx))
	})

	t.Run("negative default rate rejected", func(t *testing.T) {
		st := NewServiceType("SVC-00001", "Pick and Pack", BasisPerUnit)
		st.DefaultRate = types.MustMoney("-0.01")
		assert.Error(t, st.Validate(ctx))
	})

	t.Run("name required", func(t *testing.T) {
		st := NewServiceType("SVC-00001", "", BasisFlat)
		assert.Error(t, st.Validate(ctx))
	})
}

func TestNewServiceType_ActiveByDefault(t *testing.T) {
	st := NewServiceType("SVC-00001", "Storage", BasisFlat)
	assert.True(t, st.Active)
}
