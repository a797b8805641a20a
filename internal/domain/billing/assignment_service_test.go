package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warebill/internal/core/apperror"
	"warebill/internal/core/id"
	"warebill/internal/core/types"
)

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubAssignments struct {
	byID        map[id.ID]*CustomerService
	byCustSvc   map[string]*CustomerService
	updateCalls int
}

func newStubAssignments() *stubAssignments {
	return &stubAssignments{
		byID:      map[id.ID]*CustomerService{},
		byCustSvc: map[string]*CustomerService{},
	}
}

func pairKey(customerID, serviceTypeID id.ID) string {
	return customerID.String() + "/" + serviceTypeID.String()
}

func (s *stubAssignments) Create(ctx context.Context, cs *CustomerService) error {
	s.byID[cs.ID] = cs
	s.byCustSvc[pairKey(cs.CustomerID, cs.ServiceTypeID)] = cs
	return nil
}

func (s *stubAssignments) GetByID(ctx context.Context, csID id.ID) (*CustomerService, error) {
	cs, ok := s.byID[csID]
	if !ok {
		return nil, apperror.NewNotFound("rate assignment", csID.String())
	}
	return cs, nil
}

func (s *stubAssignments) Update(ctx context.Context, cs *CustomerService) error {
	s.updateCalls++
	s.byID[cs.ID] = cs
	return nil
}

func (s *stubAssignments) ListByCustomer(ctx context.Context, customerID id.ID, activeOnly bool) ([]*CustomerService, error) {
	var out []*CustomerService
	for _, cs := range s.byID {
		if cs.CustomerID != customerID {
			continue
		}
		if activeOnly && !cs.Active {
			continue
		}
		out = append(out, cs)
	}
	return out, nil
}

func (s *stubAssignments) FindByCustomerAndService(ctx context.Context, customerID, serviceTypeID id.ID) (*CustomerService, error) {
	cs, ok := s.byCustSvc[pairKey(customerID, serviceTypeID)]
	if !ok {
		return nil, apperror.NewNotFound("rate assignment", pairKey(customerID, serviceTypeID))
	}
	return cs, nil
}

func TestAssign_CreatesActiveAssignment(t *testing.T) {
	repo := newStubAssignments()
	svc := NewAssignmentService(repo, passthroughTx{})

	custID, stID := id.New(), id.New()
	cs, err := svc.Assign(context.Background(), custID, stID, types.MustMoney("4.50"))
	require.NoError(t, err)

	assert.True(t, cs.Active)
	assert.Equal(t, custID, cs.CustomerID)
	assert.Equal(t, "4.50", types.FormatAmount(cs.Rate))
}

func TestAssign_RejectsDuplicate(t *testing.T) {
	repo := newStubAssignments()
	svc := NewAssignmentService(repo, passthroughTx{})

	custID, stID := id.New(), id.New()
	_, err := svc.Assign(context.Background(), custID, stID, types.MustMoney("4.50"))
	require.NoError(t, err)

	_, err = svc.Assign(context.Background(), custID, stID, types.MustMoney("5.00"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestAssign_RejectsNegativeRate(t *testing.T) {
	svc := NewAssignmentService(newStubAssignments(), passthroughTx{})

	_, err := svc.Assign(context.Background(), id.New(), id.New(), types.MustMoney("-1.00"))
	require.Error(t, err)
}

func TestUpdateRate(t *testing.T) {
	repo := newStubAssignments()
	svc := NewAssignmentService(repo, passthroughTx{})

	cs, err := svc.Assign(context.Background(), id.New(), id.New(), types.MustMoney("4.50"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateRate(context.Background(), cs.ID, types.MustMoney("6.00")))
	assert.Equal(t, "6.00", types.FormatAmount(repo.byID[cs.ID].Rate))

	assert.Error(t, svc.UpdateRate(context.Background(), cs.ID, types.MustMoney("-6.00")))
	assert.Error(t, svc.UpdateRate(context.Background(), id.New(), types.MustMoney("1.00")))
}

func TestDeactivate_Idempotent(t *testing.T) {
	repo := newStubAssignments()
	svc := NewAssignmentService(repo, passthroughTx{})

	cs, err := svc.Assign(context.Background(), id.New(), id.New(), types.MustMoney("4.50"))
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), cs.ID))
	assert.False(t, repo.byID[cs.ID].Active)
	updates := repo.updateCalls

	// A second deactivation is a no-op, not an error.
	require.NoError(t, svc.Deactivate(context.Background(), cs.ID))
	assert.Equal(t, updates, repo.updateCalls)
}

func TestListForCustomer_ActiveOnly(t *testing.T) {
	repo := newStubAssignments()
	svc := NewAssignmentService(repo, passthroughTx{})

	custID := id.New()
	first, err := svc.Assign(context.Background(), custID, id.New(), types.MustMoney("4.50"))
	require.NoError(t, err)
	_, err = svc.Assign(context.Background(), custID, id.New(), types.MustMoney("2.00"))
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), first.ID))

	all, err := svc.ListForCustomer(context.Background(), custID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.ListForCustomer(context.Background(), custID, true)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
