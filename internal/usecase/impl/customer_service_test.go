package impl

import (
	"context"
	"testing"

	"staradmin/internal/domain/entity"
	"staradmin/internal/store"
	"staradmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCustomerRepo assigns ids on create and can be forced to fail.
type scriptedCustomerRepo struct {
	failWith error
	deleted  []string
}

func (f *scriptedCustomerRepo) ListCustomers(_ context.Context) ([]entity.Customer, error) {
	return nil, nil
}

func (f *scriptedCustomerRepo) CreateCustomer(_ context.Context, c entity.Customer) (entity.Customer, error) {
	if f.failWith != nil {
		return entity.Customer{}, f.failWith
	}
	c.ID = uuid.NewString()

	return c, nil
}

func (f *scriptedCustomerRepo) UpdateCustomer(_ context.Context, c entity.Customer) (entity.Customer, error) {
	if f.failWith != nil {
		return entity.Customer{}, f.failWith
	}

	return c, nil
}

func (f *scriptedCustomerRepo) DeleteCustomer(_ context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.deleted = append(f.deleted, id)

	return nil
}

func newCustomerHarness(repo *scriptedCustomerRepo) (usecase.CustomerUsecase, *store.State, *store.Notifier) {
	state := store.NewState()
	state.SetUser(adminUser())
	notifier := testNotifier()

	srv := NewCustomerService(repo, state, notifier, store.NewActivityLog(), testLogger())

	return srv, state, notifier
}

func TestSaveCustomer_CreateDefaultsToActive(t *testing.T) {
	srv, state, _ := newCustomerHarness(&scriptedCustomerRepo{})

	saved, err := srv.SaveCustomer(context.Background(), &usecase.SaveCustomerInput{Name: "Aziza"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, entity.CustomerActive, saved.Status)
	assert.Equal(t, 1, state.Customers.Len())
}

func TestSaveCustomer_UpdateKeepsTrackingFields(t *testing.T) {
	srv, state, _ := newCustomerHarness(&scriptedCustomerRepo{})
	state.Customers.ReplaceAll([]entity.Customer{{
		ID: "c1", Name: "Aziza", Orders: 7, Spent: 420,
		LastSeenAt: 1700000000000, TotalTimeSeconds: 3600, IsOnline: true,
	}})

	saved, err := srv.SaveCustomer(context.Background(), &usecase.SaveCustomerInput{
		ID:     "c1",
		Name:   "Aziza Karimova",
		Status: "Inactive",
	})
	require.NoError(t, err)
	assert.Equal(t, "Aziza Karimova", saved.Name)
	assert.Equal(t, entity.CustomerInactive, saved.Status)
	assert.Equal(t, 7, saved.Orders, "backend-owned counters survive the edit")
	assert.InDelta(t, 420, saved.Spent, 1e-9)
	assert.Equal(t, int64(1700000000000), saved.LastSeenAt)
	assert.True(t, saved.IsOnline)

	cached, ok := state.Customers.Get("c1")
	require.True(t, ok)
	assert.Equal(t, "Aziza Karimova", cached.Name)
}

func TestSaveCustomer_BackendFailure(t *testing.T) {
	srv, state, notifier := newCustomerHarness(&scriptedCustomerRepo{failWith: errors.New("503 Service Unavailable")})

	_, err := srv.SaveCustomer(context.Background(), &usecase.SaveCustomerInput{Name: "Aziza"})
	require.Error(t, err)
	assert.Zero(t, state.Customers.Len())

	toasts := notifier.Toasts()
	require.NotEmpty(t, toasts)
	assert.Contains(t, toasts[0].Message, "Mijoz saqlanmadi: 503 Service Unavailable")
}

func TestDeleteCustomer(t *testing.T) {
	repo := &scriptedCustomerRepo{}
	srv, state, _ := newCustomerHarness(repo)
	state.Customers.ReplaceAll([]entity.Customer{{ID: "c1", Name: "Aziza"}})

	require.NoError(t, srv.DeleteCustomer(context.Background(), "c1"))
	assert.Zero(t, state.Customers.Len())
	assert.Equal(t, []string{"c1"}, repo.deleted)
}
