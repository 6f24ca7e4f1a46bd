package impl

import (
	"context"
	"strings"
	"testing"

	"staradmin/internal/domain/entity"
	"staradmin/internal/store"
	"staradmin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerRepo struct {
	list    []entity.Customer
	listErr error
}

func (f *fakeCustomerRepo) ListCustomers(_ context.Context) ([]entity.Customer, error) {
	return f.list, f.listErr
}

func (f *fakeCustomerRepo) CreateCustomer(_ context.Context, c entity.Customer) (entity.Customer, error) {
	return c, nil
}

func (f *fakeCustomerRepo) UpdateCustomer(_ context.Context, c entity.Customer) (entity.Customer, error) {
	return c, nil
}

func (f *fakeCustomerRepo) DeleteCustomer(_ context.Context, _ string) error { return nil }

type fakeCouponRepo struct{ list []entity.Coupon }

func (f *fakeCouponRepo) ListCoupons(_ context.Context) ([]entity.Coupon, error) {
	return f.list, nil
}

func (f *fakeCouponRepo) CreateCoupon(_ context.Context, c entity.Coupon) (entity.Coupon, error) {
	return c, nil
}

func (f *fakeCouponRepo) DeleteCoupon(_ context.Context, _ string) error { return nil }

type fakeDefectiveRepo struct{ list []entity.DefectiveItem }

func (f *fakeDefectiveRepo) ListDefectiveItems(_ context.Context) ([]entity.DefectiveItem, error) {
	return f.list, nil
}

func (f *fakeDefectiveRepo) CreateDefectiveItem(_ context.Context, item entity.DefectiveItem) (entity.DefectiveItem, error) {
	return item, nil
}

func (f *fakeDefectiveRepo) DeleteDefectiveItem(_ context.Context, _ string) error { return nil }

func (f *fakeDefectiveRepo) UpdateDefectiveStatus(_ context.Context, _ string, _ entity.DefectiveStatus) (entity.DefectiveItem, error) {
	return entity.DefectiveItem{}, nil
}

type syncHarness struct {
	sync     usecase.SyncUsecase
	state    *store.State
	notifier *store.Notifier
	products *fakeProductRepo
	orders   *fakeOrderRepo
}

func newSyncHarness(t *testing.T) *syncHarness {
	t.Helper()

	state := store.NewState()
	state.SetUser(adminUser())
	notifier := testNotifier()
	activity := store.NewActivityLog()
	logger := testLogger()

	productRepo := &fakeProductRepo{}
	orderRepo := &fakeOrderRepo{}
	sectionRepo := &fakeSectionRepo{}

	orderSvc := NewOrderService(orderRepo, state, notifier, activity, logger)
	builderSvc := newBuilderService(t, sectionRepo, state)

	return &syncHarness{
		sync: NewSyncService(
			productRepo, orderRepo, &fakeCustomerRepo{}, &fakeCategoryRepo{},
			&fakeCouponRepo{}, &fakeDefectiveRepo{}, sectionRepo,
			orderSvc, builderSvc, state, notifier, logger,
		),
		state:    state,
		notifier: notifier,
		products: productRepo,
		orders:   orderRepo,
	}
}

func TestRefreshAll_SkipsWhenLoggedOut(t *testing.T) {
	h := newSyncHarness(t)
	h.state.ClearUser()
	h.products.list = []entity.Product{{ID: "p1"}}

	require.NoError(t, h.sync.RefreshAll(context.Background()))
	assert.Zero(t, h.state.Products.Len())
}

func TestRefreshAll_ReplacesCollectionsWholesale(t *testing.T) {
	h := newSyncHarness(t)
	h.state.Products.ReplaceAll([]entity.Product{{ID: "stale"}})
	h.products.list = []entity.Product{{ID: "fresh-1"}, {ID: "fresh-2"}}

	require.NoError(t, h.sync.RefreshAll(context.Background()))

	items := h.state.Products.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "fresh-1", items[0].ID)
}

func TestRefreshAll_PartialFailureWarnsOnce(t *testing.T) {
	h := newSyncHarness(t)
	h.products.list = []entity.Product{{ID: "p1"}}
	h.orders.listErr = errors.New("504 Gateway Timeout")

	err := h.sync.RefreshAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, h.state.Products.Len(), "healthy collections still refresh")

	var warning string
	for _, toast := range h.notifier.Toasts() {
		if toast.Type == entity.NotifyWarning && strings.Contains(toast.Message, "Ba'zi ma'lumotlar yuklanmadi") {
			warning = toast.Message
		}
	}
	require.NotEmpty(t, warning)
	assert.Contains(t, warning, "buyurtmalar: 504 Gateway Timeout")

	// The identical failure next cycle stays silent.
	before := len(h.notifier.Inbox())
	_ = h.sync.RefreshAll(context.Background())
	after := 0
	for _, n := range h.notifier.Inbox() {
		if strings.Contains(n.Message, "Ba'zi ma'lumotlar yuklanmadi") {
			after++
		}
	}
	assert.Equal(t, 1, after, "duplicate warning not re-raised")
	_ = before
}

func TestRefreshAll_NewOrderToastAfterFirstSync(t *testing.T) {
	h := newSyncHarness(t)
	h.orders.list = []entity.Order{{ID: "o1", CustomerName: "Ali", Status: entity.OrderDelivered}}

	// First sync primes the known set silently.
	require.NoError(t, h.sync.RefreshAll(context.Background()))
	for _, toast := range h.notifier.Toasts() {
		assert.NotEqual(t, entity.NotifyOrder, toast.Type)
	}

	// A new order on the next cycle raises the order toast.
	h.orders.list = append(h.orders.list, entity.Order{ID: "o2", CustomerName: "Vali", Status: entity.OrderDelivered})
	require.NoError(t, h.sync.RefreshAll(context.Background()))

	var orderToast *entity.Notification
	for _, toast := range h.notifier.Toasts() {
		if toast.Type == entity.NotifyOrder {
			copied := toast
			orderToast = &copied
		}
	}
	require.NotNil(t, orderToast)
	assert.Equal(t, "Yangi Buyurtma", orderToast.Title)
	assert.Contains(t, orderToast.Message, "Vali")
	assert.Equal(t, entity.ViewOrders, orderToast.TargetView)
	assert.Equal(t, "o2", orderToast.TargetID)
}

func TestRefreshAll_FailedFirstOrderFetchDoesNotPrime(t *testing.T) {
	h := newSyncHarness(t)
	h.orders.list = []entity.Order{
		{ID: "o1", CustomerName: "Ali", Status: entity.OrderDelivered},
		{ID: "o2", CustomerName: "Vali", Status: entity.OrderDelivered},
	}
	h.orders.listErr = errors.New("504 Gateway Timeout")

	// Order fetch fails on the first cycle while the rest succeeds.
	require.Error(t, h.sync.RefreshAll(context.Background()))

	// The first cycle that actually sees orders still primes silently.
	h.orders.listErr = nil
	require.NoError(t, h.sync.RefreshAll(context.Background()))
	for _, toast := range h.notifier.Toasts() {
		assert.NotEqual(t, entity.NotifyOrder, toast.Type, "pre-existing orders must not replay as new")
	}

	// Only a genuinely new order raises the toast afterwards.
	h.orders.list = append(h.orders.list, entity.Order{ID: "o3", CustomerName: "Gani", Status: entity.OrderDelivered})
	require.NoError(t, h.sync.RefreshAll(context.Background()))

	var fresh []string
	for _, toast := range h.notifier.Toasts() {
		if toast.Type == entity.NotifyOrder {
			fresh = append(fresh, toast.TargetID)
		}
	}
	assert.Equal(t, []string{"o3"}, fresh)
}

func TestRefreshAll_SeedsLayoutWhenSectionsEmpty(t *testing.T) {
	h := newSyncHarness(t)

	require.NoError(t, h.sync.RefreshAll(context.Background()))
	assert.Equal(t, 9, h.state.Sections.Len(), "default layout seeded on empty backend")
}
