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

// scriptedCouponRepo assigns ids on create and can be forced to fail.
type scriptedCouponRepo struct {
	failWith error
	deleted  []string
}

func (f *scriptedCouponRepo) ListCoupons(_ context.Context) ([]entity.Coupon, error) {
	return nil, nil
}

func (f *scriptedCouponRepo) CreateCoupon(_ context.Context, c entity.Coupon) (entity.Coupon, error) {
	if f.failWith != nil {
		return entity.Coupon{}, f.failWith
	}
	c.ID = uuid.NewString()

	return c, nil
}

func (f *scriptedCouponRepo) DeleteCoupon(_ context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.deleted = append(f.deleted, id)

	return nil
}

type scriptedDefectiveRepo struct {
	failWith error
	statusOf map[string]entity.DefectiveStatus
}

func (f *scriptedDefectiveRepo) ListDefectiveItems(_ context.Context) ([]entity.DefectiveItem, error) {
	return nil, nil
}

func (f *scriptedDefectiveRepo) CreateDefectiveItem(_ context.Context, item entity.DefectiveItem) (entity.DefectiveItem, error) {
	if f.failWith != nil {
		return entity.DefectiveItem{}, f.failWith
	}
	item.ID = uuid.NewString()

	return item, nil
}

func (f *scriptedDefectiveRepo) DeleteDefectiveItem(_ context.Context, _ string) error {
	return f.failWith
}

func (f *scriptedDefectiveRepo) UpdateDefectiveStatus(_ context.Context, id string, status entity.DefectiveStatus) (entity.DefectiveItem, error) {
	if f.failWith != nil {
		return entity.DefectiveItem{}, f.failWith
	}
	if f.statusOf == nil {
		f.statusOf = map[string]entity.DefectiveStatus{}
	}
	f.statusOf[id] = status

	// Echo an empty record: the backend replies with a bare ack here.
	return entity.DefectiveItem{}, nil
}

func newMarketingHarness(couponRepo *scriptedCouponRepo, defectiveRepo *scriptedDefectiveRepo) (usecase.MarketingUsecase, *store.State, *store.Notifier) {
	state := store.NewState()
	state.SetUser(adminUser())
	notifier := testNotifier()

	srv := NewMarketingService(couponRepo, defectiveRepo, state, notifier, store.NewActivityLog(), testLogger())

	return srv, state, notifier
}

func TestCreateCoupon_UppercasesAndDefaultsColor(t *testing.T) {
	srv, state, notifier := newMarketingHarness(&scriptedCouponRepo{}, &scriptedDefectiveRepo{})

	created, err := srv.CreateCoupon(context.Background(), &usecase.CreateCouponInput{
		Code:     " sale20 ",
		Discount: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "SALE20", created.Code)
	assert.Equal(t, entity.CouponActive, created.Status)
	assert.Equal(t, entity.DefaultCouponColor, created.Color)
	assert.Equal(t, 1, state.Coupons.Len())

	var sawToast bool
	for _, toast := range notifier.Toasts() {
		if toast.Type == entity.NotifySuccess && toast.Title == "Muvaffaqiyatli" {
			sawToast = true
			assert.Contains(t, toast.Message, "SALE20 kuponi yaratildi.")
		}
	}
	assert.True(t, sawToast)
}

func TestCreateCoupon_BackendFailure(t *testing.T) {
	srv, state, notifier := newMarketingHarness(
		&scriptedCouponRepo{failWith: errors.New("Bu kod allaqachon mavjud")},
		&scriptedDefectiveRepo{},
	)

	_, err := srv.CreateCoupon(context.Background(), &usecase.CreateCouponInput{Code: "SALE20", Discount: 20})
	require.Error(t, err)
	assert.Zero(t, state.Coupons.Len(), "no optimistic write on failure")

	toasts := notifier.Toasts()
	require.NotEmpty(t, toasts)
	assert.Equal(t, entity.NotifyError, toasts[0].Type)
	assert.Contains(t, toasts[0].Message, "Kupon saqlanmadi: Bu kod allaqachon mavjud")
}

func TestDeleteCoupon(t *testing.T) {
	couponRepo := &scriptedCouponRepo{}
	srv, state, _ := newMarketingHarness(couponRepo, &scriptedDefectiveRepo{})
	state.Coupons.ReplaceAll([]entity.Coupon{{ID: "c1", Code: "SALE20"}})

	require.NoError(t, srv.DeleteCoupon(context.Background(), "c1"))
	assert.Zero(t, state.Coupons.Len())
	assert.Equal(t, []string{"c1"}, couponRepo.deleted)
}

func TestCreateDefectiveItem_StartsPending(t *testing.T) {
	srv, state, _ := newMarketingHarness(&scriptedCouponRepo{}, &scriptedDefectiveRepo{})

	created, err := srv.CreateDefectiveItem(context.Background(), &usecase.CreateDefectiveInput{
		ProductName: "Yirtiq palto",
		Quantity:    2,
		Price:       40,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefectivePending, created.Status)
	assert.Equal(t, 1, state.Defectives.Len())
}

func TestUpdateDefectiveStatus_BareAckFallsBackToCache(t *testing.T) {
	defectiveRepo := &scriptedDefectiveRepo{}
	srv, state, _ := newMarketingHarness(&scriptedCouponRepo{}, defectiveRepo)
	state.Defectives.ReplaceAll([]entity.DefectiveItem{
		{ID: "d1", ProductName: "Yirtiq palto", Status: entity.DefectivePending},
	})

	updated, err := srv.UpdateDefectiveStatus(context.Background(), "d1", entity.DefectiveSolved)
	require.NoError(t, err)
	assert.Equal(t, "d1", updated.ID, "cached record reused when the backend acks without a body")
	assert.Equal(t, entity.DefectiveSolved, updated.Status)
	assert.Equal(t, entity.DefectiveSolved, defectiveRepo.statusOf["d1"])

	cached, ok := state.Defectives.Get("d1")
	require.True(t, ok)
	assert.Equal(t, entity.DefectiveSolved, cached.Status)
}
