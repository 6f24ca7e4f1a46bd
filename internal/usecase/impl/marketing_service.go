package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"staradmin/internal/domain/entity"
	"staradmin/internal/domain/repository"
	"staradmin/internal/store"
	"staradmin/internal/usecase"
)

// marketingService implements the MarketingUsecase interface.
type marketingService struct {
	couponRepo    repository.CouponRepository
	defectiveRepo repository.DefectiveRepository
	state         *store.State
	notifier      *store.Notifier
	activity      *store.ActivityLog
	logger        *slog.Logger
}

// NewMarketingService is the constructor for marketingService.
func NewMarketingService(
	couponRepo repository.CouponRepository,
	defectiveRepo repository.DefectiveRepository,
	state *store.State,
	notifier *store.Notifier,
	activity *store.ActivityLog,
	logger *slog.Logger,
) usecase.MarketingUsecase {
	return &marketingService{
		couponRepo:    couponRepo,
		defectiveRepo: defectiveRepo,
		state:         state,
		notifier:      notifier,
		activity:      activity,
		logger:        logger,
	}
}

func (srv *marketingService) Coupons() []entity.Coupon {
	return srv.state.Coupons.Items()
}

func (srv *marketingService) CreateCoupon(ctx context.Context, input *usecase.CreateCouponInput) (entity.Coupon, error) {
	coupon := entity.Coupon{
		Code:        strings.ToUpper(strings.TrimSpace(input.Code)),
		Discount:    input.Discount,
		Description: input.Description,
		Status:      entity.CouponActive,
		Color:       input.Color,
	}
	if coupon.Color == "" {
		coupon.Color = entity.DefaultCouponColor
	}

	created, err := srv.couponRepo.CreateCoupon(ctx, coupon)
	if err != nil {
		srv.logger.ErrorContext(ctx, "coupon create failed", slog.String("code", coupon.Code), slog.Any("error", err))
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Kupon saqlanmadi: %s", rootMessage(err)))

		return entity.Coupon{}, err
	}

	srv.state.Coupons.Upsert(created)
	srv.notifier.Push(entity.NotifySuccess, "", fmt.Sprintf("%s kuponi yaratildi.", created.Code))
	srv.activity.Record("Kupon yaratildi", actorName(srv.state), created.Code, entity.ActivityOK, "tag")

	return created, nil
}

func (srv *marketingService) DeleteCoupon(ctx context.Context, id string) error {
	coupon, _ := srv.state.Coupons.Get(id)

	if err := srv.couponRepo.DeleteCoupon(ctx, id); err != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Kupon o'chirilmadi: %s", rootMessage(err)))

		return err
	}

	srv.state.Coupons.Remove(id)
	srv.notifier.Push(entity.NotifySuccess, "", "Kupon o'chirildi.")
	srv.activity.Record("Kupon o'chirildi", actorName(srv.state), coupon.Code, entity.ActivityOK, "tag")

	return nil
}

func (srv *marketingService) DefectiveItems() []entity.DefectiveItem {
	return srv.state.Defectives.Items()
}

func (srv *marketingService) CreateDefectiveItem(ctx context.Context, input *usecase.CreateDefectiveInput) (entity.DefectiveItem, error) {
	item := entity.DefectiveItem{
		ProductName:  input.ProductName,
		SupplierName: input.SupplierName,
		CargoName:    input.CargoName,
		IssueType:    input.IssueType,
		Quantity:     input.Quantity,
		Price:        input.Price,
		Status:       entity.DefectivePending,
		Date:         input.Date,
		Image:        input.Image,
	}

	created, err := srv.defectiveRepo.CreateDefectiveItem(ctx, item)
	if err != nil {
		srv.logger.ErrorContext(ctx, "defective item create failed", slog.String("product", item.ProductName), slog.Any("error", err))
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Yaroqsiz mahsulot saqlanmadi: %s", rootMessage(err)))

		return entity.DefectiveItem{}, err
	}

	srv.state.Defectives.Upsert(created)
	srv.notifier.Push(entity.NotifySuccess, "", fmt.Sprintf("%s yaroqsizlar ro'yxatiga qo'shildi.", created.ProductName))
	srv.activity.Record("Yaroqsiz mahsulot qo'shildi", actorName(srv.state), created.ProductName, entity.ActivityOK, "box")

	return created, nil
}

func (srv *marketingService) DeleteDefectiveItem(ctx context.Context, id string) error {
	item, _ := srv.state.Defectives.Get(id)

	if err := srv.defectiveRepo.DeleteDefectiveItem(ctx, id); err != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Yozuv o'chirilmadi: %s", rootMessage(err)))

		return err
	}

	srv.state.Defectives.Remove(id)
	srv.notifier.Push(entity.NotifySuccess, "", "Yozuv o'chirildi.")
	srv.activity.Record("Yaroqsiz yozuv o'chirildi", actorName(srv.state), item.ProductName, entity.ActivityOK, "box")

	return nil
}

func (srv *marketingService) UpdateDefectiveStatus(ctx context.Context, id string, status entity.DefectiveStatus) (entity.DefectiveItem, error) {
	updated, err := srv.defectiveRepo.UpdateDefectiveStatus(ctx, id, status)
	if err != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Holat yangilanmadi: %s", rootMessage(err)))

		return entity.DefectiveItem{}, err
	}

	if updated.ID == "" {
		if cached, ok := srv.state.Defectives.Get(id); ok {
			cached.Status = status
			updated = cached
		}
	}
	srv.state.Defectives.Upsert(updated)
	srv.notifier.Push(entity.NotifySuccess, "", "Holat yangilandi.")
	srv.activity.Record("Yaroqsiz holati yangilandi", actorName(srv.state), updated.ProductName, entity.ActivityOK, "box")

	return updated, nil
}
