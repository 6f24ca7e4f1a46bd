package starstore

import (
	"context"
	"net/http"

	"staradmin/internal/domain/entity"
	"staradmin/internal/domain/repository"

	"github.com/pkg/errors"
)

type couponRepository struct {
	client *Client
}

// NewCouponRepository implements repository.CouponRepository over the
// backend's /coupons resource.
func NewCouponRepository(client *Client) repository.CouponRepository {
	return &couponRepository{client: client}
}

func (r *couponRepository) ListCoupons(ctx context.Context) ([]entity.Coupon, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/coupons", nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[couponDTO](raw, "coupons", "data")
	if err != nil {
		return nil, errors.Wrap(err, "decode coupons")
	}

	coupons := make([]entity.Coupon, 0, len(dtos))
	for _, dto := range dtos {
		coupons = append(coupons, dto.toEntity())
	}

	return coupons, nil
}

func (r *couponRepository) CreateCoupon(ctx context.Context, coupon entity.Coupon) (entity.Coupon, error) {
	body := couponDTO{
		Code:        coupon.Code,
		Discount:    flexInt(coupon.Discount),
		Description: coupon.Description,
		Status:      string(coupon.Status),
		Color:       coupon.Color,
	}

	raw, err := r.client.do(ctx, http.MethodPost, "/coupons", body)
	if err != nil {
		return entity.Coupon{}, err
	}

	dto, err := decodeRecord[couponDTO](raw, "coupon", "data")
	if err != nil {
		return entity.Coupon{}, errors.Wrap(err, "decode created coupon")
	}
	created := dto.toEntity()
	if created.ID == "" {
		created = coupon
	}

	return created, nil
}

func (r *couponRepository) DeleteCoupon(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, pathID("/coupons", id), nil)

	return err
}

type defectiveRepository struct {
	client *Client
}

// NewDefectiveRepository implements repository.DefectiveRepository over
// the backend's /defective-items resource.
func NewDefectiveRepository(client *Client) repository.DefectiveRepository {
	return &defectiveRepository{client: client}
}

func (r *defectiveRepository) ListDefectiveItems(ctx context.Context) ([]entity.DefectiveItem, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/defective-items", nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[defectiveDTO](raw, "defective_items", "items", "data")
	if err != nil {
		return nil, errors.Wrap(err, "decode defective items")
	}

	items := make([]entity.DefectiveItem, 0, len(dtos))
	for _, dto := range dtos {
		item := dto.toEntity()
		item.Image = r.client.imageURL(item.Image)
		items = append(items, item)
	}

	return items, nil
}

func (r *defectiveRepository) CreateDefectiveItem(ctx context.Context, item entity.DefectiveItem) (entity.DefectiveItem, error) {
	raw, err := r.client.do(ctx, http.MethodPost, "/defective-items", defectiveToDTO(item))
	if err != nil {
		return entity.DefectiveItem{}, err
	}

	dto, err := decodeRecord[defectiveDTO](raw, "item", "data")
	if err != nil {
		return entity.DefectiveItem{}, errors.Wrap(err, "decode created defective item")
	}
	created := dto.toEntity()
	if created.ID == "" {
		created = item
	}

	return created, nil
}

func (r *defectiveRepository) DeleteDefectiveItem(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, pathID("/defective-items", id), nil)

	return err
}

func (r *defectiveRepository) UpdateDefectiveStatus(ctx context.Context, id string, status entity.DefectiveStatus) (entity.DefectiveItem, error) {
	body := map[string]string{"status": string(status)}

	raw, err := r.client.do(ctx, http.MethodPut, pathID("/defective-items", id)+"/status", body)
	if err != nil {
		return entity.DefectiveItem{}, err
	}

	dto, err := decodeRecord[defectiveDTO](raw, "item", "data")
	if err != nil {
		return entity.DefectiveItem{}, errors.Wrap(err, "decode updated defective item")
	}

	return dto.toEntity(), nil
}
