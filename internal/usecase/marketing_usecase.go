package usecase

import (
	"context"

	"staradmin/internal/domain/entity"
)

// MarketingUsecase defines the interface for coupon and damaged-stock
// operations. Coupons are create/delete only; there is no edit path.
type MarketingUsecase interface {
	Coupons() []entity.Coupon
	CreateCoupon(ctx context.Context, input *CreateCouponInput) (entity.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error

	DefectiveItems() []entity.DefectiveItem
	CreateDefectiveItem(ctx context.Context, input *CreateDefectiveInput) (entity.DefectiveItem, error)
	DeleteDefectiveItem(ctx context.Context, id string) error
	UpdateDefectiveStatus(ctx context.Context, id string, status entity.DefectiveStatus) (entity.DefectiveItem, error)
}

// CreateCouponInput defines the fields of the new-coupon form.
type CreateCouponInput struct {
	Code        string `json:"code" validate:"required"`
	Discount    int    `json:"discount" validate:"gt=0,lte=100"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// CreateDefectiveInput defines the fields of the damaged-stock form.
type CreateDefectiveInput struct {
	ProductName  string  `json:"product_name" validate:"required"`
	SupplierName string  `json:"supplier_name"`
	CargoName    string  `json:"cargo_name"`
	IssueType    string  `json:"issue_type"`
	Quantity     int     `json:"quantity" validate:"gt=0"`
	Price        float64 `json:"price" validate:"gte=0"`
	Date         string  `json:"date"`
	Image        string  `json:"image"`
}
