package handler

import (
	"log/slog"
	"net/http"

	"staradmin/internal/delivery/http/response"
	"staradmin/internal/domain/entity"
	"staradmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MarketingHandler holds dependencies for coupon and damaged-stock handlers.
type MarketingHandler struct {
	uc     usecase.MarketingUsecase
	logger *slog.Logger
}

// NewMarketingHandler is the constructor for MarketingHandler, injected by Fx.
func NewMarketingHandler(uc usecase.MarketingUsecase, logger *slog.Logger) *MarketingHandler {
	return &MarketingHandler{uc: uc, logger: logger}
}

// Coupons returns the cached coupon list.
func (h *MarketingHandler) Coupons(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Coupons(), "")
}

// CreateCoupon adds a new coupon code.
func (h *MarketingHandler) CreateCoupon(c echo.Context) error {
	var input *usecase.CreateCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Kupon kodi va chegirmani kiriting")
	}

	coupon, err := h.uc.CreateCoupon(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, coupon, "Coupon created")
}

// DeleteCoupon removes one coupon.
func (h *MarketingHandler) DeleteCoupon(c echo.Context) error {
	if err := h.uc.DeleteCoupon(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Coupon deleted")
}

// DefectiveItems returns the cached damaged-stock list.
func (h *MarketingHandler) DefectiveItems(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.DefectiveItems(), "")
}

// CreateDefectiveItem registers a damaged-stock record.
func (h *MarketingHandler) CreateDefectiveItem(c echo.Context) error {
	var input *usecase.CreateDefectiveInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid defective item input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Mahsulot nomi va sonini kiriting")
	}

	item, err := h.uc.CreateDefectiveItem(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Defective item created")
}

// DeleteDefectiveItem removes one damaged-stock record.
func (h *MarketingHandler) DeleteDefectiveItem(c echo.Context) error {
	if err := h.uc.DeleteDefectiveItem(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Defective item deleted")
}

type defectiveStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// UpdateDefectiveStatus updates the resolution status of a record.
func (h *MarketingHandler) UpdateDefectiveStatus(c echo.Context) error {
	var input *defectiveStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Holatni kiriting")
	}

	item, err := h.uc.UpdateDefectiveStatus(c.Request().Context(), c.Param("id"), entity.DefectiveStatus(input.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Status updated")
}
