package handler

import (
	"net/http"
	"strconv"

	"staradmin/internal/delivery/http/response"
	"staradmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingsHandler holds dependencies for operator display settings.
type SettingsHandler struct {
	uc usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get returns the active theme, display currency and conversion rates.
func (h *SettingsHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"theme":    h.uc.Theme(),
		"currency": h.uc.Currency(),
		"rates":    h.uc.Rates(),
	}, "")
}

type themeInput struct {
	Theme string `json:"theme" validate:"required"`
}

// SetTheme switches between the light and dark palettes.
func (h *SettingsHandler) SetTheme(c echo.Context) error {
	var input *themeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid theme input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Mavzuni kiriting")
	}

	if err := h.uc.SetTheme(c.Request().Context(), input.Theme); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"theme": h.uc.Theme()}, "Theme saved")
}

type currencyInput struct {
	Currency string `json:"currency" validate:"required"`
}

// SetCurrency switches the display currency.
func (h *SettingsHandler) SetCurrency(c echo.Context) error {
	var input *currencyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid currency input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Valyutani kiriting")
	}

	if err := h.uc.SetCurrency(c.Request().Context(), input.Currency); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"currency": h.uc.Currency()}, "Currency saved")
}

// FormatPrice renders a USD amount in the active display currency.
func (h *SettingsHandler) FormatPrice(c echo.Context) error {
	amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "amount must be a number")
	}

	return response.Success(c, http.StatusOK, map[string]string{"formatted": h.uc.FormatPrice(amount)}, "")
}
