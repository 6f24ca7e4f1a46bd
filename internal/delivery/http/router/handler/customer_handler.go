package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"staradmin/internal/delivery/http/response"
	"staradmin/internal/domain/entity"
	"staradmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for CRM handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: logger}
}

// List returns the cached CRM list, newest first, narrowed by search
// (name or email) and status.
func (h *CustomerHandler) List(c echo.Context) error {
	search := strings.ToLower(c.QueryParam("q"))
	status := c.QueryParam("status")

	filtered := make([]entity.Customer, 0)
	for _, customer := range h.uc.Customers() {
		if search != "" &&
			!strings.Contains(strings.ToLower(customer.Name), search) &&
			!strings.Contains(strings.ToLower(customer.Email), search) {
			continue
		}
		if status != "" && status != "All" && customer.Status != entity.CustomerStatus(status) {
			continue
		}
		filtered = append(filtered, customer)
	}

	return response.Success(c, http.StatusOK, filtered, "")
}

// Save creates or updates a customer depending on the presence of an id.
func (h *CustomerHandler) Save(c echo.Context) error {
	var input *usecase.SaveCustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Mijoz nomini kiriting")
	}

	customer, err := h.uc.SaveCustomer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if input.ID == "" {
		status = http.StatusCreated
	}

	return response.Success(c, status, customer, "Customer saved")
}

// Delete removes one customer.
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteCustomer(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer deleted")
}
