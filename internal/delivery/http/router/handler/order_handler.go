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

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// List returns the cached order list, newest first, narrowed by search
// and status. group_by=status returns the kanban column grouping instead.
func (h *OrderHandler) List(c echo.Context) error {
	search := strings.ToLower(c.QueryParam("q"))
	status := c.QueryParam("status")

	filtered := make([]entity.Order, 0)
	for _, order := range h.uc.Orders() {
		if search != "" &&
			!strings.Contains(strings.ToLower(order.ID), search) &&
			!strings.Contains(strings.ToLower(order.CustomerName), search) &&
			!strings.Contains(strings.ToLower(order.Product), search) {
			continue
		}
		if status != "" && status != "all" && order.Status != entity.OrderStatus(status) {
			continue
		}
		filtered = append(filtered, order)
	}

	if c.QueryParam("group_by") == "status" {
		grouped := map[entity.OrderStatus][]entity.Order{
			entity.OrderProcessing: {},
			entity.OrderDelivered:  {},
			entity.OrderCancelled:  {},
		}
		for _, order := range filtered {
			grouped[order.Status] = append(grouped[order.Status], order)
		}

		return response.Success(c, http.StatusOK, grouped, "")
	}

	return response.Success(c, http.StatusOK, filtered, "")
}

// Get returns one order by id.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.uc.Order(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

type updateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=Delivered Cancelled"`
}

// UpdateStatus transitions a Processing order to Delivered or Cancelled.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var input *updateStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Holat Delivered yoki Cancelled bo'lishi kerak")
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(input.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Status updated")
}
