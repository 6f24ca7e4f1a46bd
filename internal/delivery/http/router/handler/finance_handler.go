package handler

import (
	"net/http"
	"strconv"

	"staradmin/internal/delivery/http/response"
	"staradmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FinanceHandler holds dependencies for the finance and dashboard views.
type FinanceHandler struct {
	finance   usecase.FinanceUsecase
	dashboard usecase.DashboardUsecase
}

// NewFinanceHandler is the constructor for FinanceHandler, injected by Fx.
func NewFinanceHandler(finance usecase.FinanceUsecase, dashboard usecase.DashboardUsecase) *FinanceHandler {
	return &FinanceHandler{finance: finance, dashboard: dashboard}
}

// Summary returns the income/expense/balance card values.
func (h *FinanceHandler) Summary(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.finance.Summary(), "")
}

// Revenue returns one bucketed revenue chart. Range defaults to 24h.
func (h *FinanceHandler) Revenue(c echo.Context) error {
	rangeKey := c.QueryParam("range")
	if rangeKey == "" {
		rangeKey = "24h"
	}

	series, err := h.finance.RevenueSeries(rangeKey)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, series, "")
}

// Refunds lists cancelled orders as refund rows.
func (h *FinanceHandler) Refunds(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.finance.Refunds(), "")
}

// Stats returns the dashboard stat-card numbers.
func (h *FinanceHandler) Stats(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dashboard.Stats(), "")
}

// RecentOrders returns the newest orders for the dashboard table.
func (h *FinanceHandler) RecentOrders(c echo.Context) error {
	limit := 5
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a positive number")
		}
		limit = parsed
	}

	return response.Success(c, http.StatusOK, h.dashboard.RecentOrders(limit), "")
}
