package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staradmin/internal/delivery/http/validator"
	"staradmin/internal/domain/entity"
	domainerrors "staradmin/internal/domain/errors"
	"staradmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

type stubOrderUsecase struct {
	orders  []entity.Order
	updated entity.Order
	err     error
}

func (s *stubOrderUsecase) Orders() []entity.Order { return s.orders }

func (s *stubOrderUsecase) Order(id string) (entity.Order, error) {
	for _, order := range s.orders {
		if order.ID == id {
			return order, nil
		}
	}

	return entity.Order{}, domainerrors.ErrOrderNotFound
}

func (s *stubOrderUsecase) UpdateStatus(_ context.Context, _ string, _ entity.OrderStatus) (entity.Order, error) {
	return s.updated, s.err
}

func (s *stubOrderUsecase) CheckDeliveryETAs() {}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	stub := &stubOrderUsecase{updated: entity.Order{ID: "o1", Status: entity.OrderDelivered}}
	h := NewOrderHandler(stub, slog.Default())

	c, rec := newTestContext(t, http.MethodPut, "/api/orders/o1/status", `{"status":"Delivered"}`)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Delivered"`)
}

func TestOrderHandler_UpdateStatus_RejectsUnknownTarget(t *testing.T) {
	h := NewOrderHandler(&stubOrderUsecase{}, slog.Default())

	c, rec := newTestContext(t, http.MethodPut, "/api/orders/o1/status", `{"status":"Shipped"}`)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestOrderHandler_Get_NotFound(t *testing.T) {
	h := NewOrderHandler(&stubOrderUsecase{}, slog.Default())

	c, _ := newTestContext(t, http.MethodGet, "/api/orders/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Get(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

type stubFinanceUsecase struct{}

func (stubFinanceUsecase) Summary() usecase.FinanceSummary {
	return usecase.FinanceSummary{TotalIncome: 150, Expenses: 97.5, Balance: 52.5}
}

func (stubFinanceUsecase) RevenueSeries(rangeKey string) (usecase.RevenueSeries, error) {
	if rangeKey != "24h" && rangeKey != "3d" && rangeKey != "1w" && rangeKey != "1m" {
		return usecase.RevenueSeries{}, domainerrors.ErrInvalidInput
	}

	return usecase.RevenueSeries{Range: rangeKey, Labels: []string{"00:00"}, Points: []float64{1}}, nil
}

func (stubFinanceUsecase) Refunds() []entity.Order { return nil }

type stubDashboardUsecase struct{}

func (stubDashboardUsecase) Stats() usecase.DashboardStats {
	return usecase.DashboardStats{Products: 3, Orders: 2, TotalRevenue: 99}
}

func (stubDashboardUsecase) RecentOrders(limit int) []entity.Order {
	return make([]entity.Order, limit)
}

func TestFinanceHandler_RevenueDefaultsTo24h(t *testing.T) {
	h := NewFinanceHandler(stubFinanceUsecase{}, stubDashboardUsecase{})

	c, rec := newTestContext(t, http.MethodGet, "/api/finance/revenue", "")

	require.NoError(t, h.Revenue(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"24h"`)
}

func TestFinanceHandler_RevenueRejectsUnknownRange(t *testing.T) {
	h := NewFinanceHandler(stubFinanceUsecase{}, stubDashboardUsecase{})

	c, _ := newTestContext(t, http.MethodGet, "/api/finance/revenue?range=1y", "")

	err := h.Revenue(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestFinanceHandler_RecentOrdersLimit(t *testing.T) {
	h := NewFinanceHandler(stubFinanceUsecase{}, stubDashboardUsecase{})

	c, rec := newTestContext(t, http.MethodGet, "/api/dashboard/recent-orders?limit=abc", "")

	require.NoError(t, h.RecentOrders(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
