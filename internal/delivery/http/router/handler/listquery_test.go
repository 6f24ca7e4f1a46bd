package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"staradmin/internal/domain/entity"
	"staradmin/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductUsecase struct {
	products []entity.Product
}

func (s *stubProductUsecase) Products() []entity.Product { return s.products }

func (s *stubProductUsecase) Product(string) (entity.Product, error) {
	return entity.Product{}, nil
}

func (s *stubProductUsecase) SaveProduct(context.Context, *usecase.SaveProductInput) (entity.Product, error) {
	return entity.Product{}, nil
}

func (s *stubProductUsecase) DeleteProduct(context.Context, string) error { return nil }

func (s *stubProductUsecase) DeleteProducts(context.Context, []string) error { return nil }

func (s *stubProductUsecase) AssignCategory(context.Context, []string, string) error { return nil }

func (s *stubProductUsecase) Categories() []entity.Category { return nil }

func (s *stubProductUsecase) CreateCategory(context.Context, *usecase.CreateCategoryInput) (entity.Category, error) {
	return entity.Category{}, nil
}

func catalog() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Qishki palto", Brand: "Lacoste", Category: "Kiyimlar", Price: 120, Stock: 25, HasCargo: true},
		{ID: "p2", Name: "Yozgi futbolka", Brand: "Nike", Category: "Kiyimlar", Price: 25, Stock: 4},
		{ID: "p3", Name: "Krossovka", Brand: "Nike", Category: "Oyoq kiyim", Price: 80, Stock: 0},
	}
}

func decodeDataArray(t *testing.T, body []byte) []map[string]any {
	t.Helper()

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	return envelope.Data
}

func TestProductList_SearchAndBrandFilter(t *testing.T) {
	h := NewProductHandler(&stubProductUsecase{products: catalog()}, slog.Default())

	c, rec := newTestContext(t, http.MethodGet, "/api/products?q=nike", "")
	require.NoError(t, h.List(c))
	assert.Len(t, decodeDataArray(t, rec.Body.Bytes()), 2, "search matches brand")

	c, rec = newTestContext(t, http.MethodGet, "/api/products?brand=Nike&category=Kiyimlar", "")
	require.NoError(t, h.List(c))
	assert.Len(t, decodeDataArray(t, rec.Body.Bytes()), 1)
}

func TestProductList_StockBands(t *testing.T) {
	h := NewProductHandler(&stubProductUsecase{products: catalog()}, slog.Default())

	cases := map[string]int{"in_stock": 1, "low": 1, "out": 1}
	for band, want := range cases {
		c, rec := newTestContext(t, http.MethodGet, "/api/products?stock="+band, "")
		require.NoError(t, h.List(c))
		assert.Len(t, decodeDataArray(t, rec.Body.Bytes()), want, band)
	}
}

func TestProductList_PriceRangeAndSort(t *testing.T) {
	h := NewProductHandler(&stubProductUsecase{products: catalog()}, slog.Default())

	c, rec := newTestContext(t, http.MethodGet, "/api/products?min_price=30&sort=price_asc", "")
	require.NoError(t, h.List(c))

	rows := decodeDataArray(t, rec.Body.Bytes())
	require.Len(t, rows, 2)
	assert.Equal(t, "Krossovka", rows[0]["name"], "cheapest over the floor first")
}

func TestProductList_CargoFilter(t *testing.T) {
	h := NewProductHandler(&stubProductUsecase{products: catalog()}, slog.Default())

	c, rec := newTestContext(t, http.MethodGet, "/api/products?cargo=paid", "")
	require.NoError(t, h.List(c))
	assert.Len(t, decodeDataArray(t, rec.Body.Bytes()), 1)
}

func TestOrderList_SearchStatusAndGrouping(t *testing.T) {
	stub := &stubOrderUsecase{orders: []entity.Order{
		{ID: "o1", CustomerName: "Ali", Product: "Palto", Status: entity.OrderProcessing},
		{ID: "o2", CustomerName: "Vali", Product: "Futbolka", Status: entity.OrderDelivered},
	}}
	h := NewOrderHandler(stub, slog.Default())

	c, rec := newTestContext(t, http.MethodGet, "/api/orders?q=ali&status=Processing", "")
	require.NoError(t, h.List(c))
	assert.Len(t, decodeDataArray(t, rec.Body.Bytes()), 1)

	c, rec = newTestContext(t, http.MethodGet, "/api/orders?group_by=status", "")
	require.NoError(t, h.List(c))

	var envelope struct {
		Data map[string][]entity.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data["Processing"], 1)
	assert.Len(t, envelope.Data["Delivered"], 1)
	assert.Empty(t, envelope.Data["Cancelled"])
}

type stubCustomerUsecase struct {
	customers []entity.Customer
}

func (s *stubCustomerUsecase) Customers() []entity.Customer { return s.customers }

func (s *stubCustomerUsecase) SaveCustomer(context.Context, *usecase.SaveCustomerInput) (entity.Customer, error) {
	return entity.Customer{}, nil
}

func (s *stubCustomerUsecase) DeleteCustomer(context.Context, string) error { return nil }

func TestCustomerList_SearchAndStatus(t *testing.T) {
	stub := &stubCustomerUsecase{customers: []entity.Customer{
		{ID: "c1", Name: "Aziza", Email: "aziza@star.uz", Status: entity.CustomerActive},
		{ID: "c2", Name: "Bobur", Email: "bobur@star.uz", Status: entity.CustomerInactive},
	}}
	h := NewCustomerHandler(stub, slog.Default())

	c, rec := newTestContext(t, http.MethodGet, "/api/customers?q=aziza", "")
	require.NoError(t, h.List(c))
	assert.Len(t, decodeDataArray(t, rec.Body.Bytes()), 1)

	c, rec = newTestContext(t, http.MethodGet, "/api/customers?status=Inactive", "")
	require.NoError(t, h.List(c))

	rows := decodeDataArray(t, rec.Body.Bytes())
	require.Len(t, rows, 1)
	assert.Equal(t, "Bobur", rows[0]["name"])
}
