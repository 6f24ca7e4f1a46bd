package handler

import (
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"staradmin/internal/delivery/http/response"
	"staradmin/internal/domain/entity"
	"staradmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// lowStockThreshold splits the stock filter bands: 0 is out of stock,
// below the threshold is low, at or above it is in stock.
const lowStockThreshold = 20

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

// List returns the cached catalog, newest first, narrowed by the view's
// search, filter and sort query parameters.
func (h *ProductHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, filterProducts(h.uc.Products(), c), "")
}

func filterProducts(products []entity.Product, c echo.Context) []entity.Product {
	search := strings.ToLower(c.QueryParam("q"))
	category := c.QueryParam("category")
	brand := c.QueryParam("brand")
	minPrice, hasMin := parsePrice(c.QueryParam("min_price"))
	maxPrice, hasMax := parsePrice(c.QueryParam("max_price"))
	stock := c.QueryParam("stock")
	cargo := c.QueryParam("cargo")

	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if brand != "" && p.Brand != brand {
			continue
		}
		if hasMin && p.Price < minPrice {
			continue
		}
		if hasMax && p.Price > maxPrice {
			continue
		}
		switch stock {
		case "low":
			if p.Stock == 0 || p.Stock >= lowStockThreshold {
				continue
			}
		case "out":
			if p.Stock != 0 {
				continue
			}
		case "in_stock":
			if p.Stock < lowStockThreshold {
				continue
			}
		}
		switch cargo {
		case "paid":
			if !p.HasCargo {
				continue
			}
		case "free":
			if p.HasCargo {
				continue
			}
		}
		filtered = append(filtered, p)
	}

	switch c.QueryParam("sort") {
	case "price_asc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case "price_desc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case "name_asc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	case "stock_asc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Stock < filtered[j].Stock })
	}

	return filtered
}

func parsePrice(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// Get returns one product by id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.uc.Product(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Save creates or updates a product depending on the presence of an id.
func (h *ProductHandler) Save(c echo.Context) error {
	var input *usecase.SaveProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Mahsulot nomini kiriting")
	}

	product, err := h.uc.SaveProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if input.ID == "" {
		status = http.StatusCreated
	}

	return response.Success(c, status, product, "Product saved")
}

// Delete removes one product.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

type bulkDeleteInput struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// BulkDelete removes a selection of products in one sweep.
func (h *ProductHandler) BulkDelete(c echo.Context) error {
	var input *bulkDeleteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Mahsulotlarni tanlang")
	}

	if err := h.uc.DeleteProducts(c.Request().Context(), input.IDs); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Products deleted")
}

type assignCategoryInput struct {
	IDs      []string `json:"ids" validate:"required,min=1"`
	Category string   `json:"category" validate:"required"`
}

// AssignCategory moves a selection of products into a category.
func (h *ProductHandler) AssignCategory(c echo.Context) error {
	var input *assignCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Kategoriyani tanlang")
	}

	if err := h.uc.AssignCategory(c.Request().Context(), input.IDs, input.Category); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category assigned")
}

// Categories returns the cached category list.
func (h *ProductHandler) Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Categories(), "")
}

// CreateCategory adds a new category.
func (h *ProductHandler) CreateCategory(c echo.Context) error {
	var input *usecase.CreateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Kategoriya nomini kiriting")
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}
