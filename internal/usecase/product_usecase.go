package usecase

import (
	"context"

	"staradmin/internal/domain/entity"
)

// ProductUsecase defines the interface for catalog management operations.
type ProductUsecase interface {
	// Products returns the cached catalog, newest first.
	Products() []entity.Product
	// Product returns one cached catalog item.
	Product(id string) (entity.Product, error)
	// SaveProduct creates or updates a product (create when ID is empty),
	// enriching it with best-effort machine translations before the write.
	SaveProduct(ctx context.Context, input *SaveProductInput) (entity.Product, error)
	// DeleteProduct removes one product.
	DeleteProduct(ctx context.Context, id string) error
	// DeleteProducts removes a selection of products in one sweep.
	DeleteProducts(ctx context.Context, ids []string) error
	// AssignCategory moves a selection of products into a category.
	AssignCategory(ctx context.Context, ids []string, category string) error

	// Categories returns the cached category list.
	Categories() []entity.Category
	// CreateCategory adds a new category.
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (entity.Category, error)
}

// SaveProductInput defines the editable fields of a product form.
type SaveProductInput struct {
	ID          string            `json:"id"`
	Name        string            `json:"name" validate:"required"`
	Brand       string            `json:"brand"`
	Price       float64           `json:"price" validate:"gte=0"`
	Category    string            `json:"category"`
	Audience    string            `json:"audience" validate:"omitempty,oneof=male female unisex"`
	Sizes       []string          `json:"sizes"`
	SizeStock   map[string]int    `json:"size_stock"`
	Colors      []string          `json:"colors"`
	ColorImages map[string]string `json:"color_images"`
	ColorHexes  map[string]string `json:"color_hexes"`
	Image       string            `json:"image"`
	Gallery     []string          `json:"gallery"`
	Material    string            `json:"material"`
	Season      string            `json:"season"`
	FabricCare  string            `json:"fabric_care"`
	Fit         string            `json:"fit"`
	Stock       int               `json:"stock" validate:"gte=0"`
	HasCargo    bool              `json:"has_cargo"`
	Description string            `json:"description"`
}

// CreateCategoryInput defines the fields of the new-category form.
type CreateCategoryInput struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}
