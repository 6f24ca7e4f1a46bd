package starstore

import (
	"context"
	"net/http"

	"staradmin/internal/domain/entity"
	"staradmin/internal/domain/repository"

	"github.com/pkg/errors"
)

type productRepository struct {
	client *Client
}

// NewProductRepository implements repository.ProductRepository over the
// backend's /products resource.
func NewProductRepository(client *Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]entity.Product, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/products", nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[productDTO](raw, "products", "data")
	if err != nil {
		return nil, errors.Wrap(err, "decode products")
	}

	products := make([]entity.Product, 0, len(dtos))
	for _, dto := range dtos {
		product := dto.toEntity()
		r.client.resolveProductImages(&product)
		products = append(products, product)
	}

	return products, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product entity.Product) (entity.Product, error) {
	raw, err := r.client.do(ctx, http.MethodPost, "/products", productToDTO(product))
	if err != nil {
		return entity.Product{}, err
	}

	dto, err := decodeRecord[productDTO](raw, "product", "data")
	if err != nil {
		return entity.Product{}, errors.Wrap(err, "decode created product")
	}
	created := dto.toEntity()
	if created.ID == "" {
		created = product
	}
	r.client.resolveProductImages(&created)

	return created, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product entity.Product) (entity.Product, error) {
	raw, err := r.client.do(ctx, http.MethodPut, pathID("/products", product.ID), productToDTO(product))
	if err != nil {
		return entity.Product{}, err
	}

	dto, err := decodeRecord[productDTO](raw, "product", "data")
	if err != nil {
		return entity.Product{}, errors.Wrap(err, "decode updated product")
	}
	updated := dto.toEntity()
	if updated.ID == "" {
		updated = product
	}
	r.client.resolveProductImages(&updated)

	return updated, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, pathID("/products", id), nil)

	return err
}
