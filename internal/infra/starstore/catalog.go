package starstore

import (
	"context"
	"net/http"

	"staradmin/internal/domain/entity"
	"staradmin/internal/domain/repository"

	"github.com/pkg/errors"
)

type categoryRepository struct {
	client *Client
}

// NewCategoryRepository implements repository.CategoryRepository over
// the backend's /categories resource.
func NewCategoryRepository(client *Client) repository.CategoryRepository {
	return &categoryRepository{client: client}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/categories", nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[categoryDTO](raw, "categories", "data")
	if err != nil {
		return nil, errors.Wrap(err, "decode categories")
	}

	categories := make([]entity.Category, 0, len(dtos))
	for _, dto := range dtos {
		category := dto.toEntity()
		category.Image = r.client.imageURL(category.Image)
		categories = append(categories, category)
	}

	return categories, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category entity.Category) (entity.Category, error) {
	body := categoryDTO{
		ID:    category.ID,
		Name:  category.Name,
		Count: flexInt(category.Count),
		Image: category.Image,
	}

	raw, err := r.client.do(ctx, http.MethodPost, "/categories", body)
	if err != nil {
		return entity.Category{}, err
	}

	dto, err := decodeRecord[categoryDTO](raw, "category", "data")
	if err != nil {
		return entity.Category{}, errors.Wrap(err, "decode created category")
	}
	created := dto.toEntity()
	if created.ID == "" {
		created = category
	}

	return created, nil
}
