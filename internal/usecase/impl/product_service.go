package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"staradmin/internal/domain/entity"
	domainerrors "staradmin/internal/domain/errors"
	"staradmin/internal/domain/repository"
	"staradmin/internal/domain/service"
	"staradmin/internal/store"
	"staradmin/internal/usecase"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	translator   service.Translator
	state        *store.State
	notifier     *store.Notifier
	activity     *store.ActivityLog
	logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	translator service.Translator,
	state *store.State,
	notifier *store.Notifier,
	activity *store.ActivityLog,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		translator:   translator,
		state:        state,
		notifier:     notifier,
		activity:     activity,
		logger:       logger,
	}
}

func (srv *productService) Products() []entity.Product {
	return srv.state.Products.Items()
}

func (srv *productService) Product(id string) (entity.Product, error) {
	product, ok := srv.state.Products.Get(id)
	if !ok {
		return entity.Product{}, domainerrors.ErrProductNotFound
	}

	return product, nil
}

// SaveProduct creates or updates a product, enriching it with derived
// translations before the write.
func (srv *productService) SaveProduct(ctx context.Context, input *usecase.SaveProductInput) (entity.Product, error) {
	product := srv.fromInput(ctx, input)

	var (
		saved entity.Product
		err   error
	)
	if product.ID == "" {
		saved, err = srv.productRepo.CreateProduct(ctx, product)
	} else {
		saved, err = srv.productRepo.UpdateProduct(ctx, product)
	}
	if err != nil {
		srv.logger.ErrorContext(ctx, "product save failed", slog.String("name", product.Name), slog.Any("error", err))
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Mahsulot saqlanmadi: %s", rootMessage(err)))
		srv.activity.Record("Mahsulot saqlash", srv.actor(), product.Name, entity.ActivityFailed, "box")

		return entity.Product{}, err
	}

	srv.state.Products.Upsert(saved)
	srv.notifier.Push(entity.NotifySuccess, "", fmt.Sprintf("%s saqlandi.", saved.Name))
	srv.activity.Record("Mahsulot saqlandi", srv.actor(), saved.Name, entity.ActivityOK, "box")

	return saved, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, id string) error {
	product, ok := srv.state.Products.Get(id)
	if !ok {
		return domainerrors.ErrProductNotFound
	}

	if err := srv.productRepo.DeleteProduct(ctx, id); err != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Mahsulot o'chirilmadi: %s", rootMessage(err)))

		return err
	}

	srv.state.Products.Remove(id)
	srv.notifier.Push(entity.NotifySuccess, "", fmt.Sprintf("%s o'chirildi.", product.Name))
	srv.activity.Record("Mahsulot o'chirildi", srv.actor(), product.Name, entity.ActivityOK, "box")

	return nil
}

// DeleteProducts removes a selection one by one; the cache drops only
// what the backend confirmed gone.
func (srv *productService) DeleteProducts(ctx context.Context, ids []string) error {
	var deleted []string
	var firstErr error

	for _, id := range ids {
		if err := srv.productRepo.DeleteProduct(ctx, id); err != nil {
			if firstErr == nil {
				firstErr = err
			}

			continue
		}
		deleted = append(deleted, id)
	}

	srv.state.Products.RemoveMany(deleted)

	if firstErr != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Ba'zi mahsulotlar o'chirilmadi: %s", rootMessage(firstErr)))

		return firstErr
	}

	srv.notifier.Push(entity.NotifySuccess, "", fmt.Sprintf("%d ta mahsulot o'chirildi.", len(deleted)))
	srv.activity.Record("Mahsulotlar o'chirildi", srv.actor(), fmt.Sprintf("%d ta", len(deleted)), entity.ActivityOK, "box")

	return nil
}

// AssignCategory moves a selection of products into a category.
func (srv *productService) AssignCategory(ctx context.Context, ids []string, category string) error {
	if strings.TrimSpace(category) == "" {
		return domainerrors.ErrInvalidInput
	}

	categoryI18n := translations(ctx, srv.translator, category)

	var firstErr error
	moved := 0
	for _, id := range ids {
		product, ok := srv.state.Products.Get(id)
		if !ok {
			continue
		}
		product.Category = category
		product.CategoryI18n = categoryI18n

		updated, err := srv.productRepo.UpdateProduct(ctx, product)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}

			continue
		}
		srv.state.Products.Upsert(updated)
		moved++
	}

	if firstErr != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Kategoriya o'zgartirilmadi: %s", rootMessage(firstErr)))

		return firstErr
	}

	srv.notifier.Push(entity.NotifySuccess, "", fmt.Sprintf("%d ta mahsulot %s kategoriyasiga ko'chirildi.", moved, category))
	srv.activity.Record("Kategoriya o'zgartirildi", srv.actor(), category, entity.ActivityOK, "tag")

	return nil
}

func (srv *productService) Categories() []entity.Category {
	return srv.state.Categories.Items()
}

func (srv *productService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (entity.Category, error) {
	created, err := srv.categoryRepo.CreateCategory(ctx, entity.Category{
		Name:  input.Name,
		Image: input.Image,
	})
	if err != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Kategoriya qo'shilmadi: %s", rootMessage(err)))

		return entity.Category{}, err
	}

	srv.state.Categories.Upsert(created)
	srv.notifier.Push(entity.NotifySuccess, "", fmt.Sprintf("%s kategoriyasi qo'shildi.", created.Name))
	srv.activity.Record("Kategoriya qo'shildi", srv.actor(), created.Name, entity.ActivityOK, "tag")

	return created, nil
}

// fromInput builds the entity to persist, carrying over wire-only fields
// from the cached copy on update and refreshing derived translations.
func (srv *productService) fromInput(ctx context.Context, input *usecase.SaveProductInput) entity.Product {
	audience := entity.Audience(input.Audience)
	switch audience {
	case entity.AudienceMale, entity.AudienceFemale, entity.AudienceUnisex:
	default:
		audience = entity.AudienceUnisex
	}

	return entity.Product{
		ID:              input.ID,
		Name:            input.Name,
		NameI18n:        translations(ctx, srv.translator, input.Name),
		Brand:           input.Brand,
		Price:           input.Price,
		Category:        input.Category,
		CategoryI18n:    translations(ctx, srv.translator, input.Category),
		Audience:        audience,
		Sizes:           input.Sizes,
		SizeStock:       input.SizeStock,
		Colors:          input.Colors,
		ColorImages:     input.ColorImages,
		ColorHexes:      input.ColorHexes,
		Image:           input.Image,
		Gallery:         input.Gallery,
		Material:        input.Material,
		Season:          input.Season,
		FabricCare:      input.FabricCare,
		Fit:             input.Fit,
		Stock:           input.Stock,
		HasCargo:        input.HasCargo,
		Description:     input.Description,
		DescriptionI18n: translations(ctx, srv.translator, input.Description),
	}
}

func (srv *productService) actor() string {
	return actorName(srv.state)
}
