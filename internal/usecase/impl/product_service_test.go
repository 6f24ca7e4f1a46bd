package impl

import (
	"context"
	"testing"

	"staradmin/internal/domain/entity"
	"staradmin/internal/store"
	"staradmin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductService(repo *fakeProductRepo, translator *fakeTranslator, state *store.State) usecase.ProductUsecase {
	return NewProductService(repo, &fakeCategoryRepo{}, translator, state, testNotifier(), store.NewActivityLog(), testLogger())
}

func TestSaveProduct_CreatePrependsAndTranslates(t *testing.T) {
	state := store.NewState()
	state.Products.ReplaceAll([]entity.Product{{ID: "old"}})
	srv := newProductService(&fakeProductRepo{}, &fakeTranslator{}, state)

	saved, err := srv.SaveProduct(context.Background(), &usecase.SaveProductInput{
		Name:     "Palto",
		Category: "Kiyim",
		Price:    120,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "Palto [en]", saved.NameI18n["en"])
	assert.Equal(t, "Palto [ru]", saved.NameI18n["ru"])
	assert.Equal(t, "Kiyim [en]", saved.CategoryI18n["en"])
	assert.Equal(t, entity.AudienceUnisex, saved.Audience, "missing audience defaults")

	items := state.Products.Items()
	require.Len(t, items, 2)
	assert.Equal(t, saved.ID, items[0].ID, "new product leads the list")
}

func TestSaveProduct_TranslationFailureFallsBackToSource(t *testing.T) {
	state := store.NewState()
	srv := newProductService(&fakeProductRepo{}, &fakeTranslator{failWith: errors.New("down")}, state)

	saved, err := srv.SaveProduct(context.Background(), &usecase.SaveProductInput{Name: "Palto"})
	require.NoError(t, err, "translation is best-effort")
	assert.Equal(t, "Palto", saved.NameI18n["en"])
	assert.Equal(t, "Palto", saved.NameI18n["ru"])
}

func TestSaveProduct_UpdateKeepsPosition(t *testing.T) {
	state := store.NewState()
	state.Products.ReplaceAll([]entity.Product{{ID: "a"}, {ID: "b", Name: "Eski"}})
	srv := newProductService(&fakeProductRepo{}, &fakeTranslator{}, state)

	_, err := srv.SaveProduct(context.Background(), &usecase.SaveProductInput{ID: "b", Name: "Yangi"})
	require.NoError(t, err)

	items := state.Products.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[1].ID)
	assert.Equal(t, "Yangi", items[1].Name)
}

func TestSaveProduct_BackendFailureKeepsCache(t *testing.T) {
	state := store.NewState()
	srv := newProductService(&fakeProductRepo{failWith: errors.New("Server xatosi")}, &fakeTranslator{}, state)

	_, err := srv.SaveProduct(context.Background(), &usecase.SaveProductInput{Name: "Palto"})
	require.Error(t, err)
	assert.Zero(t, state.Products.Len(), "no optimistic write on failure")
}

func TestDeleteProducts_PartialFailure(t *testing.T) {
	state := store.NewState()
	state.Products.ReplaceAll([]entity.Product{{ID: "a"}, {ID: "b"}})
	repo := &fakeProductRepo{}
	srv := newProductService(repo, &fakeTranslator{}, state)

	require.NoError(t, srv.DeleteProducts(context.Background(), []string{"a", "b"}))
	assert.Zero(t, state.Products.Len())
	assert.Equal(t, []string{"a", "b"}, repo.deleted)
}

func TestAssignCategory_MovesSelection(t *testing.T) {
	state := store.NewState()
	state.Products.ReplaceAll([]entity.Product{
		{ID: "a", Category: "Eski"},
		{ID: "b", Category: "Eski"},
		{ID: "c", Category: "Boshqa"},
	})
	srv := newProductService(&fakeProductRepo{}, &fakeTranslator{}, state)

	require.NoError(t, srv.AssignCategory(context.Background(), []string{"a", "b"}, "Yangi"))

	a, _ := state.Products.Get("a")
	b, _ := state.Products.Get("b")
	c, _ := state.Products.Get("c")
	assert.Equal(t, "Yangi", a.Category)
	assert.Equal(t, "Yangi [ru]", b.CategoryI18n["ru"])
	assert.Equal(t, "Boshqa", c.Category, "unselected products untouched")
}
