package impl

import (
	"context"
	"testing"

	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/domain/repository"
	"mallconsole/internal/errors"
	"mallconsole/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	catalogFixtures
	service usecase.ProductUsecase
}

func createTestProductService(t *testing.T) productServiceFixtures {
	deps := newCatalogFixtures(t)
	service := NewProductService(ProductServiceParams{
		Store:     deps.store,
		Publisher: deps.publisher,
		Logger:    newDiscardLogger(),
	})

	return productServiceFixtures{
		catalogFixtures: deps,
		service:         service,
	}
}

func TestProductService_Create_CoercesPrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  float64
	}{
		{name: "decimal", price: "19.99", want: 19.99},
		{name: "padded", price: " 5 ", want: 5},
		{name: "unparsable", price: "abc", want: 0},
		{name: "not a number literal", price: "NaN", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)
			ctx := context.Background()

			var fields map[string]any
			fx.store.EXPECT().
				Add(ctx, repository.CollectionProducts, mock.Anything).
				Run(func(_ context.Context, _ string, written map[string]any) { fields = written }).
				Return("p1", nil)
			fx.expectPublish()

			_, err := fx.service.Create(ctx, &usecase.ProductForm{Name: "Mug", ShopID: "s1", Price: tt.price})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, fields[entity.ProductFieldPrice], 1e-9)
		})
	}
}

func TestProductService_Create_Defaults(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	var fields map[string]any
	fx.store.EXPECT().
		Add(ctx, repository.CollectionProducts, mock.Anything).
		Run(func(_ context.Context, _ string, written map[string]any) { fields = written }).
		Return("p1", nil)
	fx.expectPublish()

	_, err := fx.service.Create(ctx, &usecase.ProductForm{
		Name:     "Headphones",
		ShopID:   "s1",
		ShopName: " Bose ",
		Price:    "299",
		Features: " noise cancelling, ,bluetooth ",
	})
	require.NoError(t, err)
	assert.Equal(t, true, fields[entity.ProductFieldInStock])
	assert.Equal(t, []string{"noise cancelling", "bluetooth"}, fields[entity.ProductFieldFeatures])
	assert.Equal(t, "Bose", fields[entity.ProductFieldShopName])
}

func TestProductService_Create_MissingRequiredField(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.Create(context.Background(), &usecase.ProductForm{Name: "Mug", ShopID: "s1", Price: "  "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, "Name, shop ID, and price are required", domainerrors.UserMessage(err))
	fx.store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_Update_BlankPriceAndFeaturesAreStripped(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	outOfStock := false

	fx.store.EXPECT().
		Get(ctx, repository.CollectionProducts, "p1").
		Return(&repository.Document{ID: "p1", Fields: map[string]any{
			entity.ProductFieldName:   "Mug",
			entity.ProductFieldShopID: "s1",
			entity.ProductFieldPrice:  12.5,
		}}, nil)

	var patch map[string]any
	fx.store.EXPECT().
		Update(ctx, repository.CollectionProducts, "p1", mock.Anything).
		Run(func(_ context.Context, _, _ string, written map[string]any) { patch = written }).
		Return(nil)
	fx.expectPublish()

	err := fx.service.Update(ctx, "p1", &usecase.ProductForm{Brand: "Acme", Price: "", InStock: &outOfStock})
	require.NoError(t, err)
	assert.Equal(t, "Acme", patch[entity.ProductFieldBrand])
	assert.Equal(t, false, patch[entity.ProductFieldInStock])
	assert.NotContains(t, patch, entity.ProductFieldPrice)
	assert.NotContains(t, patch, entity.ProductFieldFeatures)
	assert.NotContains(t, patch, entity.ProductFieldName)
}

func TestProductService_CompareByIDs_SkipsUnresolvable(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Get(ctx, repository.CollectionProducts, "p1").
		Return(&repository.Document{ID: "p1", Fields: map[string]any{entity.ProductFieldName: "One"}}, nil)
	fx.store.EXPECT().
		Get(ctx, repository.CollectionProducts, "p2").
		Return(&repository.Document{ID: "p2", Fields: map[string]any{entity.ProductFieldName: "Two"}}, nil)
	fx.store.EXPECT().
		Get(ctx, repository.CollectionProducts, "gone").
		Return(nil, repository.ErrDocumentNotFound)

	products := fx.service.CompareByIDs(ctx, []string{"p1", "gone", "p2"})
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)
}

func TestProductService_FilterByPriceRange(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		List(ctx, repository.CollectionProducts).
		Return([]repository.Document{
			doc("free", map[string]any{entity.ProductFieldName: "No price"}),
			doc("low", map[string]any{entity.ProductFieldPrice: 10.0}),
			doc("mid", map[string]any{entity.ProductFieldPrice: 50.0}),
			doc("high", map[string]any{entity.ProductFieldPrice: 100.01}),
		}, nil)

	products, err := fx.service.FilterByPriceRange(ctx, 0, 50)
	require.NoError(t, err)

	ids := []string{}
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"free", "low", "mid"}, ids)
}

func TestProductService_Decode_DefaultsInStock(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		List(ctx, repository.CollectionProducts).
		Return([]repository.Document{
			doc("legacy", map[string]any{entity.ProductFieldName: "Old", entity.ProductFieldFeatures: []any{"a", "b"}}),
			doc("sold-out", map[string]any{entity.ProductFieldName: "Gone", entity.ProductFieldInStock: false}),
		}, nil)

	products, err := fx.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, products[0].InStock)
	assert.Equal(t, []string{"a", "b"}, products[0].Features)
	assert.False(t, products[1].InStock)
}
