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

// shopServiceFixtures holds all test dependencies for shop service tests.
type shopServiceFixtures struct {
	catalogFixtures
	service usecase.ShopUsecase
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	deps := newCatalogFixtures(t)
	service := NewShopService(ShopServiceParams{
		Store:     deps.store,
		Publisher: deps.publisher,
		Logger:    newDiscardLogger(),
	})

	return shopServiceFixtures{
		catalogFixtures: deps,
		service:         service,
	}
}

func TestShopService_Create_TrimsAndStampsFields(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()

	var fields map[string]any
	fx.store.EXPECT().
		Add(ctx, repository.CollectionShops, mock.Anything).
		Run(func(_ context.Context, _ string, written map[string]any) { fields = written }).
		Return("shop-1", nil)
	fx.expectPublish()

	id, err := fx.service.Create(ctx, &usecase.ShopForm{
		Name:        "  Blue Bottle ",
		Description: " Coffee ",
		Floor:       " L2",
		Category:    "Cafe  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "shop-1", id)

	assert.Equal(t, "Blue Bottle", fields[entity.ShopFieldName])
	assert.Equal(t, "Coffee", fields[entity.ShopFieldDescription])
	assert.Equal(t, "L2", fields[entity.ShopFieldFloor])
	assert.Equal(t, "Cafe", fields[entity.ShopFieldCategory])
	assert.Equal(t, "", fields[entity.ShopFieldContact])
	assert.Equal(t, repository.ServerTimestamp, fields[entity.FieldCreatedAt])
	assert.Equal(t, repository.ServerTimestamp, fields[entity.FieldUpdatedAt])
}

func TestShopService_Create_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name string
		form usecase.ShopForm
	}{
		{name: "missing name", form: usecase.ShopForm{Floor: "L1", Category: "Cafe"}},
		{name: "blank name", form: usecase.ShopForm{Name: "   ", Floor: "L1", Category: "Cafe"}},
		{name: "missing floor", form: usecase.ShopForm{Name: "Shop", Category: "Cafe"}},
		{name: "missing category", form: usecase.ShopForm{Name: "Shop", Floor: "L1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShopService(t)

			id, err := fx.service.Create(context.Background(), &tt.form)
			require.Error(t, err)
			assert.Empty(t, id)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			assert.Equal(t, "Name, floor, and category are required", domainerrors.UserMessage(err))
			fx.store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestShopService_Update_StripsEmptyFields(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Get(ctx, repository.CollectionShops, "shop-1").
		Return(&repository.Document{ID: "shop-1", Fields: map[string]any{
			entity.ShopFieldName:        "Old",
			entity.ShopFieldDescription: "Kept",
			entity.ShopFieldFloor:       "L1",
			entity.ShopFieldCategory:    "Cafe",
		}}, nil)

	var patch map[string]any
	fx.store.EXPECT().
		Update(ctx, repository.CollectionShops, "shop-1", mock.Anything).
		Run(func(_ context.Context, _, _ string, written map[string]any) { patch = written }).
		Return(nil)
	fx.expectPublish()

	err := fx.service.Update(ctx, "shop-1", &usecase.ShopForm{Name: " X ", Description: ""})
	require.NoError(t, err)

	assert.Equal(t, "X", patch[entity.ShopFieldName])
	assert.NotContains(t, patch, entity.ShopFieldDescription)
	assert.NotContains(t, patch, entity.ShopFieldFloor)
	assert.NotContains(t, patch, entity.FieldCreatedAt)
	assert.Equal(t, repository.ServerTimestamp, patch[entity.FieldUpdatedAt])
}

func TestShopService_Update_MergedRecordMissingRequiredField(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Get(ctx, repository.CollectionShops, "legacy").
		Return(&repository.Document{ID: "legacy", Fields: map[string]any{
			entity.ShopFieldName:     "Legacy",
			entity.ShopFieldCategory: "Cafe",
		}}, nil)

	err := fx.service.Update(ctx, "legacy", &usecase.ShopForm{Description: "new"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestShopService_Update_NotFound(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Get(ctx, repository.CollectionShops, "missing").
		Return(nil, repository.ErrDocumentNotFound)

	err := fx.service.Update(ctx, "missing", &usecase.ShopForm{Name: "X"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	assert.Equal(t, "Shop not found", domainerrors.UserMessage(err))
}

func TestShopService_Get(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Get(ctx, repository.CollectionShops, "shop-1").
		Return(&repository.Document{ID: "shop-1", Fields: map[string]any{
			entity.ShopFieldName:  "Blue Bottle",
			entity.ShopFieldFloor: "L2",
		}}, nil)

	shop, err := fx.service.Get(ctx, "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "shop-1", shop.ID)
	assert.Equal(t, "Blue Bottle", shop.Name)
	assert.Equal(t, "L2", shop.Floor)
}

func TestShopService_List_RemoteErrorPassesMessageThrough(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		List(ctx, repository.CollectionShops).
		Return(nil, errors.New("permission denied"))

	shops, err := fx.service.List(ctx)
	require.Error(t, err)
	assert.Nil(t, shops)

	_, isRemote := errors.AsType[*domainerrors.RemoteError](err)
	assert.True(t, isRemote)
	assert.Equal(t, "permission denied", domainerrors.UserMessage(err))
}

func TestShopService_Search(t *testing.T) {
	docs := []repository.Document{
		doc("a", map[string]any{entity.ShopFieldName: "Apple Store", entity.ShopFieldCategory: "Electronics", entity.ShopFieldFloor: "L1"}),
		doc("b", map[string]any{entity.ShopFieldName: "Zara", entity.ShopFieldCategory: "Fashion", entity.ShopFieldFloor: "L2"}),
		doc("c", map[string]any{entity.ShopFieldName: "Bose", entity.ShopFieldDescription: "Audio electronics", entity.ShopFieldFloor: "L1"}),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "case insensitive category and description", query: "ELECTRONICS", want: []string{"a", "c"}},
		{name: "substring of name", query: "ar", want: []string{"b"}},
		{name: "floor", query: "l2", want: []string{"b"}},
		{name: "empty query returns all", query: "", want: []string{"a", "b", "c"}},
		{name: "whitespace query returns all", query: "   ", want: []string{"a", "b", "c"}},
		{name: "no match", query: "toys", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShopService(t)
			ctx := context.Background()

			fx.store.EXPECT().
				List(ctx, repository.CollectionShops).
				Return(docs, nil).
				Once()

			shops, err := fx.service.Search(ctx, tt.query)
			require.NoError(t, err)

			ids := make([]string, 0, len(shops))
			for _, s := range shops {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestShopService_ByFloor_FiltersAtStore(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Query(ctx, repository.CollectionShops, repository.Eq(entity.ShopFieldFloor, "L3")).
		Return([]repository.Document{doc("s", map[string]any{entity.ShopFieldFloor: "L3"})}, nil)

	shops, err := fx.service.ByFloor(ctx, "L3")
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "L3", shops[0].Floor)
}

func TestShopService_Delete_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Delete(ctx, repository.CollectionShops, "shop-1").
		Return(nil)
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(errors.New("broker down"))

	require.NoError(t, fx.service.Delete(ctx, "shop-1"))
}
