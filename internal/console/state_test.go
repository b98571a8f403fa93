package console

import (
	"context"
	"testing"

	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/errors"
	mockUsecase "mallconsole/internal/mocks/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixtures struct {
	catalog  Catalog
	shops    *mockUsecase.MockShopUsecase
	products *mockUsecase.MockProductUsecase
	offers   *mockUsecase.MockOfferUsecase
}

func newCatalogFixtures(t *testing.T) catalogFixtures {
	shops := mockUsecase.NewMockShopUsecase(t)
	products := mockUsecase.NewMockProductUsecase(t)
	offers := mockUsecase.NewMockOfferUsecase(t)

	return catalogFixtures{
		catalog:  Catalog{Shops: shops, Products: products, Offers: offers},
		shops:    shops,
		products: products,
		offers:   offers,
	}
}

func TestState_ReloadAll(t *testing.T) {
	f := newCatalogFixtures(t)
	state := NewState()

	f.shops.EXPECT().List(mock.Anything).Return([]*entity.Shop{
		{ID: "s1", Name: "Alpha", Floor: "1F", Category: "A"},
	}, nil).Once()
	f.products.EXPECT().List(mock.Anything).Return([]*entity.Product{
		{ID: "p1", Name: "Lamp", Category: "B"},
	}, nil).Once()
	f.offers.EXPECT().List(mock.Anything).Return([]*entity.Offer{
		{ID: "o1", Title: "Sale"},
	}, nil).Once()

	require.NoError(t, state.ReloadAll(context.Background(), f.catalog))

	snap := state.Snapshot()
	assert.Len(t, snap.Shops, 1)
	assert.Len(t, snap.Products, 1)
	assert.Len(t, snap.Offers, 1)
	assert.Equal(t, []string{"A", "B"}, snap.Categories)
	assert.Equal(t, []string{"1F"}, snap.Floors)
}

func TestState_ReloadAll_PartialFailureKeepsPrevious(t *testing.T) {
	f := newCatalogFixtures(t)
	state := NewState()
	require.True(t, state.ReplaceProducts(state.Generation(), []*entity.Product{{ID: "old", Name: "Kept"}}))

	f.shops.EXPECT().List(mock.Anything).Return([]*entity.Shop{{ID: "s1", Name: "Alpha"}}, nil).Once()
	f.products.EXPECT().List(mock.Anything).Return(nil, domainerrors.NewRemoteError(errors.New("deadline exceeded"))).Once()
	f.offers.EXPECT().List(mock.Anything).Return([]*entity.Offer{}, nil).Once()

	err := state.ReloadAll(context.Background(), f.catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadline exceeded")

	snap := state.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "old", snap.Products[0].ID)
	assert.Len(t, snap.Shops, 1)
}

func TestState_StaleLoadIsDiscarded(t *testing.T) {
	f := newCatalogFixtures(t)
	state := NewState()

	f.shops.EXPECT().List(mock.Anything).RunAndReturn(func(context.Context) ([]*entity.Shop, error) {
		// the user navigates away while the request is in flight
		state.Advance()

		return []*entity.Shop{{ID: "s1"}}, nil
	}).Once()

	require.NoError(t, state.ReloadShops(context.Background(), f.shops))
	assert.Empty(t, state.Snapshot().Shops)
}

func TestState_ReplaceRejectsOldGeneration(t *testing.T) {
	state := NewState()
	gen := state.Advance()
	state.Advance()

	assert.False(t, state.ReplaceOffers(gen, []*entity.Offer{{ID: "o1"}}))
	assert.True(t, state.ReplaceOffers(state.Generation(), []*entity.Offer{{ID: "o2"}}))
	assert.Equal(t, "o2", state.Snapshot().Offers[0].ID)
}

func TestState_SelectionsSurviveReload(t *testing.T) {
	state := NewState()
	state.ReplaceProducts(state.Generation(), []*entity.Product{{ID: "p1"}, {ID: "p2"}})

	assert.True(t, state.ToggleSelection("p1"))
	assert.True(t, state.ToggleSelection("p2"))

	state.ReplaceProducts(state.Generation(), []*entity.Product{{ID: "p1"}})
	assert.Equal(t, []string{"p1", "p2"}, state.Selected())

	assert.False(t, state.ToggleSelection("p1"))
	assert.Equal(t, []string{"p2"}, state.Selected())
}

func TestState_SelectAllAddsMissingOnly(t *testing.T) {
	state := NewState()
	state.ReplaceProducts(state.Generation(), []*entity.Product{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}})
	state.ToggleSelection("p2")

	state.SelectAll()
	assert.Equal(t, []string{"p2", "p1", "p3"}, state.Selected())

	state.ClearSelection()
	assert.Empty(t, state.Selected())
}

func TestState_ResetClearsEverything(t *testing.T) {
	state := NewState()
	state.SetIdentity(&entity.Identity{UID: "u1", Email: "a@mall.test"}, entity.RoleAdmin)
	state.SetPage(entity.PageShops)
	state.ReplaceShops(state.Generation(), []*entity.Shop{{ID: "s1", Category: "A"}})
	state.ToggleSelection("p1")
	before := state.Generation()

	state.Reset()

	snap := state.Snapshot()
	assert.Greater(t, snap.Generation, before)
	assert.Nil(t, snap.Identity)
	assert.Equal(t, entity.PageDashboard, snap.Page)
	assert.Empty(t, snap.Shops)
	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.Selected)
	assert.False(t, snap.IsAdmin())
}

func TestState_LoadedTracking(t *testing.T) {
	state := NewState()
	assert.False(t, state.Loaded(entity.PageShops))
	assert.True(t, state.Loaded(entity.PageReports))

	assert.False(t, state.ReplaceShops(state.Generation()+1, nil))
	assert.False(t, state.Loaded(entity.PageShops))

	state.ReplaceShops(state.Generation(), []*entity.Shop{{ID: "s1"}})
	state.ReplaceOffers(state.Generation(), nil)
	assert.True(t, state.Loaded(entity.PageShops))
	assert.True(t, state.Loaded(entity.PageOffers))
	assert.False(t, state.Loaded(entity.PageProducts))

	state.Invalidate(entity.PageShops)
	assert.False(t, state.Loaded(entity.PageShops))
	assert.True(t, state.Loaded(entity.PageOffers))

	state.Reset()
	assert.False(t, state.Loaded(entity.PageOffers))
}

func TestState_SnapshotIsACopy(t *testing.T) {
	state := NewState()
	state.ReplaceProducts(state.Generation(), []*entity.Product{{ID: "p1", Features: []string{"wifi"}}})

	snap := state.Snapshot()
	snap.Products[0].Features[0] = "changed"

	again := state.Snapshot()
	if diff := cmp.Diff([]string{"wifi"}, again.Products[0].Features); diff != "" {
		t.Errorf("features mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveCategoriesAndFloors(t *testing.T) {
	shops := []*entity.Shop{
		{Category: "A", Floor: "1F"},
		{Category: "", Floor: "2F"},
		{Category: "A", Floor: "1F"},
	}
	products := []*entity.Product{
		{Category: "B"},
		{Category: "A"},
		{Category: ""},
	}

	if diff := cmp.Diff([]string{"A", "B"}, deriveCategories(shops, products)); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1F", "2F"}, deriveFloors(shops)); diff != "" {
		t.Errorf("floors mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{}, deriveCategories(nil, nil))
}

func TestSnapshot_ShopName(t *testing.T) {
	snap := Snapshot{Shops: []entity.Shop{{ID: "s1", Name: "Renamed"}}}

	assert.Equal(t, "Renamed", snap.ShopName("s1", "Original"))
	assert.Equal(t, "Original", snap.ShopName("gone", "Original"))
}
