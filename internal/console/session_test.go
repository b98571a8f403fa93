package console

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/errors"
	mockUsecase "mallconsole/internal/mocks/usecase"
	"mallconsole/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixtures struct {
	catalogFixtures

	session  *Session
	gateway  *mockUsecase.MockIdentityGateway
	listener usecase.IdentityListener
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestSession(t *testing.T) *sessionFixtures {
	f := &sessionFixtures{
		catalogFixtures: newCatalogFixtures(t),
		gateway:         mockUsecase.NewMockIdentityGateway(t),
	}
	f.gateway.EXPECT().Subscribe(mock.Anything).RunAndReturn(func(listener usecase.IdentityListener) func() {
		f.listener = listener

		return func() {}
	}).Once()

	f.session = NewSession("sess-1", f.gateway, f.catalog, newDiscardLogger())

	return f
}

func (f *sessionFixtures) signInAs(role entity.Role) {
	f.session.State().SetIdentity(&entity.Identity{UID: "u1", Email: "staff@mall.test"}, role)
}

func TestSession_SignInLoadsCatalog(t *testing.T) {
	f := createTestSession(t)
	identity := &entity.Identity{UID: "u1", Email: "admin@mall.test"}

	f.gateway.EXPECT().SignIn(mock.Anything, "admin@mall.test", "secret").
		RunAndReturn(func(ctx context.Context, _, _ string) (*entity.Identity, entity.Role, error) {
			f.listener(ctx, identity, entity.RoleAdmin)

			return identity, entity.RoleAdmin, nil
		}).Once()
	f.shops.EXPECT().List(mock.Anything).Return([]*entity.Shop{{ID: "s1", Category: "Food"}}, nil).Once()
	f.products.EXPECT().List(mock.Anything).Return([]*entity.Product{}, nil).Once()
	f.offers.EXPECT().List(mock.Anything).Return([]*entity.Offer{}, nil).Once()

	require.NoError(t, f.session.SignIn(context.Background(), "admin@mall.test", "secret"))

	snap := f.session.Snapshot()
	assert.True(t, snap.IsAdmin())
	assert.Equal(t, "admin@mall.test", snap.Identity.Email)
	assert.Equal(t, []string{"Food"}, snap.Categories)
	assert.Empty(t, f.session.TakeNotice())
}

func TestSession_SignInLoadFailureBecomesNotice(t *testing.T) {
	f := createTestSession(t)
	identity := &entity.Identity{UID: "u1"}

	f.gateway.EXPECT().SignIn(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _, _ string) (*entity.Identity, entity.Role, error) {
			f.listener(ctx, identity, entity.RoleUser)

			return identity, entity.RoleUser, nil
		}).Once()
	f.shops.EXPECT().List(mock.Anything).Return(nil, domainerrors.NewRemoteError(errors.New("unavailable"))).Once()
	f.products.EXPECT().List(mock.Anything).Return([]*entity.Product{}, nil).Once()
	f.offers.EXPECT().List(mock.Anything).Return([]*entity.Offer{}, nil).Once()

	require.NoError(t, f.session.SignIn(context.Background(), "user@mall.test", "pw"))

	assert.Equal(t, "unavailable", f.session.TakeNotice())
	assert.Empty(t, f.session.TakeNotice())
}

func TestSession_SignOutResetsState(t *testing.T) {
	f := createTestSession(t)
	f.signInAs(entity.RoleAdmin)
	f.session.State().ReplaceShops(f.session.State().Generation(), []*entity.Shop{{ID: "s1"}})

	f.gateway.EXPECT().SignOut(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		f.listener(ctx, nil, "")

		return nil
	}).Once()

	require.NoError(t, f.session.SignOut(context.Background()))

	snap := f.session.Snapshot()
	assert.Nil(t, snap.Identity)
	assert.Empty(t, snap.Shops)
}

func TestSession_MutationsRequireAdmin(t *testing.T) {
	f := createTestSession(t)
	f.signInAs(entity.RoleUser)
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
	}{
		{name: "submit shop", run: func() error { return f.session.SubmitShop(ctx, "", &usecase.ShopForm{}) }},
		{name: "submit product", run: func() error { return f.session.SubmitProduct(ctx, "p1", &usecase.ProductForm{}) }},
		{name: "submit offer", run: func() error { return f.session.SubmitOffer(ctx, "", &usecase.OfferForm{}) }},
		{name: "delete shop", run: func() error { return f.session.DeleteShop(ctx, "s1") }},
		{name: "delete product", run: func() error { return f.session.DeleteProduct(ctx, "p1") }},
		{name: "delete offer", run: func() error { return f.session.DeleteOffer(ctx, "o1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
		})
	}
}

func TestSession_SubmitProductCopiesShopName(t *testing.T) {
	f := createTestSession(t)
	f.signInAs(entity.RoleAdmin)
	f.session.State().ReplaceShops(f.session.State().Generation(), []*entity.Shop{{ID: "s1", Name: "Alpha"}})

	f.products.EXPECT().Create(mock.Anything, mock.MatchedBy(func(form *usecase.ProductForm) bool {
		return form.ShopName == "Alpha"
	})).Return("p9", nil).Once()
	f.products.EXPECT().List(mock.Anything).Return([]*entity.Product{{ID: "p9", ShopID: "s1", ShopName: "Alpha"}}, nil).Once()

	form := &usecase.ProductForm{Name: "Lamp", ShopID: " s1 ", Price: "10"}
	require.NoError(t, f.session.SubmitProduct(context.Background(), "", form))

	assert.Len(t, f.session.Snapshot().Products, 1)
}

func TestSession_SubmitShopUpdateReloads(t *testing.T) {
	f := createTestSession(t)
	f.signInAs(entity.RoleAdmin)
	form := &usecase.ShopForm{Name: "Beta"}

	f.shops.EXPECT().Update(mock.Anything, "s1", form).Return(nil).Once()
	f.shops.EXPECT().List(mock.Anything).Return([]*entity.Shop{{ID: "s1", Name: "Beta", Floor: "2F"}}, nil).Once()

	require.NoError(t, f.session.SubmitShop(context.Background(), "s1", form))
	assert.Equal(t, []string{"2F"}, f.session.Snapshot().Floors)
}

func TestSession_SubmitFailureLeavesState(t *testing.T) {
	f := createTestSession(t)
	f.signInAs(entity.RoleAdmin)
	f.session.State().ReplaceShops(f.session.State().Generation(), []*entity.Shop{{ID: "s1"}})

	f.shops.EXPECT().Create(mock.Anything, mock.Anything).
		Return("", domainerrors.NewValidationError("Name, floor, and category are required")).Once()

	err := f.session.SubmitShop(context.Background(), "", &usecase.ShopForm{})
	require.Error(t, err)
	assert.Equal(t, "Name, floor, and category are required", domainerrors.UserMessage(err))
	assert.Len(t, f.session.Snapshot().Shops, 1)
}

func TestSession_Search(t *testing.T) {
	t.Run("query replaces the list", func(t *testing.T) {
		f := createTestSession(t)
		f.session.State().ReplaceShops(f.session.State().Generation(), []*entity.Shop{{ID: "s1"}, {ID: "s2"}})
		f.shops.EXPECT().Search(mock.Anything, "coffee").Return([]*entity.Shop{{ID: "s2"}}, nil).Once()

		require.NoError(t, f.session.SearchShops(context.Background(), "coffee"))

		shops := f.session.Snapshot().Shops
		require.Len(t, shops, 1)
		assert.Equal(t, "s2", shops[0].ID)
	})

	t.Run("blank query reloads", func(t *testing.T) {
		f := createTestSession(t)
		f.products.EXPECT().List(mock.Anything).Return([]*entity.Product{{ID: "p1"}, {ID: "p2"}}, nil).Once()

		require.NoError(t, f.session.SearchProducts(context.Background(), "   "))
		assert.Len(t, f.session.Snapshot().Products, 2)
	})

	t.Run("search failure is returned", func(t *testing.T) {
		f := createTestSession(t)
		f.offers.EXPECT().Search(mock.Anything, "sale").Return(nil, domainerrors.NewRemoteError(errors.New("boom"))).Once()

		require.Error(t, f.session.SearchOffers(context.Background(), "sale"))
	})
}

func TestSession_CompareSelected(t *testing.T) {
	f := createTestSession(t)
	ctx := context.Background()

	f.session.ToggleSelection("p1")
	_, err := f.session.CompareSelected(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, "Please select at least 2 products to compare", domainerrors.UserMessage(err))

	f.session.ToggleSelection("p2")
	f.products.EXPECT().CompareByIDs(mock.Anything, []string{"p1", "p2"}).
		Return([]*entity.Product{{ID: "p1"}}).Once()

	products, err := f.session.CompareSelected(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestSession_Navigate(t *testing.T) {
	f := createTestSession(t)
	ctx := context.Background()

	err := f.session.Navigate(ctx, entity.Page("nowhere"))
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	f.offers.EXPECT().List(mock.Anything).Return([]*entity.Offer{{ID: "o1"}}, nil).Once()
	require.NoError(t, f.session.Navigate(ctx, entity.PageOffers))

	snap := f.session.Snapshot()
	assert.Equal(t, entity.PageOffers, snap.Page)
	assert.Len(t, snap.Offers, 1)

	require.NoError(t, f.session.Navigate(ctx, entity.PageFloors))
	assert.Equal(t, entity.PageFloors, f.session.Snapshot().Page)
}

func TestSession_NavigateKeepsSearchResults(t *testing.T) {
	f := createTestSession(t)
	ctx := context.Background()

	f.products.EXPECT().Search(mock.Anything, "lamp").
		Return([]*entity.Product{{ID: "p2", Name: "Desk lamp"}}, nil).Once()
	require.NoError(t, f.session.SearchProducts(ctx, "lamp"))

	f.session.ToggleSelection("p2")
	require.NoError(t, f.session.Navigate(ctx, entity.PageProducts))

	snap := f.session.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "p2", snap.Products[0].ID)
	assert.Equal(t, []string{"p2"}, snap.Selected)

	f.products.EXPECT().List(mock.Anything).
		Return([]*entity.Product{{ID: "p1"}, {ID: "p2"}}, nil).Once()
	require.NoError(t, f.session.Refresh(ctx, entity.PageProducts))
	assert.Len(t, f.session.Snapshot().Products, 2)
	assert.Equal(t, []string{"p2"}, f.session.Snapshot().Selected)
}

func TestSession_NavigateRetriesFailedLoad(t *testing.T) {
	f := createTestSession(t)
	ctx := context.Background()

	f.shops.EXPECT().List(mock.Anything).Return(nil, domainerrors.NewRemoteError(errors.New("unavailable"))).Once()
	assert.Error(t, f.session.Navigate(ctx, entity.PageShops))

	f.shops.EXPECT().List(mock.Anything).Return([]*entity.Shop{{ID: "s1"}}, nil).Once()
	require.NoError(t, f.session.Navigate(ctx, entity.PageShops))
	require.NoError(t, f.session.Navigate(ctx, entity.PageShops))
	assert.Len(t, f.session.Snapshot().Shops, 1)
}

func TestSession_EditForms(t *testing.T) {
	f := createTestSession(t)
	gen := f.session.State().Generation()
	f.session.State().ReplaceProducts(gen, []*entity.Product{
		{ID: "p1", Name: "Lamp", Price: 12.5, Features: []string{"led", "dimmable"}, InStock: false},
	})
	f.session.State().ReplaceOffers(gen, []*entity.Offer{
		{ID: "o1", Title: "Sale", Discount: 20, IsActive: true},
	})

	product, err := f.session.EditProduct("p1")
	require.NoError(t, err)
	assert.Equal(t, "12.5", product.Price)
	assert.Equal(t, "led, dimmable", product.Features)
	require.NotNil(t, product.InStock)
	assert.False(t, *product.InStock)

	offer, err := f.session.EditOffer("o1")
	require.NoError(t, err)
	assert.Equal(t, "20", offer.Discount)
	assert.Equal(t, "percentage", offer.DiscountType)
	assert.Empty(t, offer.ValidUntil)

	_, err = f.session.EditShop("missing")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSession_NewFormDefaults(t *testing.T) {
	f := createTestSession(t)

	product := f.session.NewProductForm()
	require.NotNil(t, product.InStock)
	assert.True(t, *product.InStock)

	offer := f.session.NewOfferForm()
	assert.Equal(t, "percentage", offer.DiscountType)
	require.NotNil(t, offer.IsActive)
	assert.True(t, *offer.IsActive)
}
