package impl

import (
	"context"
	"testing"

	"mallconsole/internal/domain/entity"
	"mallconsole/internal/infra/persistence/memory"
	"mallconsole/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_RoundTripThroughMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	t.Cleanup(func() { _ = store.Close() })

	shops := NewShopService(ShopServiceParams{Store: store, Logger: newDiscardLogger()})
	products := NewProductService(ProductServiceParams{Store: store, Logger: newDiscardLogger()})
	offers := NewOfferService(OfferServiceParams{Store: store, Logger: newDiscardLogger()})

	shopID, err := shops.Create(ctx, &usecase.ShopForm{Name: " Alpha Coffee ", Floor: "1F", Category: "Food"})
	require.NoError(t, err)

	shop, err := shops.Get(ctx, shopID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha Coffee", shop.Name)
	assert.False(t, shop.CreatedAt.IsZero())

	productID, err := products.Create(ctx, &usecase.ProductForm{
		Name: "Latte", ShopID: shopID, Price: "4.50", Features: "hot, oat,",
	})
	require.NoError(t, err)

	product, err := products.Get(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, []string{"hot", "oat"}, product.Features)
	assert.InDelta(t, 4.5, product.Price, 0.0001)
	assert.True(t, product.InStock)

	require.NoError(t, products.Update(ctx, productID, &usecase.ProductForm{Price: "5"}))
	product, err = products.Get(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, "Latte", product.Name)
	assert.InDelta(t, 5.0, product.Price, 0.0001)

	inactive := false
	_, err = offers.Create(ctx, &usecase.OfferForm{
		Title: "Paused", ShopID: shopID, Discount: "5", IsActive: &inactive,
	})
	require.NoError(t, err)
	openID, err := offers.Create(ctx, &usecase.OfferForm{
		Title: "Spring", ShopID: shopID, Discount: "10", ProductIDs: []string{productID}, ValidUntil: "2099-01-01",
	})
	require.NoError(t, err)

	active, err := offers.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, openID, active[0].ID)
	assert.Equal(t, []string{productID}, active[0].ProductIDs)
	assert.Equal(t, entity.DiscountPercentage, active[0].DiscountType)
	require.NotNil(t, active[0].ValidUntil)
	assert.NotNil(t, active[0].ValidFrom)

	require.NoError(t, shops.Delete(ctx, shopID))
	_, err = shops.Get(ctx, shopID)
	assert.Error(t, err)
}

func TestOfferService_BlankExpiryClearsStoredDate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	t.Cleanup(func() { _ = store.Close() })

	offers := NewOfferService(OfferServiceParams{Store: store, Logger: newDiscardLogger()})

	id, err := offers.Create(ctx, &usecase.OfferForm{
		Title: "Winter", ShopID: "s1", Discount: "15", ValidUntil: "2000-01-01",
	})
	require.NoError(t, err)

	active, err := offers.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, offers.Update(ctx, id, &usecase.OfferForm{ValidUntil: ""}))

	offer, err := offers.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, offer.ValidUntil)
	assert.Equal(t, "Winter", offer.Title)

	active, err = offers.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, id, active[0].ID)

	require.NoError(t, offers.Update(ctx, id, &usecase.OfferForm{ValidUntil: "2000-02-01"}))
	active, err = offers.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}
