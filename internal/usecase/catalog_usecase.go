package usecase

import (
	"context"

	"mallconsole/internal/domain/entity"
)

// ShopUsecase defines the shop directory operations
type ShopUsecase interface {
	// List returns every shop in storage order
	List(ctx context.Context) ([]*entity.Shop, error)

	// Get returns one shop or a not-found error
	Get(ctx context.Context, id string) (*entity.Shop, error)

	// Create validates and stores a new shop, returning its id
	Create(ctx context.Context, form *ShopForm) (string, error)

	// Update writes the non-empty fields of form over an existing shop
	Update(ctx context.Context, id string, form *ShopForm) error

	// Delete removes a shop
	Delete(ctx context.Context, id string) error

	// Search matches query against name, description, category and floor
	Search(ctx context.Context, query string) ([]*entity.Shop, error)

	// ByFloor returns the shops on a floor
	ByFloor(ctx context.Context, floor string) ([]*entity.Shop, error)

	// ByCategory returns the shops of a category
	ByCategory(ctx context.Context, category string) ([]*entity.Shop, error)
}

// ProductUsecase defines the product catalog operations
type ProductUsecase interface {
	List(ctx context.Context) ([]*entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, form *ProductForm) (string, error)
	Update(ctx context.Context, id string, form *ProductForm) error
	Delete(ctx context.Context, id string) error

	// Search matches query against name, description, brand, category and shop name
	Search(ctx context.Context, query string) ([]*entity.Product, error)

	ByShop(ctx context.Context, shopID string) ([]*entity.Product, error)
	ByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// CompareByIDs fetches each id in turn and silently skips the ones that cannot be resolved
	CompareByIDs(ctx context.Context, ids []string) []*entity.Product

	// FilterByPriceRange keeps products priced within [minPrice, maxPrice]
	FilterByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Product, error)
}

// OfferUsecase defines the offer operations
type OfferUsecase interface {
	List(ctx context.Context) ([]*entity.Offer, error)
	Get(ctx context.Context, id string) (*entity.Offer, error)
	Create(ctx context.Context, form *OfferForm) (string, error)
	Update(ctx context.Context, id string, form *OfferForm) error
	Delete(ctx context.Context, id string) error

	// Search matches query against title, description and shop name
	Search(ctx context.Context, query string) ([]*entity.Offer, error)

	// ByShop returns the active offers of a shop
	ByShop(ctx context.Context, shopID string) ([]*entity.Offer, error)

	// ListActive returns the offers that are flagged active and not expired
	ListActive(ctx context.Context) ([]*entity.Offer, error)
}
