package impl

import (
	"context"
	"log/slog"
	"strings"

	"mallconsole/internal/domain/entity"
	"mallconsole/internal/domain/repository"
	"mallconsole/internal/domain/service"
	"mallconsole/internal/usecase"

	"go.uber.org/fx"
)

const productRequiredMessage = "Name, shop ID, and price are required"

//nolint:gochecknoglobals
var productRequiredFields = []string{entity.ProductFieldName, entity.ProductFieldShopID, entity.ProductFieldPrice}

type productService struct {
	products *documentCollection[entity.Product]
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	Store     repository.DocumentStore
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		products: &documentCollection[entity.Product]{
			name:      repository.CollectionProducts,
			resource:  "Product",
			store:     params.Store,
			publisher: params.Publisher,
			logger:    params.Logger,
			preset:    func(p *entity.Product) { p.InStock = true },
			setID:     func(p *entity.Product, id string) { p.ID = id },
		},
	}
}

func (s *productService) List(ctx context.Context) ([]*entity.Product, error) {
	return s.products.list(ctx)
}

func (s *productService) Get(ctx context.Context, id string) (*entity.Product, error) {
	return s.products.get(ctx, id)
}

// Create validates and stores a new product. An unparsable price is stored as 0.
func (s *productService) Create(ctx context.Context, form *usecase.ProductForm) (string, error) {
	trimmed := trimProductForm(form)
	if err := validateForm(&trimmed, productRequiredMessage); err != nil {
		return "", err
	}

	fields := map[string]any{
		entity.ProductFieldName:        trimmed.Name,
		entity.ProductFieldDescription: trimmed.Description,
		entity.ProductFieldShopID:      trimmed.ShopID,
		entity.ProductFieldShopName:    trimmed.ShopName,
		entity.ProductFieldCategory:    trimmed.Category,
		entity.ProductFieldPrice:       coerceNumber(trimmed.Price),
		entity.ProductFieldBrand:       trimmed.Brand,
		entity.ProductFieldFeatures:    splitList(trimmed.Features),
		entity.ProductFieldImageURL:    trimmed.ImageURL,
		entity.ProductFieldInStock:     boolOrDefault(trimmed.InStock),
		entity.FieldCreatedAt:          repository.ServerTimestamp,
		entity.FieldUpdatedAt:          repository.ServerTimestamp,
	}

	return s.products.add(ctx, fields)
}

// Update writes the supplied fields of form over an existing product.
// Blank strings, a blank price and an empty feature list leave the stored values untouched.
func (s *productService) Update(ctx context.Context, id string, form *usecase.ProductForm) error {
	trimmed := trimProductForm(form)

	patch := map[string]any{
		entity.ProductFieldInStock: boolOrDefault(trimmed.InStock),
		entity.FieldUpdatedAt:      repository.ServerTimestamp,
	}
	putString(patch, entity.ProductFieldName, trimmed.Name)
	putString(patch, entity.ProductFieldDescription, trimmed.Description)
	putString(patch, entity.ProductFieldShopID, trimmed.ShopID)
	putString(patch, entity.ProductFieldShopName, trimmed.ShopName)
	putString(patch, entity.ProductFieldCategory, trimmed.Category)
	putString(patch, entity.ProductFieldBrand, trimmed.Brand)
	putString(patch, entity.ProductFieldImageURL, trimmed.ImageURL)
	if trimmed.Price != "" {
		patch[entity.ProductFieldPrice] = coerceNumber(trimmed.Price)
	}
	if features := splitList(trimmed.Features); len(features) > 0 {
		patch[entity.ProductFieldFeatures] = features
	}

	return s.products.update(ctx, id, patch, productRequiredFields, productRequiredMessage)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.products.delete(ctx, id)
}

// Search matches query against name, description, brand, category and shop name
func (s *productService) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	return s.products.search(ctx, query, func(p *entity.Product) []string {
		return []string{p.Name, p.Description, p.Brand, p.Category, p.ShopName}
	})
}

func (s *productService) ByShop(ctx context.Context, shopID string) ([]*entity.Product, error) {
	return s.products.query(ctx, repository.Eq(entity.ProductFieldShopID, shopID))
}

func (s *productService) ByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	return s.products.query(ctx, repository.Eq(entity.ProductFieldCategory, category))
}

// CompareByIDs fetches each id in turn and silently skips the ones that cannot be resolved
func (s *productService) CompareByIDs(ctx context.Context, ids []string) []*entity.Product {
	products := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		product, err := s.products.get(ctx, id)
		if err != nil {
			s.products.log(ctx).Debug("Skipping product in comparison", slog.String("id", id), slog.Any("error", err))

			continue
		}
		products = append(products, product)
	}
	s.products.log(ctx).Info("Comparing products", slog.Int("count", len(products)))

	return products
}

// FilterByPriceRange keeps products priced within [minPrice, maxPrice]. A missing price counts as 0.
func (s *productService) FilterByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Product, error) {
	products, err := s.products.list(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p.Price >= minPrice && p.Price <= maxPrice {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

func trimProductForm(form *usecase.ProductForm) usecase.ProductForm {
	return usecase.ProductForm{
		Name:        strings.TrimSpace(form.Name),
		Description: strings.TrimSpace(form.Description),
		ShopID:      strings.TrimSpace(form.ShopID),
		ShopName:    strings.TrimSpace(form.ShopName),
		Category:    strings.TrimSpace(form.Category),
		Price:       strings.TrimSpace(form.Price),
		Brand:       strings.TrimSpace(form.Brand),
		Features:    form.Features,
		ImageURL:    strings.TrimSpace(form.ImageURL),
		InStock:     form.InStock,
	}
}
