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

const shopRequiredMessage = "Name, floor, and category are required"

//nolint:gochecknoglobals
var shopRequiredFields = []string{entity.ShopFieldName, entity.ShopFieldFloor, entity.ShopFieldCategory}

type shopService struct {
	shops *documentCollection[entity.Shop]
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	Store     repository.DocumentStore
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewShopService creates a new shop service instance
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		shops: &documentCollection[entity.Shop]{
			name:      repository.CollectionShops,
			resource:  "Shop",
			store:     params.Store,
			publisher: params.Publisher,
			logger:    params.Logger,
			setID:     func(s *entity.Shop, id string) { s.ID = id },
		},
	}
}

// List returns every shop in storage order
func (s *shopService) List(ctx context.Context) ([]*entity.Shop, error) {
	return s.shops.list(ctx)
}

// Get returns one shop or a not-found error
func (s *shopService) Get(ctx context.Context, id string) (*entity.Shop, error) {
	return s.shops.get(ctx, id)
}

// Create validates and stores a new shop
func (s *shopService) Create(ctx context.Context, form *usecase.ShopForm) (string, error) {
	trimmed := trimShopForm(form)
	if err := validateForm(&trimmed, shopRequiredMessage); err != nil {
		return "", err
	}

	fields := shopFields(&trimmed)
	fields[entity.FieldCreatedAt] = repository.ServerTimestamp
	fields[entity.FieldUpdatedAt] = repository.ServerTimestamp

	return s.shops.add(ctx, fields)
}

// Update writes the non-empty fields of form over an existing shop
func (s *shopService) Update(ctx context.Context, id string, form *usecase.ShopForm) error {
	trimmed := trimShopForm(form)

	patch := make(map[string]any)
	for k, v := range shopFields(&trimmed) {
		putString(patch, k, v.(string))
	}
	patch[entity.FieldUpdatedAt] = repository.ServerTimestamp

	return s.shops.update(ctx, id, patch, shopRequiredFields, shopRequiredMessage)
}

// Delete removes a shop
func (s *shopService) Delete(ctx context.Context, id string) error {
	return s.shops.delete(ctx, id)
}

// Search matches query against name, description, category and floor
func (s *shopService) Search(ctx context.Context, query string) ([]*entity.Shop, error) {
	return s.shops.search(ctx, query, func(shop *entity.Shop) []string {
		return []string{shop.Name, shop.Description, shop.Category, shop.Floor}
	})
}

// ByFloor returns the shops on a floor
func (s *shopService) ByFloor(ctx context.Context, floor string) ([]*entity.Shop, error) {
	return s.shops.query(ctx, repository.Eq(entity.ShopFieldFloor, floor))
}

// ByCategory returns the shops of a category
func (s *shopService) ByCategory(ctx context.Context, category string) ([]*entity.Shop, error) {
	return s.shops.query(ctx, repository.Eq(entity.ShopFieldCategory, category))
}

func trimShopForm(form *usecase.ShopForm) usecase.ShopForm {
	return usecase.ShopForm{
		Name:         strings.TrimSpace(form.Name),
		Description:  strings.TrimSpace(form.Description),
		Floor:        strings.TrimSpace(form.Floor),
		Category:     strings.TrimSpace(form.Category),
		Location:     strings.TrimSpace(form.Location),
		Contact:      strings.TrimSpace(form.Contact),
		Email:        strings.TrimSpace(form.Email),
		OpeningHours: strings.TrimSpace(form.OpeningHours),
	}
}

func shopFields(form *usecase.ShopForm) map[string]any {
	return map[string]any{
		entity.ShopFieldName:         form.Name,
		entity.ShopFieldDescription:  form.Description,
		entity.ShopFieldFloor:        form.Floor,
		entity.ShopFieldCategory:     form.Category,
		entity.ShopFieldLocation:     form.Location,
		entity.ShopFieldContact:      form.Contact,
		entity.ShopFieldEmail:        form.Email,
		entity.ShopFieldOpeningHours: form.OpeningHours,
	}
}
