package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/domain/repository"
	"mallconsole/internal/domain/service"
	"mallconsole/internal/usecase"

	"go.uber.org/fx"
)

const offerRequiredMessage = "Title, shop ID, and discount are required"

//nolint:gochecknoglobals
var offerRequiredFields = []string{entity.OfferFieldTitle, entity.OfferFieldShopID, entity.OfferFieldDiscount}

type offerService struct {
	offers *documentCollection[entity.Offer]
	now    func() time.Time
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	Store     repository.DocumentStore
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOfferService creates a new offer service instance
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return newOfferService(params, time.Now)
}

func newOfferService(params OfferServiceParams, now func() time.Time) *offerService {
	return &offerService{
		offers: &documentCollection[entity.Offer]{
			name:      repository.CollectionOffers,
			resource:  "Offer",
			store:     params.Store,
			publisher: params.Publisher,
			logger:    params.Logger,
			preset: func(o *entity.Offer) {
				o.IsActive = true
				o.DiscountType = entity.DiscountPercentage
			},
			setID: func(o *entity.Offer, id string) { o.ID = id },
		},
		now: now,
	}
}

func (s *offerService) List(ctx context.Context) ([]*entity.Offer, error) {
	return s.offers.list(ctx)
}

func (s *offerService) Get(ctx context.Context, id string) (*entity.Offer, error) {
	return s.offers.get(ctx, id)
}

// Create validates and stores a new offer. A missing start date becomes the write time.
func (s *offerService) Create(ctx context.Context, form *usecase.OfferForm) (string, error) {
	trimmed := trimOfferForm(form)
	if err := validateForm(&trimmed, offerRequiredMessage); err != nil {
		return "", err
	}
	if err := validateDiscountType(trimmed.DiscountType); err != nil {
		return "", err
	}

	validFrom, validUntil, err := parseOfferDates(&trimmed)
	if err != nil {
		return "", err
	}

	fields := map[string]any{
		entity.OfferFieldTitle:        trimmed.Title,
		entity.OfferFieldDescription:  trimmed.Description,
		entity.OfferFieldShopID:       trimmed.ShopID,
		entity.OfferFieldShopName:     trimmed.ShopName,
		entity.OfferFieldDiscount:     coerceNumber(trimmed.Discount),
		entity.OfferFieldDiscountType: discountTypeOrDefault(trimmed.DiscountType),
		entity.OfferFieldProductIDs:   trimmed.ProductIDs,
		entity.OfferFieldValidFrom:    repository.ServerTimestamp,
		entity.OfferFieldValidUntil:   nil,
		entity.OfferFieldIsActive:     boolOrDefault(trimmed.IsActive),
		entity.OfferFieldImageURL:     trimmed.ImageURL,
		entity.OfferFieldTerms:        trimmed.Terms,
		entity.FieldCreatedAt:         repository.ServerTimestamp,
		entity.FieldUpdatedAt:         repository.ServerTimestamp,
	}
	if validFrom != nil {
		fields[entity.OfferFieldValidFrom] = *validFrom
	}
	if validUntil != nil {
		fields[entity.OfferFieldValidUntil] = *validUntil
	}

	return s.offers.add(ctx, fields)
}

// Update writes the supplied fields of form over an existing offer.
// The product list is always written, even when empty. A blank date clears the stored one.
func (s *offerService) Update(ctx context.Context, id string, form *usecase.OfferForm) error {
	trimmed := trimOfferForm(form)
	if err := validateDiscountType(trimmed.DiscountType); err != nil {
		return err
	}

	validFrom, validUntil, err := parseOfferDates(&trimmed)
	if err != nil {
		return err
	}

	patch := map[string]any{
		entity.OfferFieldDiscountType: discountTypeOrDefault(trimmed.DiscountType),
		entity.OfferFieldProductIDs:   trimmed.ProductIDs,
		entity.OfferFieldIsActive:     boolOrDefault(trimmed.IsActive),
		entity.FieldUpdatedAt:         repository.ServerTimestamp,
	}
	putString(patch, entity.OfferFieldTitle, trimmed.Title)
	putString(patch, entity.OfferFieldDescription, trimmed.Description)
	putString(patch, entity.OfferFieldShopID, trimmed.ShopID)
	putString(patch, entity.OfferFieldShopName, trimmed.ShopName)
	putString(patch, entity.OfferFieldImageURL, trimmed.ImageURL)
	putString(patch, entity.OfferFieldTerms, trimmed.Terms)
	if trimmed.Discount != "" {
		patch[entity.OfferFieldDiscount] = coerceNumber(trimmed.Discount)
	}
	patch[entity.OfferFieldValidFrom] = dateOrNil(validFrom)
	patch[entity.OfferFieldValidUntil] = dateOrNil(validUntil)

	return s.offers.update(ctx, id, patch, offerRequiredFields, offerRequiredMessage)
}

func (s *offerService) Delete(ctx context.Context, id string) error {
	return s.offers.delete(ctx, id)
}

// Search matches query against title, description and shop name
func (s *offerService) Search(ctx context.Context, query string) ([]*entity.Offer, error) {
	return s.offers.search(ctx, query, func(o *entity.Offer) []string {
		return []string{o.Title, o.Description, o.ShopName}
	})
}

// ByShop returns the offers of a shop that are flagged active
func (s *offerService) ByShop(ctx context.Context, shopID string) ([]*entity.Offer, error) {
	return s.offers.query(ctx,
		repository.Eq(entity.OfferFieldShopID, shopID),
		repository.Eq(entity.OfferFieldIsActive, true),
	)
}

// ListActive asks the store for offers flagged active, then drops the expired ones
func (s *offerService) ListActive(ctx context.Context) ([]*entity.Offer, error) {
	offers, err := s.offers.query(ctx, repository.Eq(entity.OfferFieldIsActive, true))
	if err != nil {
		return nil, err
	}

	now := s.now()
	active := make([]*entity.Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.IsCurrentlyActive(now) {
			active = append(active, offer)
		}
	}

	return active, nil
}

func dateOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}

	return *t
}

func trimOfferForm(form *usecase.OfferForm) usecase.OfferForm {
	return usecase.OfferForm{
		Title:        strings.TrimSpace(form.Title),
		Description:  strings.TrimSpace(form.Description),
		ShopID:       strings.TrimSpace(form.ShopID),
		ShopName:     strings.TrimSpace(form.ShopName),
		Discount:     strings.TrimSpace(form.Discount),
		DiscountType: strings.TrimSpace(form.DiscountType),
		ProductIDs:   trimList(form.ProductIDs),
		ValidFrom:    strings.TrimSpace(form.ValidFrom),
		ValidUntil:   strings.TrimSpace(form.ValidUntil),
		ImageURL:     strings.TrimSpace(form.ImageURL),
		Terms:        strings.TrimSpace(form.Terms),
		IsActive:     form.IsActive,
	}
}

func parseOfferDates(form *usecase.OfferForm) (validFrom, validUntil *time.Time, err error) {
	if validFrom, err = parseFormDate(form.ValidFrom, "Valid from"); err != nil {
		return nil, nil, err
	}
	if validUntil, err = parseFormDate(form.ValidUntil, "Valid until"); err != nil {
		return nil, nil, err
	}

	return validFrom, validUntil, nil
}

func validateDiscountType(raw string) error {
	if raw != "" && !entity.DiscountType(raw).IsValid() {
		return domainerrors.NewValidationError("Discount type must be percentage or fixed")
	}

	return nil
}

func discountTypeOrDefault(raw string) string {
	if raw == "" {
		return string(entity.DiscountPercentage)
	}

	return raw
}
