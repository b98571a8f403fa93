package console

import (
	"slices"
	"time"

	"mallconsole/internal/domain/entity"
)

// Snapshot is a copy of the state handed to renderers.
type Snapshot struct {
	Generation uint64
	Page       entity.Page
	Identity   *entity.Identity
	Role       entity.Role
	Shops      []entity.Shop
	Products   []entity.Product
	Offers     []entity.Offer
	Categories []string
	Floors     []string
	Selected   []string
}

// IsAdmin reports whether admin affordances should be shown.
func (s Snapshot) IsAdmin() bool {
	return s.Role.IsAdmin()
}

// IsSelected reports whether a product is marked for comparison.
func (s Snapshot) IsSelected(productID string) bool {
	return slices.Contains(s.Selected, productID)
}

// ShopName resolves the current name of a shop, falling back to the stored copy
// when the shop is no longer loaded.
func (s Snapshot) ShopName(shopID, stored string) string {
	for _, shop := range s.Shops {
		if shop.ID == shopID {
			return shop.Name
		}
	}

	return stored
}

func cloneShop(shop *entity.Shop) *entity.Shop {
	clone := *shop

	return &clone
}

func cloneProduct(p *entity.Product) *entity.Product {
	clone := *p
	if p.Features != nil {
		clone.Features = append([]string{}, p.Features...)
	}

	return &clone
}

func cloneOffer(o *entity.Offer) *entity.Offer {
	clone := *o
	if o.ProductIDs != nil {
		clone.ProductIDs = append([]string{}, o.ProductIDs...)
	}
	clone.ValidFrom = cloneTime(o.ValidFrom)
	clone.ValidUntil = cloneTime(o.ValidUntil)

	return &clone
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	clone := *t

	return &clone
}
