package entity

import "time"

// Document field names of the offers collection.
const (
	OfferFieldTitle        = "title"
	OfferFieldDescription  = "description"
	OfferFieldShopID       = "shopId"
	OfferFieldShopName     = "shopName"
	OfferFieldDiscount     = "discount"
	OfferFieldDiscountType = "discountType"
	OfferFieldProductIDs   = "productIds"
	OfferFieldValidFrom    = "validFrom"
	OfferFieldValidUntil   = "validUntil"
	OfferFieldIsActive     = "isActive"
	OfferFieldImageURL     = "imageUrl"
	OfferFieldTerms        = "terms"
)

// DiscountType tells how Offer.Discount is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// IsValid checks if the DiscountType is a known value.
func (d DiscountType) IsValid() bool {
	return d == DiscountPercentage || d == DiscountFixed
}

// Offer is a discount published by a shop, optionally scoped to products.
type Offer struct {
	ID           string       `json:"id" mapstructure:"-"`
	Title        string       `json:"title" mapstructure:"title"`
	Description  string       `json:"description" mapstructure:"description"`
	ShopID       string       `json:"shopId" mapstructure:"shopId"`
	ShopName     string       `json:"shopName" mapstructure:"shopName"`
	Discount     float64      `json:"discount" mapstructure:"discount"`
	DiscountType DiscountType `json:"discountType" mapstructure:"discountType"`
	ProductIDs   []string     `json:"productIds" mapstructure:"productIds"`
	ValidFrom    *time.Time   `json:"validFrom,omitempty" mapstructure:"validFrom"`
	ValidUntil   *time.Time   `json:"validUntil,omitempty" mapstructure:"validUntil"`
	IsActive     bool         `json:"isActive" mapstructure:"isActive"`
	ImageURL     string       `json:"imageUrl" mapstructure:"imageUrl"`
	Terms        string       `json:"terms" mapstructure:"terms"`
	CreatedAt    time.Time    `json:"createdAt" mapstructure:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt" mapstructure:"updatedAt"`
}

// IsCurrentlyActive reports whether the offer is flagged active and has not expired at now.
func (o *Offer) IsCurrentlyActive(now time.Time) bool {
	if !o.IsActive {
		return false
	}

	return o.ValidUntil == nil || o.ValidUntil.After(now)
}
