package view

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const productsPath = "/products"

// Offer status filter values.
const (
	OfferStatusActive = "active"
	OfferStatusAll    = "all"
)

// ShopFilter narrows the shop table. Empty fields match everything.
type ShopFilter struct {
	Floor    string `query:"floor"`
	Category string `query:"category"`
}

func (f ShopFilter) match(floor, category string) bool {
	if f.Floor != "" && f.Floor != floor {
		return false
	}
	if f.Category != "" && f.Category != category {
		return false
	}

	return true
}

// ProductFilter narrows the product table by category and an inclusive price range.
// Blank or unparsable bounds leave that side of the range open.
type ProductFilter struct {
	Category string `query:"category"`
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
}

// Href returns the product table URL that keeps the filter applied.
func (f ProductFilter) Href() string {
	q := url.Values{}
	for key, value := range map[string]string{"category": f.Category, "minPrice": f.MinPrice, "maxPrice": f.MaxPrice} {
		if value = strings.TrimSpace(value); value != "" {
			q.Set(key, value)
		}
	}
	if len(q) == 0 {
		return productsPath
	}

	return productsPath + "?" + q.Encode()
}

func (f ProductFilter) bounds() (lo, hi float64) {
	lo, hi = 0, math.Inf(1)
	if v, ok := parseBound(f.MinPrice); ok {
		lo = v
	}
	if v, ok := parseBound(f.MaxPrice); ok {
		hi = v
	}

	return lo, hi
}

func (f ProductFilter) match(category string, price float64) bool {
	if f.Category != "" && f.Category != category {
		return false
	}
	lo, hi := f.bounds()

	return price >= lo && price <= hi
}

func parseBound(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}

	return v, true
}

// OfferFilter selects which offers are listed.
type OfferFilter struct {
	Status string `query:"status"`
}

// Normalized returns the filter with an unknown status replaced by the active default.
func (f OfferFilter) Normalized() OfferFilter {
	if f.Status != OfferStatusAll {
		f.Status = OfferStatusActive
	}

	return f
}
