package entity

import "time"

// Document field names of the products collection.
const (
	ProductFieldName        = "name"
	ProductFieldDescription = "description"
	ProductFieldShopID      = "shopId"
	ProductFieldShopName    = "shopName"
	ProductFieldCategory    = "category"
	ProductFieldPrice       = "price"
	ProductFieldBrand       = "brand"
	ProductFieldFeatures    = "features"
	ProductFieldImageURL    = "imageUrl"
	ProductFieldInStock     = "inStock"
)

// Product is an item sold by a shop. ShopID is not enforced as a reference
// and ShopName is a copy taken at write time.
type Product struct {
	ID          string    `json:"id" mapstructure:"-"`
	Name        string    `json:"name" mapstructure:"name"`
	Description string    `json:"description" mapstructure:"description"`
	ShopID      string    `json:"shopId" mapstructure:"shopId"`
	ShopName    string    `json:"shopName" mapstructure:"shopName"`
	Category    string    `json:"category" mapstructure:"category"`
	Price       float64   `json:"price" mapstructure:"price"`
	Brand       string    `json:"brand" mapstructure:"brand"`
	Features    []string  `json:"features" mapstructure:"features"`
	ImageURL    string    `json:"imageUrl" mapstructure:"imageUrl"`
	InStock     bool      `json:"inStock" mapstructure:"inStock"`
	CreatedAt   time.Time `json:"createdAt" mapstructure:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" mapstructure:"updatedAt"`
}
