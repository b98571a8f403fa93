package usecase

// ShopForm is the typed input of the shop editor.
type ShopForm struct {
	Name         string `form:"name" validate:"required"`
	Description  string `form:"description"`
	Floor        string `form:"floor" validate:"required"`
	Category     string `form:"category" validate:"required"`
	Location     string `form:"location"`
	Contact      string `form:"contact"`
	Email        string `form:"email"`
	OpeningHours string `form:"openingHours"`
}

// ProductForm is the typed input of the product editor.
// Price is kept as entered and coerced by the service; Features is a comma separated list.
type ProductForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
	ShopID      string `form:"shopId" validate:"required"`
	ShopName    string `form:"-"`
	Category    string `form:"category"`
	Price       string `form:"price" validate:"required"`
	Brand       string `form:"brand"`
	Features    string `form:"features"`
	ImageURL    string `form:"imageUrl"`
	// InStock defaults to true when nil.
	InStock *bool `form:"-"`
}

// OfferForm is the typed input of the offer editor. Dates accept 2006-01-02 or RFC 3339.
type OfferForm struct {
	Title        string   `form:"title" validate:"required"`
	Description  string   `form:"description"`
	ShopID       string   `form:"shopId" validate:"required"`
	ShopName     string   `form:"-"`
	Discount     string   `form:"discount" validate:"required"`
	DiscountType string   `form:"discountType"`
	ProductIDs   []string `form:"productIds"`
	ValidFrom    string   `form:"validFrom"`
	ValidUntil   string   `form:"validUntil"`
	ImageURL     string   `form:"imageUrl"`
	Terms        string   `form:"terms"`
	// IsActive defaults to true when nil.
	IsActive *bool `form:"-"`
}
