// Package entity contains the core business objects of the mall directory.
package entity

import "time"

// Document field names of the shops collection.
const (
	ShopFieldName         = "name"
	ShopFieldDescription  = "description"
	ShopFieldFloor        = "floor"
	ShopFieldCategory     = "category"
	ShopFieldLocation     = "location"
	ShopFieldContact      = "contact"
	ShopFieldEmail        = "email"
	ShopFieldOpeningHours = "openingHours"
)

// Shop is a tenant of the mall. Floor and category are free-text labels.
type Shop struct {
	ID           string    `json:"id" mapstructure:"-"`
	Name         string    `json:"name" mapstructure:"name"`
	Description  string    `json:"description" mapstructure:"description"`
	Floor        string    `json:"floor" mapstructure:"floor"`
	Category     string    `json:"category" mapstructure:"category"`
	Location     string    `json:"location" mapstructure:"location"`
	Contact      string    `json:"contact" mapstructure:"contact"`
	Email        string    `json:"email" mapstructure:"email"`
	OpeningHours string    `json:"openingHours" mapstructure:"openingHours"`
	CreatedAt    time.Time `json:"createdAt" mapstructure:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" mapstructure:"updatedAt"`
}
