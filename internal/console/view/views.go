// Package view turns console snapshots into view models and renders them
// through the embedded HTML templates. Nothing here mutates session state.
package view

import (
	"strings"
	"time"

	"mallconsole/internal/console"
	"mallconsole/internal/domain/entity"
	"mallconsole/internal/util"
)

// Empty-state messages.
const (
	EmptyShops      = "No shops found"
	EmptyProducts   = "No products found"
	EmptyOffers     = "No offers available"
	EmptyCategories = "No categories available"
	EmptyFloors     = "No floors available"
	EmptyPrices     = "No price data available"
	EmptyDashboard  = "No shops available"
)

const (
	dashboardShopCount = 5
	placeholder        = "-"
	notAvailable       = "N/A"
)

// ShopRow is one line of the shop table.
type ShopRow struct {
	ID           string
	Name         string
	Description  string
	Floor        string
	Category     string
	Location     string
	Contact      string
	Email        string
	OpeningHours string
}

// ShopsView is the shop directory page.
type ShopsView struct {
	Rows       []ShopRow
	Floors     []string
	Categories []string
	Filter     ShopFilter
	Empty      string
	CanEdit    bool
}

// ProductRow is one line of the product table.
type ProductRow struct {
	ID          string
	Name        string
	Description string
	ShopID      string
	ShopName    string
	Category    string
	Price       string
	Brand       string
	Features    string
	ImageURL    string
	InStock     bool
	Selected    bool
}

// ProductsView is the product catalog page.
type ProductsView struct {
	Rows          []ProductRow
	Categories    []string
	Filter        ProductFilter
	Empty         string
	CanEdit       bool
	SelectedCount int
	AllSelected   bool
}

// OfferRow is one offer card.
type OfferRow struct {
	ID          string
	Title       string
	Description string
	ShopName    string
	Badge       string
	ValidFrom   string
	ValidUntil  string
	Terms       string
	ImageURL    string
	Products    int
	Active      bool
}

// OffersView is the offers page.
type OffersView struct {
	Rows    []OfferRow
	Filter  OfferFilter
	Empty   string
	CanEdit bool
}

// CategoryRow counts the shops and products of one category.
type CategoryRow struct {
	Name     string
	Shops    int
	Products int
}

// CategoriesView is the categories page.
type CategoriesView struct {
	Rows  []CategoryRow
	Empty string
}

// FloorRow lists the shops of one floor.
type FloorRow struct {
	Name  string
	Shops []string
}

// FloorsView is the floors page.
type FloorsView struct {
	Rows  []FloorRow
	Empty string
}

// Count is a labelled tally used by the reports.
type Count struct {
	Label string
	Value int
}

// PriceStats summarizes the positive product prices.
type PriceStats struct {
	Min     string
	Max     string
	Average string
	Count   int
}

// ReportsView is the reports page.
type ReportsView struct {
	ShopsPerFloor    []Count
	ShopsPerCategory []Count
	Prices           *PriceStats
	PricesEmpty      string
}

// CompareRow is one column of the comparison panel.
type CompareRow struct {
	Name        string
	ShopName    string
	Price       string
	Brand       string
	Category    string
	InStock     string
	Features    string
	Description string
}

// CompareView is the product comparison panel.
type CompareView struct {
	Rows  []CompareRow
	Empty string
}

// DashboardView is the landing page.
type DashboardView struct {
	Shops       int
	Products    int
	Offers      int
	Categories  int
	Floors      int
	RecentShops []ShopRow
	Empty       string
}

// SettingsView shows the signed-in account.
type SettingsView struct {
	UID   string
	Email string
	Role  string
}

// Dashboard renders the totals and the first shops. Only offers running at now are counted.
func Dashboard(snap console.Snapshot, now time.Time) DashboardView {
	v := DashboardView{
		Shops:      len(snap.Shops),
		Products:   len(snap.Products),
		Categories: len(snap.Categories),
		Floors:     len(snap.Floors),
	}
	for i := range snap.Offers {
		if snap.Offers[i].IsCurrentlyActive(now) {
			v.Offers++
		}
	}
	for i := range snap.Shops {
		if i == dashboardShopCount {
			break
		}
		v.RecentShops = append(v.RecentShops, shopRow(&snap.Shops[i]))
	}
	if len(v.RecentShops) == 0 {
		v.Empty = EmptyDashboard
	}

	return v
}

// Shops renders the shop table narrowed by filter.
func Shops(snap console.Snapshot, filter ShopFilter) ShopsView {
	v := ShopsView{
		Floors:     snap.Floors,
		Categories: snap.Categories,
		Filter:     filter,
		CanEdit:    snap.IsAdmin(),
	}
	for i := range snap.Shops {
		shop := &snap.Shops[i]
		if filter.match(shop.Floor, shop.Category) {
			v.Rows = append(v.Rows, shopRow(shop))
		}
	}
	if len(v.Rows) == 0 {
		v.Empty = EmptyShops
	}

	return v
}

func shopRow(shop *entity.Shop) ShopRow {
	return ShopRow{
		ID:           shop.ID,
		Name:         shop.Name,
		Description:  shop.Description,
		Floor:        shop.Floor,
		Category:     shop.Category,
		Location:     orDefault(shop.Location, placeholder),
		Contact:      orDefault(shop.Contact, placeholder),
		Email:        shop.Email,
		OpeningHours: shop.OpeningHours,
	}
}

// Products renders the product table narrowed by filter. Shop names come from
// the loaded shops, falling back to the name stored on the product.
func Products(snap console.Snapshot, filter ProductFilter) ProductsView {
	v := ProductsView{
		Categories:    snap.Categories,
		Filter:        filter,
		CanEdit:       snap.IsAdmin(),
		SelectedCount: len(snap.Selected),
		AllSelected:   len(snap.Products) > 0,
	}
	for i := range snap.Products {
		p := &snap.Products[i]
		selected := snap.IsSelected(p.ID)
		if !selected {
			v.AllSelected = false
		}
		if !filter.match(p.Category, p.Price) {
			continue
		}
		v.Rows = append(v.Rows, ProductRow{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			ShopID:      p.ShopID,
			ShopName:    orDefault(snap.ShopName(p.ShopID, p.ShopName), placeholder),
			Category:    orDefault(p.Category, placeholder),
			Price:       util.FormatPrice(p.Price),
			Brand:       orDefault(p.Brand, placeholder),
			Features:    strings.Join(p.Features, ", "),
			ImageURL:    p.ImageURL,
			InStock:     p.InStock,
			Selected:    selected,
		})
	}
	if len(v.Rows) == 0 {
		v.Empty = EmptyProducts
	}

	return v
}

// Offers renders the offer cards. The active status keeps offers that are
// flagged active and not expired at now.
func Offers(snap console.Snapshot, filter OfferFilter, now time.Time) OffersView {
	filter = filter.Normalized()
	v := OffersView{
		Filter:  filter,
		CanEdit: snap.IsAdmin(),
	}
	for i := range snap.Offers {
		o := &snap.Offers[i]
		active := o.IsCurrentlyActive(now)
		if filter.Status == OfferStatusActive && !active {
			continue
		}
		v.Rows = append(v.Rows, OfferRow{
			ID:          o.ID,
			Title:       o.Title,
			Description: orDefault(o.Description, "No description"),
			ShopName:    orDefault(snap.ShopName(o.ShopID, o.ShopName), notAvailable),
			Badge:       util.FormatDiscount(o.Discount, string(o.DiscountType)),
			ValidFrom:   util.FormatDate(o.ValidFrom),
			ValidUntil:  util.FormatDate(o.ValidUntil),
			Terms:       o.Terms,
			ImageURL:    o.ImageURL,
			Products:    len(o.ProductIDs),
			Active:      active,
		})
	}
	if len(v.Rows) == 0 {
		v.Empty = EmptyOffers
	}

	return v
}

// Categories counts shops and products per derived category.
func Categories(snap console.Snapshot) CategoriesView {
	v := CategoriesView{}
	for _, category := range snap.Categories {
		row := CategoryRow{Name: category}
		for i := range snap.Shops {
			if snap.Shops[i].Category == category {
				row.Shops++
			}
		}
		for i := range snap.Products {
			if snap.Products[i].Category == category {
				row.Products++
			}
		}
		v.Rows = append(v.Rows, row)
	}
	if len(v.Rows) == 0 {
		v.Empty = EmptyCategories
	}

	return v
}

// Floors lists the shops of each derived floor.
func Floors(snap console.Snapshot) FloorsView {
	v := FloorsView{}
	for _, floor := range snap.Floors {
		row := FloorRow{Name: floor, Shops: []string{}}
		for i := range snap.Shops {
			if snap.Shops[i].Floor == floor {
				row.Shops = append(row.Shops, snap.Shops[i].Name)
			}
		}
		v.Rows = append(v.Rows, row)
	}
	if len(v.Rows) == 0 {
		v.Empty = EmptyFloors
	}

	return v
}

// Reports tallies shops per floor and category and summarizes positive prices.
func Reports(snap console.Snapshot) ReportsView {
	v := ReportsView{
		ShopsPerFloor:    []Count{},
		ShopsPerCategory: []Count{},
	}
	for _, floor := range snap.Floors {
		c := Count{Label: floor}
		for i := range snap.Shops {
			if snap.Shops[i].Floor == floor {
				c.Value++
			}
		}
		v.ShopsPerFloor = append(v.ShopsPerFloor, c)
	}
	for _, category := range snap.Categories {
		c := Count{Label: category}
		for i := range snap.Shops {
			if snap.Shops[i].Category == category {
				c.Value++
			}
		}
		v.ShopsPerCategory = append(v.ShopsPerCategory, c)
	}

	var lo, hi, sum float64
	n := 0
	for i := range snap.Products {
		price := snap.Products[i].Price
		if price <= 0 {
			continue
		}
		if n == 0 || price < lo {
			lo = price
		}
		if n == 0 || price > hi {
			hi = price
		}
		sum += price
		n++
	}
	if n == 0 {
		v.PricesEmpty = EmptyPrices

		return v
	}
	v.Prices = &PriceStats{
		Min:     util.FormatPrice(lo),
		Max:     util.FormatPrice(hi),
		Average: util.FormatPrice(sum / float64(n)),
		Count:   n,
	}

	return v
}

// Compare lays out the fetched products side by side.
func Compare(snap console.Snapshot, products []*entity.Product) CompareView {
	v := CompareView{}
	for _, p := range products {
		stock := "No"
		if p.InStock {
			stock = "Yes"
		}
		v.Rows = append(v.Rows, CompareRow{
			Name:        p.Name,
			ShopName:    orDefault(snap.ShopName(p.ShopID, p.ShopName), placeholder),
			Price:       util.FormatPrice(p.Price),
			Brand:       orDefault(p.Brand, placeholder),
			Category:    orDefault(p.Category, placeholder),
			InStock:     stock,
			Features:    strings.Join(p.Features, ", "),
			Description: p.Description,
		})
	}
	if len(v.Rows) == 0 {
		v.Empty = EmptyProducts
	}

	return v
}

// Settings shows the signed-in account.
func Settings(snap console.Snapshot) SettingsView {
	v := SettingsView{Role: string(snap.Role)}
	if snap.Identity != nil {
		v.UID = snap.Identity.UID
		v.Email = snap.Identity.Email
	}

	return v
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

// LoginView is the sign-in and registration page.
type LoginView struct {
	Email      string
	Error      string
	Registered bool
}

// ErrorView is shown when a page cannot be rendered.
type ErrorView struct {
	Status  int
	Message string
}
