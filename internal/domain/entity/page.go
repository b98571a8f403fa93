package entity

// Page names a console screen.
type Page string

const (
	PageDashboard  Page = "dashboard"
	PageShops      Page = "shops"
	PageProducts   Page = "products"
	PageOffers     Page = "offers"
	PageCategories Page = "categories"
	PageFloors     Page = "floors"
	PageReports    Page = "reports"
	PageSettings   Page = "settings"
)

// Pages lists every console screen in navigation order.
func Pages() []Page {
	return []Page{PageDashboard, PageShops, PageProducts, PageOffers, PageCategories, PageFloors, PageReports, PageSettings}
}

// IsValid checks if the Page is a known screen.
func (p Page) IsValid() bool {
	for _, known := range Pages() {
		if p == known {
			return true
		}
	}

	return false
}

// AdminOnly reports whether the page is hidden from plain users.
func (p Page) AdminOnly() bool {
	switch p {
	case PageCategories, PageFloors, PageReports:
		return true
	default:
		return false
	}
}
