package handler

import (
	"net/http"
	"time"

	"mallconsole/internal/console"
	"mallconsole/internal/console/view"
	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

//nolint:gochecknoglobals
var queryBinder = &echo.DefaultBinder{}

// PageHandler opens the console screens.
type PageHandler struct {
	now func() time.Time
}

// NewPageHandler is the constructor for PageHandler, injected by Fx.
func NewPageHandler() *PageHandler {
	return &PageHandler{now: time.Now}
}

// Dashboard opens the landing page.
func (h *PageHandler) Dashboard(c echo.Context) error {
	return h.open(c, entity.PageDashboard)
}

// Page opens the screen named in the path.
func (h *PageHandler) Page(c echo.Context) error {
	page := entity.Page(c.Param("page"))
	if !page.IsValid() {
		return domainerrors.NewNotFoundError("Page")
	}

	return h.open(c, page)
}

// Current renders page from the data the session already holds. The
// collection is fetched only when it has not been loaded yet.
func (h *PageHandler) Current(page entity.Page) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := sessionOf(c)
		if err != nil {
			return err
		}

		if err := session.Navigate(c.Request().Context(), page); err != nil {
			session.Notify(err)
		}

		return showPage(c, session, page, h.now())
	}
}

// open refreshes the session data of page. A failed load is shown as a notice
// over the data that was already loaded.
func (h *PageHandler) open(c echo.Context, page entity.Page) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}
	if page.AdminOnly() && !session.Snapshot().IsAdmin() {
		session.Notify(domainerrors.ErrForbidden)

		return redirectToPage(c, entity.PageDashboard)
	}

	if err := session.Refresh(c.Request().Context(), page); err != nil {
		session.Notify(err)
	}

	return showPage(c, session, page, h.now())
}

// showPage renders page from the session state, narrowed by the filters in the query string.
func showPage(c echo.Context, session *console.Session, page entity.Page, now time.Time) error {
	switch page {
	case entity.PageShops:
		var filter view.ShopFilter
		if err := queryBinder.BindQueryParams(c, &filter); err != nil {
			return err
		}

		return renderScreen(c, http.StatusOK, "shops", session, func(snap console.Snapshot) any {
			return view.Shops(snap, filter)
		})

	case entity.PageProducts:
		var filter view.ProductFilter
		if err := queryBinder.BindQueryParams(c, &filter); err != nil {
			return err
		}

		return renderScreen(c, http.StatusOK, "products", session, func(snap console.Snapshot) any {
			return view.Products(snap, filter)
		})

	case entity.PageOffers:
		var filter view.OfferFilter
		if err := queryBinder.BindQueryParams(c, &filter); err != nil {
			return err
		}

		return renderScreen(c, http.StatusOK, "offers", session, func(snap console.Snapshot) any {
			return view.Offers(snap, filter, now)
		})

	case entity.PageCategories:
		return renderScreen(c, http.StatusOK, "categories", session, func(snap console.Snapshot) any {
			return view.Categories(snap)
		})

	case entity.PageFloors:
		return renderScreen(c, http.StatusOK, "floors", session, func(snap console.Snapshot) any {
			return view.Floors(snap)
		})

	case entity.PageReports:
		return renderScreen(c, http.StatusOK, "reports", session, func(snap console.Snapshot) any {
			return view.Reports(snap)
		})

	case entity.PageSettings:
		return renderScreen(c, http.StatusOK, "settings", session, func(snap console.Snapshot) any {
			return view.Settings(snap)
		})

	default:
		return renderScreen(c, http.StatusOK, "dashboard", session, func(snap console.Snapshot) any {
			return view.Dashboard(snap, now)
		})
	}
}
