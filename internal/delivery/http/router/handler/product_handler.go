package handler

import (
	"net/http"
	"strconv"
	"time"

	"mallconsole/internal/console"
	"mallconsole/internal/console/view"
	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/errors"
	"mallconsole/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProductHandler serves the product editor, search, selection and comparison.
type ProductHandler struct {
	now func() time.Time
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler() *ProductHandler {
	return &ProductHandler{now: time.Now}
}

// New shows an empty product editor.
func (h *ProductHandler) New(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}
	if !session.Snapshot().IsAdmin() {
		session.Notify(domainerrors.ErrForbidden)

		return redirectToPage(c, entity.PageProducts)
	}

	form := session.NewProductForm()

	return renderScreen(c, http.StatusOK, "product_form", session, func(snap console.Snapshot) any {
		return view.ProductEditor(snap, "", form)
	})
}

// Edit shows the editor filled from a loaded product.
func (h *ProductHandler) Edit(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	form, err := session.EditProduct(id)
	if err != nil {
		session.Notify(err)

		return redirectToPage(c, entity.PageProducts)
	}

	return renderScreen(c, http.StatusOK, "product_form", session, func(snap console.Snapshot) any {
		return view.ProductEditor(snap, id, form)
	})
}

// Create stores a new product.
func (h *ProductHandler) Create(c echo.Context) error {
	return h.submit(c, "")
}

// Update writes the editor over an existing product.
func (h *ProductHandler) Update(c echo.Context) error {
	return h.submit(c, c.Param("id"))
}

func (h *ProductHandler) submit(c echo.Context, id string) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	var form usecase.ProductForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	form.InStock = checked(c, "inStock")

	if err := session.SubmitProduct(c.Request().Context(), id, &form); err != nil {
		session.Notify(err)
		if errors.Is(err, domainerrors.ErrForbidden) {
			return redirectToPage(c, entity.PageProducts)
		}

		return renderScreen(c, formStatus(err), "product_form", session, func(snap console.Snapshot) any {
			return view.ProductEditor(snap, id, &form)
		})
	}

	return redirectToPage(c, entity.PageProducts)
}

// Delete removes a product.
func (h *ProductHandler) Delete(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	if err := session.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		session.Notify(err)
	}

	return redirectToPage(c, entity.PageProducts)
}

// Search replaces the listed products with the matches of ?q=.
func (h *ProductHandler) Search(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	session.State().SetPage(entity.PageProducts)
	if err := session.SearchProducts(c.Request().Context(), c.QueryParam("q")); err != nil {
		session.Notify(err)
	}

	return showPage(c, session, entity.PageProducts, h.now())
}

// listedFilter reads back the filter of the table a selection form was posted from.
func listedFilter(c echo.Context) view.ProductFilter {
	return view.ProductFilter{
		Category: c.FormValue("category"),
		MinPrice: c.FormValue("minPrice"),
		MaxPrice: c.FormValue("maxPrice"),
	}
}

// ToggleSelection flips the comparison mark of one product and returns to the
// table it was clicked in without reloading it.
func (h *ProductHandler) ToggleSelection(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	session.ToggleSelection(c.Param("id"))

	return c.Redirect(http.StatusSeeOther, listedFilter(c).Href())
}

// SelectAll marks every listed product, or clears the marks when all=false.
func (h *ProductHandler) SelectAll(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	all, err := strconv.ParseBool(c.FormValue("all"))
	if err != nil {
		all = true
	}
	session.SelectAll(all)

	return c.Redirect(http.StatusSeeOther, listedFilter(c).Href())
}

// Compare lays the marked products side by side.
func (h *ProductHandler) Compare(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	products, err := session.CompareSelected(c.Request().Context())
	if err != nil {
		session.Notify(err)

		return redirectToPage(c, entity.PageProducts)
	}

	return renderScreen(c, http.StatusOK, "compare", session, func(snap console.Snapshot) any {
		return view.Compare(snap, products)
	})
}
