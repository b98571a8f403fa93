package handler

import (
	"net/http"
	"time"

	"mallconsole/internal/console"
	"mallconsole/internal/console/view"
	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/errors"
	"mallconsole/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OfferHandler serves the offer editor and search.
type OfferHandler struct {
	now func() time.Time
}

// NewOfferHandler is the constructor for OfferHandler, injected by Fx.
func NewOfferHandler() *OfferHandler {
	return &OfferHandler{now: time.Now}
}

// New shows an empty offer editor.
func (h *OfferHandler) New(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}
	if !session.Snapshot().IsAdmin() {
		session.Notify(domainerrors.ErrForbidden)

		return redirectToPage(c, entity.PageOffers)
	}

	form := session.NewOfferForm()

	return renderScreen(c, http.StatusOK, "offer_form", session, func(snap console.Snapshot) any {
		return view.OfferEditor(snap, "", form)
	})
}

// Edit shows the editor filled from a loaded offer.
func (h *OfferHandler) Edit(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	form, err := session.EditOffer(id)
	if err != nil {
		session.Notify(err)

		return redirectToPage(c, entity.PageOffers)
	}

	return renderScreen(c, http.StatusOK, "offer_form", session, func(snap console.Snapshot) any {
		return view.OfferEditor(snap, id, form)
	})
}

// Create stores a new offer.
func (h *OfferHandler) Create(c echo.Context) error {
	return h.submit(c, "")
}

// Update writes the editor over an existing offer.
func (h *OfferHandler) Update(c echo.Context) error {
	return h.submit(c, c.Param("id"))
}

func (h *OfferHandler) submit(c echo.Context, id string) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	var form usecase.OfferForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	form.IsActive = checked(c, "isActive")

	if err := session.SubmitOffer(c.Request().Context(), id, &form); err != nil {
		session.Notify(err)
		if errors.Is(err, domainerrors.ErrForbidden) {
			return redirectToPage(c, entity.PageOffers)
		}

		return renderScreen(c, formStatus(err), "offer_form", session, func(snap console.Snapshot) any {
			return view.OfferEditor(snap, id, &form)
		})
	}

	return redirectToPage(c, entity.PageOffers)
}

// Delete removes an offer.
func (h *OfferHandler) Delete(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	if err := session.DeleteOffer(c.Request().Context(), c.Param("id")); err != nil {
		session.Notify(err)
	}

	return redirectToPage(c, entity.PageOffers)
}

// Search replaces the listed offers with the matches of ?q=. Matches are listed
// whatever their status.
func (h *OfferHandler) Search(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	session.State().SetPage(entity.PageOffers)
	if err := session.SearchOffers(c.Request().Context(), c.QueryParam("q")); err != nil {
		session.Notify(err)
	}

	return renderScreen(c, http.StatusOK, "offers", session, func(snap console.Snapshot) any {
		return view.Offers(snap, view.OfferFilter{Status: view.OfferStatusAll}, h.now())
	})
}
