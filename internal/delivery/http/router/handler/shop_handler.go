package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mallconsole/internal/console"
	"mallconsole/internal/console/view"
	deliverycontext "mallconsole/internal/delivery/context"
	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/domain/service"
	"mallconsole/internal/errors"
	"mallconsole/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ShopHandler serves the shop editor, search and QR codes.
type ShopHandler struct {
	shops  usecase.ShopUsecase
	qrcode service.QRCodeService
	logger *slog.Logger
	now    func() time.Time
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(shops usecase.ShopUsecase, qrcode service.QRCodeService, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{shops: shops, qrcode: qrcode, logger: logger, now: time.Now}
}

// New shows an empty shop editor.
func (h *ShopHandler) New(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}
	if !session.Snapshot().IsAdmin() {
		session.Notify(domainerrors.ErrForbidden)

		return redirectToPage(c, entity.PageShops)
	}

	form := session.NewShopForm()

	return renderScreen(c, http.StatusOK, "shop_form", session, func(snap console.Snapshot) any {
		return view.ShopEditor(snap, "", form)
	})
}

// Edit shows the editor filled from a loaded shop.
func (h *ShopHandler) Edit(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	form, err := session.EditShop(id)
	if err != nil {
		session.Notify(err)

		return redirectToPage(c, entity.PageShops)
	}

	return renderScreen(c, http.StatusOK, "shop_form", session, func(snap console.Snapshot) any {
		return view.ShopEditor(snap, id, form)
	})
}

// Create stores a new shop.
func (h *ShopHandler) Create(c echo.Context) error {
	return h.submit(c, "")
}

// Update writes the editor over an existing shop.
func (h *ShopHandler) Update(c echo.Context) error {
	return h.submit(c, c.Param("id"))
}

func (h *ShopHandler) submit(c echo.Context, id string) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	var form usecase.ShopForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	if err := session.SubmitShop(c.Request().Context(), id, &form); err != nil {
		session.Notify(err)
		if errors.Is(err, domainerrors.ErrForbidden) {
			return redirectToPage(c, entity.PageShops)
		}

		return renderScreen(c, formStatus(err), "shop_form", session, func(snap console.Snapshot) any {
			return view.ShopEditor(snap, id, &form)
		})
	}

	return redirectToPage(c, entity.PageShops)
}

// Delete removes a shop.
func (h *ShopHandler) Delete(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	if err := session.DeleteShop(c.Request().Context(), c.Param("id")); err != nil {
		session.Notify(err)
	}

	return redirectToPage(c, entity.PageShops)
}

// Search replaces the listed shops with the matches of ?q=.
func (h *ShopHandler) Search(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	session.State().SetPage(entity.PageShops)
	if err := session.SearchShops(c.Request().Context(), c.QueryParam("q")); err != nil {
		session.Notify(err)
	}

	return showPage(c, session, entity.PageShops, h.now())
}

// QRCode renders a PNG linking to the shop's directory entry.
func (h *ShopHandler) QRCode(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if _, err := h.shops.Get(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qrcode.GenerateShopQR(id)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to generate shop QR code",
			slog.String("shop_id", id),
			slog.Any("error", err),
		)

		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
