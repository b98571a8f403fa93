package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"mallconsole/internal/delivery/http/response"
	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/domain/service"
	"mallconsole/internal/errors"
	"mallconsole/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the read-only JSON API over the directory.
type CatalogHandler struct {
	shops    usecase.ShopUsecase
	products usecase.ProductUsecase
	offers   usecase.OfferUsecase
	qrcode   service.QRCodeService
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(
	shops usecase.ShopUsecase,
	products usecase.ProductUsecase,
	offers usecase.OfferUsecase,
	qrcode service.QRCodeService,
) *CatalogHandler {
	return &CatalogHandler{shops: shops, products: products, offers: offers, qrcode: qrcode}
}

// ListShops returns the shops, optionally narrowed by ?floor= or ?category=.
func (h *CatalogHandler) ListShops(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		shops []*entity.Shop
		err   error
	)
	switch {
	case c.QueryParam("floor") != "":
		shops, err = h.shops.ByFloor(ctx, c.QueryParam("floor"))
	case c.QueryParam("category") != "":
		shops, err = h.shops.ByCategory(ctx, c.QueryParam("category"))
	case c.QueryParam("q") != "":
		shops, err = h.shops.Search(ctx, c.QueryParam("q"))
	default:
		shops, err = h.shops.List(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, shops)
}

// GetShop returns one shop.
func (h *CatalogHandler) GetShop(c echo.Context) error {
	shop, err := h.shops.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// ResolveShopQR returns the shop named by a scanned QR payload in ?code=.
func (h *CatalogHandler) ResolveShopQR(c echo.Context) error {
	shopID, err := h.qrcode.ParseShopQR(c.QueryParam("code"))
	if err != nil {
		return domainerrors.NewValidationError("Not a shop QR code").WrapMessage(err.Error())
	}

	shop, err := h.shops.Get(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// ListShopOffers returns the active offers of one shop.
func (h *CatalogHandler) ListShopOffers(c echo.Context) error {
	offers, err := h.offers.ByShop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, offers)
}

// ListProducts returns the products, optionally narrowed by ?shopId=, ?category=
// or a ?minPrice=&maxPrice= range.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		products []*entity.Product
		err      error
	)
	switch {
	case c.QueryParam("shopId") != "":
		products, err = h.products.ByShop(ctx, c.QueryParam("shopId"))
	case c.QueryParam("category") != "":
		products, err = h.products.ByCategory(ctx, c.QueryParam("category"))
	case c.QueryParam("minPrice") != "" || c.QueryParam("maxPrice") != "":
		lo, hi, rangeErr := priceRange(c.QueryParam("minPrice"), c.QueryParam("maxPrice"))
		if rangeErr != nil {
			return rangeErr
		}
		products, err = h.products.FilterByPriceRange(ctx, lo, hi)
	case c.QueryParam("q") != "":
		products, err = h.products.Search(ctx, c.QueryParam("q"))
	default:
		products, err = h.products.List(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, products)
}

// ListActiveOffers returns the offers that are active and not expired.
func (h *CatalogHandler) ListActiveOffers(c echo.Context) error {
	offers, err := h.offers.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, offers)
}

// priceRange parses the API price bounds. A missing upper bound is unbounded.
func priceRange(rawMin, rawMax string) (lo, hi float64, err error) {
	hi = math.MaxFloat64
	if s := strings.TrimSpace(rawMin); s != "" {
		if lo, err = strconv.ParseFloat(s, 64); err != nil {
			return 0, 0, domainerrors.NewValidationError("minPrice must be a number")
		}
	}
	if s := strings.TrimSpace(rawMax); s != "" {
		if hi, err = strconv.ParseFloat(s, 64); err != nil {
			return 0, 0, domainerrors.NewValidationError("maxPrice must be a number")
		}
	}

	return lo, hi, nil
}
