// Package router wires the console routes onto echo.
package router

import (
	"mallconsole/internal/delivery/http/middleware"
	"mallconsole/internal/delivery/http/router/handler"
	"mallconsole/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers registered by the router, injected by Fx
type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	PageHandler       *handler.PageHandler
	ShopHandler       *handler.ShopHandler
	ProductHandler    *handler.ProductHandler
	OfferHandler      *handler.OfferHandler
	CatalogHandler    *handler.CatalogHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	pageHandler       *handler.PageHandler
	shopHandler       *handler.ShopHandler
	productHandler    *handler.ProductHandler
	offerHandler      *handler.OfferHandler
	catalogHandler    *handler.CatalogHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		pageHandler:       params.PageHandler,
		shopHandler:       params.ShopHandler,
		productHandler:    params.ProductHandler,
		offerHandler:      params.OfferHandler,
		catalogHandler:    params.CatalogHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up the console pages, form actions and the JSON API.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every other route runs inside a console session
	console := e.Group("", r.sessionMiddleware.Attach)
	{
		console.GET("/login", r.authHandler.LoginPage)
		console.POST("/login", r.authHandler.Login)
		console.POST("/register", r.authHandler.Register)
		console.POST("/logout", r.authHandler.Logout)
	}

	pages := console.Group("", r.sessionMiddleware.RequireAuth)
	{
		pages.GET("/", r.pageHandler.Dashboard)
		pages.GET("/pages/:page", r.pageHandler.Page)
	}

	shops := pages.Group("/shops")
	{
		shops.GET("", r.pageHandler.Current(entity.PageShops))
		shops.GET("/new", r.shopHandler.New)
		shops.GET("/search", r.shopHandler.Search)
		shops.GET("/:id/edit", r.shopHandler.Edit)
		shops.GET("/:id/qrcode.png", r.shopHandler.QRCode)
		shops.POST("", r.shopHandler.Create)
		shops.POST("/:id", r.shopHandler.Update)
		shops.POST("/:id/delete", r.shopHandler.Delete)
	}

	products := pages.Group("/products")
	{
		products.GET("", r.pageHandler.Current(entity.PageProducts))
		products.GET("/new", r.productHandler.New)
		products.GET("/search", r.productHandler.Search)
		products.GET("/compare", r.productHandler.Compare)
		products.GET("/:id/edit", r.productHandler.Edit)
		products.POST("", r.productHandler.Create)
		products.POST("/select-all", r.productHandler.SelectAll)
		products.POST("/:id", r.productHandler.Update)
		products.POST("/:id/delete", r.productHandler.Delete)
		products.POST("/:id/select", r.productHandler.ToggleSelection)
	}

	offers := pages.Group("/offers")
	{
		offers.GET("", r.pageHandler.Current(entity.PageOffers))
		offers.GET("/new", r.offerHandler.New)
		offers.GET("/search", r.offerHandler.Search)
		offers.GET("/:id/edit", r.offerHandler.Edit)
		offers.POST("", r.offerHandler.Create)
		offers.POST("/:id", r.offerHandler.Update)
		offers.POST("/:id/delete", r.offerHandler.Delete)
	}

	// Read-only JSON API, same session cookie
	apiV1 := console.Group("/api/v1", r.sessionMiddleware.RequireAuth)
	{
		apiV1.GET("/shops", r.catalogHandler.ListShops)
		apiV1.GET("/shops/scan", r.catalogHandler.ResolveShopQR)
		apiV1.GET("/shops/:id", r.catalogHandler.GetShop)
		apiV1.GET("/shops/:id/offers", r.catalogHandler.ListShopOffers)
		apiV1.GET("/products", r.catalogHandler.ListProducts)
		apiV1.GET("/offers/active", r.catalogHandler.ListActiveOffers)
	}
}
