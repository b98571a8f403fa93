package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"mallconsole/config"
	"mallconsole/internal/console"
	"mallconsole/internal/console/view"
	"mallconsole/internal/delivery/http/middleware"
	"mallconsole/internal/delivery/http/router"
	"mallconsole/internal/delivery/http/router/handler"
	"mallconsole/internal/domain/entity"
	"mallconsole/internal/domain/repository"
	"mallconsole/internal/infra/auth"
	"mallconsole/internal/infra/persistence/memory"
	"mallconsole/internal/infra/qrcode"
	mockSvc "mallconsole/internal/mocks/service"
	"mallconsole/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

var csrfPattern = regexp.MustCompile(`name="_csrf" value="([^"]+)"`)

type consoleClient struct {
	t       *testing.T
	server  *echo.Echo
	cookies map[string]*nethttp.Cookie
	csrf    string
}

func (cc *consoleClient) do(req *nethttp.Request) *httptest.ResponseRecorder {
	for _, cookie := range cc.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	cc.server.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(cc.cookies, cookie.Name)

			continue
		}
		cc.cookies[cookie.Name] = cookie
	}
	if m := csrfPattern.FindStringSubmatch(rec.Body.String()); m != nil {
		cc.csrf = m[1]
	}

	return rec
}

func (cc *consoleClient) get(path string) *httptest.ResponseRecorder {
	return cc.do(httptest.NewRequest(nethttp.MethodGet, path, nil))
}

func (cc *consoleClient) post(path string, form url.Values) *httptest.ResponseRecorder {
	form.Set("_csrf", cc.csrf)
	req := httptest.NewRequest(nethttp.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return cc.do(req)
}

func newTestConsole(t *testing.T) (*consoleClient, *mockSvc.MockIdentityProvider, *memory.DocumentStore) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Session = "test-session-secret"
	cfg.Session = &config.SessionConfig{TTL: time.Hour, CookieName: "mall_console_session"}

	store := memory.NewDocumentStore()
	provider := mockSvc.NewMockIdentityProvider(t)

	catalog := console.Catalog{
		Shops:    impl.NewShopService(impl.ShopServiceParams{Store: store, Logger: logger}),
		Products: impl.NewProductService(impl.ProductServiceParams{Store: store, Logger: logger}),
		Offers:   impl.NewOfferService(impl.OfferServiceParams{Store: store, Logger: logger}),
	}
	lc := fxtest.NewLifecycle(t)
	registry := console.NewRegistry(console.RegistryParams{
		Lc:             lc,
		GatewayFactory: impl.NewIdentityGatewayFactory(impl.GatewayParams{Provider: provider, Store: store, Logger: logger}),
		Catalog:        catalog,
		Config:         cfg,
		Logger:         logger,
	})

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	qr := qrcode.NewQRCodeService(cfg)
	sessions := middleware.NewSessionMiddleware(registry, tokens, cfg, logger)
	server := NewEcho(cfg, logger, renderer, router.RouterParams{
		AuthHandler:       handler.NewAuthHandler(sessions, logger),
		PageHandler:       handler.NewPageHandler(),
		ShopHandler:       handler.NewShopHandler(catalog.Shops, qr, logger),
		ProductHandler:    handler.NewProductHandler(),
		OfferHandler:      handler.NewOfferHandler(),
		CatalogHandler:    handler.NewCatalogHandler(catalog.Shops, catalog.Products, catalog.Offers, qr),
		SessionMiddleware: sessions,
	})

	lc.RequireStart()
	t.Cleanup(func() {
		lc.RequireStop()
		_ = store.Close()
	})

	return &consoleClient{t: t, server: server, cookies: map[string]*nethttp.Cookie{}}, provider, store
}

func signIn(t *testing.T, cc *consoleClient, provider *mockSvc.MockIdentityProvider, store *memory.DocumentStore, role entity.Role) {
	require.NoError(t, store.Set(context.Background(), repository.CollectionUsers, "uid-1", map[string]any{
		entity.UserFieldEmail: "staff@mall.test",
		entity.UserFieldRole:  role.String(),
	}))
	provider.EXPECT().
		SignIn(mock.Anything, "staff@mall.test", "secret1").
		Return(&entity.Identity{UID: "uid-1", Email: "staff@mall.test"}, nil).
		Once()

	rec := cc.get("/login")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.NotEmpty(t, cc.csrf)

	rec = cc.post("/login", url.Values{"email": {"staff@mall.test"}, "password": {"secret1"}})
	require.Equal(t, nethttp.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestConsole_RedirectsSignedOutBrowsers(t *testing.T) {
	cc, _, _ := newTestConsole(t)

	rec := cc.get("/pages/shops")
	assert.Equal(t, nethttp.StatusSeeOther, rec.Code)
	assert.Equal(t, middleware.LoginPath, rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, cc.cookies, "mall_console_session")

	rec = cc.get("/api/v1/shops")
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"UNAUTHENTICATED"`)

	rec = cc.get("/health")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestConsole_RejectsForgedCSRFToken(t *testing.T) {
	cc, _, _ := newTestConsole(t)
	cc.get("/login")

	req := httptest.NewRequest(nethttp.MethodPost, "/login", strings.NewReader("email=a%40b.c&password=x&_csrf=forged"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := cc.do(req)

	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func TestConsole_LoginFailureShowsProviderMessage(t *testing.T) {
	cc, provider, _ := newTestConsole(t)
	provider.EXPECT().
		SignIn(mock.Anything, "nobody@mall.test", "pw").
		Return(nil, assert.AnError).
		Once()

	cc.get("/login")
	rec := cc.post("/login", url.Values{"email": {"nobody@mall.test"}, "password": {"pw"}})

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "nobody@mall.test")

	rec = cc.post("/login", url.Values{"email": {""}, "password": {""}})
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email and password are required")
}

func TestConsole_AdminManagesShops(t *testing.T) {
	cc, provider, store := newTestConsole(t)
	signIn(t, cc, provider, store, entity.RoleAdmin)

	rec := cc.get("/")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), view.EmptyDashboard)

	rec = cc.get("/shops/new")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Add Shop")

	rec = cc.post("/shops", url.Values{"name": {"Alpha Coffee"}, "floor": {"1F"}, "category": {"Food"}})
	require.Equal(t, nethttp.StatusSeeOther, rec.Code)
	assert.Equal(t, "/pages/shops", rec.Header().Get(echo.HeaderLocation))

	rec = cc.get("/pages/shops")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alpha Coffee")

	rec = cc.post("/shops", url.Values{"name": {"No Floor"}})
	assert.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Name, floor, and category are required")
	assert.Contains(t, rec.Body.String(), `value="No Floor"`)

	rec = cc.get("/api/v1/shops")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var body struct {
		Data []entity.Shop `json:"data"`
		Meta struct {
			Count int `json:"count"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, 1, body.Meta.Count)

	rec = cc.get("/shops/" + body.Data[0].ID + "/qrcode.png")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	rec = cc.post("/shops/"+body.Data[0].ID+"/delete", url.Values{})
	require.Equal(t, nethttp.StatusSeeOther, rec.Code)
	rec = cc.get("/pages/shops")
	assert.Contains(t, rec.Body.String(), view.EmptyShops)
}

func TestConsole_UserCannotOpenAdminPages(t *testing.T) {
	cc, provider, store := newTestConsole(t)
	signIn(t, cc, provider, store, entity.RoleUser)

	rec := cc.get("/pages/reports")
	require.Equal(t, nethttp.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	rec = cc.get("/")
	assert.Contains(t, rec.Body.String(), "Only administrators can change the directory")

	rec = cc.post("/shops", url.Values{"name": {"Sneaky"}, "floor": {"1F"}, "category": {"Food"}})
	assert.Equal(t, nethttp.StatusSeeOther, rec.Code)

	shops, err := store.List(context.Background(), repository.CollectionShops)
	require.NoError(t, err)
	assert.Empty(t, shops)

	rec = cc.get("/pages/unknown")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestConsole_CompareNeedsTwoProducts(t *testing.T) {
	cc, provider, store := newTestConsole(t)
	signIn(t, cc, provider, store, entity.RoleAdmin)

	rec := cc.get("/products/compare")
	require.Equal(t, nethttp.StatusSeeOther, rec.Code)

	rec = cc.get("/pages/products")
	assert.Contains(t, rec.Body.String(), "Please select at least 2 products to compare")
}

func TestConsole_LogoutForgetsSession(t *testing.T) {
	cc, provider, store := newTestConsole(t)
	signIn(t, cc, provider, store, entity.RoleUser)
	provider.EXPECT().RevokeSessions(mock.Anything, "uid-1").Return(nil).Once()

	cc.get("/")
	rec := cc.post("/logout", url.Values{})
	require.Equal(t, nethttp.StatusSeeOther, rec.Code)
	assert.Equal(t, middleware.LoginPath, rec.Header().Get(echo.HeaderLocation))
	assert.NotContains(t, cc.cookies, "mall_console_session")

	rec = cc.get("/")
	assert.Equal(t, nethttp.StatusSeeOther, rec.Code)
}

func TestConsole_SelectionKeepsSearchAndFilter(t *testing.T) {
	cc, provider, store := newTestConsole(t)
	ctx := context.Background()

	ids := map[string]string{}
	for _, p := range []struct {
		name, category string
		price          float64
	}{
		{"Desk Lamp", "Home", 30},
		{"Floor Lamp", "Garden", 80},
		{"Latte", "Food", 4.5},
	} {
		id, err := store.Add(ctx, repository.CollectionProducts, map[string]any{
			entity.ProductFieldName:     p.name,
			entity.ProductFieldShopID:   "s1",
			entity.ProductFieldCategory: p.category,
			entity.ProductFieldPrice:    p.price,
		})
		require.NoError(t, err)
		ids[p.name] = id
	}
	signIn(t, cc, provider, store, entity.RoleUser)

	rec := cc.get("/products/search?q=lamp")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Latte")

	rec = cc.post("/products/"+ids["Desk Lamp"]+"/select", url.Values{"category": {"Home"}, "minPrice": {""}})
	require.Equal(t, nethttp.StatusSeeOther, rec.Code)
	require.Equal(t, "/products?category=Home", rec.Header().Get(echo.HeaderLocation))

	rec = cc.get("/products?category=Home")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Desk Lamp")
	assert.NotContains(t, rec.Body.String(), "Floor Lamp")
	assert.Contains(t, rec.Body.String(), "Compare (1)")

	rec = cc.post("/products/"+ids["Floor Lamp"]+"/select", url.Values{})
	require.Equal(t, nethttp.StatusSeeOther, rec.Code)
	require.Equal(t, "/products", rec.Header().Get(echo.HeaderLocation))

	rec = cc.get("/products")
	assert.Contains(t, rec.Body.String(), "Desk Lamp")
	assert.Contains(t, rec.Body.String(), "Floor Lamp")
	assert.NotContains(t, rec.Body.String(), "Latte")
	assert.Contains(t, rec.Body.String(), "Compare (2)")

	rec = cc.get("/pages/products")
	assert.Contains(t, rec.Body.String(), "Latte")
	assert.Contains(t, rec.Body.String(), "Compare (2)")
}
