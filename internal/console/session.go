package console

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	deliverycontext "mallconsole/internal/delivery/context"
	"mallconsole/internal/domain/entity"
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/usecase"
	"mallconsole/internal/util"
)

const minCompareSelection = 2

// Session is the application context of one signed-in browser. It owns the
// state and the identity gateway, and runs every user action against them.
type Session struct {
	id      string
	state   *State
	gateway usecase.IdentityGateway
	catalog Catalog
	logger  *slog.Logger

	unsubscribe func()

	noticeMu sync.Mutex
	notice   string
}

// NewSession creates a signed-out session and starts listening to identity changes.
func NewSession(id string, gateway usecase.IdentityGateway, catalog Catalog, logger *slog.Logger) *Session {
	s := &Session{
		id:      id,
		state:   NewState(),
		gateway: gateway,
		catalog: catalog,
		logger:  logger,
	}
	s.unsubscribe = gateway.Subscribe(s.onIdentityChange)

	return s
}

// ID returns the session id carried by the session cookie.
func (s *Session) ID() string {
	return s.id
}

// State exposes the session state.
func (s *Session) State() *State {
	return s.state
}

func (s *Session) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("session_id", s.id))
}

// Close detaches the session from its gateway.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// onIdentityChange loads the catalog on sign-in and resets the state on sign-out.
func (s *Session) onIdentityChange(ctx context.Context, identity *entity.Identity, role entity.Role) {
	if identity == nil {
		s.state.Reset()
		s.log(ctx).Info("Session state reset")

		return
	}

	s.state.SetIdentity(identity, role)
	if err := s.state.ReloadAll(ctx, s.catalog); err != nil {
		s.log(ctx).Warn("Initial load incomplete", slog.Any("error", err))
		s.Notify(err)
	}
}

// SignIn authenticates the session. The catalog is loaded by the identity listener.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	_, _, err := s.gateway.SignIn(ctx, email, password)

	return err
}

// SignUp registers an account without signing the session in.
func (s *Session) SignUp(ctx context.Context, email, password string, role entity.Role) error {
	_, err := s.gateway.SignUp(ctx, email, password, role)

	return err
}

// SignOut ends the provider session. The state is reset by the identity listener.
func (s *Session) SignOut(ctx context.Context) error {
	return s.gateway.SignOut(ctx)
}

// Authenticated reports whether an identity is signed in.
func (s *Session) Authenticated() bool {
	identity, _ := s.gateway.Current()

	return identity != nil
}

// Snapshot returns the state for rendering.
func (s *Session) Snapshot() Snapshot {
	return s.state.Snapshot()
}

// Navigate marks page active and loads the collection it shows unless that
// collection is already loaded. Loads still in flight are discarded.
func (s *Session) Navigate(ctx context.Context, page entity.Page) error {
	if !page.IsValid() {
		return domainerrors.NewNotFoundError("Page")
	}

	s.state.Advance()
	s.state.SetPage(page)
	if s.state.Loaded(page) {
		if page == entity.PageCategories || page == entity.PageFloors {
			s.state.RecomputeDerived()
		}

		return nil
	}
	s.log(ctx).Debug("Loading page data", slog.String("page", string(page)))

	switch page {
	case entity.PageShops:
		return s.state.ReloadShops(ctx, s.catalog.Shops)
	case entity.PageProducts:
		return s.state.ReloadProducts(ctx, s.catalog.Products)
	case entity.PageOffers:
		return s.state.ReloadOffers(ctx, s.catalog.Offers)
	default:
	}

	return nil
}

// Refresh navigates to page after dropping whatever it had loaded, so search
// results are replaced by the full collection.
func (s *Session) Refresh(ctx context.Context, page entity.Page) error {
	s.state.Invalidate(page)

	return s.Navigate(ctx, page)
}

// Notify records a failure to show once on the next rendered page.
func (s *Session) Notify(err error) {
	if err == nil {
		return
	}

	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()

	s.notice = domainerrors.UserMessage(err)
}

// TakeNotice returns the pending notice and clears it.
func (s *Session) TakeNotice() string {
	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()

	notice := s.notice
	s.notice = ""

	return notice
}

func (s *Session) requireAdmin() error {
	if !s.state.Role().IsAdmin() {
		return domainerrors.ErrForbidden
	}

	return nil
}

// SubmitShop creates a shop when id is empty, updates it otherwise, then reloads shops.
func (s *Session) SubmitShop(ctx context.Context, id string, form *usecase.ShopForm) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}

	if id == "" {
		if _, err := s.catalog.Shops.Create(ctx, form); err != nil {
			return err
		}
	} else if err := s.catalog.Shops.Update(ctx, id, form); err != nil {
		return err
	}
	s.state.Advance()

	return s.state.ReloadShops(ctx, s.catalog.Shops)
}

// SubmitProduct creates or updates a product, copying the current shop name onto it.
func (s *Session) SubmitProduct(ctx context.Context, id string, form *usecase.ProductForm) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}

	form.ShopName = s.shopName(form.ShopID)
	if id == "" {
		if _, err := s.catalog.Products.Create(ctx, form); err != nil {
			return err
		}
	} else if err := s.catalog.Products.Update(ctx, id, form); err != nil {
		return err
	}
	s.state.Advance()

	return s.state.ReloadProducts(ctx, s.catalog.Products)
}

// SubmitOffer creates or updates an offer, copying the current shop name onto it.
func (s *Session) SubmitOffer(ctx context.Context, id string, form *usecase.OfferForm) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}

	form.ShopName = s.shopName(form.ShopID)
	if id == "" {
		if _, err := s.catalog.Offers.Create(ctx, form); err != nil {
			return err
		}
	} else if err := s.catalog.Offers.Update(ctx, id, form); err != nil {
		return err
	}
	s.state.Advance()

	return s.state.ReloadOffers(ctx, s.catalog.Offers)
}

func (s *Session) shopName(shopID string) string {
	if shop, ok := s.state.FindShop(strings.TrimSpace(shopID)); ok {
		return shop.Name
	}

	return ""
}

// DeleteShop removes a shop and reloads shops.
func (s *Session) DeleteShop(ctx context.Context, id string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if err := s.catalog.Shops.Delete(ctx, id); err != nil {
		return err
	}
	s.state.Advance()

	return s.state.ReloadShops(ctx, s.catalog.Shops)
}

// DeleteProduct removes a product and reloads products.
func (s *Session) DeleteProduct(ctx context.Context, id string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if err := s.catalog.Products.Delete(ctx, id); err != nil {
		return err
	}
	s.state.Advance()

	return s.state.ReloadProducts(ctx, s.catalog.Products)
}

// DeleteOffer removes an offer and reloads offers.
func (s *Session) DeleteOffer(ctx context.Context, id string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if err := s.catalog.Offers.Delete(ctx, id); err != nil {
		return err
	}
	s.state.Advance()

	return s.state.ReloadOffers(ctx, s.catalog.Offers)
}

// SearchShops replaces the loaded shops with the matches of query.
// A blank query reloads the full list.
func (s *Session) SearchShops(ctx context.Context, query string) error {
	gen := s.state.Advance()
	if strings.TrimSpace(query) == "" {
		return s.state.ReloadShops(ctx, s.catalog.Shops)
	}

	shops, err := s.catalog.Shops.Search(ctx, query)
	if err != nil {
		return err
	}
	s.state.ReplaceShops(gen, shops)

	return nil
}

// SearchProducts replaces the loaded products with the matches of query.
func (s *Session) SearchProducts(ctx context.Context, query string) error {
	gen := s.state.Advance()
	if strings.TrimSpace(query) == "" {
		return s.state.ReloadProducts(ctx, s.catalog.Products)
	}

	products, err := s.catalog.Products.Search(ctx, query)
	if err != nil {
		return err
	}
	s.state.ReplaceProducts(gen, products)

	return nil
}

// SearchOffers replaces the loaded offers with the matches of query.
func (s *Session) SearchOffers(ctx context.Context, query string) error {
	gen := s.state.Advance()
	if strings.TrimSpace(query) == "" {
		return s.state.ReloadOffers(ctx, s.catalog.Offers)
	}

	offers, err := s.catalog.Offers.Search(ctx, query)
	if err != nil {
		return err
	}
	s.state.ReplaceOffers(gen, offers)

	return nil
}

// ToggleSelection flips the comparison mark of a product.
func (s *Session) ToggleSelection(productID string) bool {
	return s.state.ToggleSelection(productID)
}

// SelectAll marks every loaded product, or clears the marks when selected is false.
func (s *Session) SelectAll(selected bool) {
	if selected {
		s.state.SelectAll()

		return
	}
	s.state.ClearSelection()
}

// CompareSelected fetches the marked products. At least two must be marked.
func (s *Session) CompareSelected(ctx context.Context) ([]*entity.Product, error) {
	ids := s.state.Selected()
	if len(ids) < minCompareSelection {
		return nil, domainerrors.NewValidationError("Please select at least 2 products to compare")
	}

	return s.catalog.Products.CompareByIDs(ctx, ids), nil
}

// NewShopForm returns the defaults of the shop editor.
func (s *Session) NewShopForm() *usecase.ShopForm {
	return &usecase.ShopForm{}
}

// NewProductForm returns the defaults of the product editor.
func (s *Session) NewProductForm() *usecase.ProductForm {
	inStock := true

	return &usecase.ProductForm{InStock: &inStock}
}

// NewOfferForm returns the defaults of the offer editor.
func (s *Session) NewOfferForm() *usecase.OfferForm {
	isActive := true

	return &usecase.OfferForm{
		DiscountType: string(entity.DiscountPercentage),
		IsActive:     &isActive,
	}
}

// EditShop populates the shop editor from a loaded shop.
func (s *Session) EditShop(id string) (*usecase.ShopForm, error) {
	shop, ok := s.state.FindShop(id)
	if !ok {
		return nil, domainerrors.NewNotFoundError("Shop")
	}

	return &usecase.ShopForm{
		Name:         shop.Name,
		Description:  shop.Description,
		Floor:        shop.Floor,
		Category:     shop.Category,
		Location:     shop.Location,
		Contact:      shop.Contact,
		Email:        shop.Email,
		OpeningHours: shop.OpeningHours,
	}, nil
}

// EditProduct populates the product editor from a loaded product.
func (s *Session) EditProduct(id string) (*usecase.ProductForm, error) {
	p, ok := s.state.FindProduct(id)
	if !ok {
		return nil, domainerrors.NewNotFoundError("Product")
	}
	inStock := p.InStock

	return &usecase.ProductForm{
		Name:        p.Name,
		Description: p.Description,
		ShopID:      p.ShopID,
		ShopName:    p.ShopName,
		Category:    p.Category,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Brand:       p.Brand,
		Features:    strings.Join(p.Features, ", "),
		ImageURL:    p.ImageURL,
		InStock:     &inStock,
	}, nil
}

// EditOffer populates the offer editor from a loaded offer.
func (s *Session) EditOffer(id string) (*usecase.OfferForm, error) {
	o, ok := s.state.FindOffer(id)
	if !ok {
		return nil, domainerrors.NewNotFoundError("Offer")
	}
	isActive := o.IsActive
	discountType := string(o.DiscountType)
	if discountType == "" {
		discountType = string(entity.DiscountPercentage)
	}

	return &usecase.OfferForm{
		Title:        o.Title,
		Description:  o.Description,
		ShopID:       o.ShopID,
		ShopName:     o.ShopName,
		Discount:     util.FormatNumber(o.Discount),
		DiscountType: discountType,
		ProductIDs:   o.ProductIDs,
		ValidFrom:    util.FormatDateInput(o.ValidFrom),
		ValidUntil:   util.FormatDateInput(o.ValidUntil),
		ImageURL:     o.ImageURL,
		Terms:        o.Terms,
		IsActive:     &isActive,
	}, nil
}
