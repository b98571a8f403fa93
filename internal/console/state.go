// Package console holds the per-browser application context of the admin console:
// the loaded catalog, the signed-in identity and the navigation state.
package console

import (
	"context"
	"slices"
	"sync"

	"mallconsole/internal/domain/entity"
	"mallconsole/internal/errors"
	"mallconsole/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Catalog groups the resource usecases the state is loaded from.
type Catalog struct {
	fx.In

	Shops    usecase.ShopUsecase
	Products usecase.ProductUsecase
	Offers   usecase.OfferUsecase
}

// State is the in-memory snapshot owned by one console session.
// Network calls run outside the lock; results are applied only when the
// generation captured before the call is still current.
type State struct {
	mu         sync.Mutex
	generation uint64

	page     entity.Page
	identity *entity.Identity
	role     entity.Role

	shops      []*entity.Shop
	products   []*entity.Product
	offers     []*entity.Offer
	categories []string
	floors     []string

	// set once a collection has been applied since sign-in, cleared by Invalidate
	shopsLoaded    bool
	productsLoaded bool
	offersLoaded   bool

	selected []string
}

// NewState creates an empty state on the dashboard.
func NewState() *State {
	return &State{page: entity.PageDashboard}
}

// Generation returns the current load generation.
func (s *State) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generation
}

// Advance starts a new generation. Loads begun under older generations are discarded.
func (s *State) Advance() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++

	return s.generation
}

// SetPage marks page as active.
func (s *State) SetPage(page entity.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.page = page
}

// SetIdentity caches the signed-in identity and its role.
func (s *State) SetIdentity(identity *entity.Identity, role entity.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = identity
	s.role = role
}

// SetRole updates the advisory role.
func (s *State) SetRole(role entity.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.role = role
}

// Role returns the advisory role.
func (s *State) Role() entity.Role {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.role
}

// Reset empties the state and invalidates every load in flight.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.page = entity.PageDashboard
	s.identity = nil
	s.role = ""
	s.shops = nil
	s.products = nil
	s.offers = nil
	s.categories = nil
	s.floors = nil
	s.selected = nil
	s.shopsLoaded = false
	s.productsLoaded = false
	s.offersLoaded = false
}

// Loaded reports whether the collection shown on page is loaded and not
// invalidated. Pages without a collection of their own are always loaded.
func (s *State) Loaded(page entity.Page) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch page {
	case entity.PageShops:
		return s.shopsLoaded
	case entity.PageProducts:
		return s.productsLoaded
	case entity.PageOffers:
		return s.offersLoaded
	default:
		return true
	}
}

// Invalidate marks the collection shown on page for reload on the next navigation.
func (s *State) Invalidate(page entity.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch page {
	case entity.PageShops:
		s.shopsLoaded = false
	case entity.PageProducts:
		s.productsLoaded = false
	case entity.PageOffers:
		s.offersLoaded = false
	default:
	}
}

// ReloadAll lists shops, products and offers concurrently. A collection whose
// fetch fails keeps its previous value; the failures are joined in the result.
func (s *State) ReloadAll(ctx context.Context, catalog Catalog) error {
	gen := s.Generation()

	var (
		shops                          []*entity.Shop
		products                       []*entity.Product
		offers                         []*entity.Offer
		shopsErr, productsErr, offersErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		shops, shopsErr = catalog.Shops.List(ctx)

		return nil
	})
	g.Go(func() error {
		products, productsErr = catalog.Products.List(ctx)

		return nil
	})
	g.Go(func() error {
		offers, offersErr = catalog.Offers.List(ctx)

		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return nil
	}
	if shopsErr == nil {
		s.shops = shops
		s.shopsLoaded = true
	}
	if productsErr == nil {
		s.products = products
		s.productsLoaded = true
	}
	if offersErr == nil {
		s.offers = offers
		s.offersLoaded = true
	}
	s.recomputeLocked()

	return errors.Join(shopsErr, productsErr, offersErr)
}

// ReloadShops refreshes the shop list and the data derived from it.
func (s *State) ReloadShops(ctx context.Context, shops usecase.ShopUsecase) error {
	gen := s.Generation()
	loaded, err := shops.List(ctx)
	if err != nil {
		return err
	}
	s.ReplaceShops(gen, loaded)

	return nil
}

// ReloadProducts refreshes the product list and the data derived from it.
func (s *State) ReloadProducts(ctx context.Context, products usecase.ProductUsecase) error {
	gen := s.Generation()
	loaded, err := products.List(ctx)
	if err != nil {
		return err
	}
	s.ReplaceProducts(gen, loaded)

	return nil
}

// ReloadOffers refreshes the offer list.
func (s *State) ReloadOffers(ctx context.Context, offers usecase.OfferUsecase) error {
	gen := s.Generation()
	loaded, err := offers.List(ctx)
	if err != nil {
		return err
	}
	s.ReplaceOffers(gen, loaded)

	return nil
}

// ReplaceShops installs shops loaded under gen. It reports whether they were applied.
func (s *State) ReplaceShops(gen uint64, shops []*entity.Shop) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.shops = shops
	s.shopsLoaded = true
	s.recomputeLocked()

	return true
}

// ReplaceProducts installs products loaded under gen. It reports whether they were applied.
func (s *State) ReplaceProducts(gen uint64, products []*entity.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.products = products
	s.productsLoaded = true
	s.recomputeLocked()

	return true
}

// ReplaceOffers installs offers loaded under gen. It reports whether they were applied.
func (s *State) ReplaceOffers(gen uint64, offers []*entity.Offer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.offers = offers
	s.offersLoaded = true

	return true
}

// RecomputeDerived rebuilds categories and floors from the loaded collections.
func (s *State) RecomputeDerived() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recomputeLocked()
}

func (s *State) recomputeLocked() {
	s.categories = deriveCategories(s.shops, s.products)
	s.floors = deriveFloors(s.shops)
}

// ToggleSelection flips the comparison mark of a product and reports whether it is now selected.
func (s *State) ToggleSelection(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.selected {
		if id == productID {
			s.selected = append(s.selected[:i:i], s.selected[i+1:]...)

			return false
		}
	}
	s.selected = append(s.selected, productID)

	return true
}

// SelectAll marks every loaded product for comparison.
func (s *State) SelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if !slices.Contains(s.selected, p.ID) {
			s.selected = append(s.selected, p.ID)
		}
	}
}

// ClearSelection drops every comparison mark.
func (s *State) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
}

// Selected returns the marked product ids in the order they were marked.
// Marks survive reloads, including ids that no longer resolve.
func (s *State) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.selected...)
}

// FindShop returns a copy of a loaded shop.
func (s *State) FindShop(id string) (*entity.Shop, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, shop := range s.shops {
		if shop.ID == id {
			return cloneShop(shop), true
		}
	}

	return nil, false
}

// FindProduct returns a copy of a loaded product.
func (s *State) FindProduct(id string) (*entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return cloneProduct(p), true
		}
	}

	return nil, false
}

// FindOffer returns a copy of a loaded offer.
func (s *State) FindOffer(id string) (*entity.Offer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.offers {
		if o.ID == id {
			return cloneOffer(o), true
		}
	}

	return nil, false
}

// Snapshot returns a deep copy safe to read without the lock.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Generation: s.generation,
		Page:       s.page,
		Role:       s.role,
		Shops:      make([]entity.Shop, 0, len(s.shops)),
		Products:   make([]entity.Product, 0, len(s.products)),
		Offers:     make([]entity.Offer, 0, len(s.offers)),
		Categories: append([]string{}, s.categories...),
		Floors:     append([]string{}, s.floors...),
		Selected:   append([]string{}, s.selected...),
	}
	if s.identity != nil {
		identity := *s.identity
		snap.Identity = &identity
	}
	for _, shop := range s.shops {
		snap.Shops = append(snap.Shops, *cloneShop(shop))
	}
	for _, p := range s.products {
		snap.Products = append(snap.Products, *cloneProduct(p))
	}
	for _, o := range s.offers {
		snap.Offers = append(snap.Offers, *cloneOffer(o))
	}

	return snap
}
