package view

import (
	"slices"
	"strings"

	"mallconsole/internal/console"
	"mallconsole/internal/usecase"
)

// Option is an entry of a select box.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// ShopFormView is the shop editor.
type ShopFormView struct {
	ID         string
	Title      string
	Form       *usecase.ShopForm
	Floors     []Option
	Categories []Option
}

// ProductFormView is the product editor.
type ProductFormView struct {
	ID      string
	Title   string
	Form    *usecase.ProductForm
	Shops   []Option
	InStock bool
}

// OfferFormView is the offer editor.
type OfferFormView struct {
	ID            string
	Title         string
	Form          *usecase.OfferForm
	Shops         []Option
	Products      []Option
	DiscountTypes []Option
	IsActive      bool
}

// ShopEditor builds the shop editor. An empty id means a new shop.
func ShopEditor(snap console.Snapshot, id string, form *usecase.ShopForm) ShopFormView {
	return ShopFormView{
		ID:         id,
		Title:      editorTitle(id, "Shop"),
		Form:       form,
		Floors:     options(snap.Floors, form.Floor),
		Categories: options(snap.Categories, form.Category),
	}
}

// ProductEditor builds the product editor with the loaded shops to pick from.
func ProductEditor(snap console.Snapshot, id string, form *usecase.ProductForm) ProductFormView {
	return ProductFormView{
		ID:      id,
		Title:   editorTitle(id, "Product"),
		Form:    form,
		Shops:   shopOptions(snap, form.ShopID),
		InStock: form.InStock == nil || *form.InStock,
	}
}

// OfferEditor builds the offer editor with the loaded shops and products to pick from.
func OfferEditor(snap console.Snapshot, id string, form *usecase.OfferForm) OfferFormView {
	v := OfferFormView{
		ID:       id,
		Title:    editorTitle(id, "Offer"),
		Form:     form,
		Shops:    shopOptions(snap, form.ShopID),
		IsActive: form.IsActive == nil || *form.IsActive,
		DiscountTypes: []Option{
			{Value: "percentage", Label: "Percentage", Selected: form.DiscountType != "fixed"},
			{Value: "fixed", Label: "Fixed amount", Selected: form.DiscountType == "fixed"},
		},
	}
	for i := range snap.Products {
		p := &snap.Products[i]
		v.Products = append(v.Products, Option{
			Value:    p.ID,
			Label:    p.Name,
			Selected: slices.Contains(form.ProductIDs, p.ID),
		})
	}

	return v
}

func editorTitle(id, noun string) string {
	if id == "" {
		return "Add " + noun
	}

	return "Edit " + noun
}

// options lists values and keeps current selectable even when it is not among them.
func options(values []string, current string) []Option {
	opts := make([]Option, 0, len(values)+1)
	found := false
	for _, value := range values {
		selected := value == current
		found = found || selected
		opts = append(opts, Option{Value: value, Label: value, Selected: selected})
	}
	if current = strings.TrimSpace(current); current != "" && !found {
		opts = append(opts, Option{Value: current, Label: current, Selected: true})
	}

	return opts
}

func shopOptions(snap console.Snapshot, current string) []Option {
	opts := make([]Option, 0, len(snap.Shops))
	for i := range snap.Shops {
		shop := &snap.Shops[i]
		opts = append(opts, Option{Value: shop.ID, Label: shop.Name, Selected: shop.ID == current})
	}

	return opts
}
