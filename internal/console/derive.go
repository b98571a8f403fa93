package console

import "mallconsole/internal/domain/entity"

// deriveCategories returns the distinct non-empty categories of the shops,
// then those only seen on products, in first-seen order.
func deriveCategories(shops []*entity.Shop, products []*entity.Product) []string {
	seen := make(map[string]struct{})
	categories := []string{}

	add := func(category string) {
		if category == "" {
			return
		}
		if _, ok := seen[category]; ok {
			return
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}

	for _, shop := range shops {
		add(shop.Category)
	}
	for _, p := range products {
		add(p.Category)
	}

	return categories
}

// deriveFloors returns the distinct non-empty shop floors in first-seen order.
func deriveFloors(shops []*entity.Shop) []string {
	seen := make(map[string]struct{})
	floors := []string{}

	for _, shop := range shops {
		if shop.Floor == "" {
			continue
		}
		if _, ok := seen[shop.Floor]; ok {
			continue
		}
		seen[shop.Floor] = struct{}{}
		floors = append(floors, shop.Floor)
	}

	return floors
}
