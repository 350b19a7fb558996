// Package storefront computes the customer-visible product list for a
// catalog under optional filters. Everything here is a pure function over
// the inputs; callers may memoize results if they wish.
package storefront

import (
	"strings"

	"github.com/mfortin/shopshelf/internal/domain"
)

// GeneralGroup is the bucket label for products whose category id does not
// resolve to a known category.
const GeneralGroup = "General"

// Filter narrows a catalog's products. Zero-value fields are ignored; set
// fields compose by logical AND.
type Filter struct {
	CategoryID string
	LocationID string
	Search     string
}

// VisibleProducts returns the members of c drawn from all, restricted by f.
// Products keep the relative order they have in all. Ids in c that no longer
// exist in all are simply not visible.
func VisibleProducts(all []domain.Product, c domain.Catalog, f Filter) []domain.Product {
	members := make(map[string]struct{}, len(c.ProductIDs))
	for _, id := range c.ProductIDs {
		members[id] = struct{}{}
	}

	needle := strings.ToLower(strings.TrimSpace(f.Search))

	visible := make([]domain.Product, 0, len(c.ProductIDs))
	for _, p := range all {
		if _, ok := members[p.ID]; !ok {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.LocationID != "" && p.LocationID != f.LocationID {
			continue
		}
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

// matchesSearch reports whether needle (already lowercased) appears in the
// product's name or description.
func matchesSearch(p domain.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// CategoryGroup is one bucket of the grouped storefront view.
type CategoryGroup struct {
	Name     string           `json:"name"`
	Products []domain.Product `json:"products"`
}

// GroupByCategory buckets products by category display name, falling back to
// GeneralGroup when a product's category id does not resolve. Groups appear
// in first-product order and products keep their input order within a group.
func GroupByCategory(products []domain.Product, categories []domain.Category) []CategoryGroup {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	index := make(map[string]int)
	groups := make([]CategoryGroup, 0)
	for _, p := range products {
		name := names[p.CategoryID]
		if name == "" {
			name = GeneralGroup
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, CategoryGroup{Name: name})
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	return groups
}
