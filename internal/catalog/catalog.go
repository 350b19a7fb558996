// Package catalog maintains which products belong to a curated catalog.
// All operations are pure: they return an updated Catalog value and never
// mutate their input.
package catalog

import "github.com/mfortin/shopshelf/internal/domain"

// Contains reports whether productID is a member of c.
func Contains(c domain.Catalog, productID string) bool {
	for _, id := range c.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// AddProduct returns c with productID appended to its membership. Adding an
// id that is already a member is a no-op.
func AddProduct(c domain.Catalog, productID string) domain.Catalog {
	if Contains(c, productID) {
		return c
	}
	ids := make([]string, 0, len(c.ProductIDs)+1)
	ids = append(ids, c.ProductIDs...)
	ids = append(ids, productID)
	c.ProductIDs = ids
	return c
}

// RemoveProduct returns c with productID removed from its membership.
// Removing an absent id is a no-op.
func RemoveProduct(c domain.Catalog, productID string) domain.Catalog {
	if !Contains(c, productID) {
		return c
	}
	ids := make([]string, 0, len(c.ProductIDs)-1)
	for _, id := range c.ProductIDs {
		if id != productID {
			ids = append(ids, id)
		}
	}
	c.ProductIDs = ids
	return c
}
