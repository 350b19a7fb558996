package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfortin/shopshelf/internal/domain"
)

func product(id, name, categoryID, locationID string) domain.Product {
	return domain.Product{ID: id, Name: name, CategoryID: categoryID, LocationID: locationID}
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestVisibleProducts_RestrictedToMembers(t *testing.T) {
	all := []domain.Product{
		product("p-1", "Pen", "cat-a", "loc-a"),
		product("p-2", "Pad", "cat-a", "loc-a"),
		product("p-3", "Mug", "cat-b", "loc-b"),
	}
	c := domain.Catalog{ProductIDs: []string{"p-1", "p-3"}}

	visible := VisibleProducts(all, c, Filter{})
	assert.Equal(t, []string{"p-1", "p-3"}, ids(visible))
}

func TestVisibleProducts_DanglingIDsInvisible(t *testing.T) {
	all := []domain.Product{product("p-1", "Pen", "cat-a", "loc-a")}
	c := domain.Catalog{ProductIDs: []string{"p-1", "p-deleted"}}

	visible := VisibleProducts(all, c, Filter{})
	assert.Equal(t, []string{"p-1"}, ids(visible))
}

func TestVisibleProducts_FiltersCompose(t *testing.T) {
	all := []domain.Product{
		product("p-1", "Pen", "cat-a", "loc-a"),
		product("p-2", "Pad", "cat-a", "loc-b"),
		product("p-3", "Mug", "cat-b", "loc-b"),
		product("p-4", "Jar", "cat-b", "loc-a"),
		product("p-5", "Cap", "cat-a", "loc-b"),
	}
	c := domain.Catalog{ProductIDs: []string{"p-1", "p-2", "p-3", "p-4", "p-5"}}

	both := VisibleProducts(all, c, Filter{CategoryID: "cat-a", LocationID: "loc-b"})
	assert.Equal(t, []string{"p-2", "p-5"}, ids(both))

	// Applying the filters one at a time must agree with applying them together.
	byCategory := VisibleProducts(all, c, Filter{CategoryID: "cat-a"})
	sub := domain.Catalog{ProductIDs: ids(byCategory)}
	chained := VisibleProducts(byCategory, sub, Filter{LocationID: "loc-b"})
	assert.Equal(t, ids(both), ids(chained))
}

func TestVisibleProducts_SearchCaseInsensitive(t *testing.T) {
	all := []domain.Product{
		{ID: "p-1", Name: "Whole Milk"},
		{ID: "p-2", Name: "Butter", Description: "pairs well with milk"},
		{ID: "p-3", Name: "Eggs"},
	}
	c := domain.Catalog{ProductIDs: []string{"p-1", "p-2", "p-3"}}

	visible := VisibleProducts(all, c, Filter{Search: "MILK"})
	assert.Equal(t, []string{"p-1", "p-2"}, ids(visible))
}

func TestVisibleProducts_EmptyInputs(t *testing.T) {
	assert.Empty(t, VisibleProducts(nil, domain.Catalog{}, Filter{}))
	assert.Empty(t, VisibleProducts([]domain.Product{product("p-1", "Pen", "", "")}, domain.Catalog{}, Filter{}))
}

func TestGroupByCategory(t *testing.T) {
	categories := []domain.Category{
		{ID: "cat-a", Name: "Stationery"},
		{ID: "cat-b", Name: "Kitchen"},
	}
	products := []domain.Product{
		product("p-1", "Pen", "cat-a", ""),
		product("p-2", "Mug", "cat-b", ""),
		product("p-3", "Pad", "cat-a", ""),
	}

	groups := GroupByCategory(products, categories)

	assert.Len(t, groups, 2)
	assert.Equal(t, "Stationery", groups[0].Name)
	assert.Equal(t, []string{"p-1", "p-3"}, ids(groups[0].Products))
	assert.Equal(t, "Kitchen", groups[1].Name)
	assert.Equal(t, []string{"p-2"}, ids(groups[1].Products))
}

func TestGroupByCategory_UnresolvedFallsBackToGeneral(t *testing.T) {
	products := []domain.Product{
		product("p-1", "Pen", "cat-gone", ""),
		product("p-2", "Mug", "", ""),
	}

	groups := GroupByCategory(products, nil)

	assert.Len(t, groups, 1)
	assert.Equal(t, GeneralGroup, groups[0].Name)
	assert.Equal(t, []string{"p-1", "p-2"}, ids(groups[0].Products))
}

func TestGroupByCategory_Empty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil, nil))
}
