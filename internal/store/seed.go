package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfortin/shopshelf/internal/domain"
)

// Seed builds the starter inventory installed on first run, when no state
// has been persisted yet.
func Seed() *domain.State {
	now := time.Now().UTC()

	stationery := domain.Category{
		ID:          uuid.NewString(),
		Name:        "Stationery",
		Description: "Pens, paper and desk supplies",
		CreatedAt:   now,
	}
	kitchen := domain.Category{
		ID:          uuid.NewString(),
		Name:        "Kitchen",
		Description: "Everyday kitchenware",
		CreatedAt:   now,
	}

	frontShelf := domain.Location{
		ID:          uuid.NewString(),
		Name:        "Front Shelf",
		Description: "Customer-facing display",
		CreatedAt:   now,
	}
	backRoom := domain.Location{
		ID:          uuid.NewString(),
		Name:        "Back Room",
		Description: "Overflow storage",
		CreatedAt:   now,
	}

	pen := domain.Product{
		ID:          uuid.NewString(),
		Name:        "Gel Pen",
		SKU:         "STA-001",
		UPC:         "036000291452",
		Description: "Smooth-writing 0.5mm gel pen.",
		CategoryID:  stationery.ID,
		LocationID:  frontShelf.ID,
		Quantity:    120,
		Price:       decimal.RequireFromString("12.99"),
		Tag:         "Bestseller",
		TagColor:    "#2f855a",
		CreatedAt:   now,
	}
	notebook := domain.Product{
		ID:          uuid.NewString(),
		Name:        "Dot Grid Notebook",
		SKU:         "STA-002",
		UPC:         "036000291469",
		Description: "A5 notebook, 160 pages of dot grid paper.",
		CategoryID:  stationery.ID,
		LocationID:  backRoom.ID,
		Quantity:    45,
		Price:       decimal.RequireFromString("18.50"),
		CreatedAt:   now,
	}
	mug := domain.Product{
		ID:          uuid.NewString(),
		Name:        "Stoneware Mug",
		SKU:         "KIT-001",
		UPC:         "036000291476",
		Description: "12oz glazed stoneware mug.",
		CategoryID:  kitchen.ID,
		LocationID:  frontShelf.ID,
		Quantity:    30,
		Price:       decimal.RequireFromString("14.00"),
		CreatedAt:   now,
	}

	featured := domain.Catalog{
		ID:          uuid.NewString(),
		Name:        "Featured",
		Description: "A hand-picked collection of our favorite products.",
		ProductIDs:  []string{pen.ID, mug.ID},
		CreatedAt:   now,
	}

	return &domain.State{
		Products:   []domain.Product{pen, notebook, mug},
		Categories: []domain.Category{stationery, kitchen},
		Locations:  []domain.Location{frontShelf, backRoom},
		Catalogs:   []domain.Catalog{featured},
	}
}
