package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a single inventory entry. Prices are exact decimals; Tag and
// TagColor are optional display hints.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	UPC         string          `json:"upc"`
	Description string          `json:"description"`
	Images      []string        `json:"images,omitempty"`
	CategoryID  string          `json:"categoryId"`
	LocationID  string          `json:"locationId"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Tag         string          `json:"tag,omitempty"`
	TagColor    string          `json:"tagColor,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// PrimaryImage returns the first image reference, or "" when none exist.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ParentID    string    `json:"parentId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Location struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Catalog is a curated, shareable collection of product ids. ProductIDs may
// hold ids of products that were since deleted from inventory; readers filter
// against the live product set instead of pruning.
type Catalog struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ProductIDs  []string  `json:"productIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CartEntry pairs a quantity with the product snapshot taken when the entry
// was added. Totals always read the snapshot so later price edits do not
// change an in-progress cart.
type CartEntry struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

type ShippingAddress struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// Complete reports whether all three address fields are filled in.
func (a ShippingAddress) Complete() bool {
	return a.Street != "" && a.City != "" && a.Zip != ""
}

// State is the whole persisted application state. It is treated as an
// immutable value: transitions build a new State and the caller writes it
// back through the persistence layer.
type State struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
	Locations  []Location `json:"locations"`
	Catalogs   []Catalog  `json:"catalogs"`
}
