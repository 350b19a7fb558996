package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"

	"github.com/mfortin/shopshelf/internal/ai"
	"github.com/mfortin/shopshelf/internal/catalog"
	"github.com/mfortin/shopshelf/internal/domain"
	"github.com/mfortin/shopshelf/internal/storefront"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrCatalogNotFound  = errors.New("catalog not found")
)

// stateRepository is the subset of store.StateStore that CatalogService
// requires.
type stateRepository interface {
	Save(ctx context.Context, state *domain.State) error
}

// CatalogService owns the merchant-side application state. Every mutation
// applies a pure transition to the in-memory state and then writes the whole
// state back through the persistence layer.
type CatalogService struct {
	mu      sync.Mutex
	state   domain.State
	states  stateRepository
	textGen ai.TextGenerator
	logger  *slog.Logger
}

// NewCatalogService wraps an already-loaded (or freshly seeded) state.
// textGen may be nil, in which case AI endpoints always return the fallback
// copy.
func NewCatalogService(state *domain.State, states stateRepository, textGen ai.TextGenerator, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		state:   *state,
		states:  states,
		textGen: textGen,
		logger:  logger,
	}
}

// persist writes the current state through the repository. Callers hold mu.
func (s *CatalogService) persist(ctx context.Context) error {
	snapshot := s.state
	if err := s.states.Save(ctx, &snapshot); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

// --- Products ---

// ProductInput carries the merchant-editable product fields. The transport
// layer coerces form values into this struct; the core stays strict.
type ProductInput struct {
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	UPC         string          `json:"upc"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	CategoryID  string          `json:"categoryId"`
	LocationID  string          `json:"locationId"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Tag         string          `json:"tag"`
	TagColor    string          `json:"tagColor"`
}

func (s *CatalogService) validateProductInput(in ProductInput) error {
	if in.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if in.CategoryID == "" {
		return fmt.Errorf("%w: a category is required", ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	if s.findCategory(in.CategoryID) < 0 {
		return ErrCategoryNotFound
	}
	if in.LocationID != "" && s.findLocation(in.LocationID) < 0 {
		return ErrLocationNotFound
	}
	return nil
}

func (s *CatalogService) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.Products)
}

func (s *CatalogService) Product(id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findProduct(id); i >= 0 {
		return s.state.Products[i], nil
	}
	return domain.Product{}, ErrProductNotFound
}

func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateProductInput(in); err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		SKU:         in.SKU,
		UPC:         in.UPC,
		Description: in.Description,
		Images:      slices.Clone(in.Images),
		CategoryID:  in.CategoryID,
		LocationID:  in.LocationID,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Tag:         in.Tag,
		TagColor:    in.TagColor,
		CreatedAt:   time.Now().UTC(),
	}

	s.state.Products = append(slices.Clone(s.state.Products), p)
	if err := s.persist(ctx); err != nil {
		return domain.Product{}, err
	}
	s.logger.Info("product created", "product_id", p.ID, "name", p.Name)
	return p, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ProductInput) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findProduct(id)
	if i < 0 {
		return domain.Product{}, ErrProductNotFound
	}
	if err := s.validateProductInput(in); err != nil {
		return domain.Product{}, err
	}

	updated := s.state.Products[i]
	updated.Name = in.Name
	updated.SKU = in.SKU
	updated.UPC = in.UPC
	updated.Description = in.Description
	updated.Images = slices.Clone(in.Images)
	updated.CategoryID = in.CategoryID
	updated.LocationID = in.LocationID
	updated.Quantity = in.Quantity
	updated.Price = in.Price
	updated.Tag = in.Tag
	updated.TagColor = in.TagColor

	products := slices.Clone(s.state.Products)
	products[i] = updated
	s.state.Products = products

	if err := s.persist(ctx); err != nil {
		return domain.Product{}, err
	}
	return updated, nil
}

// DeleteProduct removes a product from inventory. Catalog memberships are
// not pruned: storefront reads filter against the live product set, so a
// dangling id is simply never visible.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findProduct(id)
	if i < 0 {
		return ErrProductNotFound
	}
	s.state.Products = slices.Delete(slices.Clone(s.state.Products), i, i+1)

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.logger.Info("product deleted", "product_id", id)
	return nil
}

// --- Categories ---

func (s *CatalogService) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.Categories)
}

func (s *CatalogService) CreateCategory(ctx context.Context, name, description, parentID string) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return domain.Category{}, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	if parentID != "" && s.findCategory(parentID) < 0 {
		return domain.Category{}, ErrCategoryNotFound
	}

	c := domain.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		ParentID:    parentID,
		CreatedAt:   time.Now().UTC(),
	}
	s.state.Categories = append(slices.Clone(s.state.Categories), c)

	if err := s.persist(ctx); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findCategory(id)
	if i < 0 {
		return ErrCategoryNotFound
	}
	s.state.Categories = slices.Delete(slices.Clone(s.state.Categories), i, i+1)
	return s.persist(ctx)
}

// --- Locations ---

func (s *CatalogService) Locations() []domain.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.Locations)
}

func (s *CatalogService) CreateLocation(ctx context.Context, name, description string) (domain.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return domain.Location{}, fmt.Errorf("%w: location name is required", ErrInvalidInput)
	}

	l := domain.Location{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	s.state.Locations = append(slices.Clone(s.state.Locations), l)

	if err := s.persist(ctx); err != nil {
		return domain.Location{}, err
	}
	return l, nil
}

func (s *CatalogService) DeleteLocation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocation(id)
	if i < 0 {
		return ErrLocationNotFound
	}
	s.state.Locations = slices.Delete(slices.Clone(s.state.Locations), i, i+1)
	return s.persist(ctx)
}

// --- Catalogs ---

func (s *CatalogService) Catalogs() []domain.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.Catalogs)
}

func (s *CatalogService) Catalog(id string) (domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findCatalog(id); i >= 0 {
		return s.state.Catalogs[i], nil
	}
	return domain.Catalog{}, ErrCatalogNotFound
}

func (s *CatalogService) CreateCatalog(ctx context.Context, name, description string) (domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return domain.Catalog{}, fmt.Errorf("%w: catalog name is required", ErrInvalidInput)
	}

	c := domain.Catalog{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		ProductIDs:  []string{},
		CreatedAt:   time.Now().UTC(),
	}
	s.state.Catalogs = append(slices.Clone(s.state.Catalogs), c)

	if err := s.persist(ctx); err != nil {
		return domain.Catalog{}, err
	}
	s.logger.Info("catalog created", "catalog_id", c.ID, "name", c.Name)
	return c, nil
}

func (s *CatalogService) UpdateCatalog(ctx context.Context, id, name, description string) (domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findCatalog(id)
	if i < 0 {
		return domain.Catalog{}, ErrCatalogNotFound
	}
	if name == "" {
		return domain.Catalog{}, fmt.Errorf("%w: catalog name is required", ErrInvalidInput)
	}

	updated := s.state.Catalogs[i]
	updated.Name = name
	updated.Description = description

	catalogs := slices.Clone(s.state.Catalogs)
	catalogs[i] = updated
	s.state.Catalogs = catalogs

	if err := s.persist(ctx); err != nil {
		return domain.Catalog{}, err
	}
	return updated, nil
}

func (s *CatalogService) DeleteCatalog(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findCatalog(id)
	if i < 0 {
		return ErrCatalogNotFound
	}
	s.state.Catalogs = slices.Delete(slices.Clone(s.state.Catalogs), i, i+1)
	return s.persist(ctx)
}

// AddCatalogProduct adds an existing product to the catalog's membership.
// Adding a product that is already a member is a no-op.
func (s *CatalogService) AddCatalogProduct(ctx context.Context, catalogID, productID string) (domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findCatalog(catalogID)
	if i < 0 {
		return domain.Catalog{}, ErrCatalogNotFound
	}
	if s.findProduct(productID) < 0 {
		return domain.Catalog{}, ErrProductNotFound
	}

	updated := catalog.AddProduct(s.state.Catalogs[i], productID)
	catalogs := slices.Clone(s.state.Catalogs)
	catalogs[i] = updated
	s.state.Catalogs = catalogs

	if err := s.persist(ctx); err != nil {
		return domain.Catalog{}, err
	}
	return updated, nil
}

// RemoveCatalogProduct removes a product id from the catalog's membership.
// Removing an absent id is a no-op.
func (s *CatalogService) RemoveCatalogProduct(ctx context.Context, catalogID, productID string) (domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findCatalog(catalogID)
	if i < 0 {
		return domain.Catalog{}, ErrCatalogNotFound
	}

	updated := catalog.RemoveProduct(s.state.Catalogs[i], productID)
	catalogs := slices.Clone(s.state.Catalogs)
	catalogs[i] = updated
	s.state.Catalogs = catalogs

	if err := s.persist(ctx); err != nil {
		return domain.Catalog{}, err
	}
	return updated, nil
}

// Storefront returns the customer-visible products for a catalog under f,
// along with the grouped-by-category view.
func (s *CatalogService) Storefront(catalogID string, f storefront.Filter) ([]domain.Product, []storefront.CategoryGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findCatalog(catalogID)
	if i < 0 {
		return nil, nil, ErrCatalogNotFound
	}

	visible := storefront.VisibleProducts(s.state.Products, s.state.Catalogs[i], f)
	groups := storefront.GroupByCategory(visible, s.state.Categories)
	return visible, groups, nil
}

// ShareLink builds the copyable share path for a catalog from its name slug
// and a short id prefix.
func (s *CatalogService) ShareLink(catalogID string) (string, error) {
	c, err := s.Catalog(catalogID)
	if err != nil {
		return "", err
	}
	short := c.ID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("/c/%s-%s", slug.Make(c.Name), short), nil
}

// --- AI copy ---

// DescribeProduct drafts a product description with the text generator,
// substituting the static fallback on any failure. The product itself is not
// modified; the merchant saves the text through the edit form if they keep it.
func (s *CatalogService) DescribeProduct(ctx context.Context, productID string) (string, error) {
	p, err := s.Product(productID)
	if err != nil {
		return "", err
	}

	categoryName := storefront.GeneralGroup
	s.mu.Lock()
	if i := s.findCategory(p.CategoryID); i >= 0 {
		categoryName = s.state.Categories[i].Name
	}
	s.mu.Unlock()

	if s.textGen == nil {
		return ai.FallbackDescription, nil
	}
	text, err := s.textGen.ProductDescription(ctx, p.Name, categoryName)
	if err != nil {
		s.logger.Warn("product description generation failed, using fallback", "product_id", productID, "error", err)
		return ai.FallbackDescription, nil
	}
	return text, nil
}

// TaglineForCatalog drafts a marketing tagline from the catalog name and its
// member product names, with the same fallback behavior as DescribeProduct.
func (s *CatalogService) TaglineForCatalog(ctx context.Context, catalogID string) (string, error) {
	s.mu.Lock()
	i := s.findCatalog(catalogID)
	if i < 0 {
		s.mu.Unlock()
		return "", ErrCatalogNotFound
	}
	c := s.state.Catalogs[i]
	members := storefront.VisibleProducts(s.state.Products, c, storefront.Filter{})
	s.mu.Unlock()

	if s.textGen == nil {
		return ai.FallbackTagline, nil
	}
	names := make([]string, 0, len(members))
	for _, p := range members {
		names = append(names, p.Name)
	}
	text, err := s.textGen.CatalogTagline(ctx, c.Name, names)
	if err != nil {
		s.logger.Warn("catalog tagline generation failed, using fallback", "catalog_id", catalogID, "error", err)
		return ai.FallbackTagline, nil
	}
	return text, nil
}

// --- lookups (callers hold mu) ---

func (s *CatalogService) findProduct(id string) int {
	return slices.IndexFunc(s.state.Products, func(p domain.Product) bool { return p.ID == id })
}

func (s *CatalogService) findCategory(id string) int {
	return slices.IndexFunc(s.state.Categories, func(c domain.Category) bool { return c.ID == id })
}

func (s *CatalogService) findLocation(id string) int {
	return slices.IndexFunc(s.state.Locations, func(l domain.Location) bool { return l.ID == id })
}

func (s *CatalogService) findCatalog(id string) int {
	return slices.IndexFunc(s.state.Catalogs, func(c domain.Catalog) bool { return c.ID == id })
}
