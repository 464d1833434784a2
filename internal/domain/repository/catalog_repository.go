package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific sentinel errors for catalog lookups.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrProductNotFound  = errors.New("product not found")
)

// ProductSort enumerates the orderable columns of the product listing.
type ProductSort string

const (
	ProductSortPrice     ProductSort = "price"
	ProductSortCreatedAt ProductSort = "created_at"
	ProductSortViews     ProductSort = "views"
)

// IsValid checks if the ProductSort is a valid value.
func (s ProductSort) IsValid() bool {
	switch s {
	case ProductSortPrice, ProductSortCreatedAt, ProductSortViews:
		return true
	default:
		return false
	}
}

// ProductFilter narrows and orders the product listing. Nil fields are ignored.
type ProductFilter struct {
	CategoryID       *uuid.UUID
	BrandID          *uuid.UUID
	Condition        *entity.Condition
	IsAvailable      *bool
	IsNegotiable     *bool
	IsFeatured       *bool
	IsDailyEssential *bool

	// Search matches title, description, model and brand name.
	Search string

	SortBy         ProductSort
	SortDescending bool
}

// CategoryRepository defines read operations over the category tree.
type CategoryRepository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}

// BrandRepository defines read operations over brands.
type BrandRepository interface {
	// List returns all brands ordered by name. When featuredOnly is set,
	// only featured brands are returned.
	List(ctx context.Context, featuredOnly bool) ([]*entity.Brand, error)

	// FindByID retrieves a single brand by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// Create persists a new product together with its images. Callers are
	// expected to run composite writes inside a transaction.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product with its seller, category, brand, images
	// and reviews preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns products matching the filter, associations preloaded.
	List(ctx context.Context, filter *ProductFilter) ([]*entity.Product, error)

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product and, via storage cascades, its images and reviews.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews atomically bumps the product's view counter by one.
	// Concurrent increments must not lose updates.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}

// ReviewRepository defines the operations for product reviews.
type ReviewRepository interface {
	// Create persists a new review. A duplicate (product, reviewer) pair is
	// rejected with a domain conflict error.
	Create(ctx context.Context, review *entity.Review) error

	// ListByProduct returns the product's reviews, newest first, with
	// reviewers preloaded.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}
