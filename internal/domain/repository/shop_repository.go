package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShopNotFound is a domain-specific error returned when a shop is not found.
var ErrShopNotFound = errors.New("shop not found")

// ShopSort enumerates the orderable columns of the shop listing.
type ShopSort string

const (
	ShopSortRating    ShopSort = "rating"
	ShopSortCreatedAt ShopSort = "created_at"
)

// IsValid checks if the ShopSort is a valid value.
func (s ShopSort) IsValid() bool {
	switch s {
	case ShopSortRating, ShopSortCreatedAt:
		return true
	default:
		return false
	}
}

// ShopFilter narrows and orders the shop listing. Nil fields are ignored.
type ShopFilter struct {
	IsVerified *bool

	// Search matches name, description and address.
	Search string

	SortBy         ShopSort
	SortDescending bool
}

// ShopRepository defines the standard operations for shop persistence.
type ShopRepository interface {
	// Create persists a new shop together with its images. The one-shop-per-
	// owner rule is enforced by a unique constraint on the owner reference.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindByID retrieves a shop with its owner, images and reviews preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// List returns shops matching the filter, associations preloaded.
	List(ctx context.Context, filter *ShopFilter) ([]*entity.Shop, error)

	// Update modifies an existing shop.
	Update(ctx context.Context, shop *entity.Shop) error

	// Delete removes a shop and, via storage cascades, its images and reviews.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ShopReviewRepository defines the operations for shop reviews.
type ShopReviewRepository interface {
	// Create persists a new review. A duplicate (shop, reviewer) pair is
	// rejected with a domain conflict error.
	Create(ctx context.Context, review *entity.ShopReview) error

	// ListByShop returns the shop's reviews, newest first, with reviewers
	// preloaded.
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.ShopReview, error)
}
