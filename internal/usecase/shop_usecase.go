package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateShopInput defines the data required to open a shop.
type CreateShopInput struct {
	Name          string         `json:"name" validate:"required,max=200"`
	Description   string         `json:"description" validate:"required"`
	Logo          string         `json:"logo,omitempty" validate:"omitempty,url"`
	CoverImage    string         `json:"cover_image,omitempty" validate:"omitempty,url"`
	Address       string         `json:"address" validate:"required"`
	PhoneNumber   string         `json:"phone_number" validate:"required,max=15"`
	Email         string         `json:"email" validate:"required,email"`
	Website       string         `json:"website,omitempty" validate:"omitempty,url"`
	BusinessHours map[string]any `json:"business_hours,omitempty"`

	// ImageURLs are already-uploaded image locations; the first one becomes
	// the primary image.
	ImageURLs []string `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
}

// UpdateShopInput carries a partial shop update. Nil fields are left
// untouched. Verification and ratings are never writable here.
type UpdateShopInput struct {
	Name          *string        `json:"name,omitempty" validate:"omitempty,max=200"`
	Description   *string        `json:"description,omitempty"`
	Logo          *string        `json:"logo,omitempty" validate:"omitempty,url"`
	CoverImage    *string        `json:"cover_image,omitempty" validate:"omitempty,url"`
	Address       *string        `json:"address,omitempty"`
	PhoneNumber   *string        `json:"phone_number,omitempty" validate:"omitempty,max=15"`
	Email         *string        `json:"email,omitempty" validate:"omitempty,email"`
	Website       *string        `json:"website,omitempty" validate:"omitempty,url"`
	BusinessHours map[string]any `json:"business_hours,omitempty"`
}

// ListShopsInput narrows and orders the shop listing.
type ListShopsInput struct {
	IsVerified     *bool
	Search         string
	SortBy         string
	SortDescending bool
}

// CreateShopReviewInput defines the data required to review a shop.
type CreateShopReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

// --- Output DTOs ---

// ShopImageOutput is the public view of a shop image.
type ShopImageOutput struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	IsPrimary bool      `json:"is_primary"`
}

// ShopReviewOutput is the public view of a shop review.
type ShopReviewOutput struct {
	ID           uuid.UUID `json:"id"`
	ShopID       uuid.UUID `json:"shop_id"`
	ReviewerID   uuid.UUID `json:"reviewer_id"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ShopOutput is the public view of a shop, including the derived average
// rating over its loaded reviews.
type ShopOutput struct {
	ID            uuid.UUID      `json:"id"`
	OwnerID       uuid.UUID      `json:"owner_id"`
	OwnerName     string         `json:"owner_name,omitempty"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Logo          string         `json:"logo,omitempty"`
	CoverImage    string         `json:"cover_image,omitempty"`
	Address       string         `json:"address"`
	PhoneNumber   string         `json:"phone_number"`
	Email         string         `json:"email"`
	Website       string         `json:"website,omitempty"`
	BusinessHours map[string]any `json:"business_hours,omitempty"`
	IsVerified    bool           `json:"is_verified"`
	Rating        float64        `json:"rating"`
	TotalRatings  int            `json:"total_ratings"`
	AverageRating float64        `json:"average_rating"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	Images  []*ShopImageOutput  `json:"images"`
	Reviews []*ShopReviewOutput `json:"reviews,omitempty"`
}

// NewShopReviewOutput maps a domain shop review to its public view.
func NewShopReviewOutput(review *entity.ShopReview) *ShopReviewOutput {
	if review == nil {
		return nil
	}

	out := &ShopReviewOutput{
		ID:         review.ID,
		ShopID:     review.ShopID,
		ReviewerID: review.ReviewerID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
	if review.Reviewer != nil {
		out.ReviewerName = review.Reviewer.Username
	}

	return out
}

// NewShopOutput maps a domain shop to its public view.
func NewShopOutput(shop *entity.Shop) *ShopOutput {
	if shop == nil {
		return nil
	}

	out := &ShopOutput{
		ID:            shop.ID,
		OwnerID:       shop.OwnerID,
		Name:          shop.Name,
		Description:   shop.Description,
		Logo:          shop.Logo,
		CoverImage:    shop.CoverImage,
		Address:       shop.Address,
		PhoneNumber:   shop.PhoneNumber,
		Email:         shop.Email,
		Website:       shop.Website,
		BusinessHours: shop.BusinessHours,
		IsVerified:    shop.IsVerified,
		Rating:        shop.Rating,
		TotalRatings:  shop.TotalRatings,
		AverageRating: shop.AverageRating(),
		CreatedAt:     shop.CreatedAt,
		UpdatedAt:     shop.UpdatedAt,
		Images:        make([]*ShopImageOutput, 0, len(shop.Images)),
		Reviews:       make([]*ShopReviewOutput, 0, len(shop.Reviews)),
	}

	if shop.Owner != nil {
		out.OwnerName = shop.Owner.Username
	}
	for _, image := range shop.Images {
		out.Images = append(out.Images, &ShopImageOutput{
			ID:        image.ID,
			URL:       image.URL,
			IsPrimary: image.IsPrimary,
		})
	}
	for _, review := range shop.Reviews {
		out.Reviews = append(out.Reviews, NewShopReviewOutput(review))
	}

	return out
}

// ShopUsecase defines the interface for shop-related business operations.
type ShopUsecase interface {
	// CreateShop opens a shop for the owner. A user owns at most one shop.
	CreateShop(ctx context.Context, ownerID uuid.UUID, input *CreateShopInput) (*ShopOutput, error)

	GetShop(ctx context.Context, shopID uuid.UUID) (*ShopOutput, error)
	ListShops(ctx context.Context, input *ListShopsInput) ([]*ShopOutput, error)

	UpdateShop(ctx context.Context, actorID, shopID uuid.UUID, input *UpdateShopInput) (*ShopOutput, error)
	DeleteShop(ctx context.Context, actorID, shopID uuid.UUID) error

	CreateShopReview(ctx context.Context, reviewerID, shopID uuid.UUID, input *CreateShopReviewInput) (*ShopReviewOutput, error)
	ListShopReviews(ctx context.Context, shopID uuid.UUID) ([]*ShopReviewOutput, error)
}
