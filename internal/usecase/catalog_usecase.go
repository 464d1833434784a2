package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a listing.
type CreateProductInput struct {
	CategoryID     uuid.UUID      `json:"category_id" validate:"required"`
	BrandID        *uuid.UUID     `json:"brand_id,omitempty"`
	Title          string         `json:"title" validate:"required,max=200"`
	Description    string         `json:"description" validate:"required"`
	Price          float64        `json:"price" validate:"required,gt=0"`
	OriginalPrice  *float64       `json:"original_price,omitempty" validate:"omitempty,gt=0"`
	Condition      string         `json:"condition" validate:"required,oneof=new like_new good fair poor"`
	Model          string         `json:"model,omitempty" validate:"omitempty,max=100"`
	Specifications map[string]any `json:"specifications,omitempty"`
	Location       string         `json:"location" validate:"required"`
	IsNegotiable   bool           `json:"is_negotiable"`

	// ImageURLs are already-uploaded image locations; the first one becomes
	// the primary image.
	ImageURLs []string `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
}

// UpdateProductInput carries a partial listing update. Nil fields are left
// untouched.
type UpdateProductInput struct {
	CategoryID     *uuid.UUID     `json:"category_id,omitempty"`
	BrandID        *uuid.UUID     `json:"brand_id,omitempty"`
	Title          *string        `json:"title,omitempty" validate:"omitempty,max=200"`
	Description    *string        `json:"description,omitempty"`
	Price          *float64       `json:"price,omitempty" validate:"omitempty,gt=0"`
	OriginalPrice  *float64       `json:"original_price,omitempty" validate:"omitempty,gt=0"`
	Condition      *string        `json:"condition,omitempty" validate:"omitempty,oneof=new like_new good fair poor"`
	Model          *string        `json:"model,omitempty" validate:"omitempty,max=100"`
	Specifications map[string]any `json:"specifications,omitempty"`
	Location       *string        `json:"location,omitempty"`
	IsNegotiable   *bool          `json:"is_negotiable,omitempty"`
	IsAvailable    *bool          `json:"is_available,omitempty"`
}

// ListProductsInput narrows and orders the product listing.
type ListProductsInput struct {
	CategoryID       *uuid.UUID
	BrandID          *uuid.UUID
	Condition        *string
	IsAvailable      *bool
	IsNegotiable     *bool
	IsFeatured       *bool
	IsDailyEssential *bool
	Search           string
	SortBy           string
	SortDescending   bool
}

// CreateReviewInput defines the data required to review a product.
type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

// --- Output DTOs ---

// CategoryOutput is the public view of a category.
type CategoryOutput struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Icon      string     `json:"icon,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// BrandOutput is the public view of a brand.
type BrandOutput struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Logo        string    `json:"logo,omitempty"`
	Description string    `json:"description,omitempty"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductImageOutput is the public view of a product image.
type ProductImageOutput struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	IsPrimary bool      `json:"is_primary"`
}

// ReviewOutput is the public view of a product review.
type ReviewOutput struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	ReviewerID   uuid.UUID `json:"reviewer_id"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductOutput is the public view of a listing, including the derived
// discount percentage and average rating.
type ProductOutput struct {
	ID                 uuid.UUID      `json:"id"`
	SellerID           uuid.UUID      `json:"seller_id"`
	SellerName         string         `json:"seller_name,omitempty"`
	CategoryID         uuid.UUID      `json:"category_id"`
	CategoryName       string         `json:"category_name,omitempty"`
	BrandID            *uuid.UUID     `json:"brand_id,omitempty"`
	BrandName          string         `json:"brand_name,omitempty"`
	BrandLogo          string         `json:"brand_logo,omitempty"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Price              float64        `json:"price"`
	OriginalPrice      *float64       `json:"original_price,omitempty"`
	DiscountPercentage int            `json:"discount_percentage"`
	Condition          string         `json:"condition"`
	Model              string         `json:"model,omitempty"`
	Specifications     map[string]any `json:"specifications,omitempty"`
	Location           string         `json:"location"`
	IsNegotiable       bool           `json:"is_negotiable"`
	IsAvailable        bool           `json:"is_available"`
	IsFeatured         bool           `json:"is_featured"`
	IsDailyEssential   bool           `json:"is_daily_essential"`
	Views              int            `json:"views"`
	AverageRating      float64        `json:"average_rating"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`

	Images  []*ProductImageOutput `json:"images"`
	Reviews []*ReviewOutput       `json:"reviews,omitempty"`
}

// NewCategoryOutput maps a domain category to its public view.
func NewCategoryOutput(category *entity.Category) *CategoryOutput {
	if category == nil {
		return nil
	}

	return &CategoryOutput{
		ID:        category.ID,
		Name:      category.Name,
		Slug:      category.Slug,
		ParentID:  category.ParentID,
		Icon:      category.Icon,
		CreatedAt: category.CreatedAt,
	}
}

// NewBrandOutput maps a domain brand to its public view.
func NewBrandOutput(brand *entity.Brand) *BrandOutput {
	if brand == nil {
		return nil
	}

	return &BrandOutput{
		ID:          brand.ID,
		Name:        brand.Name,
		Slug:        brand.Slug,
		Logo:        brand.Logo,
		Description: brand.Description,
		IsFeatured:  brand.IsFeatured,
		CreatedAt:   brand.CreatedAt,
	}
}

// NewReviewOutput maps a domain review to its public view.
func NewReviewOutput(review *entity.Review) *ReviewOutput {
	if review == nil {
		return nil
	}

	out := &ReviewOutput{
		ID:         review.ID,
		ProductID:  review.ProductID,
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

// NewProductOutput maps a domain product to its public view.
func NewProductOutput(product *entity.Product) *ProductOutput {
	if product == nil {
		return nil
	}

	out := &ProductOutput{
		ID:                 product.ID,
		SellerID:           product.SellerID,
		CategoryID:         product.CategoryID,
		BrandID:            product.BrandID,
		Title:              product.Title,
		Description:        product.Description,
		Price:              product.Price,
		OriginalPrice:      product.OriginalPrice,
		DiscountPercentage: product.DiscountPercentage,
		Condition:          product.Condition.String(),
		Model:              product.Model,
		Specifications:     product.Specifications,
		Location:           product.Location,
		IsNegotiable:       product.IsNegotiable,
		IsAvailable:        product.IsAvailable,
		IsFeatured:         product.IsFeatured,
		IsDailyEssential:   product.IsDailyEssential,
		Views:              product.Views,
		AverageRating:      product.AverageRating(),
		CreatedAt:          product.CreatedAt,
		UpdatedAt:          product.UpdatedAt,
		Images:             make([]*ProductImageOutput, 0, len(product.Images)),
		Reviews:            make([]*ReviewOutput, 0, len(product.Reviews)),
	}

	if product.Seller != nil {
		out.SellerName = product.Seller.Username
	}
	if product.Category != nil {
		out.CategoryName = product.Category.Name
	}
	if product.Brand != nil {
		out.BrandName = product.Brand.Name
		out.BrandLogo = product.Brand.Logo
	}
	for _, image := range product.Images {
		out.Images = append(out.Images, &ProductImageOutput{
			ID:        image.ID,
			URL:       image.URL,
			IsPrimary: image.IsPrimary,
		})
	}
	for _, review := range product.Reviews {
		out.Reviews = append(out.Reviews, NewReviewOutput(review))
	}

	return out
}

// CatalogUsecase defines the interface for catalog-related business operations.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*CategoryOutput, error)
	ListBrands(ctx context.Context, featuredOnly bool) ([]*BrandOutput, error)

	ListProducts(ctx context.Context, input *ListProductsInput) ([]*ProductOutput, error)
	ListFeaturedProducts(ctx context.Context) ([]*ProductOutput, error)
	ListDailyEssentials(ctx context.Context) ([]*ProductOutput, error)

	// GetProduct retrieves a single listing and increments its view counter.
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductOutput, error)

	CreateProduct(ctx context.Context, sellerID uuid.UUID, input *CreateProductInput) (*ProductOutput, error)
	UpdateProduct(ctx context.Context, actorID, productID uuid.UUID, input *UpdateProductInput) (*ProductOutput, error)
	DeleteProduct(ctx context.Context, actorID, productID uuid.UUID) error

	CreateReview(ctx context.Context, reviewerID, productID uuid.UUID, input *CreateReviewInput) (*ReviewOutput, error)
	ListReviews(ctx context.Context, productID uuid.UUID) ([]*ReviewOutput, error)
}
