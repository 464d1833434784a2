package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a listing owned by exactly one seller. Specifications carry
// arbitrary structured key-value data supplied by the seller.
type Product struct {
	ID                 uuid.UUID
	SellerID           uuid.UUID
	CategoryID         uuid.UUID
	BrandID            *uuid.UUID // Nil when no brand is attached or the brand was deleted.
	Title              string
	Description        string
	Price              float64
	OriginalPrice      *float64 // Pre-discount price; nil when the listing was never discounted.
	DiscountPercentage int      // Server computed, see RecalculateDiscount.
	Condition          Condition
	Model              string
	Specifications     map[string]any
	Location           string
	IsNegotiable       bool
	IsAvailable        bool
	IsFeatured         bool
	IsDailyEssential   bool
	Views              int // Monotonic counter, incremented on every retrieval.
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Seller   *User
	Category *Category
	Brand    *Brand
	Images   []*ProductImage
	Reviews  []*Review
}

// RecalculateDiscount recomputes the discount percentage from the current
// prices. Invariant: when the original price exceeds the price the discount is
// floor((original-price)/original*100), otherwise 0. Callers must invoke this
// before every save.
func (p *Product) RecalculateDiscount() {
	if p.OriginalPrice != nil && *p.OriginalPrice > p.Price {
		p.DiscountPercentage = int((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100)

		return
	}

	p.DiscountPercentage = 0
}

// AverageRating returns the arithmetic mean of the loaded reviews' ratings,
// or 0 when there are none.
func (p *Product) AverageRating() float64 {
	return averageRating(len(p.Reviews), func(i int) int { return p.Reviews[i].Rating })
}

// ProductImage belongs to one product. The first image supplied at creation
// time is the primary one; storage enforces at most one primary per product.
type ProductImage struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	URL       string
	IsPrimary bool
	CreatedAt time.Time
}

// Review is a product review. A user may review a given product at most once.
type Review struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	ReviewerID uuid.UUID
	Rating     int // Integer rating on a 1-5 scale.
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Reviewer *User
}

func averageRating(n int, ratingAt func(int) int) float64 {
	if n == 0 {
		return 0
	}

	sum := 0
	for i := range n {
		sum += ratingAt(i)
	}

	return float64(sum) / float64(n)
}
