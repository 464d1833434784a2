package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop is a storefront tied one-to-one to its owner; a user owns at most one
// shop. IsVerified, Rating and TotalRatings are maintained by out-of-band
// processes and are never writable through the shop surface.
type Shop struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Description   string
	Logo          string
	CoverImage    string
	Address       string
	PhoneNumber   string
	Email         string
	Website       string
	BusinessHours map[string]any
	IsVerified    bool
	Rating        float64
	TotalRatings  int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Owner   *User
	Images  []*ShopImage
	Reviews []*ShopReview
}

// AverageRating returns the arithmetic mean of the loaded reviews' ratings,
// or 0 when there are none.
func (s *Shop) AverageRating() float64 {
	return averageRating(len(s.Reviews), func(i int) int { return s.Reviews[i].Rating })
}

// ShopImage belongs to one shop; same primary-image convention as ProductImage.
type ShopImage struct {
	ID        uuid.UUID
	ShopID    uuid.UUID
	URL       string
	IsPrimary bool
	CreatedAt time.Time
}

// ShopReview is a shop review. A user may review a given shop at most once.
type ShopReview struct {
	ID         uuid.UUID
	ShopID     uuid.UUID
	ReviewerID uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Reviewer *User
}
