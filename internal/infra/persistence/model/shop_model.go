package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShopModel mirrors the 'shops' table. The unique owner reference enforces
// one shop per owner at the storage layer.
type ShopModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name          string    `gorm:"type:varchar(200);not null"`
	Description   string    `gorm:"type:text;not null"`
	Logo          string    `gorm:"type:text"`
	CoverImage    string    `gorm:"type:text"`
	Address       string    `gorm:"type:text;not null"`
	PhoneNumber   string    `gorm:"type:varchar(15);not null"`
	Email         string    `gorm:"type:varchar(255);not null"`
	Website       string    `gorm:"type:text"`
	BusinessHours datatypes.JSON
	IsVerified    bool    `gorm:"not null;default:false"`
	Rating        float64 `gorm:"type:numeric(3,2);not null;default:0"`
	TotalRatings  int     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Owner   *UserModel       `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Images  []ShopImageModel `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
	Reviews []ShopReviewModel `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// ShopImageModel mirrors the 'shop_images' table; same primary-image rule as
// product images.
type ShopImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:udx_shop_primary_image,where:is_primary"`
	URL       string    `gorm:"type:text;not null"`
	IsPrimary bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopImageModel) TableName() string {
	return "shop_images"
}

// ShopReviewModel mirrors the 'shop_reviews' table.
type ShopReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:udx_shop_review_reviewer"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:udx_shop_review_reviewer"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Reviewer *UserModel `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShopReviewModel) TableName() string {
	return "shop_reviews"
}
