package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CategoryModel mirrors the 'categories' table. The parent reference is a
// self-FK; deleting a parent cascades to its subtree.
type CategoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Slug      string     `gorm:"type:varchar(100);unique;not null"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	Icon      string     `gorm:"type:text"`
	CreatedAt time.Time

	Children []CategoryModel `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Slug        string    `gorm:"type:varchar(100);unique;not null"`
	Logo        string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	IsFeatured  bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// ProductModel mirrors the 'products' table. The brand reference is nulled
// when the brand is deleted; category and seller deletions cascade.
type ProductModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	BrandID            *uuid.UUID `gorm:"type:uuid;index"`
	Title              string     `gorm:"type:varchar(200);not null"`
	Description        string     `gorm:"type:text;not null"`
	Price              float64    `gorm:"type:numeric(10,2);not null"`
	OriginalPrice      *float64   `gorm:"type:numeric(10,2)"`
	DiscountPercentage int        `gorm:"not null;default:0"`
	Condition          string     `gorm:"type:varchar(10);not null"`
	Model              string     `gorm:"type:varchar(100)"`
	Specifications     datatypes.JSON
	Location           string `gorm:"type:varchar(200)"`
	IsNegotiable       bool   `gorm:"not null;default:true"`
	IsAvailable        bool   `gorm:"not null;default:true"`
	IsFeatured         bool   `gorm:"not null;default:false"`
	IsDailyEssential   bool   `gorm:"not null;default:false"`
	Views              int    `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Seller   *UserModel     `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Brand    *BrandModel    `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`

	Images  []ProductImageModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews []ReviewModel       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table. The partial unique
// index allows at most one primary image per product.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:udx_product_primary_image,where:is_primary"`
	URL       string    `gorm:"type:text;not null"`
	IsPrimary bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ReviewModel mirrors the 'reviews' table. The composite unique index keeps a
// reviewer to one review per product.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:udx_review_product_reviewer"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:udx_review_product_reviewer"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Reviewer *UserModel `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
