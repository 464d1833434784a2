// Package model holds the GORM persistence models mirroring the database
// schema. They are exported so the gorm gen tool can consume them from cmd/gen.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username       string    `gorm:"type:varchar(150);unique;not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	UserType       string    `gorm:"type:varchar(10);not null;default:buyer"`
	PhoneNumber    string    `gorm:"type:varchar(15)"`
	Address        string    `gorm:"type:text"`
	ProfilePicture string    `gorm:"type:text"`
	Rating         float64   `gorm:"type:numeric(3,2);not null;default:0"`
	TotalRatings   int       `gorm:"not null;default:0"`
	IsVerified     bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Deleting a user cascades away their listings, reviews and messages.
	Products    []ProductModel    `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	Reviews     []ReviewModel     `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
	ShopReviews []ShopReviewModel `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
	Shop        *ShopModel        `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Messages    []MessageModel    `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
