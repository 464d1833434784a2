// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username    string `json:"username" validate:"required,min=3,max=150"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	UserType    string `json:"user_type" validate:"omitempty,oneof=buyer seller shop"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=15"`
	Address     string `json:"address"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput carries a partial profile update. Nil fields are left
// untouched.
type UpdateProfileInput struct {
	Username       *string `json:"username,omitempty" validate:"omitempty,min=3,max=150"`
	PhoneNumber    *string `json:"phone_number,omitempty" validate:"omitempty,max=15"`
	Address        *string `json:"address,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty" validate:"omitempty,url"`
}

// --- Output DTOs ---

// UserOutput is the public view of an account. The password hash never
// leaves the usecase layer.
type UserOutput struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	UserType       string    `json:"user_type"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Address        string    `json:"address,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	Rating         float64   `json:"rating"`
	TotalRatings   int       `json:"total_ratings"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
}

// AuthOutput returns the access token issued after registration or login.
type AuthOutput struct {
	AccessToken string      `json:"access_token"`
	User        *UserOutput `json:"user"`
}

// NewUserOutput maps a domain user to its public view.
func NewUserOutput(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	return &UserOutput{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		UserType:       user.UserType.String(),
		PhoneNumber:    user.PhoneNumber,
		Address:        user.Address,
		ProfilePicture: user.ProfilePicture,
		Rating:         user.Rating,
		TotalRatings:   user.TotalRatings,
		IsVerified:     user.IsVerified,
		CreatedAt:      user.CreatedAt,
	}
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserOutput, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*UserOutput, error)
	Verify(ctx context.Context, userID uuid.UUID) (*UserOutput, error)
}
