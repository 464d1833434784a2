// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a marketplace account. The same account can buy, sell or run
// a shop; UserType is an informational tag and never gates an operation.
type User struct {
	ID             uuid.UUID // The global unique identifier for the user.
	Username       string    // Display name, unique across the platform.
	Email          string    // Primary contact email, used as the login identifier.
	PasswordHash   string    // Bcrypt hash of the login password. Never serialized.
	UserType       UserType  // buyer, seller or shop owner.
	PhoneNumber    string
	Address        string
	ProfilePicture string  // URL of the profile picture in blob storage.
	Rating         float64 // Aggregate rating on a 0-5 scale, two decimals.
	TotalRatings   int     // Number of ratings behind the aggregate.
	IsVerified     bool    // Set by the verification action only.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
