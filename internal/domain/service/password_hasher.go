// Package service holds the capability interfaces the core depends on:
// password hashing, token issuing and image storage. Implementations live
// under internal/infra.
package service

// PasswordHasher hashes account passwords and verifies login attempts. The
// credential flow never sees the algorithm behind it.
type PasswordHasher interface {
	// Hash derives a salted hash from the plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
