// Package service declares the stateless collaborators the use cases depend on.
package service

// PasswordHasher turns account passwords into one-way digests and verifies
// login attempts against them. Implementations must salt every digest.
type PasswordHasher interface {
	// Hash returns the digest stored for a new account.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash is a mismatch.
	Check(password, hash string) bool
}
