// Package password provides one-way password hashing for stored credentials.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes secrets for storage and verifies candidates against
// stored hashes.
type Hasher interface {
	// Hash returns a salted, adaptive-cost digest of the secret.
	// Two calls with the same input produce different digests.
	Hash(secret string) (string, error)

	// Verify reports whether the secret matches the stored hash.
	// A malformed hash yields false, never an error.
	Verify(secret, hash string) bool
}

// BcryptHasher implements Hasher using bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt hasher with the given work factor.
// Costs outside bcrypt's supported range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt digest of secret. The salt is generated per call
// and embedded in the digest together with the cost.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	if len(secret) > 72 {
		return "", fmt.Errorf("password exceeds bcrypt limit of 72 bytes")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify recomputes the digest using the salt and cost embedded in hash
// and compares in constant time.
func (h *BcryptHasher) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
