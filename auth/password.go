// Package auth implements password hashing and verification for user
// credentials.
package auth

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used when no cost is configured.
// bcrypt.DefaultCost keeps a single hash call within normal request latency
// while remaining expensive to brute-force.
const DefaultCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password with bcrypt at the given cost.
// bcrypt generates a fresh salt per call, so hashing the same password twice
// yields different strings that both verify.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// Malformed or foreign-scheme hashes simply fail verification; this never
// panics or surfaces an error to the caller.
func CheckPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
