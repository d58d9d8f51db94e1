// Package service defines interfaces for stateless domain logic that does
// not belong to a single entity.
package service

// PasswordHasher abstracts the hashing algorithm so the domain never sees
// bcrypt directly.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Two calls
	// with the same input produce different digests.
	Hash(password string) (string, error)

	// Check reports whether plaintext and hash match. It returns false on
	// malformed hash input, never an error.
	Check(password, hash string) bool
}
