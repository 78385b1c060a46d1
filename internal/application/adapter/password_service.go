// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// HashPassword generates a hash from a plain text password.
	HashPassword(password string) (string, error)

	// ComparePassword compares a plain text password with a hash.
	ComparePassword(hashedPassword, password string) error
}
