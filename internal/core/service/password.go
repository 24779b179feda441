package service

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt with a tunable work factor.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher. A cost outside bcrypt's valid
// range falls back to the library default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the salted bcrypt hash of the plaintext password.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash. A malformed stored
// hash counts as a mismatch, never an error.
func (h *PasswordHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// validPassword checks the sign-up password policy: at least 8 characters
// with one uppercase letter, one lowercase letter, one digit and one
// non-alphanumeric character.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
