package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost of 8 for performance on low-CPU nodes
// Cost 8 = ~25ms, Cost 10 = ~100ms, Cost 12 = ~400ms per hash
const bcryptCost = 8

// HashPassword generates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if the provided password matches the hash
func VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// ValidatePasswordStrength checks the password policy. All violations are
// collected and returned as a single comma-separated message so the client
// sees everything wrong at once.
func ValidatePasswordStrength(password string) string {
	var violations []string

	if len(password) < 8 {
		violations = append(violations, "password must be at least 8 characters")
	}

	return strings.Join(violations, ", ")
}
