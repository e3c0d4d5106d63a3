package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateRefreshToken returns an opaque 64-byte random value, hex encoded.
// The token carries no claims; validity lives entirely in the database.
func GenerateRefreshToken() (string, error) {
	buf := make([]byte, 64)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
