package helper

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateToken returns a 64-character hex token for email verification
// and password reset links.
func GenerateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
