package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// OrderCodeBytes is the number of random bytes in an order code.
// Hex encoding doubles it to a 40 character identifier.
const OrderCodeBytes = 20

// GenerateOrderCode returns a cryptographically random opaque order
// identifier. Codes are not sequential and not guessable; uniqueness is
// enforced by the orders primary key.
func GenerateOrderCode() (string, error) {
	buf := make([]byte, OrderCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate order code: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
