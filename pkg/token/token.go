// Package token generates opaque random tokens for session and
// verification flows.
package token

import (
	"crypto/rand"
	"encoding/base64"
)

const (
	DefaultLength = 32 // 256 bits
)

// Generate returns a URL-safe random token of byteLength random bytes.
// A byteLength of zero or less falls back to DefaultLength.
func Generate(byteLength int) (string, error) {
	if byteLength <= 0 {
		byteLength = DefaultLength
	}

	bytes := make([]byte, byteLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
