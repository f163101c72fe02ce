package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// SessionKeySize is the entropy of a kiosk session key in bytes. 128 bits is
// enough to make keys unguessable for their short lifetime.
const SessionKeySize = 16

// GenerateHexToken creates a cryptographically secure random token of the
// given byte length, hex-encoded.
func GenerateHexToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("cryptox: token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: failed to generate random token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// NewSessionKey mints an opaque session key for kiosk pairing. Keys are
// unique per call with overwhelming probability; the sessions table still
// enforces uniqueness.
func NewSessionKey() (string, error) {
	return GenerateHexToken(SessionKeySize)
}
