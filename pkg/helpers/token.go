package helpers

import (
	"crypto/rand"
	"encoding/hex"
)

const (
	// DefaultAccessTokenBytes is the number of random bytes behind an
	// access token; the hex string is twice as many characters.
	DefaultAccessTokenBytes = 64

	// minAccessTokenBytes is the entropy floor (128 bits).
	minAccessTokenBytes = 16
)

// NewAccessToken returns a hex-encoded token drawn from crypto/rand.
// Requests below the entropy floor are bumped to the default.
func NewAccessToken(n int) (string, error) {
	if n < minAccessTokenBytes {
		n = DefaultAccessTokenBytes
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
