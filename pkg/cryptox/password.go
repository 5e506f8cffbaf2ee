package cryptox

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. These are fixed: digests stored with one parameter set
// cannot be verified with another, so changing them invalidates every
// credential in the database.
const (
	saltLength = 64     // raw salt bytes before hex encoding
	iterations = 100000 // PBKDF2 rounds
	keyLength  = 64     // derived key bytes before hex encoding
)

// NewSalt returns a fresh per-credential salt as a fixed-length hex string.
// The only failure mode is the entropy source being unavailable, which
// callers should treat as fatal.
func NewSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("cryptox: salt generation failed: %w", err)
	}
	return hex.EncodeToString(salt), nil
}

// Hash derives a hex-encoded PBKDF2-SHA512 digest from password and salt.
// Deterministic: the same (password, salt) pair always yields the same
// digest, which is what makes verification possible.
func Hash(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha512.New)
	return hex.EncodeToString(key)
}

// Verify recomputes the digest for (password, salt) and compares it against
// the stored digest in constant time.
func Verify(password, salt, digest string) bool {
	computed := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
