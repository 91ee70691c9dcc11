package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// saltByteLength is the entropy width of a freshly generated salt before
// base64 encoding.
const saltByteLength = 128

// RandomSalt produces a high-entropy per-user salt: saltByteLength random
// bytes from crypto/rand, base64-encoded. Generated exactly once per user
// at registration and stored alongside the password digest.
//
// Returns an error only if the system's secure random source fails.
func RandomSalt() (string, error) {
	buf := make([]byte, saltByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating random salt: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// HashPassword computes the password digest stored for a user:
// an HMAC-SHA256 keyed by "salt/password" over the process-wide secret,
// base64-encoded (44 characters for the 32-byte digest).
//
// Mixing the process-wide secret into the digest means a leaked storage
// dump alone cannot be brute-forced offline without also compromising
// the secret.
//
// Deterministic: the same (salt, password, secret) triple always yields
// the same digest.
func HashPassword(salt, password, secret string) string {
	mac := hmac.New(sha256.New, []byte(salt+"/"+password))
	mac.Write([]byte(secret))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyPassword recomputes the digest for the supplied password with the
// stored salt and compares it to the stored digest in constant time.
func VerifyPassword(storedDigest, salt, password, secret string) bool {
	expected := HashPassword(salt, password, secret)
	return hmac.Equal([]byte(storedDigest), []byte(expected))
}
