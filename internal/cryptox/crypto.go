// Package cryptox implements the secret codec for refresh tokens:
// generation of high-entropy opaque secrets and the one-way digest that
// is stored in their place. The raw secret leaves this package exactly
// once per issuance; everything downstream works with digests.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// SecretByteSize is the number of random bytes in a refresh secret
// before hex encoding: 256 bits of entropy.
const SecretByteSize = 32

// GenerateSecret returns a new opaque refresh secret: SecretByteSize
// random bytes, hex-encoded. It returns an error only if the system
// random source fails.
func GenerateSecret() (string, error) {
	b := make([]byte, SecretByteSize)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	defer Wipe(b)
	return hex.EncodeToString(b), nil
}

// DigestSecret computes the hex-encoded SHA-256 digest of a raw secret.
// Deterministic, so digests can be used for storage and lookup equality.
func DigestSecret(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// DigestPrefix returns the first 8 characters of a digest. Raw secrets
// and full digests must never be logged; this prefix is the only form
// safe to emit in diagnostics.
func DigestPrefix(digest string) string {
	if len(digest) <= 8 {
		return digest
	}
	return digest[:8]
}

// Wipe overwrites the contents of b with zeros. Useful for removing
// sensitive material from memory after use. A nil slice is a no-op.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
