package store

import (
	"crypto/sha512"
	"encoding/hex"
)

// HashPassword derives the 128-hex-char SHA-512 digest UserIsValid compares
// against, the same digest the LOGIN handler computes from the plaintext
// password a client sends over the wire. Config-bootstrapped users instead
// carry this hash pre-computed, so operators never put a plaintext
// password in the config file.
func HashPassword(plain string) string {
	sum := sha512.Sum512([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// PasswordHashLen is the length of a valid HashPassword output: 64 bytes of
// SHA-512 digest, hex-encoded.
const PasswordHashLen = sha512.Size * 2
