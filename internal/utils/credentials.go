package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidRandomLength is returned for a non-positive byte count.
var ErrInvalidRandomLength = errors.New("random length must be positive")

// HashPassword returns the bcrypt hash stored on a principal.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches a stored bcrypt hash.
// An empty hash (Google-only principals) never matches.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashRefreshToken returns the hex SHA-256 digest persisted in place of the raw token.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshTokenHash checks a raw refresh token against its stored digest.
func CompareRefreshTokenHash(token, storedHash string) bool {
	if storedHash == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(HashRefreshToken(token)), []byte(storedHash)) == 1
}

// GenerateSecureRandomString returns n random bytes, hex encoded (2n characters).
// Used for refresh tokens and OAuth state values.
func GenerateSecureRandomString(n int) (string, error) {
	if n <= 0 {
		return "", ErrInvalidRandomLength
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
