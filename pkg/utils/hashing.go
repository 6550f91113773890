package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashManageKey hashes a form's manage key for storage. The manage key gates
// the submissions listing; it is never stored in the clear.
func HashManageKey(key string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(key), 10)
	return string(bytes), err
}

func CompareManageKey(hashedKey string, plainKey string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(plainKey))
}

// GenerateSecureToken returns a random hex string; used for stored file
// names and anonymous visitor ids.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}

	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
