package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

var hashSalt string

// InitHashSalt loads the log hash salt. In production, set LOG_HASH_SALT.
func InitHashSalt() {
	hashSalt = os.Getenv("LOG_HASH_SALT")
	if hashSalt == "" {
		hashSalt = "default-salt-change-in-production"
	}
}

// InitHashSaltForTesting sets the salt to a fixed value. Only for tests.
func InitHashSaltForTesting(salt string) {
	hashSalt = salt
}

// HashOwnerID creates a privacy-preserving hash of an owner id so log lines
// can be correlated without exposing account names.
func HashOwnerID(ownerID string) string {
	if hashSalt == "" {
		InitHashSalt()
	}
	data := fmt.Sprintf("%s:%s", ownerID, hashSalt)
	hash := sha256.Sum256([]byte(data))
	// First 8 characters for readability.
	return hex.EncodeToString(hash[:])[:8]
}

// SanitizeTitle redacts a user-supplied entry title while preserving length
// information for debugging.
func SanitizeTitle(title string) string {
	if title == "" {
		return "<empty>"
	}
	return fmt.Sprintf("<redacted: %d chars>", len(title))
}
