// Package auth implements the PIN/biometric app lock. The lock is a
// low-stakes local gate for a single-user on-device app, not a security
// boundary.
package auth

import (
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ValidPIN reports whether pin is exactly four digits.
func ValidPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// LegacyHashPIN reproduces the original client's stored PIN form:
// base64 of the reversed digit string. It is reversible, not a hash; it is
// kept only so documents and backup files written by the original client
// keep unlocking after import.
func LegacyHashPIN(pin string) string {
	runes := []rune(pin)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return base64.StdEncoding.EncodeToString([]byte(string(runes)))
}

// HashPIN hashes a newly chosen PIN with bcrypt.
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPIN checks pin against a stored value of either scheme.
func VerifyPIN(pin, stored string) bool {
	if stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(pin)) == nil
	}
	return LegacyHashPIN(pin) == stored
}
