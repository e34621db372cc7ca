package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// ReferralCodePrefix is prepended to every generated referral code
const ReferralCodePrefix = "SAFARI-"

const (
	referralCodeLength   = 6
	referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewID returns a new opaque unique identifier
func NewID() string {
	return uuid.NewString()
}

// GenerateReferralCode creates a code in the format "SAFARI-XXXXXX"
// where XXXXXX is six uppercase alphanumeric characters.
// Codes are random, not unique; callers must check for collisions.
func GenerateReferralCode() (string, error) {
	var sb strings.Builder
	sb.Grow(len(ReferralCodePrefix) + referralCodeLength)
	sb.WriteString(ReferralCodePrefix)

	alphabetSize := big.NewInt(int64(len(referralCodeAlphabet)))
	for i := 0; i < referralCodeLength; i++ {
		idx, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate referral code: %w", err)
		}
		sb.WriteByte(referralCodeAlphabet[idx.Int64()])
	}

	return sb.String(), nil
}

// IsReferralCode reports whether s has the shape of a generated referral code
func IsReferralCode(s string) bool {
	if !strings.HasPrefix(s, ReferralCodePrefix) {
		return false
	}
	suffix := s[len(ReferralCodePrefix):]
	if len(suffix) != referralCodeLength {
		return false
	}
	for i := 0; i < len(suffix); i++ {
		if !strings.ContainsRune(referralCodeAlphabet, rune(suffix[i])) {
			return false
		}
	}
	return true
}
