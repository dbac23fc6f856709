// Package id generates public-facing identifiers.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

const (
	// digits is the alphabet for tracking ID suffixes.
	digits = "0123456789"

	// TrackingSuffixLength is the number of digits after the prefix.
	TrackingSuffixLength = 6

	// TrackingPrefix prefixes every complaint tracking ID.
	TrackingPrefix = "JAN"
)

var trackingIDPattern = regexp.MustCompile(`^JAN-\d{6}$`)

// GenerateDigits creates a cryptographically random string of decimal digits.
func GenerateDigits(length int) (string, error) {
	if length <= 0 {
		length = TrackingSuffixLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(digits)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = digits[num.Int64()]
	}

	return string(result), nil
}

// NewTrackingID generates a tracking ID in the form "JAN-123456".
func NewTrackingID() (string, error) {
	suffix, err := GenerateDigits(TrackingSuffixLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", TrackingPrefix, suffix), nil
}

// MustNewTrackingID generates a tracking ID and panics on error.
// Use this only when you're certain the generation won't fail.
func MustNewTrackingID() string {
	id, err := NewTrackingID()
	if err != nil {
		panic(err)
	}
	return id
}

// IsValidTrackingID reports whether s matches the "JAN-######" format.
func IsValidTrackingID(s string) bool {
	return trackingIDPattern.MatchString(s)
}

// NormalizeTrackingID upper-cases and trims a caller-supplied tracking ID.
func NormalizeTrackingID(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
