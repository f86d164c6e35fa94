// Package phone canonicalizes Kenyan mobile-money numbers to the
// country-coded form the STK push API dials (254XXXXXXXXX).
package phone

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
)

const countryCode = "254"

var mpesaNumber = regexp.MustCompile(`^254[17]\d{8}$`)

// Normalize accepts a leading 0, a leading country code (with or without +)
// or a bare subscriber number and returns the 254-prefixed form.
func Normalize(raw string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)

	switch {
	case digits == "":
		return "", models.NewValidationError("phone", "phone number is required")
	case strings.HasPrefix(digits, countryCode):
	case strings.HasPrefix(digits, "0"):
		digits = countryCode + digits[1:]
	case strings.HasPrefix(digits, "7"), strings.HasPrefix(digits, "1"):
		digits = countryCode + digits
	}

	if !mpesaNumber.MatchString(digits) {
		return "", models.NewValidationError("phone", "not a valid M-Pesa number: "+raw)
	}
	return digits, nil
}

// IsValid reports whether raw normalizes to an M-Pesa number.
func IsValid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}
