// Package cnpj validates and formats Brazilian legal-entity tax identifiers.
//
// A CNPJ has 12 base digits followed by two check digits, each computed as a
// weighted sum modulo 11 over the digits before it.
package cnpj

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Length is the number of digits in a normalized CNPJ.
const Length = 14

// Tag is the go-playground/validator tag registered by RegisterValidation.
const Tag = "cnpj"

var (
	firstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ErrInvalid is returned by Format for input that fails IsValid.
var ErrInvalid = errors.New("invalid CNPJ")

// ErrInvalidBase is returned by CheckDigits when the base is not 12 digits.
var ErrInvalidBase = errors.New("CNPJ base must be 12 digits")

// Normalize removes the punctuation used when writing a CNPJ by hand
// (dots, slashes, hyphens and surrounding or embedded whitespace).
// Any other character is kept so that IsValid rejects it.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '.', '/', '-', ' ', '\t', '\n', '\r':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsValid reports whether candidate is a well-formed CNPJ with matching check
// digits. It never panics; malformed input yields false.
func IsValid(candidate string) bool {
	digits := Normalize(candidate)
	if len(digits) != Length || !allDigits(digits) || allSame(digits) {
		return false
	}

	first := checkDigit(digits[:12], firstWeights)
	if digits[12] != first {
		return false
	}
	second := checkDigit(digits[:13], secondWeights)
	return digits[13] == second
}

// CheckDigits computes both check digits for a 12-digit base.
func CheckDigits(base string) (byte, byte, error) {
	if len(base) != 12 || !allDigits(base) {
		return 0, 0, ErrInvalidBase
	}
	first := checkDigit(base, firstWeights)
	second := checkDigit(base+string(first), secondWeights)
	return first, second, nil
}

// Format renders a valid CNPJ as NN.NNN.NNN/NNNN-NN.
func Format(s string) (string, error) {
	if !IsValid(s) {
		return "", ErrInvalid
	}
	d := Normalize(s)
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14], nil
}

// RegisterValidation registers the "cnpj" tag on v.
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation(Tag, func(fl validator.FieldLevel) bool {
		return IsValid(fl.Field().String())
	})
}

func checkDigit(digits string, weights []int) byte {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
