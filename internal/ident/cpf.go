// Package ident generates the natural identifiers of the shelter schema:
// national ids (CPF), veterinary registrations (CRMV), and the reservation
// registry that keeps every generated value unique within a run.
package ident

import (
	"math/rand/v2"
	"strings"
)

const cpfLength = 11

// NewCPF returns 9 random digits followed by their two checksum digits.
func NewCPF(r *rand.Rand) string {
	digits := make([]int, 0, cpfLength)
	for range cpfLength - 2 {
		digits = append(digits, r.IntN(10))
	}
	digits = append(digits, checkDigit(digits, 10))
	digits = append(digits, checkDigit(digits, 11))

	var b strings.Builder
	b.Grow(cpfLength)
	for _, d := range digits {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// ValidCPF reports whether s is 11 digits whose last two are the checksum
// of the preceding ones.
func ValidCPF(s string) bool {
	if len(s) != cpfLength {
		return false
	}
	digits := make([]int, cpfLength)
	for i := range s {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
		digits[i] = int(s[i] - '0')
	}
	return digits[9] == checkDigit(digits[:9], 10) && digits[10] == checkDigit(digits[:10], 11)
}

// checkDigit weighs digits from firstWeight down to 2 and folds the sum mod 11.
func checkDigit(digits []int, firstWeight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (firstWeight - i)
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}
