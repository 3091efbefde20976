// Package validate provides the pure input predicates used by registration:
// email and phone formats plus the Brazilian CPF/CNPJ check-digit algorithms.
package validate

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// Email reports whether s looks like local@domain.tld, where the local part
// and domain are word characters, dots or hyphens.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Phone reports whether s contains exactly 10 or 11 digits once formatting
// characters are stripped (area code plus number, with or without the
// mobile digit).
func Phone(s string) bool {
	n := len(nonDigits.ReplaceAllString(s, ""))
	return n == 10 || n == 11
}

// NationalID reports whether s is a valid CPF: 11 digits after stripping
// formatting, not all identical, with both weighted check digits matching.
func NationalID(s string) bool {
	digits := nonDigits.ReplaceAllString(s, "")
	if len(digits) != 11 || allSame(digits) {
		return false
	}
	for i := 9; i < 11; i++ {
		if checkDigit(digits, i) != int(digits[i]-'0') {
			return false
		}
	}
	return true
}

// TaxID reports whether s is a valid supplier tax identifier: either a CPF
// or a 14-digit CNPJ with matching check digits.
func TaxID(s string) bool {
	digits := nonDigits.ReplaceAllString(s, "")
	if len(digits) == 11 {
		return NationalID(digits)
	}
	if len(digits) != 14 || allSame(digits) {
		return false
	}
	weights := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	for i := 12; i < 14; i++ {
		sum := 0
		for j := 0; j < i; j++ {
			sum += int(digits[j]-'0') * weights[len(weights)-i+j]
		}
		expected := 11 - sum%11
		if expected > 9 {
			expected = 0
		}
		if expected != int(digits[i]-'0') {
			return false
		}
		weights = append([]int{6}, weights...)
	}
	return true
}

// checkDigit computes the CPF check digit at position i (9 or 10) from the
// weighted sum of the preceding digits.
func checkDigit(digits string, i int) int {
	sum := 0
	for j := 0; j < i; j++ {
		sum += int(digits[j]-'0') * ((i + 1) - j)
	}
	d := 11 - sum%11
	if d > 9 {
		d = 0
	}
	return d
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
