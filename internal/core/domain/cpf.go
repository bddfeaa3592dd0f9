package domain

import "strings"

// ValidCPF validates a Brazilian CPF number. Formatting characters are
// stripped first; the result must be exactly 11 digits, must not be a
// single repeated digit, and both verification digits must match the
// modulo-11 checksum.
func ValidCPF(cpf string) bool {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) != 11 {
		return false
	}
	if digits == strings.Repeat(digits[:1], 11) {
		return false
	}

	return digits[9] == cpfCheckDigit(digits[:9]) &&
		digits[10] == cpfCheckDigit(digits[:10])
}

// cpfCheckDigit computes a verification digit over the leading digits.
// Digits are weighted descending from len(partial) down to 1; the sum
// modulo 11 maps to '0' when below 2, otherwise to 11 minus the
// remainder.
func cpfCheckDigit(partial string) byte {
	sum := 0
	weight := len(partial)
	for i := 0; i < len(partial); i++ {
		sum += int(partial[i]-'0') * weight
		weight--
	}
	rest := sum % 11
	if rest < 2 {
		return '0'
	}
	return byte('0' + 11 - rest)
}
