package entities

import "strings"

const cpfLength = 11

// Cpf is a validated Brazilian taxpayer id (Cadastro de Pessoas Físicas).
//
// The zero value is not a valid Cpf; instances only come out of ParseCpf, so
// holding one means the 11 digits passed both check-digit computations.
// Cpf is comparable: two values with the same digits are equal.
type Cpf struct {
	digits string
}

// ParseCpf strips every non-digit character from raw and validates the result.
func ParseCpf(raw string) (Cpf, error) {
	digits := onlyDigits(raw)
	if !isValidCpf(digits) {
		return Cpf{}, ErrInvalidCpf
	}
	return Cpf{digits: digits}, nil
}

// String returns the canonical 11-digit representation.
func (c Cpf) String() string {
	return c.digits
}

// Formatted returns the 000.000.000-00 rendering.
func (c Cpf) Formatted() string {
	if len(c.digits) != cpfLength {
		return c.digits
	}
	return c.digits[0:3] + "." + c.digits[3:6] + "." + c.digits[6:9] + "-" + c.digits[9:11]
}

func (c Cpf) IsZero() bool {
	return c.digits == ""
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isValidCpf(digits string) bool {
	if len(digits) != cpfLength {
		return false
	}
	if strings.Count(digits, digits[:1]) == cpfLength {
		return false
	}

	d1 := cpfCheckDigit(digits[:9], 10)
	d2 := cpfCheckDigit(digits[:9]+string(rune('0'+d1)), 11)

	return int(digits[9]-'0') == d1 && int(digits[10]-'0') == d2
}

// cpfCheckDigit applies the weighted modulo-11 rule: weights run from
// firstWeight down to 2 over the given digits.
func cpfCheckDigit(digits string, firstWeight int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (firstWeight - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}
