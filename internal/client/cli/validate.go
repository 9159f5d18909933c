package cli

import (
	"strings"
	"unicode"
)

// PasswordStrength scores a password from 0 to 4: one point each for
// length of at least 6, mixed case, a digit, and a symbol. Letter and digit
// classes are ASCII only, so accented letters such as "ç" count as symbols.
func PasswordStrength(pw []byte) int {
	var lower, upper, digit, symbol bool
	for _, r := range string(pw) {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	score := 0
	if len([]rune(string(pw))) >= 6 {
		score++
	}
	if lower && upper {
		score++
	}
	if digit {
		score++
	}
	if symbol {
		score++
	}
	return score
}

// minPasswordStrength is the lowest score accepted at registration.
const minPasswordStrength = 2

func strengthLabel(score int) string {
	switch {
	case score <= 1:
		return "Weak"
	case score == 2:
		return "Medium"
	case score == 3:
		return "Good"
	default:
		return "Strong"
	}
}

// Sanitize drops control characters and angle brackets from user-supplied
// text before it is echoed or sent to the backend.
func Sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '<' || r == '>' {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
