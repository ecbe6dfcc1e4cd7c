package learner

import "unicode"

// MinPasswordScore is the lowest strength score accepted at signup.
const MinPasswordScore = 2

// Strength is a coarse password strength rating.
type Strength struct {
	Score int
	Label string
}

var strengthLabels = []string{"Very Weak", "Weak", "Fair", "Strong", "Very Strong"}

// PasswordStrength scores a password from 0 to 4: one point each for
// length >= 8, mixed case, a digit and a symbol.
func PasswordStrength(pw string) Strength {
	var lower, upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	score := 0
	if len(pw) >= 8 {
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
	return Strength{Score: score, Label: strengthLabels[score]}
}
