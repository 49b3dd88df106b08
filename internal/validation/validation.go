package validation

import "strings"

// specialChars is the fixed set of characters that count toward the
// "special character" strength requirement.
const specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// EmailLooksValid reports whether the value passes the form's email
// heuristic: a trimmed length greater than 2. This is intentionally NOT a
// full email-format check; the provider rejects malformed addresses on
// submission, so the form only guards against obviously empty input.
func EmailLooksValid(s string) bool {
	return len(strings.TrimSpace(s)) > 2
}

// ValidLoginPassword reports whether a password is long enough to attempt
// a sign-in with. Existing accounts may predate the strength policy, so
// the login form only requires six characters.
func ValidLoginPassword(s string) bool {
	return len(s) >= 6
}

// ValidNewPassword reports whether a password may be submitted on the
// update-password screen.
func ValidNewPassword(s string) bool {
	return len(s) >= 8
}

// Strength holds the three independent checks behind the registration
// form's password meter.
type Strength struct {
	MinLength  bool
	HasNumber  bool
	HasSpecial bool
}

// PasswordStrength computes the strength checks for a candidate password.
// It is a pure function: identical input always yields identical output.
func PasswordStrength(s string) Strength {
	st := Strength{MinLength: len(s) > 8}
	for _, r := range s {
		// ASCII digits only; the number requirement does not count other
		// scripts' decimal digits.
		if '0' <= r && r <= '9' {
			st.HasNumber = true
		}
	}
	st.HasSpecial = strings.ContainsAny(s, specialChars)
	return st
}

// Strong reports whether every strength check passed.
func (s Strength) Strong() bool {
	return s.MinLength && s.HasNumber && s.HasSpecial
}

// NonEmpty reports whether the value contains anything besides whitespace.
// Used for the required name fields on the registration form.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
