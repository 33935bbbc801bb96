package cli

import "regexp"

// The password rules the server enforces, checked client-side so a weak
// password never leaves the machine.
var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

const passwordMinLength = 8

// PasswordStrength reports whether the password satisfies every rule and,
// if not, the first failing rule's message.
func PasswordStrength(password string) (msg string, ok bool) {
	switch {
	case len(password) < passwordMinLength:
		return "Password is too short.", false
	case !upperRe.MatchString(password):
		return "Password must include at least one uppercase letter.", false
	case !lowerRe.MatchString(password):
		return "Password must include at least one lowercase letter.", false
	case !digitRe.MatchString(password):
		return "Password must include at least one number.", false
	case !specialRe.MatchString(password):
		return "Password must include at least one special character.", false
	}
	return "Password is strong.", true
}

// IsPasswordSafe is the final gate before submission.
func IsPasswordSafe(password string) bool {
	_, ok := PasswordStrength(password)
	return ok
}
