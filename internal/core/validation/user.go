package validation

import "github.com/artpar/gardencenter/internal/core/domain"

// =============================================================================
// User Gate
// =============================================================================

// UserChecks returns the ordered checks for a user mutation. The password
// rule applies to the plaintext in the payload, before it is hashed.
func UserChecks(mode Mode, pathID int64, u domain.User, users []domain.User) []Check {
	checks := updatePrefix(mode, "user", pathID, u, users)
	return append(checks,
		mustPass("email_unique",
			func() bool { return UserEmailIsUnique(u, users) },
			func() *Rejection { return conflict("email", "email has already been taken, try again") }),
		mustPass("password_length",
			func() bool { return IsValidPassword(u.Password) },
			func() *Rejection { return invalidFormat("password", "password must have 8 or more characters") }),
		mustPass("email_format",
			func() bool { return IsValidEmail(u.Email) },
			func() *Rejection { return invalidFormat("email", "email must be in proper email format") }),
	)
}

// ValidateUser gates a user create or update.
func ValidateUser(mode Mode, pathID int64, u domain.User, users []domain.User) Decision {
	return Gate(UserChecks(mode, pathID, u, users))
}
