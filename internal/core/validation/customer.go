package validation

import "github.com/artpar/gardencenter/internal/core/domain"

// =============================================================================
// Customer Gate
// =============================================================================

// CustomerChecks returns the ordered checks for a customer mutation.
// pathID is ignored for Create.
func CustomerChecks(mode Mode, pathID int64, c domain.Customer, customers []domain.Customer) []Check {
	checks := updatePrefix(mode, "customer", pathID, c, customers)
	return append(checks,
		mustPass("email_unique",
			func() bool { return CustomerEmailIsUnique(c, customers) },
			func() *Rejection { return conflict("email", "email has already been taken, choose another email") }),
		mustPass("email_format",
			func() bool { return IsValidEmail(c.Email) },
			func() *Rejection { return invalidFormat("email", "email must be in proper email format") }),
		mustPass("zipcode_format",
			func() bool { return IsValidZipcode(c.Address.Zipcode) },
			func() *Rejection {
				return invalidFormat("zipcode", "zipcode must have 5 digits or 9 digits. xxxxx or xxxxx-xxxx")
			}),
		mustPass("state_format",
			func() bool { return IsValidState(c.Address.State) },
			func() *Rejection { return invalidFormat("state", "state must be a valid US state abbreviation") }),
	)
}

// ValidateCustomer gates a customer create or update.
//
// Example:
//
//	d := ValidateCustomer(Update, id, payload, customers)
//	if !d.Accepted() {
//	    // respond with d.Rejection.StatusCode()
//	}
func ValidateCustomer(mode Mode, pathID int64, c domain.Customer, customers []domain.Customer) Decision {
	return Gate(CustomerChecks(mode, pathID, c, customers))
}
