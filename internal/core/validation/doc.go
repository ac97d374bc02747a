// Package validation provides the pure rules that gate every mutation of
// the garden center's entities.
//
// All functions are pure (no I/O, no side effects). Callers pass in the
// collections a rule needs; the store is never consulted from here.
//
// # Functions
//
//   - Format predicates: IsValidEmail, IsValidState, IsValidZipcode,
//     IsValidMoney, IsValidDate, IsPositiveQuantity, IsValidPassword
//   - Record checks: Exists, IsUnique, IdentityMatches
//   - Gates: ValidateCustomer, ValidateProduct, ValidateOrder, ValidateUser
//
// # Usage
//
// A gate runs its checks in a fixed order and reports only the first failure:
//
//	d := validation.ValidateProduct(validation.Create, 0, product, products)
//	if !d.Accepted() {
//	    // Return d.Rejection.StatusCode() with d.Rejection.Message
//	}
//
// Updates run two extra checks before the rest: the path id must equal the
// payload id, and the entity must already exist.
package validation
