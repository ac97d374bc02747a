package validation

import "github.com/artpar/gardencenter/internal/core/domain"

// =============================================================================
// Existence, Uniqueness & Identity
// =============================================================================

// Exists reports whether any entity in collection has the identifier id.
func Exists[E domain.Entity](id int64, collection []E) bool {
	for _, e := range collection {
		if e.EntityID() == id {
			return true
		}
	}
	return false
}

// IsUnique reports whether no other entity in collection shares the unique
// key of candidate. An entity with the candidate's own identifier never
// conflicts, so an update that keeps its email or SKU passes.
func IsUnique[E domain.Entity](candidate E, collection []E, key func(E) string) bool {
	want := key(candidate)
	for _, e := range collection {
		if key(e) == want && e.EntityID() != candidate.EntityID() {
			return false
		}
	}
	return true
}

// IdentityMatches reports whether the path identifier equals the payload's.
func IdentityMatches[E domain.Entity](pathID int64, payload E) bool {
	return pathID == payload.EntityID()
}

// CustomerEmailIsUnique reports whether no other customer uses c's email.
func CustomerEmailIsUnique(c domain.Customer, customers []domain.Customer) bool {
	return IsUnique(c, customers, func(c domain.Customer) string { return c.Email })
}

// UserEmailIsUnique reports whether no other user uses u's email.
func UserEmailIsUnique(u domain.User, users []domain.User) bool {
	return IsUnique(u, users, func(u domain.User) string { return u.Email })
}

// ProductSKUIsUnique reports whether no other product uses p's SKU.
func ProductSKUIsUnique(p domain.Product, products []domain.Product) bool {
	return IsUnique(p, products, func(p domain.Product) string { return p.SKU })
}
