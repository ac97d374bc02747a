package filter

import (
	"github.com/artpar/gardencenter/internal/core/crypto"
	"github.com/artpar/gardencenter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Criteria
// =============================================================================

// CustomerCriteria selects customers. Address fields match the owned address.
type CustomerCriteria struct {
	Name    domain.Optional[string]
	Email   domain.Optional[string]
	City    domain.Optional[string]
	State   domain.Optional[string]
	Zipcode domain.Optional[string]
	Street  domain.Optional[string]
}

// IsEmpty reports whether no criterion is set.
func (c CustomerCriteria) IsEmpty() bool {
	return !c.Name.IsSet() && !c.Email.IsSet() && !c.City.IsSet() &&
		!c.State.IsSet() && !c.Zipcode.IsSet() && !c.Street.IsSet()
}

// ProductCriteria selects products.
type ProductCriteria struct {
	SKU          domain.Optional[string]
	Type         domain.Optional[string]
	Name         domain.Optional[string]
	Manufacturer domain.Optional[string]
	Price        domain.Optional[decimal.Decimal]
}

// IsEmpty reports whether no criterion is set.
func (c ProductCriteria) IsEmpty() bool {
	return !c.SKU.IsSet() && !c.Type.IsSet() && !c.Name.IsSet() &&
		!c.Manufacturer.IsSet() && !c.Price.IsSet()
}

// OrderCriteria selects orders. ProductID and Quantity match the order item.
type OrderCriteria struct {
	CustomerID domain.Optional[int64]
	Date       domain.Optional[string]
	OrderTotal domain.Optional[decimal.Decimal]
	ProductID  domain.Optional[int64]
	Quantity   domain.Optional[int]
}

// IsEmpty reports whether no criterion is set.
func (c OrderCriteria) IsEmpty() bool {
	return !c.CustomerID.IsSet() && !c.Date.IsSet() && !c.OrderTotal.IsSet() &&
		!c.ProductID.IsSet() && !c.Quantity.IsSet()
}

// UserCriteria selects users. Password is plaintext and is compared against
// each user's stored hash.
type UserCriteria struct {
	Name     domain.Optional[string]
	Title    domain.Optional[string]
	Email    domain.Optional[string]
	Password domain.Optional[string]
}

// IsEmpty reports whether no criterion is set.
func (c UserCriteria) IsEmpty() bool {
	return !c.Name.IsSet() && !c.Title.IsSet() && !c.Email.IsSet() && !c.Password.IsSet()
}

// =============================================================================
// Filters
// =============================================================================

// Customers returns the customers matching every set criterion.
//
// Example:
//
//	filter.Customers(filter.CustomerCriteria{City: domain.Text("Oxnard")}, customers)
func Customers(c CustomerCriteria, in []domain.Customer) []domain.Customer {
	if c.IsEmpty() {
		return in
	}
	return retain(in, func(x domain.Customer) bool {
		return matches(c.Name, x.Name) &&
			matches(c.Email, x.Email) &&
			matches(c.City, x.Address.City) &&
			matches(c.State, x.Address.State) &&
			matches(c.Zipcode, x.Address.Zipcode) &&
			matches(c.Street, x.Address.Street)
	})
}

// Products returns the products matching every set criterion.
func Products(c ProductCriteria, in []domain.Product) []domain.Product {
	if c.IsEmpty() {
		return in
	}
	return retain(in, func(x domain.Product) bool {
		return matches(c.SKU, x.SKU) &&
			matches(c.Type, x.Type) &&
			matches(c.Name, x.Name) &&
			matches(c.Manufacturer, x.Manufacturer) &&
			matchesAmount(c.Price, x.Price)
	})
}

// Orders returns the orders matching every set criterion.
func Orders(c OrderCriteria, in []domain.Order) []domain.Order {
	if c.IsEmpty() {
		return in
	}
	return retain(in, func(x domain.Order) bool {
		return matches(c.CustomerID, x.CustomerID) &&
			matches(c.Date, x.Date) &&
			matchesAmount(c.OrderTotal, x.OrderTotal) &&
			matches(c.ProductID, x.Item.ProductID) &&
			matches(c.Quantity, x.Item.Quantity)
	})
}

// Users returns the users matching every set criterion.
func Users(c UserCriteria, in []domain.User) []domain.User {
	if c.IsEmpty() {
		return in
	}
	return retain(in, func(x domain.User) bool {
		if !matches(c.Name, x.Name) || !matches(c.Title, x.Title) || !matches(c.Email, x.Email) {
			return false
		}
		if pw, ok := c.Password.Get(); ok {
			return crypto.PasswordMatches(x.Password, pw)
		}
		return true
	})
}

// UsersByAdmin returns the users whose admin flag equals admin.
func UsersByAdmin(admin bool, in []domain.User) []domain.User {
	return retain(in, func(x domain.User) bool { return x.Role.Admin == admin })
}

// UsersByEmployee returns the users whose employee flag equals employee.
func UsersByEmployee(employee bool, in []domain.User) []domain.User {
	return retain(in, func(x domain.User) bool { return x.Role.Employee == employee })
}

// =============================================================================
// Helpers
// =============================================================================

// retain returns a new slice of the elements of in that satisfy keep.
func retain[E any](in []E, keep func(E) bool) []E {
	out := make([]E, 0, len(in))
	for _, e := range in {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// matches reports whether c is unset or holds v.
func matches[T comparable](c domain.Optional[T], v T) bool {
	want, ok := c.Get()
	return !ok || want == v
}

func matchesAmount(c domain.Optional[decimal.Decimal], v decimal.Decimal) bool {
	want, ok := c.Get()
	return !ok || want.Equal(v)
}
