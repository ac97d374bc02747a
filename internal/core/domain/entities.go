// Package domain contains the core domain types of the garden center.
// This is part of the Functional Core - all functions are pure with no I/O.
package domain

import "github.com/shopspring/decimal"

func init() {
	// Money travels as a JSON number (19.99), not a string ("19.99").
	decimal.MarshalJSONWithoutQuotes = true
}

// =============================================================================
// Entity
// =============================================================================

// Entity is implemented by every identified record. Equality between two
// entities of the same type is by identifier.
type Entity interface {
	EntityID() int64
}

// =============================================================================
// Customers
// =============================================================================

// Address is owned by exactly one Customer and has no lifecycle of its own.
type Address struct {
	ID      int64  `json:"id"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

// Customer is a buyer with a unique email and one address.
type Customer struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address Address `json:"address"`
}

func (c Customer) EntityID() int64 { return c.ID }

// =============================================================================
// Products
// =============================================================================

// Product is a catalog entry identified externally by its SKU.
type Product struct {
	ID           int64           `json:"id"`
	SKU          string          `json:"sku"`
	Type         string          `json:"type"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Manufacturer string          `json:"manufacturer"`
	Price        decimal.Decimal `json:"price"`
}

func (p Product) EntityID() int64 { return p.ID }

// =============================================================================
// Orders
// =============================================================================

// Item is the single line of an order. ProductID is not enforced by the
// item itself; orders check it against the product catalog.
type Item struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Order is a purchase of one item by one customer on a calendar date.
type Order struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customerId"`
	Date       string          `json:"date"`
	Item       Item            `json:"items"`
	OrderTotal decimal.Decimal `json:"orderTotal"`
}

func (o Order) EntityID() int64 { return o.ID }

// =============================================================================
// Users
// =============================================================================

// Role carries the permission flags of a user.
type Role struct {
	ID       int64 `json:"id"`
	Admin    bool  `json:"admin"`
	Employee bool  `json:"employee"`
}

// User is a staff account.
//
// Password holds the plaintext password on the way in and the bcrypt hash
// once loaded from the store. It is never serialized in responses.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"roles"`
}

func (u User) EntityID() int64 { return u.ID }
