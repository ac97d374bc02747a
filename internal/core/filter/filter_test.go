package filter

import (
	"testing"

	"github.com/artpar/gardencenter/internal/core/crypto"
	"github.com/artpar/gardencenter/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// =============================================================================
// Test Fixtures
// =============================================================================

func customers() []domain.Customer {
	return []domain.Customer{
		{
			ID: 1, Name: "Troy", Email: "tf@gmail.com",
			Address: domain.Address{ID: 1, Street: "Main St.", City: "Oxnard", State: "CA", Zipcode: "55555"},
		},
		{
			ID: 2, Name: "Lewis", Email: "lh44@gmail.com",
			Address: domain.Address{ID: 2, Street: "North St.", City: "Vista", State: "CA", Zipcode: "22222"},
		},
	}
}

func products() []domain.Product {
	return []domain.Product{
		{ID: 1, SKU: "TRW-001", Type: "tool", Name: "Trowel", Manufacturer: "Fiskars", Price: decimal.RequireFromString("12.99")},
		{ID: 2, SKU: "HOS-050", Type: "hose", Name: "Hose", Manufacturer: "Gilmour", Price: decimal.RequireFromString("34.50")},
		{ID: 3, SKU: "SHR-010", Type: "tool", Name: "Shears", Manufacturer: "Fiskars", Price: decimal.RequireFromString("24.99")},
	}
}

func orders() []domain.Order {
	return []domain.Order{
		{ID: 1, CustomerID: 1, Date: "2020-10-17", Item: domain.Item{ProductID: 1, Quantity: 2}, OrderTotal: decimal.RequireFromString("25.98")},
		{ID: 2, CustomerID: 2, Date: "2020-10-17", Item: domain.Item{ProductID: 2, Quantity: 1}, OrderTotal: decimal.RequireFromString("34.50")},
		{ID: 3, CustomerID: 1, Date: "2020-11-02", Item: domain.Item{ProductID: 3, Quantity: 1}, OrderTotal: decimal.RequireFromString("24.99")},
	}
}

func users(t *testing.T) []domain.User {
	t.Helper()
	hash, err := crypto.HashPasswordWithCost("gardening1", bcrypt.MinCost)
	require.NoError(t, err)
	other, err := crypto.HashPasswordWithCost("weeding22", bcrypt.MinCost)
	require.NoError(t, err)

	return []domain.User{
		{ID: 1, Name: "Ana", Title: "Manager", Email: "ana@garden.com", Password: hash, Role: domain.Role{Admin: true, Employee: true}},
		{ID: 2, Name: "Ben", Title: "Clerk", Email: "ben@garden.com", Password: other, Role: domain.Role{Employee: true}},
		{ID: 3, Name: "Cy", Title: "Owner", Email: "cy@garden.com", Password: other, Role: domain.Role{Admin: true}},
	}
}

func ids[E domain.Entity](in []E) []int64 {
	out := make([]int64, 0, len(in))
	for _, e := range in {
		out = append(out, e.EntityID())
	}
	return out
}

// =============================================================================
// Customer Tests
// =============================================================================

func TestCustomers_OxnardVista(t *testing.T) {
	tests := []struct {
		name     string
		criteria CustomerCriteria
		want     []int64
	}{
		{"city", CustomerCriteria{City: domain.Text("Oxnard")}, []int64{1}},
		{"state", CustomerCriteria{State: domain.Text("CA")}, []int64{1, 2}},
		{"zipcode", CustomerCriteria{Zipcode: domain.Text("55555")}, []int64{1}},
		{"street", CustomerCriteria{Street: domain.Text("North St.")}, []int64{2}},
		{"name and email", CustomerCriteria{Name: domain.Text("Lewis"), Email: domain.Text("lh44@gmail.com")}, []int64{2}},
		{"conflicting criteria", CustomerCriteria{City: domain.Text("Oxnard"), Zipcode: domain.Text("22222")}, []int64{}},
		{"case sensitive", CustomerCriteria{City: domain.Text("oxnard")}, []int64{}},
		{"no partial match", CustomerCriteria{City: domain.Text("Ox")}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Customers(tt.criteria, customers())))
		})
	}
}

func TestCustomers_EmptyCriteriaIsIdentity(t *testing.T) {
	in := customers()
	assert.Equal(t, in, Customers(CustomerCriteria{}, in))
	assert.Equal(t, in, Customers(CustomerCriteria{City: domain.Text("")}, in))
}

func TestCustomers_Idempotent(t *testing.T) {
	c := CustomerCriteria{State: domain.Text("CA"), Zipcode: domain.Text("22222")}
	once := Customers(c, customers())
	assert.Equal(t, once, Customers(c, once))
}

func TestCustomers_DoesNotMutateInput(t *testing.T) {
	in := customers()
	before := customers()

	_ = Customers(CustomerCriteria{City: domain.Text("Vista")}, in)

	assert.Equal(t, before, in)
}

// =============================================================================
// Product Tests
// =============================================================================

func TestProducts(t *testing.T) {
	tests := []struct {
		name     string
		criteria ProductCriteria
		want     []int64
	}{
		{"empty", ProductCriteria{}, []int64{1, 2, 3}},
		{"type keeps order", ProductCriteria{Type: domain.Text("tool")}, []int64{1, 3}},
		{"manufacturer and name", ProductCriteria{Manufacturer: domain.Text("Fiskars"), Name: domain.Text("Shears")}, []int64{3}},
		{"sku", ProductCriteria{SKU: domain.Text("HOS-050")}, []int64{2}},
		{"price numeric equality", ProductCriteria{Price: domain.PositiveAmount(decimal.RequireFromString("34.5"))}, []int64{2}},
		{"zero price is absent", ProductCriteria{Price: domain.PositiveAmount(decimal.Zero)}, []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Products(tt.criteria, products())))
		})
	}
}

// =============================================================================
// Order Tests
// =============================================================================

func TestOrders(t *testing.T) {
	tests := []struct {
		name     string
		criteria OrderCriteria
		want     []int64
	}{
		{"empty", OrderCriteria{}, []int64{1, 2, 3}},
		{"customer", OrderCriteria{CustomerID: domain.Positive[int64](1)}, []int64{1, 3}},
		{"date", OrderCriteria{Date: domain.Text("2020-10-17")}, []int64{1, 2}},
		{"product", OrderCriteria{ProductID: domain.Positive[int64](2)}, []int64{2}},
		{"quantity", OrderCriteria{Quantity: domain.Positive(1)}, []int64{2, 3}},
		{"total", OrderCriteria{OrderTotal: domain.PositiveAmount(decimal.RequireFromString("25.98"))}, []int64{1}},
		{"zero quantity is absent", OrderCriteria{Quantity: domain.Positive(0)}, []int64{1, 2, 3}},
		{"negative customer is absent", OrderCriteria{CustomerID: domain.Positive[int64](-1)}, []int64{1, 2, 3}},
		{"explicit zero participates", OrderCriteria{Quantity: domain.Some(0)}, []int64{}},
		{"combined", OrderCriteria{CustomerID: domain.Positive[int64](1), Date: domain.Text("2020-11-02")}, []int64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Orders(tt.criteria, orders())))
		})
	}
}

// =============================================================================
// User Tests
// =============================================================================

func TestUsers(t *testing.T) {
	in := users(t)

	tests := []struct {
		name     string
		criteria UserCriteria
		want     []int64
	}{
		{"empty", UserCriteria{}, []int64{1, 2, 3}},
		{"title", UserCriteria{Title: domain.Text("Clerk")}, []int64{2}},
		{"email", UserCriteria{Email: domain.Text("cy@garden.com")}, []int64{3}},
		{"password matches hash", UserCriteria{Password: domain.Text("weeding22")}, []int64{2, 3}},
		{"password and name", UserCriteria{Name: domain.Text("Ana"), Password: domain.Text("gardening1")}, []int64{1}},
		{"wrong password", UserCriteria{Name: domain.Text("Ana"), Password: domain.Text("weeding22")}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Users(tt.criteria, in)))
		})
	}
}

func TestUsersByRole(t *testing.T) {
	in := users(t)

	assert.Equal(t, []int64{1, 3}, ids(UsersByAdmin(true, in)))
	assert.Equal(t, []int64{2}, ids(UsersByAdmin(false, in)))
	assert.Equal(t, []int64{1, 2}, ids(UsersByEmployee(true, in)))
	assert.Equal(t, []int64{3}, ids(UsersByEmployee(false, in)))
}

func TestUsersByRole_Empty(t *testing.T) {
	assert.Empty(t, UsersByAdmin(true, nil))
}
