package validation

import "github.com/artpar/gardencenter/internal/core/domain"

// =============================================================================
// Order Gate
// =============================================================================

// OrderContext holds the collections an order is checked against.
type OrderContext struct {
	Orders    []domain.Order
	Customers []domain.Customer
	Products  []domain.Product
}

// OrderChecks returns the ordered checks for an order mutation: formats
// first, then the customer and product references, then quantity.
func OrderChecks(mode Mode, pathID int64, o domain.Order, ctx OrderContext) []Check {
	checks := updatePrefix(mode, "order", pathID, o, ctx.Orders)
	return append(checks,
		mustPass("date_format",
			func() bool { return IsValidDate(o.Date) },
			func() *Rejection { return invalidFormat("date", "date does not match yyyy-MM-dd format") }),
		mustPass("total_format",
			func() bool { return IsValidMoney(o.OrderTotal) },
			func() *Rejection { return invalidFormat("orderTotal", "order total must have 2 decimal places") }),
		mustPass("customer_exists",
			func() bool { return Exists(o.CustomerID, ctx.Customers) },
			func() *Rejection { return referentialInvalid("customerId", "customer does not exist in database") }),
		mustPass("product_exists",
			func() bool { return Exists(o.Item.ProductID, ctx.Products) },
			func() *Rejection { return referentialInvalid("productId", "product does not exist in database") }),
		mustPass("quantity_positive",
			func() bool { return IsPositiveQuantity(o.Item.Quantity) },
			func() *Rejection { return invalidFormat("quantity", "quantity must be a positive number") }),
	)
}

// ValidateOrder gates an order create or update.
func ValidateOrder(mode Mode, pathID int64, o domain.Order, ctx OrderContext) Decision {
	return Gate(OrderChecks(mode, pathID, o, ctx))
}
