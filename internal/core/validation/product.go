package validation

import "github.com/artpar/gardencenter/internal/core/domain"

// =============================================================================
// Product Gate
// =============================================================================

// ProductChecks returns the ordered checks for a product mutation.
func ProductChecks(mode Mode, pathID int64, p domain.Product, products []domain.Product) []Check {
	checks := updatePrefix(mode, "product", pathID, p, products)
	return append(checks,
		mustPass("sku_unique",
			func() bool { return ProductSKUIsUnique(p, products) },
			func() *Rejection { return conflict("sku", "sku has already been taken, use another sku number") }),
		mustPass("price_format",
			func() bool { return IsValidMoney(p.Price) },
			func() *Rejection { return invalidFormat("price", "price must have 2 decimal places") }),
	)
}

// ValidateProduct gates a product create or update.
func ValidateProduct(mode Mode, pathID int64, p domain.Product, products []domain.Product) Decision {
	return Gate(ProductChecks(mode, pathID, p, products))
}
