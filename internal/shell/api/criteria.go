package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/artpar/gardencenter/internal/core/domain"
	"github.com/artpar/gardencenter/internal/core/filter"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Query Criteria
// =============================================================================
//
// Empty strings and non-positive numbers mean "not supplied". A value that
// does not parse is an error rather than silently ignored.

func customerCriteria(q url.Values) filter.CustomerCriteria {
	return filter.CustomerCriteria{
		Name:    domain.Text(q.Get("name")),
		Email:   domain.Text(q.Get("email")),
		City:    domain.Text(q.Get("city")),
		State:   domain.Text(q.Get("state")),
		Zipcode: domain.Text(q.Get("zipcode")),
		Street:  domain.Text(q.Get("street")),
	}
}

func productCriteria(q url.Values) (filter.ProductCriteria, error) {
	price, err := amountParam(q, "price")
	if err != nil {
		return filter.ProductCriteria{}, err
	}
	return filter.ProductCriteria{
		SKU:          domain.Text(q.Get("sku")),
		Type:         domain.Text(q.Get("type")),
		Name:         domain.Text(q.Get("name")),
		Manufacturer: domain.Text(q.Get("manufacturer")),
		Price:        price,
	}, nil
}

func orderCriteria(q url.Values) (filter.OrderCriteria, error) {
	var c filter.OrderCriteria
	var err error

	if c.CustomerID, err = idParam(q, "customerId"); err != nil {
		return c, err
	}
	if c.OrderTotal, err = amountParam(q, "orderTotal"); err != nil {
		return c, err
	}
	if c.ProductID, err = idParam(q, "productId"); err != nil {
		return c, err
	}
	if c.Quantity, err = intParam(q, "quantity"); err != nil {
		return c, err
	}
	c.Date = domain.Text(q.Get("date"))
	return c, nil
}

func userCriteria(q url.Values) filter.UserCriteria {
	return filter.UserCriteria{
		Name:     domain.Text(q.Get("name")),
		Title:    domain.Text(q.Get("title")),
		Email:    domain.Text(q.Get("email")),
		Password: domain.Text(q.Get("password")),
	}
}

// =============================================================================
// Parameter Parsing
// =============================================================================

func idParam(q url.Values, name string) (domain.Optional[int64], error) {
	raw := q.Get(name)
	if raw == "" {
		return domain.None[int64](), nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return domain.None[int64](), fmt.Errorf("%s must be an integer", name)
	}
	return domain.Positive(n), nil
}

func intParam(q url.Values, name string) (domain.Optional[int], error) {
	raw := q.Get(name)
	if raw == "" {
		return domain.None[int](), nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return domain.None[int](), fmt.Errorf("%s must be an integer", name)
	}
	return domain.Positive(n), nil
}

func amountParam(q url.Values, name string) (domain.Optional[decimal.Decimal], error) {
	raw := q.Get(name)
	if raw == "" {
		return domain.None[decimal.Decimal](), nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return domain.None[decimal.Decimal](), fmt.Errorf("%s must be a decimal number", name)
	}
	return domain.PositiveAmount(d), nil
}

// boolParam parses the named URL segment, falling back to def when it is absent.
func boolParam(raw string, def bool) (bool, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseBool(raw)
}
