package types

import "time"

// Filter predicates are optional and combined with AND; zero/nil values mean
// "no restriction". OrderBy is an ascending sort on one whitelisted field and
// results are unordered when it is empty.

type CustomerFilter struct {
	NameContains  string
	EmailContains string
	CreatedAtGte  *time.Time
	CreatedAtLte  *time.Time
	OrderBy       string
}

type ProductFilter struct {
	NameContains string
	PriceGte     *float64
	PriceLte     *float64
	StockGte     *int
	StockLte     *int
	OrderBy      string
}

type OrderFilter struct {
	TotalAmountGte       *float64
	TotalAmountLte       *float64
	OrderDateGte         *time.Time
	OrderDateLte         *time.Time
	CustomerNameContains string
	ProductNameContains  string
	OrderBy              string
}
