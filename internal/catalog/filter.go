package catalog

import (
	"math"
	"sort"
	"strings"
)

type SortMode string

const (
	SortFeatured  SortMode = "featured"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortName      SortMode = "name"
)

// ParseSortMode maps a query-string value to a sort mode. The empty string
// means the default featured ordering.
func ParseSortMode(s string) (SortMode, bool) {
	switch SortMode(s) {
	case SortFeatured, SortPriceLow, SortPriceHigh, SortName:
		return SortMode(s), true
	case "":
		return SortFeatured, true
	}
	return "", false
}

// FilterParams describes one evaluation of the filter/sort engine. The price
// interval is inclusive on both ends.
type FilterParams struct {
	Search        string
	MinPriceCents int64
	MaxPriceCents int64
	Sort          SortMode
}

func DefaultFilterParams() FilterParams {
	return FilterParams{
		MaxPriceCents: math.MaxInt64,
		Sort:          SortFeatured,
	}
}

// Filter returns a filtered, ordered copy of src; src is never mutated.
// Search matches name or description case-insensitively, and an empty search
// matches everything. All sorts are stable: products the sort key cannot
// distinguish keep their original relative order.
func Filter(src []Product, p FilterParams) []Product {
	q := strings.ToLower(strings.TrimSpace(p.Search))

	out := make([]Product, 0, len(src))
	for _, prod := range src {
		if q != "" && !matches(prod, q) {
			continue
		}
		if prod.PriceCents < p.MinPriceCents || prod.PriceCents > p.MaxPriceCents {
			continue
		}
		out = append(out, prod)
	}

	switch p.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceCents < out[j].PriceCents })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceCents > out[j].PriceCents })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	default:
		// featured: stable partition, featured products first.
		sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	}

	return out
}

func matches(p Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}
