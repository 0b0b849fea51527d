package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/kartzyhq/kartzy-backend/pkg/pagination"
)

// Sort keys accepted by the browse endpoint. Anything else falls back to
// SortFeatured, which preserves catalog order.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// QuerySpec carries the filter/sort/page parameters of one catalog query.
// Nil numeric fields mean the corresponding filter is skipped.
type QuerySpec struct {
	Category  string
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	SortBy    string
	Page      pagination.Page
}

// Result is one bounded, ordered page plus pagination metadata, shaped
// exactly like the browse response body.
type Result struct {
	Products      []Product `json:"products"`
	TotalProducts int       `json:"totalProducts"`
	CurrentPage   int       `json:"currentPage"`
	TotalPages    int       `json:"totalPages"`
	HasNextPage   bool      `json:"hasNextPage"`
	HasPrevPage   bool      `json:"hasPrevPage"`
}

// ParseQuerySpec reads the browse query parameters. Malformed numeric
// values are treated as absent rather than rejected, matching the
// storefront clients that send whatever is in the URL bar.
func ParseQuerySpec(values url.Values) QuerySpec {
	return QuerySpec{
		Category:  strings.TrimSpace(values.Get("category")),
		Search:    strings.TrimSpace(values.Get("search")),
		MinPrice:  parseFloat(values.Get("minPrice")),
		MaxPrice:  parseFloat(values.Get("maxPrice")),
		MinRating: parseFloat(values.Get("minRating")),
		SortBy:    strings.TrimSpace(values.Get("sortBy")),
		Page: pagination.Page{
			Number: parseInt(values.Get("page")),
			Limit:  parseInt(values.Get("limit")),
		},
	}
}

// Query runs the fixed filter → sort → paginate pipeline over items.
// It is a pure function: items is never mutated and identical inputs
// produce identical results.
func Query(items []Product, spec QuerySpec) Result {
	filtered := make([]Product, 0, len(items))
	for _, item := range items {
		if !matches(item, spec) {
			continue
		}
		filtered = append(filtered, item)
	}

	sortProducts(filtered, spec.SortBy)

	total := len(filtered)
	start, end := spec.Page.Bounds(total)
	meta := spec.Page.MetaFor(total)

	return Result{
		Products:      filtered[start:end],
		TotalProducts: meta.TotalCount,
		CurrentPage:   meta.CurrentPage,
		TotalPages:    meta.TotalPages,
		HasNextPage:   meta.HasNext,
		HasPrevPage:   meta.HasPrev,
	}
}

func matches(item Product, spec QuerySpec) bool {
	if spec.Category != "" && !containsFold(item.Category, spec.Category) {
		return false
	}
	if spec.Search != "" && !containsFold(item.Name, spec.Search) && !containsFold(item.Description, spec.Search) {
		return false
	}
	if spec.MinPrice != nil && item.Price < *spec.MinPrice {
		return false
	}
	if spec.MaxPrice != nil && item.Price > *spec.MaxPrice {
		return false
	}
	if spec.MinRating != nil && item.Rating < *spec.MinRating {
		return false
	}
	return true
}

func sortProducts(items []Product, sortBy string) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	default:
		// featured: keep catalog order
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func parseFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

func parseInt(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
