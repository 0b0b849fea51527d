package catalog

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/kartzyhq/kartzy-backend/pkg/pagination"
)

func pageOf(number, limit int) pagination.Page {
	return pagination.Page{Number: number, Limit: limit}
}

func fixtureProducts() []Product {
	created := func(day int) time.Time {
		return time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
	}
	return []Product{
		{ID: "1", Name: "Wireless Headphones", Description: "Noise cancelling over-ear audio", Price: 199.99, Rating: 4.8, Category: "Electronics", CreatedAt: created(1)},
		{ID: "2", Name: "Fitness Watch", Description: "Tracks workouts and sleep", Price: 249.99, Rating: 4.6, Category: "Electronics", CreatedAt: created(4)},
		{ID: "3", Name: "Coffee Maker", Description: "Programmable drip brewer", Price: 89.99, Rating: 4.5, Category: "Home & Garden", CreatedAt: created(2)},
		{ID: "4", Name: "Travel Backpack", Description: "Water resistant daypack", Price: 79.99, Rating: 4.7, Category: "Fashion", CreatedAt: created(3)},
	}
}

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestQueryCategoryFilterIsCaseInsensitiveSubstring(t *testing.T) {
	result := Query(fixtureProducts(), QuerySpec{Category: "electronics"})
	if got := ids(result.Products); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Fatalf("expected electronics items got %v", got)
	}

	result = Query(fixtureProducts(), QuerySpec{Category: "garden"})
	if got := ids(result.Products); !reflect.DeepEqual(got, []string{"3"}) {
		t.Fatalf("expected substring match on category got %v", got)
	}
}

func TestQuerySearchMatchesNameAndDescription(t *testing.T) {
	result := Query(fixtureProducts(), QuerySpec{Search: "WATCH"})
	if got := ids(result.Products); !reflect.DeepEqual(got, []string{"2"}) {
		t.Fatalf("expected name match got %v", got)
	}

	result = Query(fixtureProducts(), QuerySpec{Search: "water resistant"})
	if got := ids(result.Products); !reflect.DeepEqual(got, []string{"4"}) {
		t.Fatalf("expected description match got %v", got)
	}
}

func TestQueryPriceAndRatingBounds(t *testing.T) {
	min, max := 80.0, 200.0
	result := Query(fixtureProducts(), QuerySpec{MinPrice: &min, MaxPrice: &max})
	if got := ids(result.Products); !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Fatalf("expected price window [80,200] got %v", got)
	}

	rating := 4.7
	result = Query(fixtureProducts(), QuerySpec{MinRating: &rating})
	if got := ids(result.Products); !reflect.DeepEqual(got, []string{"1", "4"}) {
		t.Fatalf("expected rating floor 4.7 got %v", got)
	}
}

func TestQuerySortOrders(t *testing.T) {
	cases := []struct {
		sortBy string
		want   []string
	}{
		{SortFeatured, []string{"1", "2", "3", "4"}},
		{"", []string{"1", "2", "3", "4"}},
		{"bogus", []string{"1", "2", "3", "4"}},
		{SortPriceAsc, []string{"4", "3", "1", "2"}},
		{SortPriceDesc, []string{"2", "1", "3", "4"}},
		{SortRating, []string{"1", "4", "2", "3"}},
		{SortNewest, []string{"2", "4", "3", "1"}},
	}
	for _, tc := range cases {
		result := Query(fixtureProducts(), QuerySpec{SortBy: tc.sortBy})
		if got := ids(result.Products); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("sortBy %q: expected %v got %v", tc.sortBy, tc.want, got)
		}
	}
}

func TestQueryPagination(t *testing.T) {
	items := make([]Product, 0, 14)
	for i := 0; i < 14; i++ {
		items = append(items, Product{ID: string(rune('a' + i)), Price: float64(i)})
	}

	first := Query(items, QuerySpec{})
	if len(first.Products) != 12 {
		t.Fatalf("expected default page of 12 got %d", len(first.Products))
	}
	if first.TotalProducts != 14 || first.TotalPages != 2 || first.CurrentPage != 1 {
		t.Fatalf("unexpected meta %+v", first)
	}
	if !first.HasNextPage || first.HasPrevPage {
		t.Fatalf("expected next without prev on page 1 got %+v", first)
	}

	second := Query(items, QuerySpec{Page: pageOf(2, 12)})
	if len(second.Products) != 2 {
		t.Fatalf("expected 2 items on page 2 got %d", len(second.Products))
	}
	if second.HasNextPage || !second.HasPrevPage {
		t.Fatalf("expected prev without next on last page got %+v", second)
	}

	past := Query(items, QuerySpec{Page: pageOf(9, 12)})
	if len(past.Products) != 0 {
		t.Fatalf("expected empty slice past the end got %d items", len(past.Products))
	}
	if past.CurrentPage != 9 || past.TotalPages != 2 {
		t.Fatalf("expected untouched meta past the end got %+v", past)
	}
}

func TestQueryIsPure(t *testing.T) {
	items := fixtureProducts()
	original := make([]Product, len(items))
	copy(original, items)

	spec := QuerySpec{Category: "electronics", SortBy: SortPriceDesc}
	first := Query(items, spec)
	second := Query(items, spec)

	if !reflect.DeepEqual(items, original) {
		t.Fatal("expected input slice unmodified")
	}
	if !reflect.DeepEqual(ids(first.Products), ids(second.Products)) {
		t.Fatal("expected identical results for identical inputs")
	}
}

func TestParseQuerySpecIgnoresMalformedNumbers(t *testing.T) {
	values := url.Values{}
	values.Set("minPrice", "abc")
	values.Set("maxPrice", "12.5")
	values.Set("minRating", "")
	values.Set("page", "two")
	values.Set("limit", "5")
	values.Set("category", "  Electronics ")

	spec := ParseQuerySpec(values)
	if spec.MinPrice != nil {
		t.Fatalf("expected malformed minPrice dropped got %v", *spec.MinPrice)
	}
	if spec.MaxPrice == nil || *spec.MaxPrice != 12.5 {
		t.Fatalf("expected maxPrice 12.5 got %v", spec.MaxPrice)
	}
	if spec.MinRating != nil {
		t.Fatalf("expected empty minRating dropped got %v", *spec.MinRating)
	}
	if spec.Page.Number != 0 {
		t.Fatalf("expected malformed page treated as absent got %d", spec.Page.Number)
	}
	if spec.Page.Limit != 5 {
		t.Fatalf("expected limit 5 got %d", spec.Page.Limit)
	}
	if spec.Category != "Electronics" {
		t.Fatalf("expected trimmed category got %q", spec.Category)
	}
}
