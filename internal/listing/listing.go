// Package listing is the one list-processing implementation behind every
// screen: case-insensitive search, AND-composed filters, stable locale-aware
// sorting and 1-based pagination. Each admin page used to re-derive a subset
// of this inline; the superset lives here, driven by per-entity field
// configuration.
package listing

import (
	"sort"
	"strings"

	"mercado/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort selects the sort mode. The zero value keeps the input order.
type Sort string

const (
	SortNone      Sort = ""
	SortName      Sort = "name"
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
)

// DefaultPageSize matches the admin screens; the landing catalog uses 5.
const DefaultPageSize = 10

// Query carries the active filters and the requested page.
type Query struct {
	Search   string
	Category *domain.ID
	MinPrice *float64
	MaxPrice *float64
	Sort     Sort
	Page     int
	PageSize int
}

// Fields configures which record fields a screen searches, sorts and filters
// on. Nil accessors disable the corresponding capability.
type Fields[T any] struct {
	Search   []func(T) string
	Name     func(T) string
	Price    func(T) float64
	Category func(T) domain.ID
}

// Page is the visible slice plus pagination metadata.
type Page[T any] struct {
	Items         []T `json:"items"`
	Page          int `json:"page"`
	TotalPages    int `json:"totalPages"`
	TotalMatching int `json:"totalMatching"`
}

// Process filters, sorts and paginates a collection. It is pure: the input
// slice is never mutated and the result holds a fresh slice.
func Process[T any](items []T, q Query, f Fields[T]) Page[T] {
	matched := filter(items, q, f)

	switch q.Sort {
	case SortName:
		if f.Name != nil {
			c := collate.New(language.Und)
			sort.SliceStable(matched, func(i, j int) bool {
				return c.CompareString(f.Name(matched[i]), f.Name(matched[j])) < 0
			})
		}
	case SortPriceAsc:
		if f.Price != nil {
			sort.SliceStable(matched, func(i, j int) bool {
				return f.Price(matched[i]) < f.Price(matched[j])
			})
		}
	case SortPriceDesc:
		if f.Price != nil {
			sort.SliceStable(matched, func(i, j int) bool {
				return f.Price(matched[i]) > f.Price(matched[j])
			})
		}
	}

	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	totalMatching := len(matched)
	totalPages := (totalMatching + size - 1) / size

	// The page is clamped into [1, totalPages]; an empty match set pins it to 1.
	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > totalMatching {
		start = totalMatching
	}
	if end > totalMatching {
		end = totalMatching
	}

	return Page[T]{
		Items:         matched[start:end],
		Page:          page,
		TotalPages:    totalPages,
		TotalMatching: totalMatching,
	}
}

func filter[T any](items []T, q Query, f Fields[T]) []T {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if term != "" && !matchesSearch(item, term, f.Search) {
			continue
		}
		if q.Category != nil && f.Category != nil && f.Category(item) != *q.Category {
			continue
		}
		if f.Price != nil {
			price := f.Price(item)
			if q.MinPrice != nil && price < *q.MinPrice {
				continue
			}
			if q.MaxPrice != nil && price > *q.MaxPrice {
				continue
			}
		}
		matched = append(matched, item)
	}
	return matched
}

func matchesSearch[T any](item T, term string, fields []func(T) string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(item)), term) {
			return true
		}
	}
	return false
}
