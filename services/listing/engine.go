// Package listing filters and sorts in-memory collections for the list views.
package listing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"letsheal/models"
)

// Schema describes how a list view reads its items.
type Schema[T any] struct {
	// Fields maps a field name to its accessor. Only named fields can be searched,
	// filtered on or sorted by.
	Fields map[string]func(T) string
	// SearchFields are matched against the search term; any hit keeps the item.
	SearchFields []string
	// CategoryField is compared with the categorical filter.
	CategoryField string
	// MatchCategory overrides the exact-value category comparison.
	MatchCategory func(item T, category string) bool
	// DateField holds a date or timestamp; its first ten characters are compared
	// with the date filter.
	DateField string
}

func (s Schema[T]) value(item T, field string) string {
	if get, ok := s.Fields[field]; ok && get != nil {
		return get(item)
	}
	return ""
}

// Apply returns the items that pass every active filter, ordered by the selected
// sort key. The input slice is never modified.
func Apply[T any](items []T, schema Schema[T], state models.FilterState) []T {
	term := strings.ToLower(strings.TrimSpace(state.SearchTerm))
	category := strings.TrimSpace(state.Category)
	date := strings.TrimSpace(state.Date)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if term != "" && !schema.matchesSearch(item, term) {
			continue
		}
		if category != "" && !strings.EqualFold(category, models.CategoryAll) && !schema.matchesCategory(item, category) {
			continue
		}
		if date != "" && datePart(schema.value(item, schema.DateField)) != date {
			continue
		}
		out = append(out, item)
	}

	get, ok := schema.Fields[state.SortKey]
	if !ok || get == nil {
		return out
	}
	desc := state.SortDirection == models.SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return compare(get(out[j]), get(out[i])) < 0
		}
		return compare(get(out[i]), get(out[j])) < 0
	})
	return out
}

func (s Schema[T]) matchesSearch(item T, term string) bool {
	for _, field := range s.SearchFields {
		if strings.Contains(strings.ToLower(s.value(item, field)), term) {
			return true
		}
	}
	return false
}

func (s Schema[T]) matchesCategory(item T, category string) bool {
	if s.MatchCategory != nil {
		return s.MatchCategory(item, category)
	}
	return s.value(item, s.CategoryField) == category
}

func datePart(v string) string {
	v = strings.TrimSpace(v)
	if len(v) > 10 {
		return v[:10]
	}
	return v
}

// compare is a total order over field values: missing values first, then plain
// decimal numbers by magnitude, then everything else by byte order.
func compare(a, b string) int {
	ra, xa := rank(a)
	rb, xb := rank(b)
	if ra != rb {
		return ra - rb
	}
	if ra == rankNumber {
		switch {
		case xa < xb:
			return -1
		case xa > xb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

const (
	rankMissing = iota
	rankNumber
	rankText
)

func rank(v string) (int, float64) {
	if strings.TrimSpace(v) == "" {
		return rankMissing, 0
	}
	if !decimal.MatchString(v) {
		return rankText, 0
	}
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return rankText, 0
	}
	return rankNumber, x
}

// decimal accepts an optional sign, digits and an optional fraction. Exponents,
// hex, NaN and Inf are text.
var decimal = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)
