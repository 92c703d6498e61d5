package models

// SortDirection is the ordering of a sorted list.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// CategoryAll is the wildcard categorical filter value.
const CategoryAll = "all"

// FilterState is the ephemeral list view state. It is recomputed on every change
// and never persisted.
type FilterState struct {
	SearchTerm    string        `form:"search" json:"searchTerm"`
	Category      string        `form:"category" json:"category"` // status or type filter; "" or "all" matches everything
	Date          string        `form:"date" json:"date"`         // YYYY-MM-DD; "" matches everything
	SortKey       string        `form:"sort" json:"sortKey"`
	SortDirection SortDirection `form:"direction" json:"sortDirection"`
}

// ToggleSort selects key for sorting. Selecting the key already sorted ascending
// flips it to descending; anything else sorts ascending.
func (f FilterState) ToggleSort(key string) FilterState {
	if f.SortKey == key && f.SortDirection != SortDesc {
		f.SortDirection = SortDesc
	} else {
		f.SortDirection = SortAsc
	}
	f.SortKey = key
	return f
}
