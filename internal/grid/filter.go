package grid

import (
	"maps"
	"strings"
)

// FilterState holds the global search query and the per-column filter
// terms for one table. The zero value matches every row.
//
// Both kinds of filter are case-insensitive substring matches against the
// stringified cell value. Column filters combine with logical AND; the
// global query matches when ANY filterable column contains it.
type FilterState struct {
	// Query is the global search term. Empty means no global filtering.
	Query string

	// ColumnFilters maps column ID to a filter term. Empty terms and
	// unknown column IDs are ignored.
	ColumnFilters map[string]string
}

// WithQuery returns a copy of the state with the global query replaced.
func (s FilterState) WithQuery(query string) FilterState {
	s.Query = query
	return s
}

// WithColumnFilter returns a copy of the state with the filter for one
// column replaced. An empty term removes the column's filter. The filter
// map is copied, never mutated in place.
func (s FilterState) WithColumnFilter(columnID, term string) FilterState {
	filters := make(map[string]string, len(s.ColumnFilters)+1)
	maps.Copy(filters, s.ColumnFilters)
	if term == "" {
		delete(filters, columnID)
	} else {
		filters[columnID] = term
	}
	s.ColumnFilters = filters
	return s
}

// IsZero reports whether the state applies no filtering at all.
func (s FilterState) IsZero() bool {
	if s.Query != "" {
		return false
	}
	for _, term := range s.ColumnFilters {
		if term != "" {
			return false
		}
	}
	return true
}

// filterStatesEqual reports whether two filter states select the same rows.
func filterStatesEqual(a, b FilterState) bool {
	return a.Query == b.Query && maps.Equal(a.ColumnFilters, b.ColumnFilters)
}

// Filter reduces rows to those matching the state's global query and every
// non-empty per-column filter. The input slice is never modified; when the
// state is zero the input is returned unchanged.
//
// A row is retained iff the global query matches at least one filterable
// column (or is empty) AND every column filter matches its column. The
// operation is deterministic and idempotent.
func Filter[T any](rows []T, columns []Column[T], state FilterState) []T {
	if state.IsZero() {
		return rows
	}

	query := strings.ToLower(state.Query)

	// Resolve column filters once; unknown column IDs degrade to no-ops.
	type columnFilter struct {
		col  Column[T]
		term string
	}
	var active []columnFilter
	for id, term := range state.ColumnFilters {
		if term == "" {
			continue
		}
		col, ok := columnByID(columns, id)
		if !ok {
			continue
		}
		active = append(active, columnFilter{col: col, term: strings.ToLower(term)})
	}

	filtered := make([]T, 0, len(rows))
rowLoop:
	for _, row := range rows {
		if query != "" && !matchesQuery(row, columns, query) {
			continue
		}
		for _, f := range active {
			if !strings.Contains(strings.ToLower(CellString(f.col, row)), f.term) {
				continue rowLoop
			}
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// matchesQuery reports whether any filterable column's cell contains the
// lowercased query.
func matchesQuery[T any](row T, columns []Column[T], query string) bool {
	for _, col := range columns {
		if !col.Filterable {
			continue
		}
		if strings.Contains(strings.ToLower(CellString(col, row)), query) {
			return true
		}
	}
	return false
}
