package grid

import (
	"sort"
	"strings"
)

// Direction is the sort direction for the active column. The zero value
// means unsorted: rows keep their original order.
type Direction int

const (
	// DirectionNone leaves rows in their original order.
	DirectionNone Direction = iota
	// DirectionAsc sorts the active column ascending.
	DirectionAsc
	// DirectionDesc sorts the active column descending.
	DirectionDesc
)

// String returns the conventional label for a direction.
func (d Direction) String() string {
	switch d {
	case DirectionAsc:
		return "asc"
	case DirectionDesc:
		return "desc"
	case DirectionNone:
		return "none"
	default:
		return "none"
	}
}

// SortState identifies at most one active sort column and its direction.
// The zero value means unsorted.
type SortState struct {
	ColumnID  string
	Direction Direction
}

// IsActive reports whether a sort is in effect.
func (s SortState) IsActive() bool {
	return s.Direction != DirectionNone && s.ColumnID != ""
}

// NextSort is the tri-state header-click state machine. Clicking a column
// other than the active one starts ascending regardless of previous state;
// clicking the active column cycles asc → desc → cleared. Only one column
// is ever active: activating a new column implicitly clears the old one.
func NextSort(state SortState, columnID string) SortState {
	if state.ColumnID != columnID {
		return SortState{ColumnID: columnID, Direction: DirectionAsc}
	}
	switch state.Direction {
	case DirectionAsc:
		return SortState{ColumnID: columnID, Direction: DirectionDesc}
	case DirectionDesc:
		return SortState{}
	case DirectionNone:
		return SortState{ColumnID: columnID, Direction: DirectionAsc}
	default:
		return SortState{ColumnID: columnID, Direction: DirectionAsc}
	}
}

// Sort orders rows by the state's active column. The sort is stable: rows
// comparing equal keep their relative input order, so ties retain a
// deterministic secondary ordering.
//
// When no sort is active, or the column is unknown or not sortable, the
// input slice is returned unchanged. The input is never modified; an
// active sort returns a new slice.
//
// Nil cells sort after every non-nil value regardless of direction. The
// column's Compare override, when present, receives only non-nil operands;
// without one, two numeric operands compare numerically and everything
// else compares lexicographically on the stringified value.
func Sort[T any](rows []T, columns []Column[T], state SortState) []T {
	if !state.IsActive() {
		return rows
	}
	col, ok := columnByID(columns, state.ColumnID)
	if !ok || !col.Sortable || col.Accessor == nil {
		return rows
	}

	compare := col.Compare
	if compare == nil {
		compare = defaultCompare
	}
	desc := state.Direction == DirectionDesc

	sorted := make([]T, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		a := col.Accessor(sorted[i])
		b := col.Accessor(sorted[j])

		// Nil placement is fixed before direction is applied.
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return false
		case b == nil:
			return true
		}

		c := compare(a, b)
		if desc {
			c = -c
		}
		return c < 0
	})
	return sorted
}

// defaultCompare orders two non-nil cell values: numerically when both are
// numbers, lexicographically on the default string form otherwise.
func defaultCompare(a, b any) int {
	if x, okA := numericValue(a); okA {
		if y, okB := numericValue(b); okB {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(defaultStringify(a), defaultStringify(b))
}

// numericValue widens any built-in numeric type to float64.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
