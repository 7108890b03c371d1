package grid

import "fmt"

// Column describes how to read, sort, and filter one attribute of a row.
// Accessor replaces string-path lookups into dynamically typed records:
// each column resolves its cell value through a compiled function, so a
// renamed field is a compile error rather than a silently empty column.
type Column[T any] struct {
	// ID uniquely identifies the column within a table. Filter and sort
	// state reference columns by this ID.
	ID string

	// Title is the human-readable column header.
	Title string

	// Accessor extracts the cell value for a row. A nil return is treated
	// as an empty cell: it stringifies to "" and sorts after every
	// non-nil value.
	Accessor func(row T) any

	// Sortable marks the column as a valid sort target. Sort requests
	// against non-sortable columns are no-ops, not errors.
	Sortable bool

	// Filterable marks the column as participating in the global search
	// query. Per-column filters apply regardless.
	Filterable bool

	// Compare overrides the default comparator for this column. It is
	// never called with nil operands; the engine resolves nil cells
	// before comparison.
	Compare func(a, b any) int

	// Stringify overrides the default cell-to-string conversion used by
	// filtering and rendering. It is never called with a nil value.
	Stringify func(v any) string
}

// KeyFunc extracts a stable, comparable identifier for a row. It must be
// injective over a dataset snapshot: two distinct rows never share a key.
// Selection is tracked by key rather than object identity so that the
// same logical row survives a refetch.
type KeyFunc[T any, K comparable] func(row T) K

// CellString converts a column's cell value for a row into its string
// form, honoring the column's Stringify override. Filtering and renderers
// share this so what the user sees is what the filter matches. Nil cells
// become the empty string.
func CellString[T any](col Column[T], row T) string {
	if col.Accessor == nil {
		return ""
	}
	v := col.Accessor(row)
	if v == nil {
		return ""
	}
	if col.Stringify != nil {
		return col.Stringify(v)
	}
	return defaultStringify(v)
}

// defaultStringify renders a non-nil cell value with fmt's default format.
func defaultStringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// columnByID returns the column with the given ID, or false when the ID is
// unknown.
func columnByID[T any](columns []Column[T], id string) (Column[T], bool) {
	for _, c := range columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column[T]{}, false
}
