package grid

// viewMemo caches the filtered+sorted slice for one exact combination of
// dataset version, filter state, and sort state. A single entry is
// enough: the use case is page flips between recomputations, not a
// history of past states.
type viewMemo[T any] struct {
	valid   bool
	version uint64
	filter  FilterState
	sort    SortState
	rows    []T
}

// lookup returns the cached slice when the key triple still matches.
func (m *viewMemo[T]) lookup(version uint64, filter FilterState, sort SortState) ([]T, bool) {
	if !m.valid || m.version != version || m.sort != sort || !filterStatesEqual(m.filter, filter) {
		return nil, false
	}
	return m.rows, true
}

// store replaces the cached entry. The filter state's map is already a
// fresh copy on every transition, so holding the reference is safe.
func (m *viewMemo[T]) store(version uint64, filter FilterState, sort SortState, rows []T) {
	m.valid = true
	m.version = version
	m.filter = filter
	m.sort = sort
	m.rows = rows
}
