package grid

import "maps"

// Selection tracks which rows are selected, keyed by the logical row key
// rather than object identity: the same row stays selected across
// refetches that produce fresh instances. Membership is independent of
// the current filter, sort, and page — a selected row that is filtered
// out of view stays selected until it is explicitly deselected, the
// selection is cleared, or Reconcile drops it because the row left the
// source dataset.
type Selection[T any, K comparable] struct {
	keyOf KeyFunc[T, K]
	keys  map[K]struct{}
}

// NewSelection creates an empty selection using keyOf for row identity.
func NewSelection[T any, K comparable](keyOf KeyFunc[T, K]) *Selection[T, K] {
	return &Selection[T, K]{
		keyOf: keyOf,
		keys:  make(map[K]struct{}),
	}
}

// Toggle flips the selection state of one key and reports whether the key
// is selected afterwards.
func (s *Selection[T, K]) Toggle(key K) bool {
	if _, ok := s.keys[key]; ok {
		delete(s.keys, key)
		return false
	}
	s.keys[key] = struct{}{}
	return true
}

// IsSelected reports whether the key is currently selected.
func (s *Selection[T, K]) IsSelected(key K) bool {
	_, ok := s.keys[key]
	return ok
}

// Len returns the number of selected keys.
func (s *Selection[T, K]) Len() int {
	return len(s.keys)
}

// Keys returns a copy of the selected key set.
func (s *Selection[T, K]) Keys() map[K]struct{} {
	return maps.Clone(s.keys)
}

// SelectVisible implements the header checkbox: when every row on the
// page is already selected it deselects all of them, otherwise it selects
// the page rows that are not yet selected. Rows outside the page are
// never touched. An empty page is a no-op.
func (s *Selection[T, K]) SelectVisible(pageRows []T) {
	if len(pageRows) == 0 {
		return
	}
	if s.AllSelected(pageRows) {
		for _, row := range pageRows {
			delete(s.keys, s.keyOf(row))
		}
		return
	}
	for _, row := range pageRows {
		s.keys[s.keyOf(row)] = struct{}{}
	}
}

// AllSelected reports whether every row on the page is selected. Empty
// pages report false so the header checkbox renders unchecked.
func (s *Selection[T, K]) AllSelected(pageRows []T) bool {
	if len(pageRows) == 0 {
		return false
	}
	for _, row := range pageRows {
		if !s.IsSelected(s.keyOf(row)) {
			return false
		}
	}
	return true
}

// Indeterminate reports the header checkbox's third state: some but not
// all page rows selected. The flag is derived on demand, never stored.
func (s *Selection[T, K]) Indeterminate(pageRows []T) bool {
	count := s.countSelected(pageRows)
	return count > 0 && count < len(pageRows)
}

// countSelected returns how many page rows are selected.
func (s *Selection[T, K]) countSelected(pageRows []T) int {
	count := 0
	for _, row := range pageRows {
		if s.IsSelected(s.keyOf(row)) {
			count++
		}
	}
	return count
}

// Clear deselects everything.
func (s *Selection[T, K]) Clear() {
	clear(s.keys)
}

// Reconcile drops every selected key that is absent from liveKeys and
// returns the number removed. It never adds keys. Call it whenever the
// source dataset changes so deletions server-side do not leave stale
// selections behind forever.
func (s *Selection[T, K]) Reconcile(liveKeys map[K]struct{}) int {
	removed := 0
	for key := range s.keys {
		if _, ok := liveKeys[key]; !ok {
			delete(s.keys, key)
			removed++
		}
	}
	return removed
}

// SelectedRows returns the rows from the full dataset whose keys are
// selected, in dataset order.
func (s *Selection[T, K]) SelectedRows(rows []T) []T {
	if len(s.keys) == 0 {
		return nil
	}
	selected := make([]T, 0, len(s.keys))
	for _, row := range rows {
		if s.IsSelected(s.keyOf(row)) {
			selected = append(selected, row)
		}
	}
	return selected
}
