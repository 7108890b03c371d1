package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSelection() *Selection[testRow, string] {
	return NewSelection(testKey)
}

func TestSelection_Toggle(t *testing.T) {
	s := newTestSelection()

	assert.True(t, s.Toggle("inv-1"))
	assert.True(t, s.IsSelected("inv-1"))
	assert.Equal(t, 1, s.Len())

	assert.False(t, s.Toggle("inv-1"))
	assert.False(t, s.IsSelected("inv-1"))
	assert.Equal(t, 0, s.Len())
}

func TestSelection_SelectVisibleToggling(t *testing.T) {
	// Four rows, page size two: the header checkbox on page one must only
	// ever touch A and B.
	a := testRow{ID: "A"}
	b := testRow{ID: "B"}
	page := []testRow{a, b}

	s := newTestSelection()
	s.Toggle("C")

	s.SelectVisible(page)
	assert.True(t, s.IsSelected("A"))
	assert.True(t, s.IsSelected("B"))
	assert.True(t, s.IsSelected("C"))
	assert.False(t, s.IsSelected("D"))

	s.SelectVisible(page)
	assert.False(t, s.IsSelected("A"))
	assert.False(t, s.IsSelected("B"))
	assert.True(t, s.IsSelected("C"))
}

func TestSelection_PartialPageSelectsRemainder(t *testing.T) {
	a := testRow{ID: "A"}
	b := testRow{ID: "B"}
	page := []testRow{a, b}

	s := newTestSelection()
	s.Toggle("A")
	assert.True(t, s.Indeterminate(page))

	// Some but not all selected: the action completes the page instead of
	// clearing it.
	s.SelectVisible(page)
	assert.True(t, s.AllSelected(page))
	assert.False(t, s.Indeterminate(page))
}

func TestSelection_HeaderCheckboxStates(t *testing.T) {
	page := []testRow{{ID: "A"}, {ID: "B"}}
	s := newTestSelection()

	t.Run("empty selection", func(t *testing.T) {
		assert.False(t, s.AllSelected(page))
		assert.False(t, s.Indeterminate(page))
	})

	t.Run("empty page never reads as all-selected", func(t *testing.T) {
		assert.False(t, s.AllSelected(nil))
		assert.False(t, s.Indeterminate(nil))
		s.SelectVisible(nil)
		assert.Equal(t, 0, s.Len())
	})
}

func TestSelection_Reconcile(t *testing.T) {
	s := newTestSelection()
	s.Toggle("a")
	s.Toggle("b")

	removed := s.Reconcile(map[string]struct{}{"a": {}})
	assert.Equal(t, 1, removed)
	assert.True(t, s.IsSelected("a"))
	assert.False(t, s.IsSelected("b"))

	// Reconcile never adds keys.
	removed = s.Reconcile(map[string]struct{}{"a": {}, "z": {}})
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, s.Len())
}

func TestSelection_KeysAndClear(t *testing.T) {
	s := newTestSelection()
	s.Toggle("x")
	s.Toggle("y")

	keys := s.Keys()
	assert.Len(t, keys, 2)

	// Keys returns a copy: mutating it leaves the model untouched.
	delete(keys, "x")
	assert.True(t, s.IsSelected("x"))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.IsSelected("y"))
}

func TestSelection_SelectedRowsInDatasetOrder(t *testing.T) {
	rows := testRows()
	s := newTestSelection()
	s.Toggle("inv-4")
	s.Toggle("inv-1")

	selected := s.SelectedRows(rows)
	assert.Equal(t, []string{"inv-1", "inv-4"}, ids(selected))

	s.Clear()
	assert.Nil(t, s.SelectedRows(rows))
}
