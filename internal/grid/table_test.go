package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(rows []testRow, opts ...TableOption) *Table[testRow, string] {
	tbl := NewTable(testColumns(), testKey, opts...)
	tbl.SetRows(rows)
	return tbl
}

func TestNewTable_Defaults(t *testing.T) {
	tbl := NewTable(testColumns(), testKey)

	assert.Equal(t, PageState{Page: 1, PageSize: DefaultPageSize}, tbl.PageValue())
	assert.Equal(t, DefaultPageSizes, tbl.PageSizes())
	assert.True(t, tbl.FilterValue().IsZero())
	assert.False(t, tbl.SortValue().IsActive())

	view := tbl.View()
	assert.Empty(t, view.Rows)
	assert.Equal(t, 1, view.TotalPages)
}

func TestNewTable_PageSizeOptions(t *testing.T) {
	t.Run("custom allow-list", func(t *testing.T) {
		tbl := NewTable(testColumns(), testKey, WithPageSizes(5, 15), WithPageSize(15))
		assert.Equal(t, []int{5, 15}, tbl.PageSizes())
		assert.Equal(t, 15, tbl.PageValue().PageSize)
	})

	t.Run("initial size outside allow-list falls back", func(t *testing.T) {
		tbl := NewTable(testColumns(), testKey, WithPageSizes(5, 15), WithPageSize(40))
		assert.Equal(t, 5, tbl.PageValue().PageSize)
	})

	t.Run("non-positive sizes dropped from allow-list", func(t *testing.T) {
		tbl := NewTable(testColumns(), testKey, WithPageSizes(0, -3))
		assert.Equal(t, DefaultPageSizes, tbl.PageSizes())
	})
}

func TestTable_Pipeline(t *testing.T) {
	tbl := newTestTable(testRows(), WithPageSizes(2), WithPageSize(2))

	tbl.SetQuery("acme")
	tbl.ClickColumn("amount")

	view := tbl.View()
	assert.Equal(t, 2, view.TotalRows)
	assert.Equal(t, []string{"inv-4", "inv-1"}, ids(view.Rows))
	assert.Equal(t, 1, view.TotalPages)
}

func TestTable_PageResets(t *testing.T) {
	rows := testRows()

	t.Run("query change resets page", func(t *testing.T) {
		tbl := newTestTable(rows, WithPageSizes(2), WithPageSize(2))
		tbl.SetPage(2)
		require.Equal(t, 2, tbl.View().Page)

		tbl.SetQuery("inv")
		assert.Equal(t, 1, tbl.View().Page)
	})

	t.Run("column filter change resets page", func(t *testing.T) {
		tbl := newTestTable(rows, WithPageSizes(2), WithPageSize(2))
		tbl.SetPage(3)

		tbl.SetColumnFilter("partner", "a")
		assert.Equal(t, 1, tbl.View().Page)
	})

	t.Run("page size change resets page", func(t *testing.T) {
		tbl := newTestTable(rows, WithPageSizes(2, 10), WithPageSize(2))
		tbl.SetPage(2)

		require.NoError(t, tbl.SetPageSize(10))
		assert.Equal(t, 1, tbl.View().Page)
	})

	t.Run("sort keeps page", func(t *testing.T) {
		tbl := newTestTable(rows, WithPageSizes(2), WithPageSize(2))
		tbl.SetPage(2)

		tbl.ClickColumn("amount")
		assert.Equal(t, 2, tbl.View().Page)
	})
}

func TestTable_SetPageSizeRejectsUnknownSizes(t *testing.T) {
	tbl := newTestTable(testRows())

	err := tbl.SetPageSize(7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPageSizeNotAllowed)
	assert.Equal(t, DefaultPageSize, tbl.PageValue().PageSize)
}

func TestTable_SetPageClamps(t *testing.T) {
	tbl := newTestTable(testRows(), WithPageSizes(2), WithPageSize(2))

	tbl.SetPage(999)
	assert.Equal(t, 3, tbl.View().Page)

	tbl.SetPage(-5)
	assert.Equal(t, 1, tbl.View().Page)

	tbl.NextPage()
	tbl.NextPage()
	tbl.NextPage()
	tbl.NextPage()
	assert.Equal(t, 3, tbl.View().Page)

	tbl.PrevPage()
	assert.Equal(t, 2, tbl.View().Page)
}

func TestTable_SelectionPersistence(t *testing.T) {
	// Selection survives sort changes, page changes, and filters that
	// hide the selected row; only reconciliation or Clear drops it.
	tbl := newTestTable(testRows(), WithPageSizes(2), WithPageSize(2))
	tbl.Toggle("inv-3")

	tbl.ClickColumn("amount")
	assert.True(t, tbl.Selection().IsSelected("inv-3"))

	tbl.SetPage(3)
	assert.True(t, tbl.Selection().IsSelected("inv-3"))

	tbl.SetQuery("acme") // inv-3 is filtered out of view
	assert.True(t, tbl.Selection().IsSelected("inv-3"))
	assert.Equal(t, []string{"inv-3"}, ids(tbl.SelectedRows()))

	// Row deleted from the source dataset: reconciliation drops the key.
	remaining := []testRow{testRows()[0], testRows()[1]}
	tbl.SetRows(remaining)
	assert.False(t, tbl.Selection().IsSelected("inv-3"))
}

func TestTable_SelectVisible(t *testing.T) {
	tbl := newTestTable(testRows(), WithPageSizes(2), WithPageSize(2))

	tbl.SelectVisible()
	view := tbl.View()
	assert.True(t, view.AllSelected)
	assert.False(t, view.Indeterminate)
	assert.Equal(t, []string{"inv-1", "inv-2"}, ids(tbl.SelectedRows()))

	tbl.Toggle("inv-2")
	view = tbl.View()
	assert.False(t, view.AllSelected)
	assert.True(t, view.Indeterminate)

	tbl.SelectVisible()
	assert.True(t, tbl.View().AllSelected)

	tbl.SelectVisible()
	assert.Equal(t, 0, tbl.Selection().Len())
}

func TestTable_Events(t *testing.T) {
	tbl := newTestTable(testRows(), WithPageSizes(2), WithPageSize(2))

	var (
		pages      []int
		sorts      []SortState
		selections [][]string
		exports    []ExportScope
	)
	tbl.Events = Events[testRow]{
		OnPageChange: func(page int) { pages = append(pages, page) },
		OnSortChange: func(s SortState) { sorts = append(sorts, s) },
		OnSelectionChange: func(rows []testRow) {
			selections = append(selections, ids(rows))
		},
		OnExportRequested: func(scope ExportScope) { exports = append(exports, scope) },
	}

	tbl.SetPage(2)
	tbl.SetQuery("inv") // resets to page 1
	tbl.SetQuery("inv") // unchanged, no event
	assert.Equal(t, []int{2, 1}, pages)

	tbl.ClickColumn("amount")
	tbl.ClickColumn("nope") // unknown column, no event
	require.Len(t, sorts, 1)
	assert.Equal(t, SortState{ColumnID: "amount", Direction: DirectionAsc}, sorts[0])

	tbl.Toggle("inv-1")
	tbl.ClearSelection()
	tbl.ClearSelection() // already empty, no event
	require.Len(t, selections, 2)
	assert.Equal(t, []string{"inv-1"}, selections[0])
	assert.Empty(t, selections[1])

	tbl.RequestExport(ExportFiltered)
	assert.Equal(t, []ExportScope{ExportFiltered}, exports)
}

func TestTable_RequestExportScopes(t *testing.T) {
	tbl := newTestTable(testRows(), WithPageSizes(2), WithPageSize(2))
	tbl.SetPage(2)

	visible := tbl.RequestExport(ExportVisible)
	assert.Equal(t, []string{"inv-3", "inv-4"}, ids(visible))

	filtered := tbl.RequestExport(ExportFiltered)
	assert.Len(t, filtered, 5)
}

func TestTable_Memoization(t *testing.T) {
	// Page-only changes must not re-run the filter+sort pipeline: count
	// accessor invocations through an instrumented column.
	calls := 0
	columns := []Column[testRow]{{
		ID:         "id",
		Accessor:   func(r testRow) any { calls++; return r.ID },
		Sortable:   true,
		Filterable: true,
	}}
	tbl := NewTable(columns, testKey, WithPageSizes(2), WithPageSize(2))
	tbl.SetRows(testRows())

	tbl.SetQuery("inv")
	_ = tbl.View()
	after := calls
	assert.Positive(t, after)

	tbl.SetPage(2)
	_ = tbl.View()
	_ = tbl.View()
	assert.Equal(t, after, calls)

	// A filter change invalidates the memo.
	tbl.SetQuery("acme")
	_ = tbl.View()
	assert.Greater(t, calls, after)
}

func TestTable_ViewMeta(t *testing.T) {
	tbl := newTestTable(testRows(), WithPageSizes(2), WithPageSize(2))
	tbl.SetPage(2)

	view := tbl.View()
	assert.Equal(t, 5, view.TotalRows)
	assert.Equal(t, 3, view.TotalPages)
	assert.Equal(t, []PageItem{1, 2, 3}, view.PageNumbers)
	assert.Equal(t, PageMeta{
		CurrentPage: 2, PageSize: 2, TotalPages: 3, TotalItems: 5,
		HasPrevious: true, HasNext: true,
	}, view.Meta)
}
