package grid

import (
	"errors"
	"fmt"
	"slices"
)

// Default page sizing. Page sizes are allow-listed: a size outside the
// list is a caller error, because arbitrary sizes (zero in particular)
// would make the page count undefined.
var (
	// DefaultPageSizes is the allow-list used when a table is built
	// without an explicit one.
	DefaultPageSizes = []int{10, 25, 50, 100}

	// ErrPageSizeNotAllowed is returned by SetPageSize for sizes outside
	// the table's allow-list.
	ErrPageSizeNotAllowed = errors.New("page size not in allowed set")
)

// DefaultPageSize is the initial page size for new tables.
const DefaultPageSize = 25

// ExportScope selects which rows an export request covers. Export output
// itself (CSV and friends) is the caller's concern; the engine only
// reports which rows were asked for.
type ExportScope int

const (
	// ExportVisible exports the rows on the current page.
	ExportVisible ExportScope = iota
	// ExportFiltered exports every row matching the current filters.
	ExportFiltered
)

// String returns the flag-friendly label for a scope.
func (s ExportScope) String() string {
	switch s {
	case ExportVisible:
		return "visible"
	case ExportFiltered:
		return "filtered"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Events are the notifications a Table emits towards its rendering layer.
// Nil hooks are skipped. Hooks run synchronously inside the transition
// that triggered them.
type Events[T any] struct {
	// OnSelectionChange fires with the selected rows (dataset order)
	// after any transition that changed the selection set.
	OnSelectionChange func(selected []T)

	// OnPageChange fires when the effective page number changes,
	// including resets to page 1 caused by filter or page-size edits.
	OnPageChange func(page int)

	// OnSortChange fires after a header click changed the sort state.
	OnSortChange func(state SortState)

	// OnExportRequested fires when the caller asks for an export.
	OnExportRequested func(scope ExportScope)
}

// View is the derived, read-only snapshot a renderer draws from.
type View[T any] struct {
	// Rows are the rows on the current page, filtered and sorted.
	Rows []T

	// TotalRows is the filtered row count across all pages.
	TotalRows int

	// Page is the effective (clamped) 1-based page number.
	Page int

	// PageSize is the active page size.
	PageSize int

	// TotalPages is at least 1, even for an empty result set.
	TotalPages int

	// PageNumbers is the compact control strip for the current position.
	PageNumbers []PageItem

	// Meta summarizes the pagination position.
	Meta PageMeta

	// AllSelected and Indeterminate describe the header checkbox for the
	// current page.
	AllSelected   bool
	Indeterminate bool
}

// Table composes the filter, sort, pagination, and selection components
// over one dataset snapshot. All state transitions go through its
// methods; the states themselves are immutable values replaced on every
// transition. A Table is not safe for concurrent use — each UI surface
// owns its own instance.
type Table[T any, K comparable] struct {
	// Events may be set by the caller before driving transitions.
	Events Events[T]

	columns   []Column[T]
	keyOf     KeyFunc[T, K]
	rows      []T
	version   uint64
	filter    FilterState
	sort      SortState
	page      PageState
	selection *Selection[T, K]
	pageSizes []int

	memo viewMemo[T]
}

// TableOption configures a Table at construction time.
type TableOption func(*tableConfig)

type tableConfig struct {
	pageSizes []int
	pageSize  int
}

// WithPageSizes replaces the page-size allow-list. Non-positive sizes are
// dropped; an empty result falls back to DefaultPageSizes.
func WithPageSizes(sizes ...int) TableOption {
	return func(c *tableConfig) {
		var valid []int
		for _, s := range sizes {
			if s > 0 {
				valid = append(valid, s)
			}
		}
		if len(valid) > 0 {
			c.pageSizes = valid
		}
	}
}

// WithPageSize sets the initial page size. It must be in the allow-list;
// otherwise the first allowed size is used.
func WithPageSize(size int) TableOption {
	return func(c *tableConfig) {
		c.pageSize = size
	}
}

// NewTable creates a table over the given column set with an empty
// dataset, default filter/sort state, and page 1.
func NewTable[T any, K comparable](
	columns []Column[T],
	keyOf KeyFunc[T, K],
	opts ...TableOption,
) *Table[T, K] {
	cfg := tableConfig{
		pageSizes: DefaultPageSizes,
		pageSize:  DefaultPageSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !slices.Contains(cfg.pageSizes, cfg.pageSize) {
		cfg.pageSize = cfg.pageSizes[0]
	}

	return &Table[T, K]{
		columns:   columns,
		keyOf:     keyOf,
		page:      PageState{Page: 1, PageSize: cfg.pageSize},
		selection: NewSelection(keyOf),
		pageSizes: cfg.pageSizes,
	}
}

// Columns returns the table's column set.
func (t *Table[T, K]) Columns() []Column[T] {
	return t.columns
}

// Rows returns the full dataset snapshot, unfiltered and unsorted.
func (t *Table[T, K]) Rows() []T {
	return t.rows
}

// FilterValue returns the current filter state.
func (t *Table[T, K]) FilterValue() FilterState {
	return t.filter
}

// SortValue returns the current sort state.
func (t *Table[T, K]) SortValue() SortState {
	return t.sort
}

// PageValue returns the current page state as requested; the effective
// page may differ after clamping, see View.
func (t *Table[T, K]) PageValue() PageState {
	return t.page
}

// PageSizes returns the page-size allow-list.
func (t *Table[T, K]) PageSizes() []int {
	return slices.Clone(t.pageSizes)
}

// Selection exposes the selection model for direct queries.
func (t *Table[T, K]) Selection() *Selection[T, K] {
	return t.selection
}

// SetRows replaces the dataset snapshot, invalidates the memoized view,
// and reconciles the selection against the new rows so keys of deleted
// rows are dropped. Filter, sort, and page state are kept; an
// out-of-range page is clamped lazily by View.
func (t *Table[T, K]) SetRows(rows []T) {
	t.rows = rows
	t.version++

	live := make(map[K]struct{}, len(rows))
	for _, row := range rows {
		live[t.keyOf(row)] = struct{}{}
	}
	if removed := t.selection.Reconcile(live); removed > 0 {
		t.emitSelectionChange()
	}
}

// SetQuery replaces the global search term and resets to page 1, because
// the result set composition changed and the old page index is
// meaningless.
func (t *Table[T, K]) SetQuery(query string) {
	if t.filter.Query == query {
		return
	}
	t.filter = t.filter.WithQuery(query)
	t.resetPage()
}

// SetColumnFilter replaces one column's filter term (empty removes it)
// and resets to page 1. Unknown column IDs are accepted and ignored at
// filter time.
func (t *Table[T, K]) SetColumnFilter(columnID, term string) {
	next := t.filter.WithColumnFilter(columnID, term)
	if filterStatesEqual(t.filter, next) {
		return
	}
	t.filter = next
	t.resetPage()
}

// ClearFilters removes the global query and every column filter, and
// resets to page 1.
func (t *Table[T, K]) ClearFilters() {
	if t.filter.IsZero() {
		return
	}
	t.filter = FilterState{}
	t.resetPage()
}

// ClickColumn advances the tri-state sort cycle for a header click.
// Clicks on unknown or non-sortable columns are ignored. Sorting reorders
// rows but does not change which rows are visible, so the page is kept.
func (t *Table[T, K]) ClickColumn(columnID string) {
	col, ok := columnByID(t.columns, columnID)
	if !ok || !col.Sortable {
		return
	}
	t.sort = NextSort(t.sort, columnID)
	if t.Events.OnSortChange != nil {
		t.Events.OnSortChange(t.sort)
	}
}

// SetSort replaces the sort state directly, for callers that parse a
// sort from a flag or restore one rather than clicking through the
// cycle. States naming unknown or non-sortable columns are stored as-is
// and degrade to "no sort" at computation time.
func (t *Table[T, K]) SetSort(state SortState) {
	if state == t.sort {
		return
	}
	t.sort = state
	if t.Events.OnSortChange != nil {
		t.Events.OnSortChange(t.sort)
	}
}

// SetPage requests a page. The request is clamped into the valid range
// for the current filtered result set rather than erroring.
func (t *Table[T, K]) SetPage(page int) {
	totalPages := TotalPages(len(t.filteredSorted()), t.page.PageSize)
	page = clampPage(page, totalPages)
	if page == t.page.Page {
		return
	}
	t.page.Page = page
	if t.Events.OnPageChange != nil {
		t.Events.OnPageChange(page)
	}
}

// NextPage moves one page forward, clamped at the last page.
func (t *Table[T, K]) NextPage() {
	t.SetPage(t.page.Page + 1)
}

// PrevPage moves one page back, clamped at page 1.
func (t *Table[T, K]) PrevPage() {
	t.SetPage(t.page.Page - 1)
}

// SetPageSize switches to a new page size from the allow-list and resets
// to page 1. Sizes outside the list are rejected with
// ErrPageSizeNotAllowed.
func (t *Table[T, K]) SetPageSize(size int) error {
	if !slices.Contains(t.pageSizes, size) {
		return fmt.Errorf("%w: %d (allowed %v)", ErrPageSizeNotAllowed, size, t.pageSizes)
	}
	if size == t.page.PageSize {
		return nil
	}
	t.page.PageSize = size
	t.resetPage()
	return nil
}

// Toggle flips one row key's selection state.
func (t *Table[T, K]) Toggle(key K) {
	t.selection.Toggle(key)
	t.emitSelectionChange()
}

// SelectVisible applies the header-checkbox action to the current page.
func (t *Table[T, K]) SelectVisible() {
	pageRows, _ := Paginate(t.filteredSorted(), t.page)
	if len(pageRows) == 0 {
		return
	}
	t.selection.SelectVisible(pageRows)
	t.emitSelectionChange()
}

// ClearSelection deselects every row.
func (t *Table[T, K]) ClearSelection() {
	if t.selection.Len() == 0 {
		return
	}
	t.selection.Clear()
	t.emitSelectionChange()
}

// SelectedRows returns the selected rows in dataset order.
func (t *Table[T, K]) SelectedRows() []T {
	return t.selection.SelectedRows(t.rows)
}

// RequestExport notifies the caller that an export was asked for and
// returns the rows the scope covers. File generation is the caller's
// collaborator, not the engine's.
func (t *Table[T, K]) RequestExport(scope ExportScope) []T {
	if t.Events.OnExportRequested != nil {
		t.Events.OnExportRequested(scope)
	}
	filtered := t.filteredSorted()
	if scope == ExportVisible {
		pageRows, _ := Paginate(filtered, t.page)
		return pageRows
	}
	return filtered
}

// View computes the renderable snapshot for the current state.
func (t *Table[T, K]) View() View[T] {
	filtered := t.filteredSorted()
	pageRows, totalPages := Paginate(filtered, t.page)
	page := clampPage(t.page.Page, totalPages)

	return View[T]{
		Rows:          pageRows,
		TotalRows:     len(filtered),
		Page:          page,
		PageSize:      t.page.PageSize,
		TotalPages:    totalPages,
		PageNumbers:   PageNumbers(page, totalPages),
		Meta:          NewPageMeta(t.page, len(filtered)),
		AllSelected:   t.selection.AllSelected(pageRows),
		Indeterminate: t.selection.Indeterminate(pageRows),
	}
}

// filteredSorted returns the filter+sort pipeline result, memoized on
// (rows version, filter state, sort state) so page-only changes reuse it.
func (t *Table[T, K]) filteredSorted() []T {
	if rows, ok := t.memo.lookup(t.version, t.filter, t.sort); ok {
		return rows
	}
	rows := Sort(Filter(t.rows, t.columns, t.filter), t.columns, t.sort)
	t.memo.store(t.version, t.filter, t.sort, rows)
	return rows
}

// resetPage forces page 1 after a transition that changed the result set
// composition.
func (t *Table[T, K]) resetPage() {
	if t.page.Page == 1 {
		return
	}
	t.page.Page = 1
	if t.Events.OnPageChange != nil {
		t.Events.OnPageChange(1)
	}
}

func (t *Table[T, K]) emitSelectionChange() {
	if t.Events.OnSelectionChange != nil {
		t.Events.OnSelectionChange(t.SelectedRows())
	}
}
