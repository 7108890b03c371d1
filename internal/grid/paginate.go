package grid

import "strconv"

// maxPlainPages is the largest page count rendered without ellipses.
const maxPlainPages = 7

// PageState is the 1-based page position within the filtered result set.
type PageState struct {
	Page     int
	PageSize int
}

// PageItem is one entry in a pagination control strip: either a concrete
// page number or Ellipsis for a collapsed gap.
type PageItem int

// Ellipsis marks a gap between page numbers in a control strip.
const Ellipsis PageItem = -1

// IsEllipsis reports whether the item is a gap rather than a page number.
func (p PageItem) IsEllipsis() bool {
	return p == Ellipsis
}

// String renders a page number, or "…" for a gap.
func (p PageItem) String() string {
	if p.IsEllipsis() {
		return "…"
	}
	return strconv.Itoa(int(p))
}

// PageMeta describes a paginated result set for rendering and machine
// output.
type PageMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewPageMeta builds metadata for a filtered result set of totalItems rows.
// The state's page is clamped the same way Paginate clamps it.
func NewPageMeta(state PageState, totalItems int) PageMeta {
	totalPages := TotalPages(totalItems, state.PageSize)
	current := clampPage(state.Page, totalPages)
	return PageMeta{
		CurrentPage: current,
		PageSize:    state.PageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: current > 1,
		HasNext:     current < totalPages,
	}
}

// TotalPages computes the page count for a result set: at least 1, even
// when the set is empty. A non-positive page size collapses everything
// onto a single page; callers are expected to reject such sizes at the
// state-transition boundary.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 1
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	return pages
}

// clampPage forces a requested page into [1, totalPages].
func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices the filtered, ordered rows into the requested page.
// Out-of-range page requests are clamped, never errors: page 999 of a
// 3-page set returns page 3. The returned slice aliases the input.
func Paginate[T any](rows []T, state PageState) ([]T, int) {
	totalPages := TotalPages(len(rows), state.PageSize)
	if state.PageSize <= 0 {
		return rows, totalPages
	}
	page := clampPage(state.Page, totalPages)

	start := (page - 1) * state.PageSize
	if start >= len(rows) {
		return rows[:0], totalPages
	}
	end := start + state.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], totalPages
}

// PageNumbers produces the compact page-number sequence pagination
// controls render: all pages when there are at most seven, otherwise a
// window around the current page with ellipses for the collapsed ranges.
//
// The window is asymmetric: near the start and end four numbers show
// beside a single ellipsis, while the middle shape is a three-wide
// window between two ellipses.
func PageNumbers(current, total int) []PageItem {
	if total < 1 {
		total = 1
	}
	current = clampPage(current, total)

	if total <= maxPlainPages {
		items := make([]PageItem, 0, total)
		for p := 1; p <= total; p++ {
			items = append(items, PageItem(p))
		}
		return items
	}

	switch {
	case current <= 3:
		return []PageItem{1, 2, 3, 4, Ellipsis, PageItem(total)}
	case current >= total-2:
		return []PageItem{
			1, Ellipsis,
			PageItem(total - 3), PageItem(total - 2), PageItem(total - 1), PageItem(total),
		}
	default:
		return []PageItem{
			1, Ellipsis,
			PageItem(current - 1), PageItem(current), PageItem(current + 1),
			Ellipsis, PageItem(total),
		}
	}
}
