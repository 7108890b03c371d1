package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerdesk/gridkit/internal/grid"
	"github.com/ledgerdesk/gridkit/internal/invoice"
)

// columnGap separates rendered columns.
const columnGap = "  "

// Styles for the one-shot list output.
//
//nolint:gochecknoglobals // Render styles, static for the process.
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	currentStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// sortMarker returns the header suffix for the active sort column.
func sortMarker(col grid.Column[invoice.Invoice], sort grid.SortState) string {
	if col.ID != sort.ColumnID {
		return ""
	}
	switch sort.Direction {
	case grid.DirectionAsc:
		return " ▲"
	case grid.DirectionDesc:
		return " ▼"
	case grid.DirectionNone:
		return ""
	default:
		return ""
	}
}

// renderList renders the current page as an aligned text table followed
// by the page-number strip.
func renderList(
	view grid.View[invoice.Invoice],
	columns []grid.Column[invoice.Invoice],
	sort grid.SortState,
) string {
	widths := make([]int, len(columns))
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Title + sortMarker(col, sort)
		widths[i] = len([]rune(headers[i]))
	}

	cells := make([][]string, len(view.Rows))
	for r, row := range view.Rows {
		cells[r] = make([]string, len(columns))
		for i, col := range columns {
			cell := grid.CellString(col, row)
			cells[r][i] = cell
			if w := len([]rune(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(padRow(headers, widths)))
	sb.WriteString("\n")
	for _, row := range cells {
		sb.WriteString(padRow(row, widths))
		sb.WriteString("\n")
	}

	if len(view.Rows) == 0 {
		sb.WriteString(dimStyle.Render("no rows"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(renderPageStrip(view))
	sb.WriteString("\n")
	return sb.String()
}

// padRow left-aligns each cell to its column width.
func padRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell + strings.Repeat(" ", widths[i]-len([]rune(cell)))
	}
	return strings.TrimRight(strings.Join(parts, columnGap), " ")
}

// renderPageStrip renders the compact page-number sequence with the
// current page highlighted, plus a row-count summary.
func renderPageStrip(view grid.View[invoice.Invoice]) string {
	parts := make([]string, 0, len(view.PageNumbers)+1)
	for _, item := range view.PageNumbers {
		label := item.String()
		switch {
		case item.IsEllipsis():
			parts = append(parts, dimStyle.Render(label))
		case int(item) == view.Page:
			parts = append(parts, currentStyle.Render(label))
		default:
			parts = append(parts, label)
		}
	}

	summary := fmt.Sprintf("page %d/%d · %d rows", view.Page, view.TotalPages, view.TotalRows)
	return strings.Join(parts, " ") + columnGap + dimStyle.Render(summary)
}
