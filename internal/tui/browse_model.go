package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledgerdesk/gridkit/internal/grid"
	"github.com/ledgerdesk/gridkit/internal/invoice"
	"github.com/ledgerdesk/gridkit/internal/tui/pagelist"
)

const (
	columnGap      = "  "
	queryCharLimit = 64
	queryWidth     = 32
)

// ExportFunc receives the rows of an export request triggered from the
// browse view. Implementations decide where the rows go.
type ExportFunc func(scope grid.ExportScope, rows []invoice.Invoice) error

// BrowseModel is the interactive invoice browser. It drives a
// grid.Table and renders one page of rows at a time, with the filter,
// sort, pagination, and selection operations bound to keys.
type BrowseModel struct {
	table   *grid.Table[invoice.Invoice, string]
	list    *pagelist.Model[invoice.Invoice]
	query   textinput.Model
	columns []grid.Column[invoice.Invoice]

	// sortable holds the IDs of sortable columns in display order; the
	// tab key cycles activeCol through them and s applies the sort.
	sortable  []string
	activeCol int

	view      grid.View[invoice.Invoice]
	widths    []int
	export    ExportFunc
	filtering bool
	status    string
	width     int
	height    int
	quitting  bool
}

// BrowseOption configures a BrowseModel.
type BrowseOption func(*BrowseModel)

// WithExporter wires an export sink into the browse view. Without one
// the e/E keys only report how many rows would have been exported.
func WithExporter(fn ExportFunc) BrowseOption {
	return func(m *BrowseModel) {
		m.export = fn
	}
}

// NewBrowseModel builds the browse view on top of an already
// configured table.
func NewBrowseModel(table *grid.Table[invoice.Invoice, string], opts ...BrowseOption) *BrowseModel {
	query := textinput.New()
	query.Placeholder = "filter invoices"
	query.CharLimit = queryCharLimit
	query.Width = queryWidth

	columns := table.Columns()
	sortable := make([]string, 0, len(columns))

	for _, col := range columns {
		if col.Sortable {
			sortable = append(sortable, col.ID)
		}
	}

	m := &BrowseModel{
		table:    table,
		query:    query,
		columns:  columns,
		sortable: sortable,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.list = pagelist.New(nil, m.renderRow)
	m.refresh()

	return m
}

// Init implements tea.Model.
func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}

		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m *BrowseModel) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.query.Blur()
		m.table.SetQuery(m.query.Value())
		m.refresh()

		return m, nil
	case "esc":
		m.filtering = false
		m.query.Blur()
		m.query.SetValue(m.table.FilterValue().Query)

		return m, nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)

	return m, cmd
}

//nolint:cyclop // Flat key dispatch, one case per binding.
func (m *BrowseModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true

		return m, tea.Quit
	case "/":
		m.filtering = true
		m.status = ""

		return m, m.query.Focus()
	case "esc":
		if m.table.FilterValue().Query != "" {
			m.query.SetValue("")
			m.table.SetQuery("")
			m.refresh()
		}

		return m, nil
	case "left", "h", "p":
		m.table.PrevPage()
		m.refresh()

		return m, nil
	case "right", "l", "n":
		m.table.NextPage()
		m.refresh()

		return m, nil
	case "tab":
		m.cycleColumn(1)

		return m, nil
	case "shift+tab":
		m.cycleColumn(-1)

		return m, nil
	case "s":
		if len(m.sortable) > 0 {
			m.table.ClickColumn(m.sortable[m.activeCol])
			m.refresh()
		}

		return m, nil
	case " ":
		if row := m.list.Current(); row != nil {
			m.table.Toggle(invoice.Key(*row))
			m.refresh()
		}

		return m, nil
	case "a":
		m.table.SelectVisible()
		m.refresh()

		return m, nil
	case "c":
		m.table.ClearSelection()
		m.status = ""
		m.refresh()

		return m, nil
	case "z":
		m.cyclePageSize()

		return m, nil
	case "e":
		m.runExport(grid.ExportVisible)

		return m, nil
	case "E":
		m.runExport(grid.ExportFiltered)

		return m, nil
	}

	_, cmd := m.list.Update(msg)

	return m, cmd
}

func (m *BrowseModel) cycleColumn(step int) {
	if len(m.sortable) == 0 {
		return
	}

	m.activeCol = (m.activeCol + step + len(m.sortable)) % len(m.sortable)
}

func (m *BrowseModel) cyclePageSize() {
	sizes := m.table.PageSizes()
	current := m.table.PageValue().PageSize

	for i, size := range sizes {
		if size == current {
			// Sizes come from the table's own allow-list.
			_ = m.table.SetPageSize(sizes[(i+1)%len(sizes)])
			m.refresh()

			return
		}
	}
}

func (m *BrowseModel) runExport(scope grid.ExportScope) {
	rows := m.table.RequestExport(scope)
	if m.export == nil {
		m.status = fmt.Sprintf("%d rows ready (%s)", len(rows), scope)

		return
	}

	if err := m.export(scope, rows); err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)

		return
	}

	m.status = fmt.Sprintf("exported %d rows (%s)", len(rows), scope)
}

// refresh recomputes the visible page and column layout after any
// table mutation.
func (m *BrowseModel) refresh() {
	m.view = m.table.View()
	m.widths = columnWidths(m.columns, m.view.Rows)
	m.list.SetItems(m.view.Rows)
}

func columnWidths(columns []grid.Column[invoice.Invoice], rows []invoice.Invoice) []int {
	widths := make([]int, len(columns))

	for i, col := range columns {
		widths[i] = len([]rune(col.Title))

		for _, row := range rows {
			if n := len([]rune(grid.CellString(col, row))); n > widths[i] {
				widths[i] = n
			}
		}
	}

	return widths
}

// View implements tea.Model.
func (m *BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Invoices"))
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if len(m.view.Rows) == 0 {
		b.WriteString(dimStyle.Render("no invoices match"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m *BrowseModel) renderFilterLine() string {
	if m.filtering {
		return "filter: " + m.query.View()
	}

	if query := m.table.FilterValue().Query; query != "" {
		return dimStyle.Render(fmt.Sprintf("filter: %q (esc clears)", query))
	}

	return dimStyle.Render("press / to filter")
}

func (m *BrowseModel) renderHeader() string {
	sort := m.table.SortValue()
	cells := make([]string, 0, len(m.columns)+1)
	cells = append(cells, m.selectionMark())

	for i, col := range m.columns {
		title := col.Title
		if sort.ColumnID == col.ID {
			switch sort.Direction {
			case grid.DirectionAsc:
				title += " ▲"
			case grid.DirectionDesc:
				title += " ▼"
			case grid.DirectionNone:
			}
		}

		title = padCell(title, m.widths[i]+2)
		if len(m.sortable) > 0 && col.ID == m.sortable[m.activeCol] {
			title = activeColumnStyle.Render(title)
		}

		cells = append(cells, title)
	}

	return headerStyle.Render(strings.Join(cells, columnGap))
}

func (m *BrowseModel) selectionMark() string {
	switch {
	case m.view.AllSelected:
		return "[x]"
	case m.view.Indeterminate:
		return "[~]"
	default:
		return "[ ]"
	}
}

func (m *BrowseModel) renderRow(row invoice.Invoice, cursor bool) string {
	mark := "[ ]"
	if m.table.Selection().IsSelected(invoice.Key(row)) {
		mark = selectedMarkStyle.Render("[x]")
	}

	cells := make([]string, 0, len(m.columns)+1)
	cells = append(cells, mark)

	for i, col := range m.columns {
		cells = append(cells, padCell(grid.CellString(col, row), m.widths[i]+2))
	}

	line := strings.Join(cells, columnGap)
	if cursor {
		return cursorRowStyle.Render("> " + line)
	}

	return "  " + line
}

func (m *BrowseModel) renderFooter() string {
	var b strings.Builder

	b.WriteString(m.renderPageStrip())
	b.WriteString("\n")

	summary := fmt.Sprintf("%d invoices · page %d/%d · size %d",
		m.view.TotalRows, m.view.Page, m.view.TotalPages, m.view.PageSize)
	if n := m.table.Selection().Len(); n > 0 {
		summary += fmt.Sprintf(" · %d selected", n)
	}

	b.WriteString(dimStyle.Render(summary))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(
		"/ filter · tab column · s sort · ←/→ page · space select · a page sel · c clear · z size · e/E export · q quit"))

	return b.String()
}

func (m *BrowseModel) renderPageStrip() string {
	parts := make([]string, 0, len(m.view.PageNumbers))

	for _, item := range m.view.PageNumbers {
		switch {
		case item.IsEllipsis():
			parts = append(parts, dimStyle.Render(item.String()))
		case int(item) == m.view.Page:
			parts = append(parts, currentPageStyle.Render(item.String()))
		default:
			parts = append(parts, item.String())
		}
	}

	return strings.Join(parts, " ")
}

func padCell(s string, width int) string {
	if pad := width - len([]rune(s)); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}

	return s
}

var _ tea.Model = (*BrowseModel)(nil)
