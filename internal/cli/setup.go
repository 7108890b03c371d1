package cli

import (
	"context"

	"github.com/ledgerdesk/gridkit/internal/grid"
	"github.com/ledgerdesk/gridkit/internal/invoice"
	"github.com/ledgerdesk/gridkit/internal/logging"
)

// listFlags holds the table-shaping flags shared by list, export, and
// browse.
type listFlags struct {
	inputs   []string
	query    string
	filters  []string
	sort     string
	page     int
	pageSize int
}

// buildTable loads the dataset and drives the engine's state transitions
// from the parsed flags. Flag validation happens before any state is
// applied, so an invalid filter never leaves a half-configured table.
func buildTable(ctx context.Context, flags listFlags) (*grid.Table[invoice.Invoice, string], error) {
	if len(flags.inputs) == 0 {
		return nil, ErrNoInput
	}
	log := logging.FromContext(ctx)

	sortState, err := ParseSortFlag(flags.sort)
	if err != nil {
		return nil, err
	}

	type columnFilter struct{ column, term string }
	columnFilters := make([]columnFilter, 0, len(flags.filters))
	for _, f := range flags.filters {
		if f == "" {
			continue
		}
		column, term, parseErr := ParseFilterFlag(f)
		if parseErr != nil {
			log.Warn().
				Str("operation", "build_table").
				Str("filter", f).
				Err(parseErr).
				Msg("invalid filter expression")
			return nil, parseErr
		}
		columnFilters = append(columnFilters, columnFilter{column: column, term: term})
	}

	rows, err := invoice.LoadAll(ctx, flags.inputs)
	if err != nil {
		return nil, err
	}

	cfg := configFromContext(ctx)
	opts := []grid.TableOption{
		grid.WithPageSizes(cfg.Table.PageSizes...),
		grid.WithPageSize(cfg.Table.DefaultPageSize),
	}

	tbl := grid.NewTable(invoice.Columns(), invoice.Key, opts...)
	tbl.SetRows(rows)

	if flags.pageSize > 0 {
		if sizeErr := tbl.SetPageSize(flags.pageSize); sizeErr != nil {
			return nil, sizeErr
		}
	}
	tbl.SetQuery(flags.query)
	for _, f := range columnFilters {
		tbl.SetColumnFilter(f.column, f.term)
	}
	tbl.SetSort(sortState)
	if flags.page > 0 {
		tbl.SetPage(flags.page)
	}

	view := tbl.View()
	log.Debug().
		Str("operation", "build_table").
		Int("rows", len(rows)).
		Int("filtered", view.TotalRows).
		Int("page", view.Page).
		Int("total_pages", view.TotalPages).
		Msg("table ready")

	if view.TotalRows == 0 && len(rows) > 0 {
		log.Warn().
			Str("operation", "build_table").
			Int("original_count", len(rows)).
			Msg("no rows match filter criteria")
	}

	return tbl, nil
}
