package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledgerdesk/gridkit/internal/grid"
)

// Sort and filter flag syntax errors.
var (
	ErrInvalidSortFormat   = errors.New("invalid sort format: use 'column' or 'column:order' (e.g. 'issued:desc')")
	ErrEmptySortColumn     = errors.New("sort column cannot be empty")
	ErrInvalidSortOrder    = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidFilterFormat = errors.New("invalid filter format: use 'column=term' (e.g. 'partner=acme')")
	ErrInvalidExportScope  = errors.New("export scope must be 'visible' or 'filtered'")
)

// sortPartsMax is the maximum number of parts in a sort flag (column:order).
const sortPartsMax = 2

// ParseSortFlag parses a sort flag in the format "column" or
// "column:order". An empty flag means no sorting; a bare column defaults
// to ascending.
func ParseSortFlag(flag string) (grid.SortState, error) {
	if strings.TrimSpace(flag) == "" {
		return grid.SortState{}, nil
	}

	parts := strings.Split(flag, ":")
	if len(parts) > sortPartsMax {
		return grid.SortState{}, fmt.Errorf("%w: %q", ErrInvalidSortFormat, flag)
	}

	column := strings.TrimSpace(parts[0])
	if column == "" {
		return grid.SortState{}, ErrEmptySortColumn
	}

	direction := grid.DirectionAsc
	if len(parts) == sortPartsMax {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "asc":
			direction = grid.DirectionAsc
		case "desc":
			direction = grid.DirectionDesc
		default:
			return grid.SortState{}, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, parts[1])
		}
	}

	return grid.SortState{ColumnID: column, Direction: direction}, nil
}

// ParseFilterFlag parses a per-column filter flag in "column=term" form.
// Terms may contain '='; only the first one splits.
func ParseFilterFlag(flag string) (string, string, error) {
	column, term, found := strings.Cut(flag, "=")
	column = strings.TrimSpace(column)
	if !found || column == "" || term == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidFilterFormat, flag)
	}
	return column, term, nil
}

// ParseExportScope parses the --scope flag.
func ParseExportScope(flag string) (grid.ExportScope, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "visible":
		return grid.ExportVisible, nil
	case "filtered":
		return grid.ExportFiltered, nil
	default:
		return grid.ExportVisible, fmt.Errorf("%w: got %q", ErrInvalidExportScope, flag)
	}
}
