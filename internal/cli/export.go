package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerdesk/gridkit/internal/grid"
	"github.com/ledgerdesk/gridkit/internal/invoice"
	"github.com/ledgerdesk/gridkit/internal/logging"
)

// stdoutPath selects stdout as the export destination.
const stdoutPath = "-"

// newExportCmd creates the "export" command: the engine picks the rows
// (current page or everything matching the filters), this command turns
// them into CSV.
func newExportCmd() *cobra.Command {
	var (
		flags listFlags
		scope string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export visible or filtered rows as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			exportScope, err := ParseExportScope(scope)
			if err != nil {
				return err
			}

			tbl, err := buildTable(cmd.Context(), flags)
			if err != nil {
				return err
			}

			log := logging.FromContext(cmd.Context())
			tbl.Events.OnExportRequested = func(s grid.ExportScope) {
				log.Info().
					Str("operation", "export").
					Str("scope", s.String()).
					Msg("export requested")
			}
			rows := tbl.RequestExport(exportScope)

			var w io.Writer = cmd.OutOrStdout()
			if out != stdoutPath {
				file, createErr := os.Create(out)
				if createErr != nil {
					return fmt.Errorf("creating %s: %w", out, createErr)
				}
				defer file.Close()
				w = file
			}

			if err := writeCSV(w, tbl.Columns(), rows); err != nil {
				return err
			}

			log.Info().
				Str("operation", "export").
				Int("rows", len(rows)).
				Str("output", out).
				Msg("export written")
			return nil
		},
	}

	addListFlags(cmd, &flags)
	cmd.Flags().StringVar(&scope, "scope", "filtered", "rows to export: visible or filtered")
	cmd.Flags().StringVarP(&out, "output", "o", stdoutPath, "destination file ('-' for stdout)")
	return cmd
}

// writeCSV writes a header of column titles followed by one record per
// row, using the same cell stringification the list views display.
func writeCSV(w io.Writer, columns []grid.Column[invoice.Invoice], rows []invoice.Invoice) error {
	writer := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Title
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = grid.CellString(col, row)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
