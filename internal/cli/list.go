package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newListCmd creates the "list" command: one-shot rendering of a single
// page of the filtered, sorted dataset.
func newListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Render one page of an invoice dataset",
		Long: "List loads invoice files, applies the global query, per-column filters, " +
			"and sort, and renders the requested page with a compact page-number strip.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, err := buildTable(cmd.Context(), flags)
			if err != nil {
				return err
			}

			view := tbl.View()
			fmt.Fprint(cmd.OutOrStdout(), renderList(view, tbl.Columns(), tbl.SortValue()))
			return nil
		},
	}

	addListFlags(cmd, &flags)
	return cmd
}

// addListFlags registers the table-shaping flags shared by list, export,
// and browse.
func addListFlags(cmd *cobra.Command, flags *listFlags) {
	cmd.Flags().StringSliceVarP(&flags.inputs, "input", "i", nil, "invoice JSON file (repeatable)")
	cmd.Flags().StringVarP(&flags.query, "query", "q", "", "global search term across filterable columns")
	cmd.Flags().StringArrayVarP(&flags.filters, "filter", "f", nil, "per-column filter as column=term (repeatable)")
	cmd.Flags().StringVarP(&flags.sort, "sort", "s", "", "sort as column[:asc|desc]")
	cmd.Flags().IntVarP(&flags.page, "page", "p", 0, "1-based page number (out-of-range values clamp)")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "rows per page (must be an allowed size)")
}
