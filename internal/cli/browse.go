package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ledgerdesk/gridkit/internal/grid"
	"github.com/ledgerdesk/gridkit/internal/invoice"
	"github.com/ledgerdesk/gridkit/internal/tui"
)

// ErrNotATerminal is returned when browse is run without an interactive
// terminal attached.
var ErrNotATerminal = errors.New("browse requires an interactive terminal (try 'list' instead)")

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// newBrowseCmd creates the "browse" command: the interactive table over
// the same engine the one-shot commands use.
func newBrowseCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse an invoice dataset interactively",
		Long: "Browse opens a full-screen table with incremental search, tri-state " +
			"column sorting, pagination, and cross-page row selection.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return ErrNotATerminal
			}

			tbl, err := buildTable(cmd.Context(), flags)
			if err != nil {
				return err
			}

			model := tui.NewBrowseModel(tbl, tui.WithExporter(exportToCSV(tbl)))
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = program.Run()
			return err
		},
	}

	addListFlags(cmd, &flags)
	return cmd
}

// exportToCSV writes rows exported from the browse view to a
// timestamped CSV file in the working directory.
func exportToCSV(tbl *grid.Table[invoice.Invoice, string]) tui.ExportFunc {
	return func(scope grid.ExportScope, rows []invoice.Invoice) error {
		name := fmt.Sprintf("gridkit-%s-%s.csv", scope, time.Now().Format("20060102-150405"))
		file, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
		defer file.Close()

		return writeCSV(file, tbl.Columns(), rows)
	}
}
