package invoice

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ledgerdesk/gridkit/internal/grid"
)

// dateLayout is the display format for invoice dates.
const dateLayout = "2006-01-02"

// Columns returns the grid column set for invoice list views. Amount
// columns carry a numeric comparator and a locale-aware stringifier so
// "1,204.50" both renders and sorts correctly; date columns compare as
// time values rather than strings.
func Columns() []grid.Column[Invoice] {
	printer := message.NewPrinter(language.English)
	amount := func(v any) string {
		return printer.Sprintf("%.2f", v.(float64))
	}
	date := func(v any) string {
		return v.(time.Time).Format(dateLayout)
	}
	byTime := func(a, b any) int {
		return a.(time.Time).Compare(b.(time.Time))
	}

	return []grid.Column[Invoice]{
		{
			ID:         "number",
			Title:      "Number",
			Accessor:   func(i Invoice) any { return i.Number },
			Sortable:   true,
			Filterable: true,
		},
		{
			ID:         "partner",
			Title:      "Partner",
			Accessor:   func(i Invoice) any { return i.Partner },
			Sortable:   true,
			Filterable: true,
		},
		{
			ID:        "issued",
			Title:     "Issued",
			Accessor:  func(i Invoice) any { return i.IssuedOn },
			Sortable:  true,
			Compare:   byTime,
			Stringify: date,
		},
		{
			ID:        "due",
			Title:     "Due",
			Accessor:  func(i Invoice) any { return i.DueOn },
			Sortable:  true,
			Compare:   byTime,
			Stringify: date,
		},
		{
			ID:         "status",
			Title:      "Status",
			Accessor:   func(i Invoice) any { return string(i.Status) },
			Sortable:   true,
			Filterable: true,
		},
		{
			ID:        "net",
			Title:     "Net",
			Accessor:  func(i Invoice) any { return i.Net },
			Sortable:  true,
			Stringify: amount,
		},
		{
			ID:        "gross",
			Title:     "Gross",
			Accessor:  func(i Invoice) any { return i.Gross() },
			Sortable:  true,
			Stringify: amount,
		},
		{
			ID:         "currency",
			Title:      "Currency",
			Accessor:   func(i Invoice) any { return i.Currency },
			Filterable: true,
		},
	}
}
