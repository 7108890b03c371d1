package grid

// Shared fixtures for engine tests: a minimal invoice-shaped row with a
// nilable column so the nil policies are exercised.

type testRow struct {
	ID      string
	Partner string
	Amount  float64
	Note    any
}

func testKey(r testRow) string { return r.ID }

func testColumns() []Column[testRow] {
	return []Column[testRow]{
		{
			ID:         "id",
			Title:      "ID",
			Accessor:   func(r testRow) any { return r.ID },
			Sortable:   true,
			Filterable: true,
		},
		{
			ID:         "partner",
			Title:      "Partner",
			Accessor:   func(r testRow) any { return r.Partner },
			Sortable:   true,
			Filterable: true,
		},
		{
			ID:         "amount",
			Title:      "Amount",
			Accessor:   func(r testRow) any { return r.Amount },
			Sortable:   true,
			Filterable: false,
		},
		{
			ID:       "note",
			Title:    "Note",
			Accessor: func(r testRow) any { return r.Note },
			Sortable: true,
		},
	}
}

func testRows() []testRow {
	return []testRow{
		{ID: "inv-1", Partner: "Acme GmbH", Amount: 120.50, Note: "paid"},
		{ID: "inv-2", Partner: "Globex", Amount: 75.00, Note: nil},
		{ID: "inv-3", Partner: "Initech", Amount: 120.50, Note: "overdue"},
		{ID: "inv-4", Partner: "acme ltd", Amount: 30.25, Note: "draft"},
		{ID: "inv-5", Partner: "Umbrella", Amount: 990.00, Note: nil},
	}
}

func ids(rows []testRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}
