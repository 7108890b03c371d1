package invoice

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Fixture generation knobs.
const (
	vatRate      = 0.20
	maxNetCents  = 500_000
	dueDays      = 30
	issueSpread  = 365
	genEpochYear = 2026
)

// Sample partners for generated datasets.
//
//nolint:gochecknoglobals // Static fixture vocabulary.
var partners = []string{
	"Acme GmbH",
	"Globex Corporation",
	"Initech Ltd",
	"Umbrella Holdings",
	"Stark Industries",
	"Wayne Enterprises",
	"Hooli Inc",
	"Vandelay Imports",
}

//nolint:gochecknoglobals // Static fixture vocabulary.
var statuses = []Status{StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusVoid}

// Generate produces a deterministic invoice dataset for a given seed:
// same seed, same invoices, including the ULIDs. Useful for demos and
// reproducible bug reports.
func Generate(n int, seed int64) []Invoice {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // Fixture data, not crypto.
	entropy := ulid.Monotonic(rng, 0)
	epoch := time.Date(genEpochYear, time.January, 1, 0, 0, 0, 0, time.UTC)

	invoices := make([]Invoice, 0, n)
	for i := 0; i < n; i++ {
		issued := epoch.AddDate(0, 0, rng.Intn(issueSpread))
		net := float64(rng.Intn(maxNetCents)) / 100

		invoices = append(invoices, Invoice{
			ID:       ulid.MustNew(ulid.Timestamp(issued), entropy).String(),
			Number:   fmt.Sprintf("INV-%04d", i+1),
			Partner:  partners[rng.Intn(len(partners))],
			IssuedOn: issued,
			DueOn:    issued.AddDate(0, 0, dueDays),
			Status:   statuses[rng.Intn(len(statuses))],
			Net:      net,
			VAT:      net * vatRate,
			Currency: "EUR",
		})
	}
	return invoices
}
