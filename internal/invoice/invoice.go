// Package invoice provides the invoicing dataset the list views operate
// on: the record type, its grid column set, JSON loading, and fixture
// generation. The engine itself never inspects invoice fields directly;
// everything goes through the column accessors and the key extractor.
package invoice

import (
	"errors"
	"fmt"
	"time"
)

// Status is the lifecycle state of an invoice.
type Status string

// Invoice lifecycle states.
const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
	StatusVoid    Status = "void"
)

// ErrInvalidInvoice is returned when a loaded record fails validation.
var ErrInvalidInvoice = errors.New("invalid invoice")

// Invoice is one billing document row. IDs are ULIDs, so they are unique
// and stable across refetches — exactly what selection tracking needs.
type Invoice struct {
	ID       string    `json:"id"`
	Number   string    `json:"number"`
	Partner  string    `json:"partner"`
	IssuedOn time.Time `json:"issued_on"`
	DueOn    time.Time `json:"due_on"`
	Status   Status    `json:"status"`
	Net      float64   `json:"net"`
	VAT      float64   `json:"vat"`
	Currency string    `json:"currency"`
}

// Key returns the stable selection key for the invoice.
func Key(inv Invoice) string {
	return inv.ID
}

// Gross is the net amount plus VAT.
func (i Invoice) Gross() float64 {
	return i.Net + i.VAT
}

// Validate checks the minimal invariants loaders rely on.
func (i Invoice) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidInvoice)
	}
	if i.Number == "" {
		return fmt.Errorf("%w %s: missing number", ErrInvalidInvoice, i.ID)
	}
	if i.Net < 0 {
		return fmt.Errorf("%w %s: negative net amount", ErrInvalidInvoice, i.ID)
	}
	return nil
}
