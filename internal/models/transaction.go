package models

import "time"

// Transaction types. A credit decreases the client balance, a debit
// increases it; the amount itself is always stored positive.
const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// ClientTransaction represents one ledger entry against a client
type ClientTransaction struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	InvoiceID   string    `json:"invoice_id,omitempty"`
	Date        time.Time `json:"date"`
}

// RecordID returns the transaction identifier.
func (t ClientTransaction) RecordID() string { return t.ID }

// WithIdentity returns a copy of the transaction stamped with a
// store-assigned id and timestamp.
func (t ClientTransaction) WithIdentity(id string, createdAt time.Time) ClientTransaction {
	t.ID = id
	t.Date = createdAt
	return t
}
