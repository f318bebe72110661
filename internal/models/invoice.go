package models

import "time"

// Invoice lifecycle statuses. Draft is the initial state; paid is set
// only through the explicit mark-as-paid operation and is terminal.
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// InvoiceItem is a line item carrying a product snapshot taken at the
// time of invoicing. Total is always recomputed from quantity and unit
// price, never trusted from the caller.
type InvoiceItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Invoice represents an issued invoice with denormalized client name
type Invoice struct {
	ID         string        `json:"id"`
	Number     string        `json:"number"`
	ClientID   string        `json:"client_id"`
	ClientName string        `json:"client_name"`
	Items      []InvoiceItem `json:"items"`
	Subtotal   float64       `json:"subtotal"`
	Tax        float64       `json:"tax"`
	Total      float64       `json:"total"`
	Status     string        `json:"status"`
	IssueDate  time.Time     `json:"issue_date"`
	DueDate    time.Time     `json:"due_date"`
	PaidDate   *time.Time    `json:"paid_date,omitempty"`
}

// RecordID returns the invoice identifier.
func (i Invoice) RecordID() string { return i.ID }

// WithIdentity returns a copy of the invoice stamped with a
// store-assigned id. The issue date is set by the invoice service, not
// by the store.
func (i Invoice) WithIdentity(id string, _ time.Time) Invoice {
	i.ID = id
	return i
}

// ValidInvoiceStatus reports whether s is one of the known lifecycle
// statuses.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}
