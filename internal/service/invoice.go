package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/smilodon-digital/invoicing-service/internal/models"
)

// ErrInvoiceNotFound reports a lookup against an absent invoice id.
var ErrInvoiceNotFound = errors.New("invoice not found")

// ListInvoices returns the current invoice sequence
func (s *Service) ListInvoices() []models.Invoice {
	return s.stores.Invoices.Query()
}

// GetInvoice looks up one invoice by id
func (s *Service) GetInvoice(id string) (models.Invoice, bool) {
	return s.stores.Invoices.FindByID(id)
}

// CreateInvoice validates the draft, recomputes all monetary fields,
// assigns the next display number and inserts the invoice. The display
// number is PREFIX-NNN from the current invoice count plus one; numbers
// are not reused after deletion. The new invoice id is appended to the
// owning client's invoice list.
func (s *Service) CreateInvoice(draft models.Invoice) (models.Invoice, error) {
	if draft.ClientID == "" {
		return models.Invoice{}, fmt.Errorf("invoice requires a client")
	}
	if len(draft.Items) == 0 {
		return models.Invoice{}, fmt.Errorf("invoice requires at least one item")
	}
	for _, item := range draft.Items {
		if item.Quantity <= 0 {
			return models.Invoice{}, fmt.Errorf("item %q quantity must be positive", item.ProductName)
		}
		if item.UnitPrice < 0 {
			return models.Invoice{}, fmt.Errorf("item %q unit price must not be negative", item.ProductName)
		}
	}
	if draft.Status == "" {
		draft.Status = models.InvoiceStatusDraft
	}
	// Invoices start their lifecycle at draft or sent. Paid is reachable
	// only through MarkAsPaid, overdue only through an explicit status
	// change after sending.
	switch draft.Status {
	case models.InvoiceStatusDraft, models.InvoiceStatusSent:
	case models.InvoiceStatusPaid:
		return models.Invoice{}, fmt.Errorf("paid status is set via mark-as-paid")
	case models.InvoiceStatusOverdue:
		return models.Invoice{}, fmt.Errorf("invoices cannot be created overdue")
	default:
		return models.Invoice{}, fmt.Errorf("unknown invoice status %q", draft.Status)
	}

	draft.Items, draft.Subtotal, draft.Tax, draft.Total = s.RecomputeTotals(draft.Items)

	if draft.IssueDate.IsZero() {
		draft.IssueDate = time.Now()
	}
	if draft.DueDate.IsZero() {
		draft.DueDate = draft.IssueDate.AddDate(0, 0, s.config.InvoiceDueDays)
	}

	if client, ok := s.stores.Clients.FindByID(draft.ClientID); ok {
		draft.ClientName = client.Name
	}

	sequence := s.stores.Invoices.Count() + 1
	draft.Number = fmt.Sprintf("%s-%03d", s.config.InvoicePrefix, sequence)

	created := s.stores.Invoices.Insert(draft)

	s.stores.Clients.Update(created.ClientID, func(c models.Client) models.Client {
		c.Invoices = append(c.Invoices, created.ID)
		return c
	})

	s.log.Infof("Invoice %s created for client %s: total %.2f", created.Number, created.ClientID, created.Total)
	return created, nil
}

// RecomputeTotals derives each item total (quantity times unit price),
// the subtotal, the tax at the configured rate and the grand total.
// Monetary values are rounded half away from zero to 2 decimals.
func (s *Service) RecomputeTotals(items []models.InvoiceItem) ([]models.InvoiceItem, float64, float64, float64) {
	out := make([]models.InvoiceItem, len(items))
	subtotal := 0.0
	for i, item := range items {
		item.Total = round2(float64(item.Quantity) * item.UnitPrice)
		out[i] = item
		subtotal += item.Total
	}
	subtotal = round2(subtotal)
	tax := round2(subtotal * s.config.TaxRate)
	total := round2(subtotal + tax)
	return out, subtotal, tax, total
}

// MarkAsPaid transitions an invoice to paid and sets its paid date to
// the current time. The operation carries no state-machine guard: a
// second call succeeds and reassigns the paid date. Returns whether the
// invoice existed.
func (s *Service) MarkAsPaid(id string) (models.Invoice, bool) {
	now := time.Now()
	found := s.stores.Invoices.Update(id, func(inv models.Invoice) models.Invoice {
		inv.Status = models.InvoiceStatusPaid
		inv.PaidDate = &now
		return inv
	})
	if !found {
		return models.Invoice{}, false
	}

	inv, _ := s.stores.Invoices.FindByID(id)
	s.log.Infof("Invoice %s marked as paid", inv.Number)
	return inv, true
}

// SetStatus drives the externally-triggered lifecycle transitions
// (draft, sent, overdue). Paid is reachable only through MarkAsPaid and
// is terminal once set. There is no automatic overdue detection; the
// overdue status is assigned by the caller.
func (s *Service) SetStatus(id, status string) (models.Invoice, error) {
	if !models.ValidInvoiceStatus(status) {
		return models.Invoice{}, fmt.Errorf("unknown invoice status %q", status)
	}
	if status == models.InvoiceStatusPaid {
		return models.Invoice{}, fmt.Errorf("paid status is set via mark-as-paid")
	}

	current, ok := s.stores.Invoices.FindByID(id)
	if !ok {
		return models.Invoice{}, fmt.Errorf("invoice %s: %w", id, ErrInvoiceNotFound)
	}
	if current.Status == models.InvoiceStatusPaid {
		return models.Invoice{}, fmt.Errorf("invoice %s is paid and cannot change status", current.Number)
	}

	s.stores.Invoices.Update(id, func(inv models.Invoice) models.Invoice {
		inv.Status = status
		return inv
	})
	updated, _ := s.stores.Invoices.FindByID(id)
	s.log.Infof("Invoice %s status set to %s", updated.Number, status)

	if status == models.InvoiceStatusSent && s.mailer != nil && s.mailer.Enabled() {
		if client, ok := s.stores.Clients.FindByID(updated.ClientID); ok && client.Email != "" {
			if err := s.mailer.SendInvoiceIssued(client.Email, client.Name, updated); err != nil {
				s.log.Errorf("Failed to notify client %s about invoice %s: %v", client.ID, updated.Number, err)
			}
		}
	}

	return updated, nil
}

// Stats computes aggregate invoice statistics from the current snapshot
func (s *Service) Stats() models.InvoiceStats {
	return ComputeStats(s.stores.Invoices.Query())
}

// ComputeStats derives invoice statistics from a snapshot. Revenue
// counts paid invoices only; pending counts invoices in the sent state.
func ComputeStats(invoices []models.Invoice) models.InvoiceStats {
	stats := models.InvoiceStats{TotalInvoices: len(invoices)}
	for _, inv := range invoices {
		switch inv.Status {
		case models.InvoiceStatusPaid:
			stats.PaidInvoices++
			stats.TotalRevenue += inv.Total
		case models.InvoiceStatusSent:
			stats.PendingInvoices++
		case models.InvoiceStatusOverdue:
			stats.OverdueInvoices++
		}
	}
	stats.TotalRevenue = round2(stats.TotalRevenue)
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
