package models

// InvoiceStats represents aggregate invoice statistics. Derived on
// demand from the invoice collection, never persisted.
type InvoiceStats struct {
	TotalInvoices   int     `json:"total_invoices"`
	TotalRevenue    float64 `json:"total_revenue"`
	PaidInvoices    int     `json:"paid_invoices"`
	PendingInvoices int     `json:"pending_invoices"`
	OverdueInvoices int     `json:"overdue_invoices"`
}
