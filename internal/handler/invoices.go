package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/smilodon-digital/invoicing-service/internal/export"
	"github.com/smilodon-digital/invoicing-service/internal/models"
	"github.com/smilodon-digital/invoicing-service/internal/service"
)

type createInvoiceRequest struct {
	ClientID  string               `json:"client_id"`
	Items     []models.InvoiceItem `json:"items"`
	Status    string               `json:"status"`
	IssueDate time.Time            `json:"issue_date"`
	DueDate   time.Time            `json:"due_date"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// ListInvoices returns the full invoice sequence
func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.ListInvoices())
}

// CreateInvoice validates and inserts a new invoice; totals and the
// display number are derived server-side.
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateInvoice(models.Invoice{
		ClientID:  req.ClientID,
		Items:     req.Items,
		Status:    req.Status,
		IssueDate: req.IssueDate,
		DueDate:   req.DueDate,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// GetInvoice returns one invoice by id
func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.svc.GetInvoice(pathID(r))
	if !ok {
		respondError(w, http.StatusNotFound, "invoice not found")
		return
	}
	respondJSON(w, http.StatusOK, inv)
}

// MarkInvoicePaid transitions an invoice to paid and stamps the paid
// date
func (h *Handler) MarkInvoicePaid(w http.ResponseWriter, r *http.Request) {
	inv, found := h.svc.MarkAsPaid(pathID(r))
	if !found {
		respondError(w, http.StatusNotFound, "invoice not found")
		return
	}
	respondJSON(w, http.StatusOK, inv)
}

// SetInvoiceStatus drives the externally-triggered lifecycle
// transitions
func (h *Handler) SetInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := h.svc.SetStatus(pathID(r), req.Status)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrInvoiceNotFound) {
			status = http.StatusNotFound
		}
		respondError(w, status, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, inv)
}

// InvoiceStats returns aggregate statistics over the current invoice
// snapshot
func (h *Handler) InvoiceStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Stats())
}

// ExportInvoiceXML renders one invoice as an XML document
func (h *Handler) ExportInvoiceXML(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.svc.GetInvoice(pathID(r))
	if !ok {
		respondError(w, http.StatusNotFound, "invoice not found")
		return
	}

	client, _ := h.svc.GetClient(inv.ClientID)
	out, err := export.InvoiceXML(inv, client)
	if err != nil {
		h.log.Errorf("Failed to export invoice %s: %v", inv.Number, err)
		respondError(w, http.StatusInternalServerError, "failed to render invoice")
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Write(out)
}
