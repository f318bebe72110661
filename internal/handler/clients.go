package handler

import (
	"net/http"

	"github.com/smilodon-digital/invoicing-service/internal/models"
	"github.com/smilodon-digital/invoicing-service/internal/service"
)

type createClientRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	TaxNumber   string  `json:"tax_number"`
	CreditLimit float64 `json:"credit_limit"`
}

type recordTransactionRequest struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	InvoiceID   string  `json:"invoice_id"`
}

// ListClients returns the full client sequence
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.ListClients())
}

// CreateClient inserts a new client. The balance always starts at zero;
// it is only ever moved by recorded transactions.
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AddClient(models.Client{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		TaxNumber:   req.TaxNumber,
		CreditLimit: req.CreditLimit,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// GetClient returns one client by id
func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	client, ok := h.svc.GetClient(pathID(r))
	if !ok {
		respondError(w, http.StatusNotFound, "client not found")
		return
	}
	respondJSON(w, http.StatusOK, client)
}

// UpdateClient applies a partial update to one client
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var patch service.ClientPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.svc.UpdateClient(pathID(r), patch) {
		respondError(w, http.StatusNotFound, "client not found")
		return
	}
	client, _ := h.svc.GetClient(pathID(r))
	respondJSON(w, http.StatusOK, client)
}

// DeleteClient removes one client
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	h.svc.RemoveClient(pathID(r))
	w.WriteHeader(http.StatusNoContent)
}

// ListClientTransactions returns the ledger entries of one client
func (h *Handler) ListClientTransactions(w http.ResponseWriter, r *http.Request) {
	txs := h.svc.ClientTransactions(pathID(r))
	if txs == nil {
		txs = []models.ClientTransaction{}
	}
	respondJSON(w, http.StatusOK, txs)
}

// RecordTransaction appends a ledger entry and applies it to the client
// balance
func (h *Handler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req recordTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.svc.RecordTransaction(pathID(r), req.Type, req.Amount, req.Description, req.InvoiceID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}
