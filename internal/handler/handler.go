package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/smilodon-digital/invoicing-service/internal/service"
)

// Handler exposes the entity stores over HTTP
type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

// NewHandler initializes a new handler
func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes registers all REST routes on the router
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/health", h.Health).Methods("GET")

	r.HandleFunc("/clients", h.ListClients).Methods("GET")
	r.HandleFunc("/clients", h.CreateClient).Methods("POST")
	r.HandleFunc("/clients/{id}", h.GetClient).Methods("GET")
	r.HandleFunc("/clients/{id}", h.UpdateClient).Methods("PUT")
	r.HandleFunc("/clients/{id}", h.DeleteClient).Methods("DELETE")
	r.HandleFunc("/clients/{id}/transactions", h.ListClientTransactions).Methods("GET")
	r.HandleFunc("/clients/{id}/transactions", h.RecordTransaction).Methods("POST")

	r.HandleFunc("/products/categories", h.ListCategories).Methods("GET")
	r.HandleFunc("/products", h.ListProducts).Methods("GET")
	r.HandleFunc("/products", h.CreateProduct).Methods("POST")
	r.HandleFunc("/products/{id}", h.GetProduct).Methods("GET")
	r.HandleFunc("/products/{id}", h.UpdateProduct).Methods("PUT")
	r.HandleFunc("/products/{id}", h.DeleteProduct).Methods("DELETE")

	r.HandleFunc("/invoices/stats", h.InvoiceStats).Methods("GET")
	r.HandleFunc("/invoices", h.ListInvoices).Methods("GET")
	r.HandleFunc("/invoices", h.CreateInvoice).Methods("POST")
	r.HandleFunc("/invoices/{id}", h.GetInvoice).Methods("GET")
	r.HandleFunc("/invoices/{id}/pay", h.MarkInvoicePaid).Methods("POST")
	r.HandleFunc("/invoices/{id}/status", h.SetInvoiceStatus).Methods("POST")
	r.HandleFunc("/invoices/{id}/xml", h.ExportInvoiceXML).Methods("GET")

	r.HandleFunc("/users", h.ListUsers).Methods("GET")
	r.HandleFunc("/users", h.CreateUser).Methods("POST")
	r.HandleFunc("/users/{id}/status", h.SetUserStatus).Methods("POST")
	r.HandleFunc("/users/{id}", h.DeleteUser).Methods("DELETE")
}

// Health reports service liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func pathID(r *http.Request) string {
	return mux.Vars(r)["id"]
}
