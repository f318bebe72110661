package handler

import (
	"net/http"

	"github.com/smilodon-digital/invoicing-service/internal/models"
	"github.com/smilodon-digital/invoicing-service/internal/service"
)

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Active      *bool   `json:"active"`
}

// ListProducts returns the full product sequence
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.ListProducts())
}

// CreateProduct inserts a new catalog item. Products default to active.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := h.svc.AddProduct(models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Active:      active,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// GetProduct returns one product by id
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := h.svc.GetProduct(pathID(r))
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// UpdateProduct applies a partial update to one product
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var patch service.ProductPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	found, err := h.svc.UpdateProduct(pathID(r), patch)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	product, _ := h.svc.GetProduct(pathID(r))
	respondJSON(w, http.StatusOK, product)
}

// DeleteProduct removes one product
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	h.svc.RemoveProduct(pathID(r))
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories returns the distinct product categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.svc.Categories()
	if categories == nil {
		categories = []string{}
	}
	respondJSON(w, http.StatusOK, categories)
}
