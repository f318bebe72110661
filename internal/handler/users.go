package handler

import (
	"net/http"

	"github.com/smilodon-digital/invoicing-service/internal/models"
)

type createUserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
}

// ListUsers returns the full user sequence
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.ListUsers())
}

// CreateUser inserts a new back-office user
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AddUser(models.User{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
		Phone:      req.Phone,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// SetUserStatus toggles a user between active and inactive
func (h *Handler) SetUserStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.SetUserStatus(pathID(r), req.Status)
	if err != nil {
		status := http.StatusBadRequest
		if _, ok := h.svc.GetUser(pathID(r)); !ok {
			status = http.StatusNotFound
		}
		respondError(w, status, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// DeleteUser removes one user
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	h.svc.RemoveUser(pathID(r))
	w.WriteHeader(http.StatusNoContent)
}
