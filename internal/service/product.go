package service

import (
	"fmt"

	"github.com/smilodon-digital/invoicing-service/internal/models"
)

// ProductPatch carries a partial product update; nil fields are left
// untouched.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// ListProducts returns the current product sequence
func (s *Service) ListProducts() []models.Product {
	return s.stores.Products.Query()
}

// GetProduct looks up one product by id
func (s *Service) GetProduct(id string) (models.Product, bool) {
	return s.stores.Products.FindByID(id)
}

// AddProduct validates and inserts a new catalog item
func (s *Service) AddProduct(draft models.Product) (models.Product, error) {
	if draft.Name == "" {
		return models.Product{}, fmt.Errorf("product name is required")
	}
	if draft.Price < 0 {
		return models.Product{}, fmt.Errorf("product price must not be negative")
	}
	if draft.Stock < 0 {
		return models.Product{}, fmt.Errorf("product stock must not be negative")
	}

	created := s.stores.Products.Insert(draft)
	s.log.Infof("Product created: %s (%s)", created.Name, created.ID)
	return created, nil
}

// UpdateProduct applies a partial update to the named product. Negative
// price or stock values are rejected; absent ids degrade to the store's
// documented no-op.
func (s *Service) UpdateProduct(id string, patch ProductPatch) (bool, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return false, fmt.Errorf("product price must not be negative")
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return false, fmt.Errorf("product stock must not be negative")
	}

	found := s.stores.Products.Update(id, func(p models.Product) models.Product {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.Active != nil {
			p.Active = *patch.Active
		}
		return p
	})
	return found, nil
}

// RemoveProduct deletes a product; no-op when absent
func (s *Service) RemoveProduct(id string) {
	s.stores.Products.Remove(id)
	s.log.Infof("Product removed: %s", id)
}

// Categories returns the distinct product categories in first-seen
// order
func (s *Service) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.stores.Products.Query() {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
