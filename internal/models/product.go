package models

import "time"

// Product represents a catalog item
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordID returns the product identifier.
func (p Product) RecordID() string { return p.ID }

// WithIdentity returns a copy of the product stamped with a
// store-assigned id and creation timestamp.
func (p Product) WithIdentity(id string, createdAt time.Time) Product {
	p.ID = id
	p.CreatedAt = createdAt
	return p
}
