package models

import "time"

// Client represents a customer in the system
type Client struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	TaxNumber   string    `json:"tax_number,omitempty"`
	Balance     float64   `json:"balance"`
	CreditLimit float64   `json:"credit_limit"`
	Invoices    []string  `json:"invoices"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordID returns the client identifier.
func (c Client) RecordID() string { return c.ID }

// WithIdentity returns a copy of the client stamped with a store-assigned
// id and creation timestamp.
func (c Client) WithIdentity(id string, createdAt time.Time) Client {
	c.ID = id
	c.CreatedAt = createdAt
	return c
}
