package service

import (
	"fmt"

	"github.com/smilodon-digital/invoicing-service/internal/models"
)

// ClientPatch carries a partial client update; nil fields are left
// untouched. Balance is deliberately absent: it is the running sum of
// transaction effects and is never edited independently.
type ClientPatch struct {
	Name        *string  `json:"name,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Address     *string  `json:"address,omitempty"`
	TaxNumber   *string  `json:"tax_number,omitempty"`
	CreditLimit *float64 `json:"credit_limit,omitempty"`
}

// ListClients returns the current client sequence
func (s *Service) ListClients() []models.Client {
	return s.stores.Clients.Query()
}

// GetClient looks up one client by id
func (s *Service) GetClient(id string) (models.Client, bool) {
	return s.stores.Clients.FindByID(id)
}

// AddClient validates and inserts a new client. A zero credit limit is
// replaced with the configured default.
func (s *Service) AddClient(draft models.Client) (models.Client, error) {
	if draft.Name == "" {
		return models.Client{}, fmt.Errorf("client name is required")
	}
	if draft.Email == "" {
		return models.Client{}, fmt.Errorf("client email is required")
	}

	if draft.CreditLimit == 0 {
		draft.CreditLimit = s.config.DefaultCreditLimit
	}
	if draft.Invoices == nil {
		draft.Invoices = []string{}
	}

	created := s.stores.Clients.Insert(draft)
	s.log.Infof("Client created: %s (%s)", created.Name, created.ID)
	return created, nil
}

// UpdateClient applies a partial update to the named client. Absent ids
// degrade to the store's documented no-op.
func (s *Service) UpdateClient(id string, patch ClientPatch) bool {
	return s.stores.Clients.Update(id, func(c models.Client) models.Client {
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Email != nil {
			c.Email = *patch.Email
		}
		if patch.Phone != nil {
			c.Phone = *patch.Phone
		}
		if patch.Address != nil {
			c.Address = *patch.Address
		}
		if patch.TaxNumber != nil {
			c.TaxNumber = *patch.TaxNumber
		}
		if patch.CreditLimit != nil {
			c.CreditLimit = *patch.CreditLimit
		}
		return c
	})
}

// RemoveClient deletes a client; no-op when absent
func (s *Service) RemoveClient(id string) {
	s.stores.Clients.Remove(id)
}

// RecordTransaction appends a ledger entry for a client and applies its
// effect to the client balance: a credit decreases the balance, a debit
// increases it. The amount must be strictly positive and is stored as
// supplied; the sign convention is applied only to the balance.
//
// When the client does not exist the balance update is a no-op but the
// transaction record is still appended, producing an orphaned
// transaction. That matches the documented behavior of the system this
// replaces; the condition is logged so it stays observable.
func (s *Service) RecordTransaction(clientID, txType string, amount float64, description, invoiceID string) (models.ClientTransaction, error) {
	if amount <= 0 {
		return models.ClientTransaction{}, fmt.Errorf("transaction amount must be positive, got %.2f", amount)
	}
	if txType != models.TransactionCredit && txType != models.TransactionDebit {
		return models.ClientTransaction{}, fmt.Errorf("unknown transaction type %q", txType)
	}

	delta := amount
	if txType == models.TransactionCredit {
		delta = -amount
	}

	found := s.stores.Clients.Update(clientID, func(c models.Client) models.Client {
		c.Balance += delta
		return c
	})
	if !found {
		s.log.Warnf("Transaction recorded for unknown client %s", clientID)
	}

	tx := s.stores.Transactions.Insert(models.ClientTransaction{
		ClientID:    clientID,
		Type:        txType,
		Amount:      amount,
		Description: description,
		InvoiceID:   invoiceID,
	})

	s.log.Infof("Transaction %s: %s %.2f for client %s", tx.ID, txType, amount, clientID)
	return tx, nil
}

// ClientTransactions returns the ledger entries for one client, in
// recording order
func (s *Service) ClientTransactions(clientID string) []models.ClientTransaction {
	var out []models.ClientTransaction
	for _, tx := range s.stores.Transactions.Query() {
		if tx.ClientID == clientID {
			out = append(out, tx)
		}
	}
	return out
}
