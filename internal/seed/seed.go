// Package seed loads the demo fixture data set the service ships with.
package seed

import (
	"time"

	"github.com/smilodon-digital/invoicing-service/internal/models"
	"github.com/smilodon-digital/invoicing-service/internal/service"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Demo resets every store to the demo fixture set: two clients, four
// products, two invoices (one paid, one sent), two ledger entries and
// three users.
func Demo(stores *service.Stores) {
	stores.Clients.Reset([]models.Client{
		{
			ID:          "1",
			Name:        "João Silva",
			Email:       "joao@example.com",
			Phone:       "+244 923 456 789",
			Address:     "Rua da Independência, 123, Luanda",
			TaxNumber:   "123456789",
			Balance:     0,
			CreditLimit: 50000,
			Invoices:    []string{"1"},
			CreatedAt:   date(2024, 1, 15),
		},
		{
			ID:          "2",
			Name:        "Maria Santos",
			Email:       "maria@example.com",
			Phone:       "+244 924 567 890",
			Address:     "Avenida Marginal, 456, Luanda",
			TaxNumber:   "987654321",
			Balance:     -15000,
			CreditLimit: 75000,
			Invoices:    []string{"2"},
			CreatedAt:   date(2024, 2, 20),
		},
	})

	stores.Transactions.Reset([]models.ClientTransaction{
		{
			ID:          "1",
			ClientID:    "1",
			Type:        models.TransactionDebit,
			Amount:      25000,
			Description: "Fatura #001 - Produtos diversos",
			InvoiceID:   "1",
			Date:        date(2024, 1, 20),
		},
		{
			ID:          "2",
			ClientID:    "1",
			Type:        models.TransactionCredit,
			Amount:      25000,
			Description: "Pagamento fatura #001",
			Date:        date(2024, 1, 25),
		},
	})

	stores.Products.Reset([]models.Product{
		{
			ID:          "1",
			Name:        "Laptop Dell Inspiron",
			Description: "Laptop para uso empresarial com 8GB RAM e 256GB SSD",
			Price:       120000,
			Category:    "Informática",
			Stock:       15,
			Active:      true,
			CreatedAt:   date(2024, 1, 10),
		},
		{
			ID:          "2",
			Name:        "Monitor Samsung 24\"",
			Description: "Monitor Full HD para escritório",
			Price:       35000,
			Category:    "Informática",
			Stock:       25,
			Active:      true,
			CreatedAt:   date(2024, 1, 12),
		},
		{
			ID:          "3",
			Name:        "Mesa de Escritório",
			Description: "Mesa executiva em madeira premium",
			Price:       85000,
			Category:    "Mobiliário",
			Stock:       8,
			Active:      true,
			CreatedAt:   date(2024, 1, 15),
		},
		{
			ID:          "4",
			Name:        "Cadeira Ergonómica",
			Description: "Cadeira de escritório com apoio lombar",
			Price:       45000,
			Category:    "Mobiliário",
			Stock:       12,
			Active:      true,
			CreatedAt:   date(2024, 1, 18),
		},
	})

	paidDate := date(2024, 1, 25)
	stores.Invoices.Reset([]models.Invoice{
		{
			ID:         "1",
			Number:     "SMD-001",
			ClientID:   "1",
			ClientName: "João Silva",
			Items: []models.InvoiceItem{
				{ProductID: "1", ProductName: "Laptop Dell Inspiron", Quantity: 1, UnitPrice: 120000, Total: 120000},
			},
			Subtotal:  120000,
			Tax:       21600,
			Total:     141600,
			Status:    models.InvoiceStatusPaid,
			IssueDate: date(2024, 1, 20),
			DueDate:   date(2024, 2, 20),
			PaidDate:  &paidDate,
		},
		{
			ID:         "2",
			Number:     "SMD-002",
			ClientID:   "2",
			ClientName: "Maria Santos",
			Items: []models.InvoiceItem{
				{ProductID: "2", ProductName: "Monitor Samsung 24\"", Quantity: 2, UnitPrice: 35000, Total: 70000},
				{ProductID: "4", ProductName: "Cadeira Ergonómica", Quantity: 1, UnitPrice: 45000, Total: 45000},
			},
			Subtotal:  115000,
			Tax:       20700,
			Total:     135700,
			Status:    models.InvoiceStatusSent,
			IssueDate: date(2024, 2, 1),
			DueDate:   date(2024, 3, 1),
		},
	})

	stores.Users.Reset([]models.User{
		{
			ID:         "1",
			Name:       "João Silva",
			Email:      "joao@smilodon.com",
			Role:       models.RoleAdmin,
			Department: "TI",
			Phone:      "+244 923 456 789",
			Status:     models.UserStatusActive,
			LastLogin:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			CreatedAt:  date(2024, 1, 1),
		},
		{
			ID:         "2",
			Name:       "Maria Santos",
			Email:      "maria@smilodon.com",
			Role:       models.RoleManager,
			Department: "Vendas",
			Phone:      "+244 924 567 890",
			Status:     models.UserStatusActive,
			LastLogin:  time.Date(2024, 1, 14, 15, 45, 0, 0, time.UTC),
			CreatedAt:  date(2024, 1, 5),
		},
		{
			ID:         "3",
			Name:       "Pedro Costa",
			Email:      "pedro@smilodon.com",
			Role:       models.RoleUser,
			Department: "Financeiro",
			Phone:      "+244 925 678 901",
			Status:     models.UserStatusInactive,
			LastLogin:  time.Date(2024, 1, 10, 9, 15, 0, 0, time.UTC),
			CreatedAt:  date(2024, 1, 10),
		},
	})
}
