package service

import (
	"github.com/sirupsen/logrus"

	"github.com/smilodon-digital/invoicing-service/internal/config"
	"github.com/smilodon-digital/invoicing-service/internal/models"
	"github.com/smilodon-digital/invoicing-service/internal/notify"
	"github.com/smilodon-digital/invoicing-service/internal/store"
)

// Stores groups the entity stores owned by the application. Each store
// is the single authoritative holder of its entity type; entities
// reference each other by id only.
type Stores struct {
	Clients      *store.Store[models.Client]
	Transactions *store.Store[models.ClientTransaction]
	Products     *store.Store[models.Product]
	Invoices     *store.Store[models.Invoice]
	Users        *store.Store[models.User]
}

// NewStores initializes empty entity stores
func NewStores() *Stores {
	return &Stores{
		Clients:      store.New[models.Client](),
		Transactions: store.New[models.ClientTransaction](),
		Products:     store.New[models.Product](),
		Invoices:     store.New[models.Invoice](),
		Users:        store.New[models.User](),
	}
}

// Service handles business logic over the entity stores
type Service struct {
	stores *Stores
	mailer *notify.Sender
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service. mailer may be disabled; all
// notifications are best-effort.
func NewService(stores *Stores, mailer *notify.Sender, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{stores: stores, mailer: mailer, log: log, config: cfg}
}
