// Package jobs holds the scheduled background work of the service.
package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/smilodon-digital/invoicing-service/internal/config"
	"github.com/smilodon-digital/invoicing-service/internal/models"
	"github.com/smilodon-digital/invoicing-service/internal/notify"
	"github.com/smilodon-digital/invoicing-service/internal/service"
)

// Reminder periodically emails clients about sent invoices that are
// close to, or past, their due date. It only notifies: invoice status
// is never changed here, overdue transitions stay caller-driven.
type Reminder struct {
	svc    *service.Service
	mailer *notify.Sender
	cfg    *config.Config
	log    *logrus.Logger
	cron   *cron.Cron
}

// NewReminder creates the reminder scheduler
func NewReminder(svc *service.Service, mailer *notify.Sender, cfg *config.Config, log *logrus.Logger) *Reminder {
	return &Reminder{svc: svc, mailer: mailer, cfg: cfg, log: log}
}

// Start registers the cron schedule and begins running. Does nothing
// when the mailer is disabled.
func (r *Reminder) Start() error {
	if !r.mailer.Enabled() {
		r.log.Info("Payment reminders disabled: SMTP is not configured")
		return nil
	}

	r.cron = cron.New()
	if _, err := r.cron.AddFunc(r.cfg.ReminderSchedule, r.run); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", r.cfg.ReminderSchedule, err)
	}
	r.cron.Start()
	r.log.Infof("Payment reminders scheduled: %s", r.cfg.ReminderSchedule)
	return nil
}

// Stop halts the scheduler; safe to call when never started.
func (r *Reminder) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}

func (r *Reminder) run() {
	now := time.Now()
	due := DueForReminder(r.svc.ListInvoices(), now, r.cfg.ReminderLeadDays)

	sent := 0
	for _, inv := range due {
		client, ok := r.svc.GetClient(inv.ClientID)
		if !ok || client.Email == "" {
			continue
		}
		if err := r.mailer.SendPaymentReminder(client.Email, client.Name, inv, now); err != nil {
			r.log.Errorf("Reminder for invoice %s failed: %v", inv.Number, err)
			continue
		}
		sent++
	}

	r.log.Infof("Reminder pass complete: %d due, %d sent", len(due), sent)
}

// DueForReminder selects the sent invoices whose due date falls within
// leadDays from now, or has already passed.
func DueForReminder(invoices []models.Invoice, now time.Time, leadDays int) []models.Invoice {
	cutoff := now.AddDate(0, 0, leadDays)

	var due []models.Invoice
	for _, inv := range invoices {
		if inv.Status != models.InvoiceStatusSent {
			continue
		}
		if inv.DueDate.After(cutoff) {
			continue
		}
		due = append(due, inv)
	}
	return due
}
