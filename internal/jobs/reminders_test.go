package jobs

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/smilodon-digital/invoicing-service/internal/config"
	"github.com/smilodon-digital/invoicing-service/internal/models"
	"github.com/smilodon-digital/invoicing-service/internal/notify"
	"github.com/smilodon-digital/invoicing-service/internal/service"
)

func TestDueForReminder(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return now.AddDate(0, 0, d) }

	invoices := []models.Invoice{
		{Number: "SMD-001", Status: models.InvoiceStatusSent, DueDate: day(-10)}, // overdue
		{Number: "SMD-002", Status: models.InvoiceStatusSent, DueDate: day(2)}, // due within lead
		{Number: "SMD-003", Status: models.InvoiceStatusSent, DueDate: day(10)}, // not yet due
		{Number: "SMD-004", Status: models.InvoiceStatusPaid, DueDate: day(-5)}, // paid, ignored
		{Number: "SMD-005", Status: models.InvoiceStatusDraft, DueDate: day(-5)}, // draft, ignored
		{Number: "SMD-006", Status: models.InvoiceStatusOverdue, DueDate: day(-5)}, // already flagged by caller
	}

	due := DueForReminder(invoices, now, 3)
	if len(due) != 2 {
		t.Fatalf("expected 2 due invoices, got %d: %+v", len(due), due)
	}
	if due[0].Number != "SMD-001" || due[1].Number != "SMD-002" {
		t.Fatalf("unexpected selection: %+v", due)
	}
}

func TestDueForReminderEmpty(t *testing.T) {
	if got := DueForReminder(nil, time.Now(), 3); len(got) != 0 {
		t.Fatalf("expected no reminders for empty snapshot, got %v", got)
	}
}

// The shutdown path stops the reminder unconditionally; with SMTP
// unconfigured the scheduler never started and Stop must still be safe.
func TestReminderStartDisabledAndStop(t *testing.T) {
	t.Setenv("SMTP_HOST", "")

	cfg, err := config.NewConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	log := logrus.New()
	log.SetOutput(io.Discard)

	mailer := notify.NewSender(cfg, log)
	svc := service.NewService(service.NewStores(), mailer, log, cfg)

	r := NewReminder(svc, mailer, cfg, log)
	if err := r.Start(); err != nil {
		t.Fatalf("start with disabled mailer: %v", err)
	}
	r.Stop()
}
