package notify

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/smilodon-digital/invoicing-service/internal/config"
	"github.com/smilodon-digital/invoicing-service/internal/models"
)

// Sender handles sending invoice emails via SMTP
type Sender struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, log *logrus.Logger) *Sender {
	return &Sender{cfg: cfg, log: log}
}

// Enabled reports whether SMTP is configured. All send methods are
// no-ops while disabled.
func (s *Sender) Enabled() bool {
	return s.cfg.SMTPHost != ""
}

// SendInvoiceIssued notifies a client that an invoice has been issued
func (s *Sender) SendInvoiceIssued(to, clientName string, inv models.Invoice) error {
	if !s.Enabled() {
		return nil
	}

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Invoice %s", inv.Number)

	body := fmt.Sprintf("Dear %s,\n\n", clientName)
	body += fmt.Sprintf(
		"Invoice %s has been issued for a total of %.2f AOA.\n"+
			"Payment is due on %s.\n",
		inv.Number, inv.Total, inv.DueDate.Format("2006-01-02"),
	)
	body += "\nBest regards,\nSmilodon Digital"
	e.Text = []byte(body)

	return s.send(e, to)
}

// SendPaymentReminder reminds a client about an upcoming or overdue
// invoice payment
func (s *Sender) SendPaymentReminder(to, clientName string, inv models.Invoice, now time.Time) error {
	if !s.Enabled() {
		return nil
	}

	overdue := inv.DueDate.Before(now)

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	if overdue {
		e.Subject = fmt.Sprintf("Overdue Invoice %s", inv.Number)
	} else {
		e.Subject = fmt.Sprintf("Payment Reminder for Invoice %s", inv.Number)
	}

	body := fmt.Sprintf("Dear %s,\n\n", clientName)
	if overdue {
		body += fmt.Sprintf(
			"Invoice %s for %.2f AOA was due on %s and is still unpaid.\n"+
				"Please settle the amount as soon as possible.\n",
			inv.Number, inv.Total, inv.DueDate.Format("2006-01-02"),
		)
	} else {
		body += fmt.Sprintf(
			"This is a reminder that invoice %s for %.2f AOA is due on %s.\n",
			inv.Number, inv.Total, inv.DueDate.Format("2006-01-02"),
		)
	}
	body += "\nBest regards,\nSmilodon Digital"
	e.Text = []byte(body)

	return s.send(e, to)
}

func (s *Sender) send(e *email.Email, to string) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.log.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.log.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
