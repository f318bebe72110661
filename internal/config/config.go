package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port     string
	LogLevel string

	// Billing constants, configurable so the service can be reused
	// outside the default scenario.
	TaxRate            float64
	DefaultCreditLimit float64
	InvoicePrefix      string
	InvoiceDueDays     int

	SeedDemoData       bool
	CORSAllowedOrigins []string

	// SMTP settings; notifications stay disabled while SMTPHost is
	// empty.
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	ReminderSchedule string
	ReminderLeadDays int
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	taxRate, err := strconv.ParseFloat(getEnv("TAX_RATE", "0.18"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATE: %w", err)
	}
	creditLimit, err := strconv.ParseFloat(getEnv("DEFAULT_CREDIT_LIMIT", "50000"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_CREDIT_LIMIT: %w", err)
	}
	dueDays, err := strconv.Atoi(getEnv("INVOICE_DUE_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid INVOICE_DUE_DAYS: %w", err)
	}
	leadDays, err := strconv.Atoi(getEnv("REMINDER_LEAD_DAYS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_LEAD_DAYS: %w", err)
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "INFO"),
		TaxRate:            taxRate,
		DefaultCreditLimit: creditLimit,
		InvoicePrefix:      getEnv("INVOICE_PREFIX", "SMD"),
		InvoiceDueDays:     dueDays,
		SeedDemoData:       getEnv("SEED_DEMO_DATA", "true") == "true",
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           getEnv("SMTP_PORT", "587"),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		SenderEmail:        getEnv("SENDER_EMAIL", "billing@smilodon.com"),
		ReminderSchedule:   getEnv("REMINDER_SCHEDULE", "0 9 * * *"),
		ReminderLeadDays:   leadDays,
	}

	if cfg.TaxRate < 0 {
		return nil, fmt.Errorf("TAX_RATE must not be negative")
	}
	if cfg.InvoicePrefix == "" {
		return nil, fmt.Errorf("INVOICE_PREFIX is required")
	}
	if cfg.InvoiceDueDays <= 0 {
		return nil, fmt.Errorf("INVOICE_DUE_DAYS must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
