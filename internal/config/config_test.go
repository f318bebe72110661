package config

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %q", cfg.Port)
	}
	if cfg.TaxRate != 0.18 {
		t.Fatalf("unexpected default tax rate: %v", cfg.TaxRate)
	}
	if cfg.DefaultCreditLimit != 50000 {
		t.Fatalf("unexpected default credit limit: %v", cfg.DefaultCreditLimit)
	}
	if cfg.InvoicePrefix != "SMD" {
		t.Fatalf("unexpected default invoice prefix: %q", cfg.InvoicePrefix)
	}
	if cfg.InvoiceDueDays != 30 {
		t.Fatalf("unexpected default due days: %d", cfg.InvoiceDueDays)
	}
	if !cfg.SeedDemoData {
		t.Fatal("expected demo seeding on by default")
	}
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("TAX_RATE", "0.14")
	t.Setenv("INVOICE_PREFIX", "FAT")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:4200, https://app.example.com")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.TaxRate != 0.14 {
		t.Fatalf("tax rate override not applied: %v", cfg.TaxRate)
	}
	if cfg.InvoicePrefix != "FAT" {
		t.Fatalf("prefix override not applied: %q", cfg.InvoicePrefix)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://app.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestNewConfigRejectsBadValues(t *testing.T) {
	t.Setenv("TAX_RATE", "eighteen")
	if _, err := NewConfig(); err == nil {
		t.Fatal("expected error for unparsable tax rate")
	}

	t.Setenv("TAX_RATE", "-0.1")
	if _, err := NewConfig(); err == nil {
		t.Fatal("expected error for negative tax rate")
	}

	t.Setenv("TAX_RATE", "0.18")
	t.Setenv("INVOICE_DUE_DAYS", "0")
	if _, err := NewConfig(); err == nil {
		t.Fatal("expected error for non-positive due days")
	}
}
