package export

import (
	"testing"
	"time"

	"github.com/beevik/etree"

	"github.com/smilodon-digital/invoicing-service/internal/models"
)

func TestInvoiceXML(t *testing.T) {
	paid := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)
	inv := models.Invoice{
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
		IssueDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		PaidDate:  &paid,
	}
	client := models.Client{ID: "1", Name: "João Silva", Email: "joao@example.com", TaxNumber: "123456789"}

	out, err := InvoiceXML(inv, client)
	if err != nil {
		t.Fatalf("render invoice: %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(out); err != nil {
		t.Fatalf("output is not well-formed XML: %v", err)
	}

	root := doc.SelectElement("invoice")
	if root == nil {
		t.Fatal("missing invoice root element")
	}
	if got := root.SelectAttrValue("number", ""); got != "SMD-001" {
		t.Fatalf("number attr: %q", got)
	}
	if got := root.SelectAttrValue("status", ""); got != "paid" {
		t.Fatalf("status attr: %q", got)
	}
	if el := root.FindElement("./paid_date"); el == nil || el.Text() != "2024-01-25" {
		t.Fatalf("paid_date element missing or wrong: %v", el)
	}
	if el := root.FindElement("./client/tax_number"); el == nil || el.Text() != "123456789" {
		t.Fatalf("client tax number missing or wrong: %v", el)
	}
	if items := root.FindElements("./items/item"); len(items) != 1 {
		t.Fatalf("expected 1 item element, got %d", len(items))
	}
	if el := root.FindElement("./totals/total"); el == nil || el.Text() != "141600.00" {
		t.Fatalf("total element missing or wrong: %v", el)
	}
}

func TestInvoiceXMLOmitsOptionalFields(t *testing.T) {
	inv := models.Invoice{
		Number:     "SMD-002",
		ClientID:   "2",
		ClientName: "Maria Santos",
		Status:     models.InvoiceStatusSent,
		IssueDate:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	out, err := InvoiceXML(inv, models.Client{})
	if err != nil {
		t.Fatalf("render invoice: %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(out); err != nil {
		t.Fatalf("output is not well-formed XML: %v", err)
	}
	root := doc.SelectElement("invoice")
	if root.FindElement("./paid_date") != nil {
		t.Fatal("unpaid invoice must not carry a paid_date element")
	}
	if root.FindElement("./client/email") != nil {
		t.Fatal("unknown client must not produce an email element")
	}
}
